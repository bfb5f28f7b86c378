package api

import (
	"os"
	"strconv"
)

// Config holds all configuration for the API gateway.
type Config struct {
	BaseURL     string
	TimeoutMs   int
	LogRequests bool
}

// DefaultConfig returns a Config pointing at a local backend.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "http://localhost:8000/api",
		TimeoutMs:   0, // 0 means transport defaults, no per-request deadline
		LogRequests: false,
	}
}

// LoadConfig reads gateway configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PANTHER_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PANTHER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PANTHER_LOG_REQUESTS"); v != "" {
		cfg.LogRequests, _ = strconv.ParseBool(v)
	}

	return cfg
}
