package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable indicates the backend could not be reached at all
	// (connection refused, DNS failure, broken pipe).
	ErrUnreachable = errors.New("servidor indisponível")
)

// APIError is returned when the backend responds with a non-2xx status.
// Detail carries the "detail" field from the response body when present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Message returns the user-facing text for the error: the server detail
// when available, otherwise the supplied fallback.
func (e *APIError) Message(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}

// UserMessage converts any gateway error into a user-facing alert message.
// Server-provided detail wins; everything else collapses to the fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
