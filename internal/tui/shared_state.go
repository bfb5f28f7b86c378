package tui

import (
	"github.com/brclaisa/panther-backoffice/internal/api"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	API *api.Client

	// Payment method selector, loaded once at startup. Empty when the
	// bootstrap fetch failed; the failure is logged, never alerted.
	PaymentMethods []api.PaymentMethod

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for section content,
// accounting for the header (2 lines), navigation tabs (1 line) and
// status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}

// PaymentMethodNames returns the names of the bootstrapped payment methods.
func (s *SharedState) PaymentMethodNames() []string {
	names := make([]string, 0, len(s.PaymentMethods))
	for _, m := range s.PaymentMethods {
		names = append(names, m.Name)
	}
	return names
}
