package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brclaisa/panther-backoffice/internal/api"
	"github.com/brclaisa/panther-backoffice/internal/teatest"
)

// testState builds a SharedState wired to the stub backend, for tests
// that exercise submit handlers directly.
func testState(t *testing.T, backend *stubBackend) *SharedState {
	t.Helper()
	cfg := api.DefaultConfig()
	cfg.BaseURL = backend.server.URL
	return &SharedState{API: api.NewClient(cfg, api.NoopObserver{})}
}

func keyShiftTab() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyShiftTab}
}

// testDriver wraps teatest.Driver with back-office-specific inspection
// of the root model: active section, open modal and alert strip.
type testDriver struct {
	*teatest.Driver
	backend *stubBackend
}

// newTestDriver builds the root model against a stub backend, sets the
// terminal size and drains Init (dashboard load plus the payment method
// bootstrap).
func newTestDriver(t *testing.T, backend *stubBackend) *testDriver {
	t.Helper()

	cfg := api.DefaultConfig()
	cfg.BaseURL = backend.server.URL

	state := &SharedState{API: api.NewClient(cfg, api.NoopObserver{})}
	m := newAppModel(state)

	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &testDriver{Driver: d, backend: backend}
}

func (d *testDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveSection returns the currently active section.
func (d *testDriver) ActiveSection() Section {
	return d.appModel().section
}

// ModalOpen reports whether a dialog is currently open.
func (d *testDriver) ModalOpen() bool {
	return d.appModel().modal != nil
}

// OpenModalKind returns the kind of the open dialog. Only call when
// ModalOpen is true.
func (d *testDriver) OpenModalKind() ModalKind {
	return d.appModel().modal.Kind()
}

// Alerts returns the visible alerts, oldest first.
func (d *testDriver) Alerts() []Alert {
	return d.appModel().alerts.alerts
}

// State returns the shared state for inspection.
func (d *testDriver) State() *SharedState {
	return d.appModel().state
}

// Gen returns the current load generation counter.
func (d *testDriver) Gen() int {
	return d.appModel().gen
}

// IsQuitting reports whether the app has signaled a quit.
func (d *testDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
