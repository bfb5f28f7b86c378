package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brclaisa/panther-backoffice/internal/api"
)

// Messages exchanged between section views, modals and the root model.
// The root model handles all of these in its Update method.

// activateSectionMsg requests switching the active section. Unknown
// sections are ignored without an alert.
type activateSectionMsg struct {
	section Section
}

// reloadSectionMsg requests a full refresh of the active section's data,
// sent after successful mutations instead of patching local state.
type reloadSectionMsg struct{}

// alertMsg requests a transient notification.
type alertMsg struct {
	kind    AlertKind
	message string
}

// alertExpiredMsg fires when an alert's display window has elapsed.
// It is a no-op when the alert was already dismissed by the user.
type alertExpiredMsg struct {
	id string
}

// openModalMsg opens the given dialog, replacing any open one.
type openModalMsg struct {
	modal Modal
}

// closeModalMsg closes the open dialog without side effects.
type closeModalMsg struct{}

// modalDoneMsg is sent when a modal form completes. The root model
// closes the modal atomically and then runs next.
type modalDoneMsg struct {
	next tea.Cmd
}

// mutationFailedMsg reports a rejected or failed mutation. The root shows
// the alert and reopens the originating dialog with the entered values
// intact so the user can retry or cancel.
type mutationFailedMsg struct {
	kind    AlertKind
	message string
	retry   func() Modal
}

// paymentMethodsLoadedMsg delivers the one-time payment method bootstrap.
type paymentMethodsLoadedMsg struct {
	methods []api.PaymentMethod
	err     error
}

// activateSection returns a tea.Cmd requesting a section switch.
func activateSection(s Section) tea.Cmd {
	return func() tea.Msg { return activateSectionMsg{section: s} }
}

// reloadSection returns a tea.Cmd requesting an active-section reload.
func reloadSection() tea.Cmd {
	return func() tea.Msg { return reloadSectionMsg{} }
}

// showAlert returns a tea.Cmd that raises an alert.
func showAlert(kind AlertKind, message string) tea.Cmd {
	return func() tea.Msg { return alertMsg{kind: kind, message: message} }
}

// openModal returns a tea.Cmd that opens a dialog.
func openModal(m Modal) tea.Cmd {
	return func() tea.Msg { return openModalMsg{modal: m} }
}
