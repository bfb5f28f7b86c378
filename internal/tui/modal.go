package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/brclaisa/panther-backoffice/internal/tui/format"
)

// ModalKind names each dialog for dispatch and tests.
type ModalKind int

const (
	ModalProductForm ModalKind = iota
	ModalProductEdit
	ModalCustomerForm
	ModalCustomerEdit
	ModalConfirmDelete
	ModalAdjustInventory
	ModalReceipt
)

// Modal is a dialog overlaid on the active section. While one is open it
// captures all key input; closing it restores section key handling.
// Only one modal is open at a time; opening another replaces it.
type Modal interface {
	tea.Model
	Kind() ModalKind
	Title() string
}

// pantherHuhTheme returns a custom huh theme using the existing palette.
func pantherHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(format.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(format.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(format.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(format.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(format.ColorFg).Background(format.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(format.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(format.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(format.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(format.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(format.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(format.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(format.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(format.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(format.ColorDim)

	return t
}

// modalBox wraps dialog content in a rounded border.
var modalBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(format.ColorDim).
	Padding(1, 2)

// ── form modal ───────────────────────────────────────────────────────────────

// formModal wraps a huh.Form as a Modal. Esc cancels the whole dialog
// with nothing sent; completion closes it and runs the done callback.
type formModal struct {
	kind     ModalKind
	titleStr string
	form     *huh.Form
	done     func() tea.Cmd
}

func newFormModal(kind ModalKind, title string, form *huh.Form, done func() tea.Cmd) *formModal {
	return &formModal{
		kind:     kind,
		titleStr: title,
		form:     form,
		done:     done,
	}
}

func (m *formModal) Kind() ModalKind { return m.kind }
func (m *formModal) Title() string   { return m.titleStr }

func (m *formModal) Init() tea.Cmd {
	return m.form.Init()
}

func (m *formModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, func() tea.Msg { return closeModalMsg{} }
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		var doneCmd tea.Cmd
		if m.done != nil {
			doneCmd = m.done()
		}
		return m, func() tea.Msg {
			return modalDoneMsg{next: tea.Batch(cmd, doneCmd)}
		}
	}

	return m, cmd
}

func (m *formModal) View() string {
	return modalBox.Render(format.Bold(m.titleStr) + "\n\n" + m.form.View())
}

// ── receipt modal ────────────────────────────────────────────────────────────

// receiptModal shows a rendered sale receipt. Any key closes it.
type receiptModal struct {
	content string
}

func newReceiptModal(content string) *receiptModal {
	return &receiptModal{content: content}
}

func (m *receiptModal) Kind() ModalKind { return ModalReceipt }
func (m *receiptModal) Title() string   { return "Recibo" }
func (m *receiptModal) Init() tea.Cmd   { return nil }

func (m *receiptModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, func() tea.Msg { return closeModalMsg{} }
	}
	return m, nil
}

func (m *receiptModal) View() string {
	return modalBox.Render(m.content + "\n" + format.Dim("qualquer tecla fecha"))
}
