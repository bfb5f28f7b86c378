package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brclaisa/panther-backoffice/internal/tui/format"
)

// appModel is the root bubbletea Model. It owns the section state
// machine, the alert strip and the modal slot, and routes messages to
// the active section view.
type appModel struct {
	state   *SharedState
	section Section
	view    SectionView
	modal   Modal
	alerts  alertArea

	// gen tags each section load. Results arriving with a stale
	// generation are discarded, so a slow response can never overwrite
	// a newer navigation.
	gen int

	quitting bool
}

func newAppModel(state *SharedState) appModel {
	m := appModel{
		state:   state,
		section: SectionDashboard,
		gen:     1,
	}
	m.view = newSectionView(state, SectionDashboard, m.gen)
	return m
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.view.Init(),
		loadPaymentMethods(m.state),
	)
}

// loadPaymentMethods is the one-time startup bootstrap of the payment
// method selector. A failure leaves the selector empty; the gateway
// observer records it and no alert is raised.
func loadPaymentMethods(state *SharedState) tea.Cmd {
	client := state.API
	return func() tea.Msg {
		methods, err := client.ListPaymentMethods(context.Background())
		return paymentMethodsLoadedMsg{methods: methods, err: err}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case activateSectionMsg:
		return m.activate(msg.section)

	case reloadSectionMsg:
		// Refresh-by-reload: re-activate the current section with a
		// fresh view instead of patching the stale collection.
		return m.activate(m.section)

	case alertMsg:
		_, expire := m.alerts.Show(msg.message, msg.kind)
		return m, expire

	case alertExpiredMsg:
		// No-op when already dismissed by the user.
		m.alerts.Dismiss(msg.id)
		return m, nil

	case openModalMsg:
		m.modal = msg.modal
		return m, m.modal.Init()

	case closeModalMsg:
		m.modal = nil
		return m, nil

	case modalDoneMsg:
		m.modal = nil
		return m, msg.next

	case mutationFailedMsg:
		cmds := []tea.Cmd{showAlert(msg.kind, msg.message)}
		if msg.retry != nil {
			m.modal = msg.retry()
			cmds = append(cmds, m.modal.Init())
		}
		return m, tea.Batch(cmds...)

	case paymentMethodsLoadedMsg:
		if msg.err == nil {
			m.state.PaymentMethods = msg.methods
		}
		return m, nil
	}

	return m.forward(msg)
}

// forward routes a message to the open modal and the active section view.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.modal != nil {
		updated, cmd := m.modal.Update(msg)
		m.modal = updated.(Modal)
		cmds = append(cmds, cmd)
	}

	if m.view != nil {
		updated, cmd := m.view.Update(msg)
		m.view = updated.(SectionView)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// activate switches to the target section and triggers its data load.
// Unknown sections are a silent no-op. Re-activating the current section
// re-runs its loader.
func (m appModel) activate(target Section) (tea.Model, tea.Cmd) {
	if !target.Valid() {
		return m, nil
	}

	m.gen++
	m.section = target
	m.view = newSectionView(m.state, target, m.gen)
	return m, m.view.Init()
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// An open modal captures all input, the TUI analog of the page
	// scroll lock behind a dialog.
	if m.modal != nil {
		updated, cmd := m.modal.Update(msg)
		m.modal = updated.(Modal)
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "x":
		m.alerts.DismissOldest()
		return m, nil

	case msg.String() == "tab":
		return m.activate(nextSection(m.section, 1))

	case msg.String() == "shift+tab":
		return m.activate(nextSection(m.section, -1))
	}

	if target, ok := sectionKeys[msg.String()]; ok {
		return m.activate(target)
	}

	// Forward to active section view
	if m.view != nil {
		updated, cmd := m.view.Update(msg)
		m.view = updated.(SectionView)
		return m, cmd
	}

	return m, nil
}

// nextSection cycles through the section list by delta.
func nextSection(current Section, delta int) Section {
	for i, s := range Sections {
		if s == current {
			n := len(Sections)
			return Sections[(i+delta+n)%n]
		}
	}
	return current
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if strip := m.alerts.View(); strip != "" {
		sections = append(sections, strip)
	}

	if m.modal != nil {
		sections = append(sections, m.modal.View())
	} else if m.view != nil {
		sections = append(sections, m.view.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := format.StylePurple.Render("panther")

	// Navigation tabs: exactly one section is highlighted as active.
	tabs := make([]string, 0, len(Sections))
	for i, s := range Sections {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if s == m.section {
			tabs = append(tabs, format.StyleHeader.Render(label))
		} else {
			tabs = append(tabs, format.Dim(label))
		}
	}

	header := title + "  " + strings.Join(tabs, format.Dim(" · "))
	sep := format.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.modal != nil {
		hints = append(hints, format.Dim("esc: cancelar"))
	} else if m.view != nil {
		for _, b := range m.view.ShortHelp() {
			hints = append(hints, format.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		hints = append(hints, format.Dim("1-6/tab: seções"))
		if m.alerts.Len() > 0 {
			hints = append(hints, format.Dim("x: fechar aviso"))
		}
		hints = append(hints, format.Dim("q: sair"))
	}

	sep := format.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
