package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brclaisa/panther-backoffice/internal/api"
	"github.com/brclaisa/panther-backoffice/internal/tui/format"
)

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg signals that the summary fetch finished.
type dashboardLoadedMsg struct {
	gen     int
	summary *api.DashboardSummary
	err     error
}

// todaySalesLoadedMsg signals that today's per-method breakdown finished.
// A failure here is secondary: the gateway observer records it and the
// summary stays on screen without an alert.
type todaySalesLoadedMsg struct {
	gen   int
	today *api.TodaySales
	err   error
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen: headline totals for today and the
// month, registration counts, and today's sales grouped by payment method.
type dashboardView struct {
	state   *SharedState
	gen     int
	loading bool
	summary *api.DashboardSummary
	today   *api.TodaySales
}

func newDashboardView(state *SharedState, gen int) *dashboardView {
	return &dashboardView{
		state:   state,
		gen:     gen,
		loading: true,
	}
}

func (v *dashboardView) Section() Section { return SectionDashboard }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "atualizar")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadSummary()
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *dashboardView) loadSummary() tea.Cmd {
	client := v.state.API
	gen := v.gen
	return func() tea.Msg {
		summary, err := client.DashboardSummary(context.Background())
		return dashboardLoadedMsg{gen: gen, summary: summary, err: err}
	}
}

func (v *dashboardView) loadToday() tea.Cmd {
	client := v.state.API
	gen := v.gen
	return func() tea.Msg {
		today, err := client.TodaySales(context.Background())
		return todaySalesLoadedMsg{gen: gen, today: today, err: err}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			return v, showAlert(AlertDanger, "Erro ao carregar dados do dashboard")
		}
		v.summary = msg.summary
		return v, v.loadToday()

	case todaySalesLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		if msg.err != nil {
			return v, nil
		}
		v.today = msg.today
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return v, reloadSection()
		}
	}

	return v, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + format.Dim("Carregando...")
	}
	if v.summary == nil {
		return "\n  " + format.Dim("Dados indisponíveis. Pressione 'r' para tentar novamente.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(format.DashboardStats(v.summary))
	b.WriteString("\n")
	b.WriteString(format.PaymentMethodsChart(v.today))

	if names := v.state.PaymentMethodNames(); len(names) > 0 {
		b.WriteString("\n")
		b.WriteString(format.Dim("Formas de pagamento: " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}

	return b.String()
}
