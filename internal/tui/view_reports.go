package tui

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brclaisa/panther-backoffice/internal/api"
	"github.com/brclaisa/panther-backoffice/internal/tui/format"
)

// reportsData bundles the three report fetches. They either all succeed
// or the whole load is treated as failed.
type reportsData struct {
	sales      *api.SalesReport
	topSelling []api.TopProduct
	lowStock   []api.LowStockItem
}

// reportsLoadedMsg signals that the combined report fetch finished.
type reportsLoadedMsg struct {
	gen  int
	data reportsData
	err  error
}

// reportsView shows the sales summary, top sellers and low-stock report.
type reportsView struct {
	state   *SharedState
	gen     int
	loading bool
	data    *reportsData
}

func newReportsView(state *SharedState, gen int) *reportsView {
	return &reportsView{
		state:   state,
		gen:     gen,
		loading: true,
	}
}

func (v *reportsView) Section() Section { return SectionReports }

func (v *reportsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "atualizar")),
	}
}

func (v *reportsView) Init() tea.Cmd {
	return v.loadData()
}

// loadData fans out the three report fetches concurrently and joins
// them into one message. Any failure fails the load as a whole, with a
// single alert.
func (v *reportsView) loadData() tea.Cmd {
	client := v.state.API
	gen := v.gen
	return func() tea.Msg {
		ctx := context.Background()

		var (
			wg   sync.WaitGroup
			data reportsData
			errs [3]error
		)

		wg.Add(3)
		go func() {
			defer wg.Done()
			data.sales, errs[0] = client.SalesReport(ctx)
		}()
		go func() {
			defer wg.Done()
			data.topSelling, errs[1] = client.TopSelling(ctx)
		}()
		go func() {
			defer wg.Done()
			data.lowStock, errs[2] = client.LowStock(ctx)
		}()
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return reportsLoadedMsg{gen: gen, err: err}
			}
		}
		return reportsLoadedMsg{gen: gen, data: data}
	}
}

func (v *reportsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			return v, showAlert(AlertDanger, "Erro ao carregar relatórios")
		}
		v.data = &msg.data
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return v, reloadSection()
		}
	}

	return v, nil
}

func (v *reportsView) View() string {
	if v.loading {
		return "\n  " + format.Dim("Carregando...")
	}
	if v.data == nil {
		return "\n  " + format.Dim("Dados indisponíveis. Pressione 'r' para tentar novamente.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(format.ReportSummary(v.data.sales))
	b.WriteString("\n")
	b.WriteString(format.TopProductsList(v.data.topSelling))
	b.WriteString("\n")
	b.WriteString(format.LowStockList(v.data.lowStock))
	return b.String()
}
