package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brclaisa/panther-backoffice/internal/api"
	"github.com/brclaisa/panther-backoffice/internal/tui/format"
)

// salesLoadedMsg signals that the sales history fetch finished.
type salesLoadedMsg struct {
	gen   int
	sales []api.Sale
	err   error
}

// salesView lists completed sales; enter opens the receipt dialog for
// the selected sale.
type salesView struct {
	state   *SharedState
	gen     int
	loading bool
	sales   []api.Sale
	cursor  int
}

func newSalesView(state *SharedState, gen int) *salesView {
	return &salesView{
		state:   state,
		gen:     gen,
		loading: true,
	}
}

func (v *salesView) Section() Section { return SectionSales }

func (v *salesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "recibo")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "atualizar")),
	}
}

func (v *salesView) Init() tea.Cmd {
	return v.loadData()
}

func (v *salesView) loadData() tea.Cmd {
	client := v.state.API
	gen := v.gen
	return func() tea.Msg {
		sales, err := client.ListSales(context.Background())
		return salesLoadedMsg{gen: gen, sales: sales, err: err}
	}
}

// openReceipt fetches the receipt for a sale and opens the receipt
// dialog, or raises an alert when the fetch fails.
func openReceipt(state *SharedState, saleID int64) tea.Cmd {
	client := state.API
	return func() tea.Msg {
		receipt, err := client.SaleReceipt(context.Background(), saleID)
		if err != nil {
			return alertMsg{kind: AlertDanger, message: "Erro ao carregar recibo"}
		}
		return openModalMsg{modal: newReceiptModal(format.ReceiptCard(receipt))}
	}
}

func (v *salesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case salesLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			return v, showAlert(AlertDanger, "Erro ao carregar vendas")
		}
		v.sales = msg.sales
		if v.cursor >= len(v.sales) {
			v.cursor = max(0, len(v.sales)-1)
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.sales)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.sales) {
				return v, openReceipt(v.state, v.sales[v.cursor].ID)
			}
		case "r":
			return v, reloadSection()
		}
	}

	return v, nil
}

func (v *salesView) View() string {
	if v.loading {
		return "\n  " + format.Dim("Carregando...")
	}
	return "\n" + format.SalesTable(v.sales, v.cursor)
}
