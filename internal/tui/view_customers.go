package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brclaisa/panther-backoffice/internal/api"
	"github.com/brclaisa/panther-backoffice/internal/tui/format"
)

// customersLoadedMsg signals that the customer list fetch finished.
type customersLoadedMsg struct {
	gen       int
	customers []api.Customer
	err       error
}

// customersView lists registered customers and hosts their mutations.
type customersView struct {
	state     *SharedState
	gen       int
	loading   bool
	customers []api.Customer
	cursor    int
}

func newCustomersView(state *SharedState, gen int) *customersView {
	return &customersView{
		state:   state,
		gen:     gen,
		loading: true,
	}
}

func (v *customersView) Section() Section { return SectionCustomers }

func (v *customersView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "adicionar")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "excluir")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "atualizar")),
	}
}

func (v *customersView) Init() tea.Cmd {
	return v.loadData()
}

func (v *customersView) loadData() tea.Cmd {
	client := v.state.API
	gen := v.gen
	return func() tea.Msg {
		customers, err := client.ListCustomers(context.Background())
		return customersLoadedMsg{gen: gen, customers: customers, err: err}
	}
}

func (v *customersView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case customersLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			return v, showAlert(AlertDanger, "Erro ao carregar clientes")
		}
		v.customers = msg.customers
		if v.cursor >= len(v.customers) {
			v.cursor = max(0, len(v.customers)-1)
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.customers)-1 {
				v.cursor++
			}
		case "a":
			return v, openModal(newCustomerCreateModal(v.state, api.CustomerForm{}))
		case "e":
			if v.cursor < len(v.customers) {
				return v, openCustomerEdit(v.state, v.customers[v.cursor].ID)
			}
		case "d":
			if v.cursor < len(v.customers) {
				c := v.customers[v.cursor]
				return v, openModal(newDeleteCustomerModal(v.state, c.ID, c.Name))
			}
		case "r":
			return v, reloadSection()
		}
	}

	return v, nil
}

func (v *customersView) View() string {
	if v.loading {
		return "\n  " + format.Dim("Carregando...")
	}
	return "\n" + format.CustomersTable(v.customers, v.cursor)
}
