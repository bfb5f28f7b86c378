package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brclaisa/panther-backoffice/internal/api"
	"github.com/brclaisa/panther-backoffice/internal/tui/format"
)

// productsLoadedMsg signals that the product catalog fetch finished.
type productsLoadedMsg struct {
	gen      int
	products []api.Product
	err      error
}

// productsView lists the catalog and hosts the product mutations:
// create, edit (fetch-then-open) and delete (with confirmation).
type productsView struct {
	state    *SharedState
	gen      int
	loading  bool
	products []api.Product
	cursor   int
}

func newProductsView(state *SharedState, gen int) *productsView {
	return &productsView{
		state:   state,
		gen:     gen,
		loading: true,
	}
}

func (v *productsView) Section() Section { return SectionProducts }

func (v *productsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "adicionar")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "excluir")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "atualizar")),
	}
}

func (v *productsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *productsView) loadData() tea.Cmd {
	client := v.state.API
	gen := v.gen
	return func() tea.Msg {
		products, err := client.ListProducts(context.Background())
		return productsLoadedMsg{gen: gen, products: products, err: err}
	}
}

func (v *productsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			return v, showAlert(AlertDanger, "Erro ao carregar produtos")
		}
		v.products = msg.products
		if v.cursor >= len(v.products) {
			v.cursor = max(0, len(v.products)-1)
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.products)-1 {
				v.cursor++
			}
		case "a":
			return v, openModal(newProductCreateModal(v.state, api.ProductForm{}))
		case "e":
			if v.cursor < len(v.products) {
				return v, openProductEdit(v.state, v.products[v.cursor].ID)
			}
		case "d":
			if v.cursor < len(v.products) {
				p := v.products[v.cursor]
				return v, openModal(newDeleteProductModal(v.state, p.ID, p.Name))
			}
		case "r":
			return v, reloadSection()
		}
	}

	return v, nil
}

func (v *productsView) View() string {
	if v.loading {
		return "\n  " + format.Dim("Carregando...")
	}
	return "\n" + format.ProductsTable(v.products, v.cursor)
}
