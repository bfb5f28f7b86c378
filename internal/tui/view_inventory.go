package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brclaisa/panther-backoffice/internal/api"
	"github.com/brclaisa/panther-backoffice/internal/tui/format"
)

// inventoryLoadedMsg signals that the stock listing fetch finished.
type inventoryLoadedMsg struct {
	gen   int
	items []api.InventoryItem
	err   error
}

// inventoryView lists stock levels per product; 'a' opens the
// adjustment dialog for the selected product.
type inventoryView struct {
	state   *SharedState
	gen     int
	loading bool
	items   []api.InventoryItem
	cursor  int
}

func newInventoryView(state *SharedState, gen int) *inventoryView {
	return &inventoryView{
		state:   state,
		gen:     gen,
		loading: true,
	}
}

func (v *inventoryView) Section() Section { return SectionInventory }

func (v *inventoryView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "ajustar")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "atualizar")),
	}
}

func (v *inventoryView) Init() tea.Cmd {
	return v.loadData()
}

func (v *inventoryView) loadData() tea.Cmd {
	client := v.state.API
	gen := v.gen
	return func() tea.Msg {
		items, err := client.ListInventory(context.Background())
		return inventoryLoadedMsg{gen: gen, items: items, err: err}
	}
}

func (v *inventoryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inventoryLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			return v, showAlert(AlertDanger, "Erro ao carregar estoque")
		}
		v.items = msg.items
		if v.cursor >= len(v.items) {
			v.cursor = max(0, len(v.items)-1)
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.items)-1 {
				v.cursor++
			}
		case "a":
			if v.cursor < len(v.items) {
				item := v.items[v.cursor]
				name := format.UnknownProduct
				if item.Product != nil && item.Product.Name != "" {
					name = item.Product.Name
				}
				return v, openModal(newAdjustInventoryModal(v.state, item.ProductID, name, ""))
			}
		case "r":
			return v, reloadSection()
		}
	}

	return v, nil
}

func (v *inventoryView) View() string {
	if v.loading {
		return "\n  " + format.Dim("Carregando...")
	}
	return "\n" + format.InventoryTable(v.items, v.cursor)
}
