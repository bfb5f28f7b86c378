package tui

import (
	"context"
	"errors"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/brclaisa/panther-backoffice/internal/api"
)

// adjustReason accompanies every stock adjustment from this client.
const adjustReason = "Ajuste manual"

// submitInventoryAdjust validates the entered quantity and sends the
// adjustment. A non-integer or negative value is rejected client-side
// with a warning and no request.
func submitInventoryAdjust(state *SharedState, productID int64, productName, quantity string) tea.Msg {
	parsed, err := strconv.Atoi(quantity)
	if err != nil || parsed < 0 {
		return mutationFailedMsg{
			kind:    AlertWarning,
			message: "Quantidade inválida. Informe um inteiro maior ou igual a 0.",
			retry: func() Modal {
				return newAdjustInventoryModal(state, productID, productName, quantity)
			},
		}
	}

	adj := api.InventoryAdjust{Quantity: parsed, Reason: adjustReason}
	if err := state.API.AdjustInventory(context.Background(), productID, adj); err != nil {
		message := "Erro ao ajustar estoque"
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.Message(message)
		}
		return mutationFailedMsg{
			kind:    AlertDanger,
			message: message,
			retry: func() Modal {
				return newAdjustInventoryModal(state, productID, productName, quantity)
			},
		}
	}

	return modalDoneMsg{next: tea.Batch(
		showAlert(AlertSuccess, "Estoque ajustado com sucesso!"),
		reloadSection(),
	)}
}

// newAdjustInventoryModal opens the stock adjustment dialog for a
// product. The entered quantity is the desired final amount, not a delta.
func newAdjustInventoryModal(state *SharedState, productID int64, productName, initial string) Modal {
	quantity := initial

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nova quantidade").
				Description(productName).
				Value(&quantity),
		),
	).WithTheme(pantherHuhTheme())

	return newFormModal(ModalAdjustInventory, "Ajustar Estoque", form, func() tea.Cmd {
		return func() tea.Msg {
			return submitInventoryAdjust(state, productID, productName, quantity)
		}
	})
}
