package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/brclaisa/panther-backoffice/internal/api"
)

// validPrice reports whether raw parses as a non-negative decimal.
func validPrice(raw string) bool {
	price, err := decimal.NewFromString(raw)
	return err == nil && !price.IsNegative()
}

// productFormFields builds the shared field group for product dialogs.
// All inputs bind into form, so entered values survive a failed submit.
func productFormFields(form *api.ProductForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nome").
				Value(&form.Name),
			huh.NewInput().
				Title("Descrição").
				Value(&form.Description),
			huh.NewInput().
				Title("Preço").
				Description("ex.: 199.90").
				Value(&form.Price),
			huh.NewInput().
				Title("Código de barras").
				Value(&form.Barcode),
			huh.NewInput().
				Title("Categoria").
				Value(&form.Category),
		),
	).WithTheme(pantherHuhTheme())
}

// submitProductCreate validates and sends the new-product payload.
// An invalid price is rejected before any request; the dialog reopens
// with the entered values intact.
func submitProductCreate(state *SharedState, form api.ProductForm) tea.Msg {
	if !validPrice(form.Price) {
		return mutationFailedMsg{
			kind:    AlertWarning,
			message: "Preço inválido.",
			retry:   func() Modal { return newProductCreateModal(state, form) },
		}
	}

	err := state.API.CreateProduct(context.Background(), form)
	if err == nil {
		return modalDoneMsg{next: tea.Batch(
			showAlert(AlertSuccess, "Produto criado com sucesso!"),
			reloadSection(),
		)}
	}

	message := "Erro ao criar produto"
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		message = "Erro: " + apiErr.Detail
	}
	return mutationFailedMsg{
		kind:    AlertDanger,
		message: message,
		retry:   func() Modal { return newProductCreateModal(state, form) },
	}
}

// newProductCreateModal opens the new-product dialog. The submitted
// price travels as the raw entered string; the backend parses it.
func newProductCreateModal(state *SharedState, initial api.ProductForm) Modal {
	form := initial
	return newFormModal(ModalProductForm, "Novo Produto", productFormFields(&form), func() tea.Cmd {
		return func() tea.Msg { return submitProductCreate(state, form) }
	})
}

// openProductEdit fetches the current product and opens the edit dialog
// prefilled with its values.
func openProductEdit(state *SharedState, id int64) tea.Cmd {
	client := state.API
	return func() tea.Msg {
		product, err := client.GetProduct(context.Background(), id)
		if err != nil {
			return alertMsg{kind: AlertDanger, message: "Erro ao editar produto"}
		}
		return openModalMsg{modal: newProductEditModal(state, id, api.ProductForm{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price.String(),
			Barcode:     product.Barcode,
			Category:    product.Category,
		})}
	}
}

// submitProductEdit validates and sends the product update.
func submitProductEdit(state *SharedState, id int64, form api.ProductForm) tea.Msg {
	if !validPrice(form.Price) {
		return mutationFailedMsg{
			kind:    AlertWarning,
			message: "Preço inválido.",
			retry:   func() Modal { return newProductEditModal(state, id, form) },
		}
	}

	err := state.API.UpdateProduct(context.Background(), id, form)
	if err == nil {
		return modalDoneMsg{next: tea.Batch(
			showAlert(AlertSuccess, "Produto atualizado com sucesso!"),
			reloadSection(),
		)}
	}

	message := "Erro ao editar produto"
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		message = apiErr.Message("Erro ao atualizar produto")
	}
	return mutationFailedMsg{
		kind:    AlertDanger,
		message: message,
		retry:   func() Modal { return newProductEditModal(state, id, form) },
	}
}

func newProductEditModal(state *SharedState, id int64, initial api.ProductForm) Modal {
	form := initial
	return newFormModal(ModalProductEdit, "Editar Produto", productFormFields(&form), func() tea.Cmd {
		return func() tea.Msg { return submitProductEdit(state, id, form) }
	})
}

// performProductDelete sends the delete request for a confirmed dialog.
func performProductDelete(state *SharedState, id int64) tea.Msg {
	if err := state.API.DeleteProduct(context.Background(), id); err != nil {
		return alertMsg{kind: AlertDanger, message: "Erro ao excluir produto"}
	}
	return modalDoneMsg{next: tea.Batch(
		showAlert(AlertSuccess, "Produto excluído com sucesso!"),
		reloadSection(),
	)}
}

// newDeleteProductModal opens the delete confirmation. Declining sends
// nothing to the backend and raises no alert.
func newDeleteProductModal(state *SharedState, id int64, name string) Modal {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Excluir produto?").
				Description(name).
				Affirmative("Excluir").
				Negative("Cancelar").
				Value(&confirmed),
		),
	).WithTheme(pantherHuhTheme())

	return newFormModal(ModalConfirmDelete, "Confirmar Exclusão", form, func() tea.Cmd {
		if !confirmed {
			return nil
		}
		return func() tea.Msg { return performProductDelete(state, id) }
	})
}
