package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/brclaisa/panther-backoffice/internal/api"
)

// customerFormFields builds the shared field group for customer dialogs.
func customerFormFields(form *api.CustomerForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nome").
				Value(&form.Name),
			huh.NewInput().
				Title("E-mail").
				Value(&form.Email),
			huh.NewInput().
				Title("Telefone").
				Value(&form.Phone),
			huh.NewInput().
				Title("Documento").
				Value(&form.Document),
		),
	).WithTheme(pantherHuhTheme())
}

// submitCustomerCreate sends the new-customer payload.
func submitCustomerCreate(state *SharedState, form api.CustomerForm) tea.Msg {
	err := state.API.CreateCustomer(context.Background(), form)
	if err == nil {
		return modalDoneMsg{next: tea.Batch(
			showAlert(AlertSuccess, "Cliente criado com sucesso!"),
			reloadSection(),
		)}
	}

	message := "Erro ao criar cliente"
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		message = "Erro: " + apiErr.Detail
	}
	return mutationFailedMsg{
		kind:    AlertDanger,
		message: message,
		retry:   func() Modal { return newCustomerCreateModal(state, form) },
	}
}

// newCustomerCreateModal opens the new-customer dialog.
func newCustomerCreateModal(state *SharedState, initial api.CustomerForm) Modal {
	form := initial
	return newFormModal(ModalCustomerForm, "Novo Cliente", customerFormFields(&form), func() tea.Cmd {
		return func() tea.Msg { return submitCustomerCreate(state, form) }
	})
}

// openCustomerEdit fetches the current customer and opens the edit
// dialog prefilled with its values.
func openCustomerEdit(state *SharedState, id int64) tea.Cmd {
	client := state.API
	return func() tea.Msg {
		customer, err := client.GetCustomer(context.Background(), id)
		if err != nil {
			return alertMsg{kind: AlertDanger, message: "Erro ao editar cliente"}
		}
		return openModalMsg{modal: newCustomerEditModal(state, id, api.CustomerForm{
			Name:     customer.Name,
			Email:    customer.Email,
			Phone:    customer.Phone,
			Document: customer.Document,
		})}
	}
}

// submitCustomerEdit sends the customer update.
func submitCustomerEdit(state *SharedState, id int64, form api.CustomerForm) tea.Msg {
	err := state.API.UpdateCustomer(context.Background(), id, form)
	if err == nil {
		return modalDoneMsg{next: tea.Batch(
			showAlert(AlertSuccess, "Cliente atualizado com sucesso!"),
			reloadSection(),
		)}
	}

	message := "Erro ao editar cliente"
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		message = apiErr.Message("Erro ao atualizar cliente")
	}
	return mutationFailedMsg{
		kind:    AlertDanger,
		message: message,
		retry:   func() Modal { return newCustomerEditModal(state, id, form) },
	}
}

func newCustomerEditModal(state *SharedState, id int64, initial api.CustomerForm) Modal {
	form := initial
	return newFormModal(ModalCustomerEdit, "Editar Cliente", customerFormFields(&form), func() tea.Cmd {
		return func() tea.Msg { return submitCustomerEdit(state, id, form) }
	})
}

// performCustomerDelete sends the delete request for a confirmed dialog.
func performCustomerDelete(state *SharedState, id int64) tea.Msg {
	if err := state.API.DeleteCustomer(context.Background(), id); err != nil {
		return alertMsg{kind: AlertDanger, message: "Erro ao excluir cliente"}
	}
	return modalDoneMsg{next: tea.Batch(
		showAlert(AlertSuccess, "Cliente excluído com sucesso!"),
		reloadSection(),
	)}
}

// newDeleteCustomerModal opens the delete confirmation for a customer.
func newDeleteCustomerModal(state *SharedState, id int64, name string) Modal {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Excluir cliente?").
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
		return func() tea.Msg { return performCustomerDelete(state, id) }
	})
}
