package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Section identifies each top-level view of the back office.
// Exactly one section is active at a time.
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionProducts  Section = "products"
	SectionCustomers Section = "customers"
	SectionSales     Section = "sales"
	SectionInventory Section = "inventory"
	SectionReports   Section = "reports"
)

// Sections lists all sections in navigation order.
var Sections = []Section{
	SectionDashboard,
	SectionProducts,
	SectionCustomers,
	SectionSales,
	SectionInventory,
	SectionReports,
}

// Title returns the navigation label for the section.
func (s Section) Title() string {
	switch s {
	case SectionDashboard:
		return "Dashboard"
	case SectionProducts:
		return "Produtos"
	case SectionCustomers:
		return "Clientes"
	case SectionSales:
		return "Vendas"
	case SectionInventory:
		return "Estoque"
	case SectionReports:
		return "Relatórios"
	}
	return string(s)
}

// Valid reports whether s is one of the enumerated sections.
func (s Section) Valid() bool {
	switch s {
	case SectionDashboard, SectionProducts, SectionCustomers,
		SectionSales, SectionInventory, SectionReports:
		return true
	}
	return false
}

// sectionKeys is the declarative key-to-section navigation map.
var sectionKeys = map[string]Section{
	"1": SectionDashboard,
	"2": SectionProducts,
	"3": SectionCustomers,
	"4": SectionSales,
	"5": SectionInventory,
	"6": SectionReports,
}

// SectionView is the interface all section views implement.
// It extends tea.Model with section identity and key hints.
type SectionView interface {
	tea.Model
	Section() Section
	ShortHelp() []key.Binding
}

// newSectionView constructs a fresh view for the target section.
// Each activation starts from a blank view; the previous in-memory
// snapshot is discarded wholesale.
func newSectionView(state *SharedState, target Section, gen int) SectionView {
	switch target {
	case SectionDashboard:
		return newDashboardView(state, gen)
	case SectionProducts:
		return newProductsView(state, gen)
	case SectionCustomers:
		return newCustomersView(state, gen)
	case SectionSales:
		return newSalesView(state, gen)
	case SectionInventory:
		return newInventoryView(state, gen)
	case SectionReports:
		return newReportsView(state, gen)
	}
	return nil
}
