package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Placeholder substitutes "-" for display.
const Placeholder = "-"

// UnknownCustomer is shown when a sale has no identified customer.
const UnknownCustomer = "Não identificado"

// UnknownProduct is shown when an inventory row lacks its product record.
const UnknownProduct = "Produto não encontrado"

// Currency formats a monetary amount in Brazilian convention: R$ 1.234,56.
func Currency(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")

	// Group integer digits by thousands with dots.
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// DateTime formats a timestamp in Brazilian convention: 30/08/2026 14:05.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format("02/01/2006 15:04")
}

// OrDash returns s, or the placeholder when s is empty.
func OrDash(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// PaymentStatusText localizes a payment status; unknown values pass through.
func PaymentStatusText(status string) string {
	switch status {
	case "pending":
		return "Pendente"
	case "paid":
		return "Pago"
	case "cancelled":
		return "Cancelado"
	}
	return status
}

// PaymentStatusPill returns a colored, localized payment status indicator.
func PaymentStatusPill(status string) string {
	text := PaymentStatusText(status)
	switch status {
	case "paid":
		return StyleGreen.Render(text)
	case "pending":
		return StyleYellow.Render(text)
	case "cancelled":
		return StyleRed.Render(text)
	}
	return StyleDim.Render(text)
}

// ActivePill returns a colored Ativo/Inativo indicator.
func ActivePill(active bool) string {
	if active {
		return StyleGreen.Render("Ativo")
	}
	return StyleDim.Render("Inativo")
}

// StockStatus applies the low-stock threshold rule: a quantity at or below
// the minimum counts as low. The boundary is inclusive.
func StockStatus(quantity, minStock int) string {
	if quantity <= minStock {
		return StyleRed.Render("Estoque Baixo")
	}
	return StyleGreen.Render("Normal")
}

// LowStockPill styles a low-stock report status (CRÍTICO red, otherwise yellow).
func LowStockPill(status string) string {
	if status == "CRÍTICO" {
		return StyleRed.Render(status)
	}
	return StyleYellow.Render(status)
}
