package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/brclaisa/panther-backoffice/internal/api"
)

// Pure renderers: each maps fetched records to a markup string. Missing
// optional fields become placeholders, never failures.

// cursorCell returns the selection marker for row i.
func cursorCell(i, cursor int) string {
	if i == cursor {
		return StyleGreen.Render("▸")
	}
	return " "
}

// ProductsTable renders the product catalog as a table.
func ProductsTable(products []api.Product, cursor int) string {
	if len(products) == 0 {
		return Dim("Nenhum produto cadastrado.")
	}

	rows := make([][]string, 0, len(products))
	for i, p := range products {
		rows = append(rows, []string{
			cursorCell(i, cursor),
			strconv.FormatInt(p.ID, 10),
			p.Name,
			OrDash(p.Barcode),
			OrDash(p.Category),
			Currency(p.Price),
			ActivePill(p.Active),
		})
	}
	return RenderTable(
		[]string{" ", "ID", "Nome", "Código", "Categoria", "Preço", "Status"},
		rows,
	)
}

// CustomersTable renders the customer list as a table.
func CustomersTable(customers []api.Customer, cursor int) string {
	if len(customers) == 0 {
		return Dim("Nenhum cliente cadastrado.")
	}

	rows := make([][]string, 0, len(customers))
	for i, c := range customers {
		rows = append(rows, []string{
			cursorCell(i, cursor),
			strconv.FormatInt(c.ID, 10),
			c.Name,
			OrDash(c.Email),
			OrDash(c.Phone),
			OrDash(c.Document),
			ActivePill(c.Active),
		})
	}
	return RenderTable(
		[]string{" ", "ID", "Nome", "E-mail", "Telefone", "Documento", "Status"},
		rows,
	)
}

// SalesTable renders the sales history as a table.
func SalesTable(sales []api.Sale, cursor int) string {
	if len(sales) == 0 {
		return Dim("Nenhuma venda registrada.")
	}

	rows := make([][]string, 0, len(sales))
	for i, s := range sales {
		customer := UnknownCustomer
		if s.Customer != nil && s.Customer.Name != "" {
			customer = s.Customer.Name
		}
		rows = append(rows, []string{
			cursorCell(i, cursor),
			strconv.FormatInt(s.ID, 10),
			DateTime(s.CreatedAt),
			customer,
			Currency(s.TotalAmount),
			Currency(s.DiscountAmount),
			Currency(s.FinalAmount),
			s.PaymentMethod,
			PaymentStatusPill(s.PaymentStatus),
		})
	}
	return RenderTable(
		[]string{" ", "ID", "Data", "Cliente", "Total", "Desconto", "Final", "Pagamento", "Status"},
		rows,
	)
}

// InventoryTable renders stock levels as a table, flagging low stock.
func InventoryTable(items []api.InventoryItem, cursor int) string {
	if len(items) == 0 {
		return Dim("Estoque vazio.")
	}

	rows := make([][]string, 0, len(items))
	for i, item := range items {
		name := UnknownProduct
		if item.Product != nil && item.Product.Name != "" {
			name = item.Product.Name
		}
		maxStock := Placeholder
		if item.MaxStock != nil {
			maxStock = strconv.Itoa(*item.MaxStock)
		}
		rows = append(rows, []string{
			cursorCell(i, cursor),
			strconv.FormatInt(item.ProductID, 10),
			name,
			strconv.Itoa(item.Quantity),
			strconv.Itoa(item.MinStock),
			maxStock,
			OrDash(item.Location),
			StockStatus(item.Quantity, item.MinStock),
		})
	}
	return RenderTable(
		[]string{" ", "ID", "Produto", "Qtd", "Mín", "Máx", "Local", "Status"},
		rows,
	)
}

// DashboardStats renders the summary stat grid.
func DashboardStats(sum *api.DashboardSummary) string {
	var b strings.Builder

	stat := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(label), Bold(value)))
	}

	b.WriteString(Header("Hoje") + "\n")
	stat("Vendas:     ", strconv.Itoa(sum.Today.Sales))
	stat("Faturamento:", Currency(sum.Today.Revenue))

	b.WriteString("\n" + Header("Mês") + "\n")
	stat("Vendas:     ", strconv.Itoa(sum.Month.Sales))
	stat("Faturamento:", Currency(sum.Month.Revenue))

	b.WriteString("\n" + Header("Cadastros") + "\n")
	stat("Produtos ativos: ", strconv.Itoa(sum.Inventory.TotalProducts))
	stat("Clientes ativos: ", strconv.Itoa(sum.Customers.TotalActive))
	low := strconv.Itoa(sum.Inventory.LowStockCount)
	if sum.Inventory.LowStockCount > 0 {
		low = StyleRed.Render(low)
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Estoque baixo:   "), low))

	return b.String()
}

// PaymentMethodsChart renders today's sales grouped by payment method,
// in method name order for stable output.
func PaymentMethodsChart(today *api.TodaySales) string {
	if today == nil || len(today.PaymentMethods) == 0 {
		return Dim("Sem vendas hoje.")
	}

	methods := make([]string, 0, len(today.PaymentMethods))
	for method := range today.PaymentMethods {
		methods = append(methods, method)
	}
	sort.Strings(methods)

	var b strings.Builder
	b.WriteString(Header("Vendas de hoje por pagamento") + "\n")
	for _, method := range methods {
		totals := today.PaymentMethods[method]
		b.WriteString(fmt.Sprintf("  %-16s %s %s\n",
			method,
			Dim(fmt.Sprintf("%dx", totals.Count)),
			Currency(totals.Amount),
		))
	}
	return b.String()
}

// ReportSummary renders the sales report headline numbers.
func ReportSummary(report *api.SalesReport) string {
	var b strings.Builder
	b.WriteString(Header("Resumo de vendas") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Total de vendas:  "), Bold(strconv.Itoa(report.Summary.TotalSales))))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Faturamento total:"), Bold(Currency(report.Summary.TotalAmount))))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Ticket médio:     "), Bold(Currency(report.Summary.AverageSale))))
	return b.String()
}

// TopProductsList renders the top-selling products ranking.
func TopProductsList(products []api.TopProduct) string {
	var b strings.Builder
	b.WriteString(Header("Mais vendidos") + "\n")
	if len(products) == 0 {
		b.WriteString("  " + Dim("Sem dados no período.") + "\n")
		return b.String()
	}
	for _, p := range products {
		b.WriteString(fmt.Sprintf("  %-24s %s %s\n",
			p.ProductName,
			Dim(fmt.Sprintf("%d unidades", p.TotalQuantity)),
			Currency(p.TotalRevenue),
		))
	}
	return b.String()
}

// LowStockList renders the low-stock report.
func LowStockList(items []api.LowStockItem) string {
	var b strings.Builder
	b.WriteString(Header("Estoque baixo") + "\n")
	if len(items) == 0 {
		b.WriteString("  " + Dim("Nenhum produto abaixo do mínimo.") + "\n")
		return b.String()
	}
	for _, item := range items {
		b.WriteString(fmt.Sprintf("  %-24s %s %s %s\n",
			item.ProductName,
			Bold(strconv.Itoa(item.CurrentQuantity)),
			Dim(fmt.Sprintf("(mín: %d)", item.MinStock)),
			LowStockPill(item.Status),
		))
	}
	return b.String()
}

// ReceiptCard renders a sale receipt for the modal dialog.
func ReceiptCard(r *api.Receipt) string {
	var b strings.Builder

	b.WriteString(Bold(fmt.Sprintf("Recibo de Venda #%d", r.SaleID)) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Data:   "), r.Date))
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Cliente:"), r.Customer))

	b.WriteString(Header("Itens") + "\n")
	for _, item := range r.Items {
		b.WriteString(fmt.Sprintf("  %s  %dx %s = %s\n",
			item.ProductName,
			item.Quantity,
			Currency(item.UnitPrice),
			Currency(item.TotalPrice),
		))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Subtotal: "), Currency(r.Subtotal)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Desconto: "), Currency(r.Discount)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Total:    "), Bold(Currency(r.Total))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Pagamento:"), r.PaymentMethod))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Status:   "), PaymentStatusPill(r.PaymentStatus)))

	return b.String()
}
