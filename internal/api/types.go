package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resource payloads mirror the backend JSON. Optional fields decode to
// zero values (JSON null leaves them untouched); renderers substitute
// placeholders for display.

// Product is a catalog item.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	Barcode     string          `json:"barcode"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductForm is the create/update payload for a product. Price is kept
// as the raw user-entered string; the backend parses it.
type ProductForm struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Barcode     string `json:"barcode,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Customer is a registered buyer.
type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Active   bool   `json:"active"`
}

// CustomerForm is the create/update payload for a customer.
type CustomerForm struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Document string `json:"document,omitempty"`
}

// SaleItem is one line of a sale.
type SaleItem struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total_price"`
}

// Sale is a completed point-of-sale transaction.
type Sale struct {
	ID             int64           `json:"id"`
	CreatedAt      time.Time       `json:"created_at"`
	CustomerID     *int64          `json:"customer_id"`
	Customer       *Customer       `json:"customer"`
	Items          []SaleItem      `json:"items"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentStatus  string          `json:"payment_status"`
}

// InventoryItem is the stock record for a product.
type InventoryItem struct {
	ID        int64    `json:"id"`
	ProductID int64    `json:"product_id"`
	Quantity  int      `json:"quantity"`
	MinStock  int      `json:"min_stock"`
	MaxStock  *int     `json:"max_stock"`
	Location  string   `json:"location"`
	Product   *Product `json:"product"`
}

// InventoryAdjust is the body of POST /inventory/adjust/{id}.
// Quantity is the desired final quantity, not a delta.
type InventoryAdjust struct {
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// PaymentMethod is an accepted form of payment.
type PaymentMethod struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	FeePercentage decimal.Decimal `json:"fee_percentage"`
	Active        bool            `json:"active"`
}

// PeriodTotals is one sales/revenue pair of the dashboard summary.
type PeriodTotals struct {
	Sales   int             `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardSummary is the response of GET /reports/dashboard/summary.
type DashboardSummary struct {
	Today     PeriodTotals `json:"today"`
	Month     PeriodTotals `json:"month"`
	Inventory struct {
		LowStockCount int `json:"low_stock_count"`
		TotalProducts int `json:"total_products"`
	} `json:"inventory"`
	Customers struct {
		TotalActive int `json:"total_active"`
	} `json:"customers"`
}

// MethodTotals is a per-payment-method count/amount pair.
type MethodTotals struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// TodaySales is the response of GET /sales/today/summary.
type TodaySales struct {
	Date           string                  `json:"date"`
	TotalSales     int                     `json:"total_sales"`
	TotalAmount    decimal.Decimal         `json:"total_amount"`
	PaymentMethods map[string]MethodTotals `json:"payment_methods"`
}

// SalesReportRow is one sale in the sales report.
type SalesReportRow struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	Customer      string          `json:"customer"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Discount      decimal.Decimal `json:"discount"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	ItemsCount    int             `json:"items_count"`
}

// SalesReport is the response of GET /reports/sales.
type SalesReport struct {
	Summary struct {
		TotalSales  int             `json:"total_sales"`
		TotalAmount decimal.Decimal `json:"total_amount"`
		AverageSale decimal.Decimal `json:"average_sale"`
	} `json:"summary"`
	Sales []SalesReportRow `json:"sales"`
}

// TopProduct is one row of GET /reports/products/top-selling.
type TopProduct struct {
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// LowStockItem is one row of GET /reports/inventory/low-stock.
// Status is either "CRÍTICO" (zero on hand) or "BAIXO".
type LowStockItem struct {
	ProductID       int64  `json:"product_id"`
	ProductName     string `json:"product_name"`
	CurrentQuantity int    `json:"current_quantity"`
	MinStock        int    `json:"min_stock"`
	MaxStock        *int   `json:"max_stock"`
	Location        string `json:"location"`
	Status          string `json:"status"`
}

// ReceiptItem is one line of a sale receipt.
type ReceiptItem struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// Receipt is the response of GET /sales/{id}/receipt.
type Receipt struct {
	SaleID        int64           `json:"sale_id"`
	Date          string          `json:"date"`
	Customer      string          `json:"customer"`
	Items         []ReceiptItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
}
