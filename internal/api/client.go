package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the REST gateway for the Panther backend. Every call is a
// single fresh round trip: no retries, no caching. Failures are either
// ErrUnreachable (no response obtained) or *APIError (non-2xx response).
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a gateway client for the configured backend.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg:      cfg,
		http:     &http.Client{},
		observer: observer,
	}
}

// do performs one request and decodes the response into out (when non-nil).
// Empty or non-JSON 2xx bodies are tolerated and leave out untouched.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()

	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.observer.OnRequestComplete(RequestEvent{
			Method: method, Path: path,
			LatencyMs: time.Since(start).Milliseconds(),
			Err:       err,
		})
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observer.OnRequestComplete(RequestEvent{
			Method: method, Path: path, Status: resp.StatusCode,
			LatencyMs: time.Since(start).Milliseconds(),
			Err:       err,
		})
		return fmt.Errorf("%w: reading response: %v", ErrUnreachable, err)
	}

	c.observer.OnRequestComplete(RequestEvent{
		Method: method, Path: path, Status: resp.StatusCode,
		LatencyMs: time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Detail: extractDetail(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		// Mutation endpoints may answer with empty or non-JSON bodies;
		// treat those as an empty success payload.
		if err := json.Unmarshal(respBody, out); err != nil {
			return nil
		}
	}
	return nil
}

// extractDetail pulls the "detail" field out of an error response body.
// Missing or malformed bodies yield an empty detail, never a failure.
func extractDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

// ── reports and summaries ────────────────────────────────────────────────────

// DashboardSummary fetches the aggregated dashboard stats.
func (c *Client) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var out DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/reports/dashboard/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TodaySales fetches today's sales breakdown by payment method.
func (c *Client) TodaySales(ctx context.Context) (*TodaySales, error) {
	var out TodaySales
	if err := c.do(ctx, http.MethodGet, "/sales/today/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SalesReport fetches the sales report for the default period.
func (c *Client) SalesReport(ctx context.Context) (*SalesReport, error) {
	var out SalesReport
	if err := c.do(ctx, http.MethodGet, "/reports/sales", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TopSelling fetches the top-selling products ranking.
func (c *Client) TopSelling(ctx context.Context) ([]TopProduct, error) {
	var out []TopProduct
	if err := c.do(ctx, http.MethodGet, "/reports/products/top-selling", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LowStock fetches the low-stock inventory report.
func (c *Client) LowStock(ctx context.Context) ([]LowStockItem, error) {
	var out []LowStockItem
	if err := c.do(ctx, http.MethodGet, "/reports/inventory/low-stock", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── products ─────────────────────────────────────────────────────────────────

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/products/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, form ProductForm) error {
	return c.do(ctx, http.MethodPost, "/products/", form, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, form ProductForm) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), form, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// ── customers ────────────────────────────────────────────────────────────────

func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var out []Customer
	if err := c.do(ctx, http.MethodGet, "/customers/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	var out Customer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, form CustomerForm) error {
	return c.do(ctx, http.MethodPost, "/customers/", form, nil)
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, form CustomerForm) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), form, nil)
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil)
}

// ── sales ────────────────────────────────────────────────────────────────────

func (c *Client) ListSales(ctx context.Context) ([]Sale, error) {
	var out []Sale
	if err := c.do(ctx, http.MethodGet, "/sales/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaleReceipt(ctx context.Context, id int64) (*Receipt, error) {
	var out Receipt
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sales/%d/receipt", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── inventory ────────────────────────────────────────────────────────────────

func (c *Client) ListInventory(ctx context.Context) ([]InventoryItem, error) {
	var out []InventoryItem
	if err := c.do(ctx, http.MethodGet, "/inventory/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdjustInventory sets the stock of a product to an absolute quantity.
func (c *Client) AdjustInventory(ctx context.Context, productID int64, adj InventoryAdjust) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/inventory/adjust/%d", productID), adj, nil)
}

// ── payments ─────────────────────────────────────────────────────────────────

func (c *Client) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	var out []PaymentMethod
	if err := c.do(ctx, http.MethodGet, "/payments/methods/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
