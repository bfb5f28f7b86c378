package tui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// stubBackend is an httptest-backed fake of the PantherPDV REST API.
// It serves canned fixtures, records every request, and lets a test
// override individual endpoints with failure responses.
type stubBackend struct {
	t  *testing.T
	mu sync.Mutex

	requests  []string
	bodies    map[string]string
	overrides map[string]stubResponse

	server *httptest.Server
}

type stubResponse struct {
	status int
	body   string
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()
	b := &stubBackend{
		t:         t,
		bodies:    make(map[string]string),
		overrides: make(map[string]stubResponse),
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.server.Close)
	return b
}

func (b *stubBackend) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, key)
	b.bodies[key] = string(body)
	resp, overridden := b.overrides[key]
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if overridden {
		w.WriteHeader(resp.status)
		io.WriteString(w, resp.body)
		return
	}
	if canned, ok := backendFixtures[key]; ok {
		io.WriteString(w, canned)
		return
	}
	w.WriteHeader(http.StatusNotFound)
	io.WriteString(w, `{"detail":"Not Found"}`)
}

// override replaces the response for one endpoint.
func (b *stubBackend) override(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.overrides[method+" "+path] = stubResponse{status: status, body: body}
}

// calls counts how many requests hit the given endpoint.
func (b *stubBackend) calls(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, req := range b.requests {
		if req == method+" "+path {
			n++
		}
	}
	return n
}

// lastBody returns the most recent request body sent to the endpoint.
func (b *stubBackend) lastBody(method, path string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[method+" "+path]
}

// backendFixtures maps "METHOD /path" to the canned success response.
var backendFixtures = map[string]string{
	"GET /products/": `[
		{"id":1,"name":"Café Premium","description":"Café torrado 500g","price":"19.90","barcode":"7891000100103","category":"Bebidas","active":true,"created_at":"2025-01-10T09:00:00Z"},
		{"id":2,"name":"Açúcar Cristal","description":"","price":"4.50","barcode":"","category":"Mercearia","active":true,"created_at":"2025-01-11T09:00:00Z"}
	]`,
	"GET /products/1": `{"id":1,"name":"Café Premium","description":"Café torrado 500g","price":"19.90","barcode":"7891000100103","category":"Bebidas","active":true,"created_at":"2025-01-10T09:00:00Z"}`,
	"POST /products/": `{"id":3}`,
	"PUT /products/1": `{}`,
	"DELETE /products/1": ``,

	"GET /customers/": `[
		{"id":1,"name":"Maria Silva","email":"maria@example.com","phone":"11999990000","document":"12345678900","active":true},
		{"id":2,"name":"João Souza","email":"","phone":"","document":"","active":false}
	]`,
	"GET /customers/1": `{"id":1,"name":"Maria Silva","email":"maria@example.com","phone":"11999990000","document":"12345678900","active":true}`,
	"POST /customers/": `{"id":3}`,
	"PUT /customers/1": `{}`,
	"DELETE /customers/1": ``,

	"GET /sales/": `[
		{"id":1,"created_at":"2025-01-15T10:30:00Z","customer_id":1,"customer":{"id":1,"name":"Maria Silva"},"items":[],"total_amount":"39.80","discount_amount":"0","final_amount":"39.80","payment_method":"Dinheiro","payment_status":"paid"}
	]`,
	"GET /sales/1/receipt": `{
		"sale_id":1,"date":"15/01/2025 10:30","customer":"Maria Silva",
		"items":[{"product_name":"Café Premium","quantity":2,"unit_price":"19.90","total_price":"39.80"}],
		"subtotal":"39.80","discount":"0","total":"39.80","payment_method":"Dinheiro","payment_status":"paid"
	}`,

	"GET /inventory/": `[
		{"id":1,"product_id":1,"quantity":3,"min_stock":5,"max_stock":50,"location":"A1","product":{"id":1,"name":"Café Premium","price":"19.90","active":true,"created_at":"2025-01-10T09:00:00Z"}},
		{"id":2,"product_id":2,"quantity":40,"min_stock":10,"max_stock":null,"location":"","product":{"id":2,"name":"Açúcar Cristal","price":"4.50","active":true,"created_at":"2025-01-11T09:00:00Z"}}
	]`,
	"POST /inventory/adjust/1": `{"message":"ok"}`,

	"GET /payments/methods/": `[
		{"id":1,"name":"Dinheiro","type":"cash","fee_percentage":"0","active":true},
		{"id":2,"name":"Cartão de Crédito","type":"credit","fee_percentage":"3.5","active":true}
	]`,

	"GET /reports/dashboard/summary": `{
		"today":{"sales":4,"revenue":"152.30"},
		"month":{"sales":87,"revenue":"3410.55"},
		"inventory":{"low_stock_count":1,"total_products":2},
		"customers":{"total_active":1}
	}`,
	"GET /sales/today/summary": `{
		"date":"2025-01-15","total_sales":4,"total_amount":"152.30",
		"payment_methods":{"Dinheiro":{"count":3,"amount":"112.40"},"Cartão de Crédito":{"count":1,"amount":"39.90"}}
	}`,
	"GET /reports/sales": `{
		"summary":{"total_sales":87,"total_amount":"3410.55","average_sale":"39.20"},
		"sales":[]
	}`,
	"GET /reports/products/top-selling": `[
		{"product_id":1,"product_name":"Café Premium","unit_price":"19.90","total_quantity":42,"total_revenue":"835.80"}
	]`,
	"GET /reports/inventory/low-stock": `[
		{"product_id":1,"product_name":"Café Premium","current_quantity":3,"min_stock":5,"max_stock":50,"location":"A1","status":"BAIXO"}
	]`,
}
