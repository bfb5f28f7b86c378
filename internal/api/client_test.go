package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(endpoint string) *Client {
	cfg := DefaultConfig()
	cfg.BaseURL = endpoint
	return NewClient(cfg, NoopObserver{})
}

func TestClient_ListProducts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"name":"Café","price":19.9,"barcode":"789","active":true},
			{"id":2,"name":"Açúcar","price":5.5,"active":false}
		]`))
	}))
	defer srv.Close()

	products, err := testClient(srv.URL).ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Café", products[0].Name)
	assert.Equal(t, "19.9", products[0].Price.String())
	assert.True(t, products[0].Active)
	assert.Empty(t, products[1].Barcode)
}

func TestClient_CreateProduct_SendsRawPriceString(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := testClient(srv.URL).CreateProduct(context.Background(), ProductForm{
		Name:  "Widget",
		Price: "19.90",
	})

	require.NoError(t, err)
	assert.Equal(t, "Widget", got["name"])
	assert.Equal(t, "19.90", got["price"])
}

func TestClient_CreateProduct_APIErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Invalid price"}`))
	}))
	defer srv.Close()

	err := testClient(srv.URL).CreateProduct(context.Background(), ProductForm{Name: "x", Price: "1"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid price", apiErr.Detail)
	assert.Equal(t, "Invalid price", UserMessage(err, "fallback"))
}

func TestClient_APIErrorWithoutDetailFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	err := testClient(srv.URL).DeleteProduct(context.Background(), 7)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Detail)
	assert.Equal(t, "Erro ao excluir produto", UserMessage(err, "Erro ao excluir produto"))
}

func TestClient_Unreachable(t *testing.T) {
	// Nothing listening on this port.
	_, err := testClient("http://127.0.0.1:1").ListCustomers(context.Background())

	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestClient_DeleteProduct_EmptyBodyTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/42", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, testClient(srv.URL).DeleteProduct(context.Background(), 42))
}

func TestClient_AdjustInventory_Body(t *testing.T) {
	var got InventoryAdjust
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/adjust/42", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		// Non-JSON success body must be treated as empty payload.
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	err := testClient(srv.URL).AdjustInventory(context.Background(), 42, InventoryAdjust{
		Quantity: 10,
		Reason:   "Ajuste manual",
	})

	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, "Ajuste manual", got.Reason)
}

func TestClient_DashboardSummary_Decodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/dashboard/summary", r.URL.Path)
		w.Write([]byte(`{
			"today":{"sales":3,"revenue":120.5},
			"month":{"sales":40,"revenue":2100},
			"inventory":{"low_stock_count":2,"total_products":15},
			"customers":{"total_active":9}
		}`))
	}))
	defer srv.Close()

	sum, err := testClient(srv.URL).DashboardSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, sum.Today.Sales)
	assert.Equal(t, "120.5", sum.Today.Revenue.String())
	assert.Equal(t, 2, sum.Inventory.LowStockCount)
	assert.Equal(t, 9, sum.Customers.TotalActive)
}

func TestClient_TodaySales_PaymentMethodsMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"date":"30/08/2026","total_sales":2,"total_amount":55,
			"payment_methods":{"Dinheiro":{"count":1,"amount":20},"Pix":{"count":1,"amount":35}}
		}`))
	}))
	defer srv.Close()

	today, err := testClient(srv.URL).TodaySales(context.Background())

	require.NoError(t, err)
	require.Len(t, today.PaymentMethods, 2)
	assert.Equal(t, 1, today.PaymentMethods["Pix"].Count)
	assert.Equal(t, "35", today.PaymentMethods["Pix"].Amount.String())
}

func TestClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var captured RequestEvent
	obs := &captureObserver{fn: func(e RequestEvent) { captured = e }}

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	client := NewClient(cfg, obs)

	_, err := client.ListSales(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/sales/", captured.Path)
	assert.Equal(t, http.StatusOK, captured.Status)
	assert.GreaterOrEqual(t, captured.LatencyMs, int64(0))
}

func TestClient_ObserverReceivesTransportError(t *testing.T) {
	var captured RequestEvent
	obs := &captureObserver{fn: func(e RequestEvent) { captured = e }}

	cfg := DefaultConfig()
	cfg.BaseURL = "http://127.0.0.1:1"
	client := NewClient(cfg, obs)

	_, err := client.DashboardSummary(context.Background())

	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Error(t, captured.Err)
	assert.Zero(t, captured.Status)
}

type captureObserver struct {
	fn func(RequestEvent)
}

func (o *captureObserver) OnRequestComplete(e RequestEvent) { o.fn(e) }
