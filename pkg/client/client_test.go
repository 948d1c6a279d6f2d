package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/pkg/client"
)

// fakeAPI servidor mínimo con las rutas que usa el cliente.
type fakeAPI struct {
	mu       sync.Mutex
	products []dto.ProductResponse
	sales    []dto.SaleResponse
	bids     []dto.BidResponse
	nextID   int64

	listCalls atomic.Int32
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, _ *http.Request) {
		f.listCalls.Add(1)
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.products)
	})
	mux.HandleFunc("GET /api/sales", func(w http.ResponseWriter, _ *http.Request) {
		f.listCalls.Add(1)
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.sales)
	})
	mux.HandleFunc("GET /api/bids", func(w http.ResponseWriter, _ *http.Request) {
		f.listCalls.Add(1)
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.bids)
	})
	mux.HandleFunc("POST /api/products", func(w http.ResponseWriter, r *http.Request) {
		var in dto.ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
			return
		}
		if in.Name == "" {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Code: "VALIDATION", Message: "datos inválidos", Fields: map[string]string{"name": "es requerido"},
			})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.nextID++
		p := dto.ProductResponse{ID: f.nextID, Name: in.Name, Category: in.Category, Price: in.Price, Stock: in.Stock}
		f.products = append(f.products, p)
		writeJSON(w, http.StatusCreated, p)
	})
	mux.HandleFunc("GET /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, p := range f.products {
			if p.ID == id {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
	})
	mux.HandleFunc("DELETE /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, p := range f.products {
			if p.ID == id {
				f.products = append(f.products[:i], f.products[i+1:]...)
				writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "producto eliminado"})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
	})
	mux.HandleFunc("POST /api/reset", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.products, f.sales, f.bids, f.nextID = nil, nil, nil, 0
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "registro reiniciado"})
	})
	mux.HandleFunc("GET /api/dashboard/summary", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, dto.DashboardSummaryDTO{ProductCount: 1, Currency: "BRL"})
	})
	return mux
}

func newServer(t *testing.T) (*fakeAPI, *client.Client) {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return api, client.New(srv.URL + "/")
}

func TestClient_ProductRoundTrip(t *testing.T) {
	_, c := newServer(t)
	ctx := context.Background()

	created, err := c.CreateProduct(ctx, dto.ProductRequest{Name: "Caneta", Price: decimal.RequireFromString("2.50"), Stock: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := c.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Caneta", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("2.5")))

	list, err := c.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, c.DeleteProduct(ctx, created.ID))
	list, err = c.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestClient_DecodesAPIError(t *testing.T) {
	_, c := newServer(t)
	ctx := context.Background()

	_, err := c.GetProduct(ctx, 99)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "PRODUCT_NOT_FOUND", apiErr.Code)

	_, err = c.CreateProduct(ctx, dto.ProductRequest{})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "es requerido", apiErr.Fields["name"])
}

func TestClient_CanceledContext(t *testing.T) {
	_, c := newServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListProducts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_DashboardSummary(t *testing.T) {
	_, c := newServer(t)
	out, err := c.DashboardSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.ProductCount)
	assert.Equal(t, "BRL", out.Currency)
}
