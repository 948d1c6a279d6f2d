// Package client es un cliente REST de la API de ventas. Cache mantiene una copia
// local de productos, ventas y licitaciones que se recarga completa tras cada mutación.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
)

// APIError respuesta no-2xx de la API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: HTTP %d %s: %s", e.Status, e.Code, e.Message)
}

// Client cliente HTTP de la API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el http.Client por defecto.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New construye el cliente. baseURL sin /api (ej. http://localhost:8080).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("api: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("api: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var e dto.ErrorResponse
		if json.Unmarshal(raw, &e) == nil && e.Code != "" {
			apiErr.Code, apiErr.Message, apiErr.Fields = e.Code, e.Message, e.Fields
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: deserializar respuesta: %w", err)
	}
	return nil
}

func idPath(base string, id int64) string {
	return base + "/" + strconv.FormatInt(id, 10)
}

// ── productos ──

// ListProducts lista todos los productos.
func (c *Client) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct obtiene un producto por ID.
func (c *Client) GetProduct(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, idPath("/api/products", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct crea un producto.
func (c *Client) CreateProduct(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPost, "/api/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct reemplaza los datos de un producto.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in dto.ProductRequest) error {
	return c.do(ctx, http.MethodPut, idPath("/api/products", id), in, nil)
}

// DeleteProduct elimina un producto.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/products", id), nil, nil)
}

// ── ventas ──

// ListSales lista las ventas con el nombre del producto.
func (c *Client) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	var out []dto.SaleResponse
	if err := c.do(ctx, http.MethodGet, "/api/sales", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSale registra una venta (descuenta stock en el servidor).
func (c *Client) CreateSale(ctx context.Context, in dto.SaleRequest) (*dto.SaleResponse, error) {
	var out dto.SaleResponse
	if err := c.do(ctx, http.MethodPost, "/api/sales", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSale modifica una venta.
func (c *Client) UpdateSale(ctx context.Context, id int64, in dto.SaleRequest) error {
	return c.do(ctx, http.MethodPut, idPath("/api/sales", id), in, nil)
}

// DeleteSale elimina una venta (devuelve stock).
func (c *Client) DeleteSale(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/sales", id), nil, nil)
}

// ── licitaciones ──

// ListBids lista las licitaciones.
func (c *Client) ListBids(ctx context.Context) ([]dto.BidResponse, error) {
	var out []dto.BidResponse
	if err := c.do(ctx, http.MethodGet, "/api/bids", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBid crea una licitación.
func (c *Client) CreateBid(ctx context.Context, in dto.BidRequest) (*dto.BidResponse, error) {
	var out dto.BidResponse
	if err := c.do(ctx, http.MethodPost, "/api/bids", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBid modifica una licitación.
func (c *Client) UpdateBid(ctx context.Context, id int64, in dto.BidRequest) error {
	return c.do(ctx, http.MethodPut, idPath("/api/bids", id), in, nil)
}

// DeleteBid elimina una licitación.
func (c *Client) DeleteBid(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/bids", id), nil, nil)
}

// ── otros ──

// Reset vacía todo el registro (requiere RESET_ENABLED en el servidor).
func (c *Client) Reset(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/reset", nil, nil)
}

// DashboardSummary KPIs agregados.
func (c *Client) DashboardSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var out dto.DashboardSummaryDTO
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
