package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
)

// Snapshot copia local de las tres colecciones, cargada en un mismo instante.
type Snapshot struct {
	Products []dto.ProductResponse
	Sales    []dto.SaleResponse
	Bids     []dto.BidResponse
	LoadedAt time.Time
}

// Cache lectura a través de un Snapshot. Toda mutación exitosa invalida el snapshot y
// dispara una recarga completa; si la recarga falla, la próxima lectura vuelve a intentar.
type Cache struct {
	client *Client

	mu   sync.RWMutex
	snap *Snapshot
}

// NewCache construye la caché vacía.
func NewCache(c *Client) *Cache {
	return &Cache{client: c}
}

// Refresh recarga productos, ventas y licitaciones en paralelo y reemplaza el snapshot.
func (c *Cache) Refresh(ctx context.Context) error {
	var next Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		next.Products, err = c.client.ListProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Sales, err = c.client.ListSales(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Bids, err = c.client.ListBids(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("cache: recargar: %w", err)
	}
	next.LoadedAt = time.Now()

	c.mu.Lock()
	c.snap = &next
	c.mu.Unlock()
	return nil
}

// Invalidate descarta el snapshot actual.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

// Snapshot devuelve el snapshot vigente, cargándolo si hace falta.
func (c *Cache) Snapshot(ctx context.Context) (Snapshot, error) {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap != nil {
		return *snap, nil
	}
	if err := c.Refresh(ctx); err != nil {
		return Snapshot{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil {
		return Snapshot{}, fmt.Errorf("cache: snapshot invalidado durante la carga")
	}
	return *c.snap, nil
}

// Products lista cacheada de productos.
func (c *Cache) Products(ctx context.Context) ([]dto.ProductResponse, error) {
	s, err := c.Snapshot(ctx)
	return s.Products, err
}

// Sales lista cacheada de ventas.
func (c *Cache) Sales(ctx context.Context) ([]dto.SaleResponse, error) {
	s, err := c.Snapshot(ctx)
	return s.Sales, err
}

// Bids lista cacheada de licitaciones.
func (c *Cache) Bids(ctx context.Context) ([]dto.BidResponse, error) {
	s, err := c.Snapshot(ctx)
	return s.Bids, err
}

// afterMutation invalida y recarga. El error de recarga no se propaga: la mutación ya ocurrió.
func (c *Cache) afterMutation(ctx context.Context) {
	c.Invalidate()
	_ = c.Refresh(ctx)
}

func mutate[T any](ctx context.Context, c *Cache, fn func() (T, error)) (T, error) {
	out, err := fn()
	if err != nil {
		return out, err
	}
	c.afterMutation(ctx)
	return out, nil
}

func mutateErr(ctx context.Context, c *Cache, fn func() error) error {
	_, err := mutate(ctx, c, func() (struct{}, error) { return struct{}{}, fn() })
	return err
}

// CreateProduct crea un producto y recarga la caché.
func (c *Cache) CreateProduct(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	return mutate(ctx, c, func() (*dto.ProductResponse, error) { return c.client.CreateProduct(ctx, in) })
}

// UpdateProduct modifica un producto y recarga la caché.
func (c *Cache) UpdateProduct(ctx context.Context, id int64, in dto.ProductRequest) error {
	return mutateErr(ctx, c, func() error { return c.client.UpdateProduct(ctx, id, in) })
}

// DeleteProduct elimina un producto (sus ventas quedan sin referencia) y recarga la caché.
func (c *Cache) DeleteProduct(ctx context.Context, id int64) error {
	return mutateErr(ctx, c, func() error { return c.client.DeleteProduct(ctx, id) })
}

// CreateSale registra una venta y recarga la caché, incluido el stock descontado.
func (c *Cache) CreateSale(ctx context.Context, in dto.SaleRequest) (*dto.SaleResponse, error) {
	return mutate(ctx, c, func() (*dto.SaleResponse, error) { return c.client.CreateSale(ctx, in) })
}

// UpdateSale modifica una venta y recarga la caché.
func (c *Cache) UpdateSale(ctx context.Context, id int64, in dto.SaleRequest) error {
	return mutateErr(ctx, c, func() error { return c.client.UpdateSale(ctx, id, in) })
}

// DeleteSale elimina una venta y recarga la caché.
func (c *Cache) DeleteSale(ctx context.Context, id int64) error {
	return mutateErr(ctx, c, func() error { return c.client.DeleteSale(ctx, id) })
}

// CreateBid crea una licitación y recarga la caché.
func (c *Cache) CreateBid(ctx context.Context, in dto.BidRequest) (*dto.BidResponse, error) {
	return mutate(ctx, c, func() (*dto.BidResponse, error) { return c.client.CreateBid(ctx, in) })
}

// UpdateBid modifica una licitación y recarga la caché.
func (c *Cache) UpdateBid(ctx context.Context, id int64, in dto.BidRequest) error {
	return mutateErr(ctx, c, func() error { return c.client.UpdateBid(ctx, id, in) })
}

// DeleteBid elimina una licitación y recarga la caché.
func (c *Cache) DeleteBid(ctx context.Context, id int64) error {
	return mutateErr(ctx, c, func() error { return c.client.DeleteBid(ctx, id) })
}

// Reset vacía el registro en el servidor y recarga la caché.
func (c *Cache) Reset(ctx context.Context) error {
	return mutateErr(ctx, c, func() error { return c.client.Reset(ctx) })
}
