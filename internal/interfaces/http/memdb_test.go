package http_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// memDB almacén en memoria para probar la API completa. Las transacciones se serializan
// con txMu y se revierten restaurando una copia del estado.
type memDB struct {
	txMu sync.Mutex
	mu   sync.Mutex

	products map[int64]entity.Product
	sales    map[int64]entity.Sale
	bids     map[int64]entity.Bid
	seq      map[string]int64
}

func newMemDB() *memDB {
	db := &memDB{}
	db.reset()
	return db
}

func (db *memDB) reset() {
	db.products = map[int64]entity.Product{}
	db.sales = map[int64]entity.Sale{}
	db.bids = map[int64]entity.Bid{}
	db.seq = map[string]int64{}
}

func (db *memDB) next(table string) int64 {
	db.seq[table]++
	return db.seq[table]
}

type memSnapshot struct {
	products map[int64]entity.Product
	sales    map[int64]entity.Sale
	seq      map[string]int64
}

func (db *memDB) snapshot() memSnapshot {
	db.mu.Lock()
	defer db.mu.Unlock()
	s := memSnapshot{products: map[int64]entity.Product{}, sales: map[int64]entity.Sale{}, seq: map[string]int64{}}
	for k, v := range db.products {
		s.products[k] = v
	}
	for k, v := range db.sales {
		s.sales[k] = v
	}
	for k, v := range db.seq {
		s.seq[k] = v
	}
	return s
}

func (db *memDB) restore(s memSnapshot) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.products, db.sales, db.seq = s.products, s.sales, s.seq
}

// Run implementa sales.TxRunner.
func (db *memDB) Run(_ context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	db.txMu.Lock()
	defer db.txMu.Unlock()
	snap := db.snapshot()
	if err := fn(memProducts{db}, memSales{db}); err != nil {
		db.restore(snap)
		return err
	}
	return nil
}

func (db *memDB) withName(s entity.Sale) *entity.Sale {
	s.ProductName = nil
	if s.ProductID != nil {
		if p, ok := db.products[*s.ProductID]; ok {
			name := p.Name
			s.ProductName = &name
		}
	}
	return &s
}

// ── products ──

type memProducts struct{ db *memDB }

func (r memProducts) Create(_ context.Context, p *entity.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p.ID = r.db.next("products")
	p.CreatedAt, p.UpdatedAt = time.Now(), time.Now()
	r.db.products[p.ID] = *p
	return nil
}

func (r memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r memProducts) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r memProducts) List(context.Context) ([]*entity.Product, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.db.products))
	for _, p := range r.db.products {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memProducts) Update(_ context.Context, p *entity.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.db.products[p.ID] = *p
	return nil
}

func (r memProducts) AdjustStock(_ context.Context, id int64, delta int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	if p.Stock+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.Stock += delta
	r.db.products[id] = p
	return nil
}

// Delete emula FK ON DELETE SET NULL.
func (r memProducts) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.db.products, id)
	for sid, s := range r.db.sales {
		if s.ProductID != nil && *s.ProductID == id {
			s.ProductID = nil
			r.db.sales[sid] = s
		}
	}
	return nil
}

// ── sales ──

type memSales struct{ db *memDB }

func (r memSales) Create(_ context.Context, s *entity.Sale) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s.ID = r.db.next("sales")
	r.db.sales[s.ID] = *s
	return nil
}

func (r memSales) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.sales[id]
	if !ok {
		return nil, nil
	}
	return r.db.withName(s), nil
}

func (r memSales) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Sale, error) {
	return r.GetByID(ctx, id)
}

func (r memSales) List(context.Context) ([]*entity.Sale, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]*entity.Sale, 0, len(r.db.sales))
	for _, s := range r.db.sales {
		out = append(out, r.db.withName(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memSales) Update(_ context.Context, s *entity.Sale) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.sales[s.ID]; !ok {
		return domain.ErrSaleNotFound
	}
	r.db.sales[s.ID] = *s
	return nil
}

func (r memSales) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.sales[id]; !ok {
		return domain.ErrSaleNotFound
	}
	delete(r.db.sales, id)
	return nil
}

// ── bids ──

type memBids struct{ db *memDB }

func (r memBids) Create(_ context.Context, b *entity.Bid) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b.ID = r.db.next("bids")
	r.db.bids[b.ID] = *b
	return nil
}

func (r memBids) GetByID(_ context.Context, id int64) (*entity.Bid, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.bids[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r memBids) List(context.Context) ([]*entity.Bid, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]*entity.Bid, 0, len(r.db.bids))
	for _, b := range r.db.bids {
		b := b
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memBids) Update(_ context.Context, b *entity.Bid) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.bids[b.ID]; !ok {
		return domain.ErrBidNotFound
	}
	r.db.bids[b.ID] = *b
	return nil
}

func (r memBids) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.bids[id]; !ok {
		return domain.ErrBidNotFound
	}
	delete(r.db.bids, id)
	return nil
}

// ── ledger + dashboard ──

type memLedger struct{ db *memDB }

func (r memLedger) Reset(context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.reset()
	return nil
}

type memDashboard struct{ db *memDB }

func (r memDashboard) CatalogTotals(context.Context) (repository.CatalogTotals, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := repository.CatalogTotals{ProductCount: len(r.db.products), StockValue: decimal.Zero}
	for _, p := range r.db.products {
		out.StockValue = out.StockValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return out, nil
}

func (r memDashboard) SalesTotals(context.Context) (repository.SalesTotals, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := repository.SalesTotals{SaleCount: len(r.db.sales), Revenue: decimal.Zero}
	for _, s := range r.db.sales {
		out.Revenue = out.Revenue.Add(s.Total)
	}
	return out, nil
}

func (r memDashboard) CountBidsByStatus(_ context.Context, statuses ...entity.BidStatus) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	n := 0
	for _, b := range r.db.bids {
		for _, s := range statuses {
			if b.Status == s {
				n++
			}
		}
	}
	return n, nil
}

func (r memDashboard) RevenueByMonth(context.Context) ([]repository.MonthlyRevenue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	byMonth := map[string]decimal.Decimal{}
	for _, s := range r.db.sales {
		m := s.Date.Format("2006-01")
		byMonth[m] = byMonth[m].Add(s.Total)
	}
	out := make([]repository.MonthlyRevenue, 0, len(byMonth))
	for m, v := range byMonth {
		out = append(out, repository.MonthlyRevenue{Month: m, Revenue: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (r memDashboard) ProductsByCategory(context.Context) ([]repository.CategoryCount, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	counts := map[string]int{}
	for _, p := range r.db.products {
		counts[p.Category]++
	}
	out := make([]repository.CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, repository.CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (r memDashboard) RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error) {
	list, err := memSales{r.db}.List(ctx)
	if err != nil || len(list) <= limit {
		return list, err
	}
	return list[:limit], nil
}
