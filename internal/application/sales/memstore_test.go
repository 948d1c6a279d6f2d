package sales_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// memStore emula la base para las pruebas del coordinador: escrituras con undo-log
// (rollback real), bloqueos de fila por producto/venta retenidos hasta el fin de la tx
// e inyección de fallos por operación.
type memStore struct {
	mu       sync.Mutex
	products map[int64]entity.Product
	sales    map[int64]entity.Sale
	nextSale int64

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex

	failures map[string]error // "sale.create", "sale.update", "sale.delete", "product.adjust", "commit"
}

var errInjected = errors.New("fallo inyectado")

func newMemStore() *memStore {
	return &memStore{
		products: make(map[int64]entity.Product),
		sales:    make(map[int64]entity.Sale),
		locks:    make(map[string]*sync.Mutex),
		failures: make(map[string]error),
	}
}

func (s *memStore) addProduct(id int64, name, price string, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[id] = entity.Product{ID: id, Name: name, Price: mustDecimal(price), Stock: stock}
}

func (s *memStore) stock(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Stock
}

func (s *memStore) saleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sales)
}

func (s *memStore) sale(id int64) (entity.Sale, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sale, ok := s.sales[id]
	return sale, ok
}

// activeQuantity Σ cantidades de ventas que referencian el producto.
func (s *memStore) activeQuantity(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, sale := range s.sales {
		if sale.ProductID != nil && *sale.ProductID == productID {
			total += sale.Quantity
		}
	}
	return total
}

// deleteProduct emula DELETE FROM products con FK ON DELETE SET NULL.
func (s *memStore) deleteProduct(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
	for sid, sale := range s.sales {
		if sale.ProductID != nil && *sale.ProductID == id {
			sale.ProductID = nil
			sale.ProductName = nil
			s.sales[sid] = sale
		}
	}
}

func (s *memStore) fail(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = errInjected
}

func (s *memStore) failure(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures[op]
}

func (s *memStore) rowLock(key string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// Run implementa sales.TxRunner.
func (s *memStore) Run(ctx context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	tx := &memTx{store: s, held: make(map[string]*sync.Mutex)}
	defer tx.release()

	if err := fn(&memProductRepo{tx: tx}, &memSaleRepo{tx: tx}); err != nil {
		tx.rollback()
		return err
	}
	if err := s.failure("commit"); err != nil {
		tx.rollback()
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type memTx struct {
	store *memStore
	held  map[string]*sync.Mutex
	undo  []func()
}

func (tx *memTx) lock(key string) {
	if _, ok := tx.held[key]; ok {
		return
	}
	l := tx.store.rowLock(key)
	l.Lock()
	tx.held[key] = l
}

func (tx *memTx) release() {
	for _, l := range tx.held {
		l.Unlock()
	}
}

func (tx *memTx) rollback() {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
}

type memProductRepo struct{ tx *memTx }

func (r *memProductRepo) Create(context.Context, *entity.Product) error {
	return errors.New("no soportado")
}
func (r *memProductRepo) List(context.Context) ([]*entity.Product, error) {
	return nil, errors.New("no soportado")
}
func (r *memProductRepo) Update(context.Context, *entity.Product) error {
	return errors.New("no soportado")
}
func (r *memProductRepo) Delete(context.Context, int64) error { return errors.New("no soportado") }

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	r.tx.lock(fmt.Sprintf("p:%d", id))
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) AdjustStock(_ context.Context, id int64, delta int) error {
	s := r.tx.store
	if err := s.failure("product.adjust"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	if p.Stock+delta < 0 {
		return domain.ErrInsufficientStock
	}
	before := p
	p.Stock += delta
	s.products[id] = p
	r.tx.undo = append(r.tx.undo, func() { s.products[id] = before })
	return nil
}

type memSaleRepo struct{ tx *memTx }

func (r *memSaleRepo) List(context.Context) ([]*entity.Sale, error) {
	return nil, errors.New("no soportado")
}

func (r *memSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	s := r.tx.store
	if err := s.failure("sale.create"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSale++
	sale.ID = s.nextSale
	s.sales[sale.ID] = *sale
	id := sale.ID
	r.tx.undo = append(r.tx.undo, func() { delete(s.sales, id) })
	return nil
}

func (r *memSaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	sale, ok := s.sales[id]
	if !ok {
		return nil, nil
	}
	return &sale, nil
}

func (r *memSaleRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Sale, error) {
	r.tx.lock(fmt.Sprintf("s:%d", id))
	return r.GetByID(ctx, id)
}

func (r *memSaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	s := r.tx.store
	if err := s.failure("sale.update"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	before, ok := s.sales[sale.ID]
	if !ok {
		return domain.ErrSaleNotFound
	}
	s.sales[sale.ID] = *sale
	r.tx.undo = append(r.tx.undo, func() { s.sales[before.ID] = before })
	return nil
}

func (r *memSaleRepo) Delete(_ context.Context, id int64) error {
	s := r.tx.store
	if err := s.failure("sale.delete"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	before, ok := s.sales[id]
	if !ok {
		return domain.ErrSaleNotFound
	}
	delete(s.sales, id)
	r.tx.undo = append(r.tx.undo, func() { s.sales[id] = before })
	return nil
}
