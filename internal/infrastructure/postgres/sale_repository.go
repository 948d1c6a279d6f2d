package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// saleSelect resuelve el nombre del producto; p.name es NULL si el producto fue eliminado.
const saleSelect = `
	SELECT s.id, s.customer, s.product_id, p.name, s.quantity, s.sale_date, s.total, s.created_at, s.updated_at
	FROM sales s
	LEFT JOIN products p ON p.id = s.product_id`

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta y completa ID y fechas.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (customer, product_id, quantity, sale_date, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, sale.Customer, sale.ProductID, sale.Quantity, sale.Date, sale.Total).
		Scan(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con el nombre del producto. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	return r.get(ctx, saleSelect+` WHERE s.id = $1`, id)
}

// GetByIDForUpdate bloquea solo la fila de sales (FOR UPDATE OF s); la fila del producto
// la bloquea el coordinador por separado.
func (r *SaleRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Sale, error) {
	return r.get(ctx, saleSelect+` WHERE s.id = $1 FOR UPDATE OF s`, id)
}

func (r *SaleRepo) get(ctx context.Context, query string, id int64) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List devuelve todas las ventas, las más recientes primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.list(ctx, saleSelect+` ORDER BY s.sale_date DESC, s.id DESC`)
}

// ListRecent devuelve las últimas limit ventas (usado por el dashboard).
func (r *SaleRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	return r.list(ctx, saleSelect+` ORDER BY s.sale_date DESC, s.id DESC LIMIT $1`, limit)
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update reemplaza cliente, producto, cantidad, fecha y total.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales SET customer = $2, product_id = $3, quantity = $4, sale_date = $5, total = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query, sale.ID, sale.Customer, sale.ProductID, sale.Quantity, sale.Date, sale.Total).
		Scan(&sale.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSaleNotFound
		}
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina la venta. No toca el stock: eso es responsabilidad del coordinador.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrSaleNotFound
	}
	return nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	if err := row.Scan(&s.ID, &s.Customer, &s.ProductID, &s.ProductName, &s.Quantity, &s.Date,
		&s.Total, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
