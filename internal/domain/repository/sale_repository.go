package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
// Las lecturas resuelven ProductName con LEFT JOIN a products.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id int64) error
}
