package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido dentro de una tx.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// AdjustStock suma delta al stock. Devuelve domain.ErrInsufficientStock si quedaría negativo.
	AdjustStock(ctx context.Context, id int64, delta int) error
	Delete(ctx context.Context, id int64) error
}
