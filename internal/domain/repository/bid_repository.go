package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// BidRepository define el puerto de persistencia para Bid (CRUD simple).
type BidRepository interface {
	Create(ctx context.Context, bid *entity.Bid) error
	GetByID(ctx context.Context, id int64) (*entity.Bid, error)
	List(ctx context.Context) ([]*entity.Bid, error)
	Update(ctx context.Context, bid *entity.Bid) error
	Delete(ctx context.Context, id int64) error
}
