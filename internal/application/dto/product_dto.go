package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o reemplazar un producto. El stock se edita directo.
type ProductRequest struct {
	Name     string          `json:"name" validate:"required,notblank,max=200"`
	Category string          `json:"category" validate:"max=100"`
	Price    decimal.Decimal `json:"price" validate:"dgte=0"`
	Stock    int             `json:"stock" validate:"gte=0,lte=2147483647"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
