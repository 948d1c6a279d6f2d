package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRequest entrada para registrar o modificar una venta. Date en formato AAAA-MM-DD.
type SaleRequest struct {
	Customer  string `json:"customer" validate:"required,notblank,max=200"`
	ProductID int64  `json:"product_id" validate:"gt=0"`
	Quantity  int    `json:"quantity" validate:"gt=0,lte=2147483647"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
}

// SaleResponse salida de una venta. ProductID y ProductName son null si el producto fue eliminado.
type SaleResponse struct {
	ID          int64           `json:"id"`
	Customer    string          `json:"customer"`
	ProductID   *int64          `json:"product_id"`
	ProductName *string         `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Date        string          `json:"date"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
