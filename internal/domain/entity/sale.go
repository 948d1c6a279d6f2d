package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada en el libro de ventas.
// ProductID queda en nil si el producto se elimina; Quantity y Total se conservan.
type Sale struct {
	ID          int64
	Customer    string
	ProductID   *int64
	ProductName *string // resuelto por JOIN; nil si el producto ya no existe
	Quantity    int
	Date        time.Time // solo fecha (sin hora)
	Total       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SaleTotal calcula el total de una venta: precio unitario × cantidad, redondeado a 2 decimales.
func SaleTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
