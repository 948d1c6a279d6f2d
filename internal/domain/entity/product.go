package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock se modifica por edición directa y, como efecto secundario, por las ventas.
type Product struct {
	ID        int64
	Name      string
	Category  string
	Price     decimal.Decimal // precio unitario vigente (2 decimales)
	Stock     int             // unidades disponibles, nunca negativo
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasStock indica si hay al menos qty unidades disponibles.
func (p *Product) HasStock(qty int) bool {
	return p.Stock >= qty
}
