package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// Variantes de ErrNotFound por entidad; errors.Is(err, ErrNotFound) sigue siendo verdadero.
var (
	ErrProductNotFound = fmt.Errorf("producto no encontrado: %w", ErrNotFound)
	ErrSaleNotFound    = fmt.Errorf("venta no encontrada: %w", ErrNotFound)
	ErrBidNotFound     = fmt.Errorf("licitación no encontrada: %w", ErrNotFound)
)
