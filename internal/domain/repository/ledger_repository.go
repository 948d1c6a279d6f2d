package repository

import "context"

// LedgerRepository operaciones sobre el conjunto de tablas.
type LedgerRepository interface {
	// Reset vacía products, sales y bids y reinicia las secuencias de ID.
	// Solo para entornos de prueba/demo.
	Reset(ctx context.Context) error
}
