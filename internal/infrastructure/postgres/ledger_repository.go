package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo operaciones que abarcan las tres tablas.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador.
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Reset vacía las tablas y reinicia las secuencias de identidad. Es idempotente:
// truncar tablas vacías no falla.
func (r *LedgerRepo) Reset(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `TRUNCATE TABLE sales, products, bids RESTART IDENTITY`); err != nil {
		return fmt.Errorf("reset ledger: %w", err)
	}
	return nil
}
