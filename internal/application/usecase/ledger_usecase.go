package usecase

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// LedgerUseCase operaciones sobre todo el registro (solo demo/pruebas).
type LedgerUseCase struct {
	repo repository.LedgerRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(repo repository.LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{repo: repo}
}

// Reset vacía productos, ventas y licitaciones. Idempotente.
func (uc *LedgerUseCase) Reset(ctx context.Context) error {
	return uc.repo.Reset(ctx)
}
