package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/validation"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// BidUseCase CRUD de licitaciones. No interactúa con stock ni ventas.
type BidUseCase struct {
	repo repository.BidRepository
}

// NewBidUseCase construye el caso de uso.
func NewBidUseCase(repo repository.BidRepository) *BidUseCase {
	return &BidUseCase{repo: repo}
}

func bidFromRequest(in dto.BidRequest, bid *entity.Bid) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	opening, err := time.Parse(dto.DateLayout, in.OpeningDate)
	if err != nil {
		return domain.ErrInvalidInput
	}
	status := entity.BidStatus(in.Status)
	if status == "" {
		status = entity.BidStatusOpen
	}
	bid.Number = strings.TrimSpace(in.Number)
	bid.PublicEntity = strings.TrimSpace(in.PublicEntity)
	bid.EstimatedValue = in.EstimatedValue.Round(2)
	bid.OpeningDate = opening
	bid.Status = status
	return nil
}

// Create registra una licitación (estado OPEN si no se indica).
func (uc *BidUseCase) Create(ctx context.Context, in dto.BidRequest) (*dto.BidResponse, error) {
	bid := &entity.Bid{}
	if err := bidFromRequest(in, bid); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, bid); err != nil {
		return nil, err
	}
	out := dto.NewBidResponse(bid)
	return &out, nil
}

// GetByID obtiene una licitación. domain.ErrBidNotFound si no existe.
func (uc *BidUseCase) GetByID(ctx context.Context, id int64) (*dto.BidResponse, error) {
	bid, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, domain.ErrBidNotFound
	}
	out := dto.NewBidResponse(bid)
	return &out, nil
}

// Update reemplaza todos los campos editables.
func (uc *BidUseCase) Update(ctx context.Context, id int64, in dto.BidRequest) (*dto.BidResponse, error) {
	bid, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, domain.ErrBidNotFound
	}
	if err := bidFromRequest(in, bid); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, bid); err != nil {
		return nil, err
	}
	out := dto.NewBidResponse(bid)
	return &out, nil
}

// List lista todas las licitaciones.
func (uc *BidUseCase) List(ctx context.Context) ([]dto.BidResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BidResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.NewBidResponse(b))
	}
	return items, nil
}

// Delete elimina una licitación.
func (uc *BidUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
