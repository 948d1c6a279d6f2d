package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/application/validation"
	"github.com/jhoicas/Ventas-api/internal/domain"
)

// SaleUseCase traduce los DTO de ventas al coordinador transaccional.
type SaleUseCase struct {
	coordinator *sales.Coordinator
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(coordinator *sales.Coordinator) *SaleUseCase {
	return &SaleUseCase{coordinator: coordinator}
}

func parseSaleRequest(in dto.SaleRequest) (time.Time, error) {
	if err := validation.Struct(in); err != nil {
		return time.Time{}, err
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return date, nil
}

// Create registra la venta y descuenta stock.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.SaleRequest) (*dto.SaleResponse, error) {
	date, err := parseSaleRequest(in)
	if err != nil {
		return nil, err
	}
	sale, err := uc.coordinator.Create(ctx, sales.CreateSaleInput{
		Customer:  in.Customer,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Date:      date,
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewSaleResponse(sale)
	return &out, nil
}

// Update modifica la venta y reajusta stock (incluida la reasignación de producto).
func (uc *SaleUseCase) Update(ctx context.Context, id int64, in dto.SaleRequest) (*dto.SaleResponse, error) {
	date, err := parseSaleRequest(in)
	if err != nil {
		return nil, err
	}
	sale, err := uc.coordinator.Update(ctx, sales.UpdateSaleInput{
		ID:        id,
		Customer:  in.Customer,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Date:      date,
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewSaleResponse(sale)
	return &out, nil
}

// Delete elimina la venta y devuelve la cantidad al stock.
func (uc *SaleUseCase) Delete(ctx context.Context, id int64) error {
	return uc.coordinator.Delete(ctx, id)
}

// GetByID obtiene la venta con el nombre del producto.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.coordinator.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewSaleResponse(sale)
	return &out, nil
}

// List lista todas las ventas, las más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.coordinator.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewSaleResponses(list), nil
}
