package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/validation"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock se edita directamente aquí;
// las ventas lo ajustan a través del coordinador.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto y lo devuelve con su ID.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Price:    in.Price.Round(2),
		Stock:    in.Stock,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto. domain.ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// Update reemplaza nombre, categoría, precio y stock.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	product.Name = strings.TrimSpace(in.Name)
	product.Category = strings.TrimSpace(in.Category)
	product.Price = in.Price.Round(2)
	product.Stock = in.Stock
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.NewProductResponse(p))
	}
	return items, nil
}

// Delete elimina el producto; las ventas que lo referencian quedan con producto null.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
