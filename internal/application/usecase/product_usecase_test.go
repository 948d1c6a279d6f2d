package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/application/validation"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

func TestProductUseCase_Create(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Name == "Caneta" && p.Category == "Escritório" && p.Price.Equal(decimal.RequireFromString("10.00")) && p.Stock == 3
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Product).ID = 7
	}).Return(nil).Once()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.ProductRequest{
		Name: " Caneta ", Category: "Escritório", Price: decimal.RequireFromString("10.004"), Stock: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "Caneta", out.Name)
	repo.AssertExpectations(t)
}

func TestProductUseCase_Create_ValidationFailsWithoutTouchingStore(t *testing.T) {
	repo := new(mockProductRepo)
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.ProductRequest{Name: "", Price: decimal.NewFromInt(-1), Stock: -1})

	var verrs validation.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUseCase_GetByID_NotFound(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, nil).Once()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.GetByID(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUseCase_Update_ReplacesFieldsIncludingStock(t *testing.T) {
	repo := new(mockProductRepo)
	existing := &entity.Product{ID: 1, Name: "Caneta", Category: "A", Price: decimal.NewFromInt(10), Stock: 3}
	repo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Update(context.Background(), 1, dto.ProductRequest{
		Name: "Caneta azul", Category: "B", Price: decimal.RequireFromString("12.50"), Stock: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, 40, out.Stock)
	assert.Equal(t, "Caneta azul", out.Name)
	assert.True(t, decimal.RequireFromString("12.50").Equal(out.Price))
	repo.AssertExpectations(t)
}

func TestProductUseCase_Update_NotFound(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, nil).Once()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Update(context.Background(), 5, dto.ProductRequest{Name: "x", Price: decimal.NewFromInt(1)})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductUseCase_ListAndDelete(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("List", mock.Anything).Return([]*entity.Product{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nil).Once()
	repo.On("Delete", mock.Anything, int64(2)).Return(domain.ErrProductNotFound).Once()
	uc := usecase.NewProductUseCase(repo)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	assert.ErrorIs(t, uc.Delete(context.Background(), 2), domain.ErrProductNotFound)
}

func TestProductUseCase_PropagatesStorageErrors(t *testing.T) {
	repo := new(mockProductRepo)
	boom := errors.New("conexión perdida")
	repo.On("List", mock.Anything).Return(nil, boom).Once()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.List(context.Background())

	assert.ErrorIs(t, err, boom)
}
