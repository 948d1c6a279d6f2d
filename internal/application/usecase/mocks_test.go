package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) AdjustStock(ctx context.Context, id int64, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockBidRepo struct{ mock.Mock }

func (m *mockBidRepo) Create(ctx context.Context, b *entity.Bid) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBidRepo) GetByID(ctx context.Context, id int64) (*entity.Bid, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*entity.Bid)
	return b, args.Error(1)
}

func (m *mockBidRepo) List(ctx context.Context) ([]*entity.Bid, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Bid)
	return list, args.Error(1)
}

func (m *mockBidRepo) Update(ctx context.Context, b *entity.Bid) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBidRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockLedgerRepo struct{ mock.Mock }

func (m *mockLedgerRepo) Reset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
