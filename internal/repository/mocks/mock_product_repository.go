package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/villagef/splot-ani-server/internal/domain"
	pkgdto "github.com/villagef/splot-ani-server/pkg/dto"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) AddProduct(ctx context.Context, data domain.Product) (domain.Product, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) (domain.Product, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}
