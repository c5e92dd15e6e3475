package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/villagef/splot-ani-server/internal/domain"
	"github.com/villagef/splot-ani-server/internal/dto"
	pkgdto "github.com/villagef/splot-ani-server/pkg/dto"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductService) GetCategoryProducts(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	return product(args.Get(0)), args.Error(1)
}

func (m *MockProductService) AddProduct(ctx context.Context, data dto.ProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, data)
	return product(args.Get(0)), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	args := m.Called(ctx, id, update)
	return product(args.Get(0)), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	return product(args.Get(0)), args.Error(1)
}

func product(value interface{}) *domain.Product {
	if value == nil {
		return nil
	}
	return value.(*domain.Product)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, key string, msg []byte) error {
	args := m.Called(ctx, key, msg)
	return args.Error(0)
}
