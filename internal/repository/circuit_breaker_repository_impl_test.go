package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/villagef/splot-ani-server/internal/domain"
	circuitbreaker "github.com/villagef/splot-ani-server/internal/infrastructure/circuit-breaker"
	"github.com/villagef/splot-ani-server/internal/repository"
	"github.com/villagef/splot-ani-server/internal/repository/mocks"
	pkgdto "github.com/villagef/splot-ani-server/pkg/dto"
	"github.com/villagef/splot-ani-server/pkg/errs"
)

func TestCircuitBreakerRepository_OpensOnStoreFailures(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("GetProducts", ctx, mock.Anything).Return(nil, storeErr).Times(3)

	repo := repository.CreateCircuitBreakerRepository(mockRepo, circuitbreaker.CreateCircuitBreaker("test"))

	for i := 0; i < 3; i++ {
		_, err := repo.GetProducts(ctx, pkgdto.Filter{})
		assert.ErrorIs(t, err, storeErr)
	}

	_, err := repo.GetProducts(ctx, pkgdto.Filter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	assert.Equal(t, 503, errs.GetErrorStatusCode(err))

	mockRepo.AssertExpectations(t)
}

func TestCircuitBreakerRepository_NotFoundDoesNotTrip(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("GetProductByID", ctx, "missing").Return(domain.Product{}, errs.ErrNotFound)
	mockRepo.On("DeleteProduct", ctx, "abc").Return(domain.Product{}, errs.ErrInvalidID)

	repo := repository.CreateCircuitBreakerRepository(mockRepo, circuitbreaker.CreateCircuitBreaker("test"))

	for i := 0; i < 5; i++ {
		_, err := repo.GetProductByID(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrNotFound)

		_, err = repo.DeleteProduct(ctx, "abc")
		assert.ErrorIs(t, err, errs.ErrInvalidID)
	}

	mockRepo.AssertNumberOfCalls(t, "GetProductByID", 5)
	mockRepo.AssertNumberOfCalls(t, "DeleteProduct", 5)
}

func TestCircuitBreakerRepository_PassesResults(t *testing.T) {
	ctx := context.Background()
	product := domain.Product{Name: "Mug"}
	update := domain.ProductUpdate{Name: &product.Name}

	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("AddProduct", ctx, product).Return(product, nil)
	mockRepo.On("UpdateProduct", ctx, "id", update).Return(product, nil)
	mockRepo.On("GetProducts", ctx, pkgdto.Filter{}).Return([]domain.Product{product}, nil)

	repo := repository.CreateCircuitBreakerRepository(mockRepo, circuitbreaker.CreateCircuitBreaker("test"))

	added, err := repo.AddProduct(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, product, added)

	updated, err := repo.UpdateProduct(ctx, "id", update)
	require.NoError(t, err)
	assert.Equal(t, product, updated)

	products, err := repo.GetProducts(ctx, pkgdto.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{product}, products)
}
