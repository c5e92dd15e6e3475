package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker/v2"
	"github.com/villagef/splot-ani-server/internal/domain"
	pkgdto "github.com/villagef/splot-ani-server/pkg/dto"
	"github.com/villagef/splot-ani-server/pkg/errs"
)

// CircuitBreakerProductRepositoryImpl fails fast with errs.ErrStoreUnavailable
// while the wrapped store keeps failing.
type CircuitBreakerProductRepositoryImpl struct {
	next ProductRepository
	cb   *gobreaker.CircuitBreaker[any]
}

func CreateCircuitBreakerRepository(next ProductRepository, cb *gobreaker.CircuitBreaker[any]) ProductRepository {
	return &CircuitBreakerProductRepositoryImpl{next: next, cb: cb}
}

func (r *CircuitBreakerProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, error) {
	return execute(r.cb, func() ([]domain.Product, error) {
		return r.next.GetProducts(ctx, filter)
	})
}

func (r *CircuitBreakerProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	return execute(r.cb, func() (domain.Product, error) {
		return r.next.GetProductByID(ctx, id)
	})
}

func (r *CircuitBreakerProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (domain.Product, error) {
	return execute(r.cb, func() (domain.Product, error) {
		return r.next.AddProduct(ctx, data)
	})
}

func (r *CircuitBreakerProductRepositoryImpl) UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) (domain.Product, error) {
	return execute(r.cb, func() (domain.Product, error) {
		return r.next.UpdateProduct(ctx, id, update)
	})
}

func (r *CircuitBreakerProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (domain.Product, error) {
	return execute(r.cb, func() (domain.Product, error) {
		return r.next.DeleteProduct(ctx, id)
	})
}

func execute[T any](cb *gobreaker.CircuitBreaker[any], fn func() (T, error)) (T, error) {
	var zero T

	result, err := cb.Execute(func() (any, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, fmt.Errorf("%w: %v", errs.ErrStoreUnavailable, err)
	}

	value, ok := result.(T)
	if !ok {
		return zero, err
	}

	return value, err
}
