package repository

import (
	"context"

	"github.com/villagef/splot-ani-server/internal/domain"
	pkgdto "github.com/villagef/splot-ani-server/pkg/dto"
)

// ProductRepository is the persistence adapter for the products collection.
// Lookups by identifier return errs.ErrNotFound when nothing matches and
// errs.ErrInvalidID when the identifier cannot match any document.
type ProductRepository interface {
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (product domain.Product, err error)
}
