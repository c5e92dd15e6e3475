package service

import (
	"context"

	"github.com/villagef/splot-ani-server/internal/domain"
	"github.com/villagef/splot-ani-server/internal/dto"
	pkgdto "github.com/villagef/splot-ani-server/pkg/dto"
)

// ProductService resolves product reads and writes. Lookups by identifier
// return a nil product, not an error, when the document does not exist.
type ProductService interface {
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error)
	GetCategoryProducts(ctx context.Context, category string) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product *domain.Product, err error)
	AddProduct(ctx context.Context, data dto.ProductRequest) (product *domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) (product *domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (product *domain.Product, err error)
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, msg []byte) error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, []byte) error {
	return nil
}
