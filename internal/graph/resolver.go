package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/villagef/splot-ani-server/internal/domain"
	"github.com/villagef/splot-ani-server/internal/service"
	pkgdto "github.com/villagef/splot-ani-server/pkg/dto"
)

// Resolver is the root resolver for Query and Mutation.
type Resolver struct {
	service service.ProductService
}

func NewResolver(service service.ProductService) *Resolver {
	return &Resolver{service: service}
}

type productsArgs struct {
	Page     *int32
	Limit    *int32
	Category *string
}

func (r *Resolver) Products(ctx context.Context, args productsArgs) (*[]*productResolver, error) {
	filter := pkgdto.Filter{}
	if args.Page != nil {
		filter.Page = int(*args.Page)
	}
	if args.Limit != nil {
		filter.Limit = int(*args.Limit)
	}
	if args.Category != nil && *args.Category != "" {
		filter.Category = args.Category
	}

	products, err := r.service.GetProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	return productList(products), nil
}

func (r *Resolver) CategoryProducts(ctx context.Context, args struct{ Category string }) (*[]*productResolver, error) {
	products, err := r.service.GetCategoryProducts(ctx, args.Category)
	if err != nil {
		return nil, err
	}

	return productList(products), nil
}

func (r *Resolver) Product(ctx context.Context, args struct{ ID graphql.ID }) (*productResolver, error) {
	product, err := r.service.GetProductByID(ctx, string(args.ID))
	return optionalProduct(product, err)
}

func (r *Resolver) CreateProduct(ctx context.Context, args struct{ Input productInput }) (*productResolver, error) {
	product, err := r.service.AddProduct(ctx, args.Input.toRequest())
	return optionalProduct(product, err)
}

func (r *Resolver) UpdateProduct(ctx context.Context, args struct {
	ID    graphql.ID
	Input productInput
}) (*productResolver, error) {
	product, err := r.service.UpdateProduct(ctx, string(args.ID), args.Input.toUpdate())
	return optionalProduct(product, err)
}

func (r *Resolver) PatchProduct(ctx context.Context, args struct {
	ID    graphql.ID
	Input productPatch
}) (*productResolver, error) {
	product, err := r.service.UpdateProduct(ctx, string(args.ID), args.Input.toUpdate())
	return optionalProduct(product, err)
}

func (r *Resolver) DeleteProduct(ctx context.Context, args struct{ ID graphql.ID }) (*productResolver, error) {
	product, err := r.service.DeleteProduct(ctx, string(args.ID))
	return optionalProduct(product, err)
}

func productList(products []domain.Product) *[]*productResolver {
	resolvers := make([]*productResolver, 0, len(products))
	for _, product := range products {
		resolvers = append(resolvers, &productResolver{product: product})
	}

	return &resolvers
}

func optionalProduct(product *domain.Product, err error) (*productResolver, error) {
	if err != nil || product == nil {
		return nil, err
	}

	return &productResolver{product: *product}, nil
}
