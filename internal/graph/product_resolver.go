package graph

import (
	"fmt"
	"math"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/villagef/splot-ani-server/internal/domain"
)

type productResolver struct {
	product domain.Product
}

// require fails a non-null field whose stored value is absent or null.
func (r *productResolver) require(key string) error {
	if r.product.Missing(key) {
		return fmt.Errorf("cannot return null for non-nullable field Product.%s", key)
	}

	return nil
}

func (r *productResolver) ID() graphql.ID {
	return graphql.ID(r.product.ID.Hex())
}

func (r *productResolver) Name() (string, error) {
	return r.product.Name, r.require("name")
}

func (r *productResolver) Description() (string, error) {
	return r.product.Description, r.require("description")
}

func (r *productResolver) Price() (float64, error) {
	return r.product.Price, r.require("price")
}

func (r *productResolver) PreviousPrice() *float64 {
	return r.product.PreviousPrice
}

func (r *productResolver) SmallestPrice() *float64 {
	return r.product.SmallestPrice
}

func (r *productResolver) Category() (string, error) {
	return r.product.Category, r.require("category")
}

func (r *productResolver) Quantity() (int32, error) {
	if err := r.require("quantity"); err != nil {
		return 0, err
	}

	quantity := r.product.Quantity
	if quantity > math.MaxInt32 || quantity < math.MinInt32 {
		return 0, fmt.Errorf("Int cannot represent non 32-bit signed integer value: %d", quantity)
	}

	return int32(quantity), nil
}

func (r *productResolver) Slug() (string, error) {
	return r.product.Slug, r.require("slug")
}

func (r *productResolver) Images() ([]*string, error) {
	if err := r.require("images"); err != nil {
		return nil, err
	}

	if r.product.Images == nil {
		return []*string{}, nil
	}

	return r.product.Images, nil
}
