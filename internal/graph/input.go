package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/villagef/splot-ani-server/internal/domain"
	"github.com/villagef/splot-ani-server/internal/dto"
)

// productInput mirrors the ProductInput type. The two nullable prices use
// graphql.NullFloat so an explicit null can be told apart from an omission.
type productInput struct {
	Name          string
	Description   string
	Price         float64
	PreviousPrice graphql.NullFloat
	SmallestPrice graphql.NullFloat
	Category      string
	Quantity      int32
	Slug          string
	Images        []*string
}

func (in productInput) toRequest() dto.ProductRequest {
	return dto.ProductRequest{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		PreviousPrice: in.PreviousPrice.Value,
		SmallestPrice: in.SmallestPrice.Value,
		Category:      in.Category,
		Quantity:      int(in.Quantity),
		Slug:          in.Slug,
		Images:        in.Images,
	}
}

func (in productInput) toUpdate() domain.ProductUpdate {
	quantity := int(in.Quantity)
	images := copyImages(in.Images)

	return domain.ProductUpdate{
		Name:          &in.Name,
		Description:   &in.Description,
		Price:         &in.Price,
		PreviousPrice: optionalFloat(in.PreviousPrice),
		SmallestPrice: optionalFloat(in.SmallestPrice),
		Category:      &in.Category,
		Quantity:      &quantity,
		Slug:          &in.Slug,
		Images:        &images,
	}
}

// productPatch mirrors ProductPatch. A nil pointer leaves the field alone.
type productPatch struct {
	Name          *string
	Description   *string
	Price         *float64
	PreviousPrice graphql.NullFloat
	SmallestPrice graphql.NullFloat
	Category      *string
	Quantity      *int32
	Slug          *string
	Images        *[]*string
}

func (in productPatch) toUpdate() domain.ProductUpdate {
	update := domain.ProductUpdate{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		PreviousPrice: optionalFloat(in.PreviousPrice),
		SmallestPrice: optionalFloat(in.SmallestPrice),
		Category:      in.Category,
		Slug:          in.Slug,
	}

	if in.Quantity != nil {
		quantity := int(*in.Quantity)
		update.Quantity = &quantity
	}

	if in.Images != nil {
		images := copyImages(*in.Images)
		update.Images = &images
	}

	return update
}

func optionalFloat(value graphql.NullFloat) domain.Optional[float64] {
	if !value.Set {
		return domain.Optional[float64]{}
	}

	return domain.Optional[float64]{Set: true, Value: value.Value}
}

// copyImages keeps null items; a null list becomes an empty one.
func copyImages(images []*string) []*string {
	return append([]*string{}, images...)
}
