package dto

import "github.com/villagef/splot-ani-server/internal/domain"

type ProductRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	PreviousPrice *float64 `json:"previousPrice"`
	SmallestPrice *float64 `json:"smallestPrice"`
	Category      string   `json:"category"`
	Quantity      int      `json:"quantity"`
	Slug          string   `json:"slug"`
	Images        []*string `json:"images"`
}

func (r ProductRequest) ToDomain() domain.Product {
	images := r.Images
	if images == nil {
		images = []*string{}
	}

	return domain.Product{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		PreviousPrice: r.PreviousPrice,
		SmallestPrice: r.SmallestPrice,
		Category:      r.Category,
		Quantity:      r.Quantity,
		Slug:          r.Slug,
		Images:        images,
	}
}
