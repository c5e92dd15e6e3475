package domain

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// requiredKeys are the document keys behind non-null schema fields.
var requiredKeys = []string{"name", "description", "price", "category", "quantity", "slug", "images"}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	PreviousPrice *float64           `bson:"previousPrice,omitempty" json:"previousPrice,omitempty"`
	SmallestPrice *float64           `bson:"smallestPrice,omitempty" json:"smallestPrice,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Slug          string             `bson:"slug" json:"slug"`
	Images        []*string          `bson:"images" json:"images"`

	missing map[string]bool
}

// UnmarshalBSON decodes a stored product and records which required keys the
// document lacks or holds as null.
func (p *Product) UnmarshalBSON(data []byte) error {
	type plain Product

	var decoded plain
	if err := bson.Unmarshal(data, &decoded); err != nil {
		return err
	}

	raw := bson.Raw(data)
	for _, key := range requiredKeys {
		value, err := raw.LookupErr(key)
		if err != nil || value.Type == bsontype.Null {
			if decoded.missing == nil {
				decoded.missing = map[string]bool{}
			}
			decoded.missing[key] = true
		}
	}

	*p = Product(decoded)
	return nil
}

// Missing reports whether the stored document had no value for key.
func (p Product) Missing(key string) bool {
	return p.missing[key]
}

// Optional carries a nullable field of an update. Set is false when the
// caller did not mention the field; Set with a nil Value clears it.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: &value}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// ProductUpdate is the update mask for a product. Nil pointers and unset
// optionals leave the stored value unchanged.
type ProductUpdate struct {
	Name          *string
	Description   *string
	Price         *float64
	PreviousPrice Optional[float64]
	SmallestPrice Optional[float64]
	Category      *string
	Quantity      *int
	Slug          *string
	Images        *[]*string
}

// Fields lists the changed fields by their document key, in schema order.
func (u ProductUpdate) Fields() []string {
	fields := make([]string, 0, 9)
	if u.Name != nil {
		fields = append(fields, "name")
	}
	if u.Description != nil {
		fields = append(fields, "description")
	}
	if u.Price != nil {
		fields = append(fields, "price")
	}
	if u.PreviousPrice.Set {
		fields = append(fields, "previousPrice")
	}
	if u.SmallestPrice.Set {
		fields = append(fields, "smallestPrice")
	}
	if u.Category != nil {
		fields = append(fields, "category")
	}
	if u.Quantity != nil {
		fields = append(fields, "quantity")
	}
	if u.Slug != nil {
		fields = append(fields, "slug")
	}
	if u.Images != nil {
		fields = append(fields, "images")
	}

	return fields
}

func (u ProductUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}

// Apply returns a copy of p with the mask applied.
func (u ProductUpdate) Apply(p Product) Product {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.PreviousPrice.Set {
		p.PreviousPrice = u.PreviousPrice.Value
	}
	if u.SmallestPrice.Set {
		p.SmallestPrice = u.SmallestPrice.Value
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.Slug != nil {
		p.Slug = *u.Slug
	}
	if u.Images != nil {
		p.Images = append([]*string{}, (*u.Images)...)
	}

	if len(p.missing) > 0 {
		missing := make(map[string]bool, len(p.missing))
		for key := range p.missing {
			missing[key] = true
		}
		for _, key := range u.Fields() {
			delete(missing, key)
		}
		p.missing = missing
	}

	return p
}
