package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/villagef/splot-ani-server/internal/domain"
	pkgdto "github.com/villagef/splot-ani-server/pkg/dto"
	"github.com/villagef/splot-ani-server/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBProductRepositoryImpl struct {
	collection *mongo.Collection
}

func CreateNewMongoDBRepository(db *mongo.Database, collection string) ProductRepository {
	return &MongoDBProductRepositoryImpl{collection: db.Collection(collection)}
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error) {
	query := bson.D{}
	if filter.Category != nil {
		query = append(query, bson.E{Key: "category", Value: *filter.Category})
	}

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit)).SetSkip(filter.Skip())
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, fmt.Errorf("failed to retrieve documents: %w", err)
	}
	defer cursor.Close(ctx)

	data = []domain.Product{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := parseObjectID(id)
	if err != nil {
		return
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.collection.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		return product, translateError(ctx, "GetProductByID", err)
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (product domain.Product, err error) {
	data.ID = primitive.NilObjectID
	if data.Images == nil {
		data.Images = []*string{}
	}

	result, err := r.collection.InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return product, fmt.Errorf("failed to insert document: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return product, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	data.ID = insertedID
	return data, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) (product domain.Product, err error) {
	if update.IsEmpty() {
		return r.GetProductByID(ctx, id)
	}

	productID, err := parseObjectID(id)
	if err != nil {
		return
	}

	filter := bson.D{{Key: "_id", Value: productID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.collection.FindOneAndUpdate(ctx, filter, buildUpdateDocument(update), opts).Decode(&product)
	if err != nil {
		return product, translateError(ctx, "UpdateProduct", err)
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := parseObjectID(id)
	if err != nil {
		return
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.collection.FindOneAndDelete(ctx, filter).Decode(&product)
	if err != nil {
		return product, translateError(ctx, "DeleteProduct", err)
	}

	return product, nil
}

// buildUpdateDocument turns the mask into $set and $unset operators. The mask
// must not be empty.
func buildUpdateDocument(update domain.ProductUpdate) bson.D {
	set := bson.D{}
	unset := bson.D{}

	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *update.Price})
	}
	set, unset = appendOptional(set, unset, "previousPrice", update.PreviousPrice)
	set, unset = appendOptional(set, unset, "smallestPrice", update.SmallestPrice)
	if update.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *update.Category})
	}
	if update.Quantity != nil {
		set = append(set, bson.E{Key: "quantity", Value: *update.Quantity})
	}
	if update.Slug != nil {
		set = append(set, bson.E{Key: "slug", Value: *update.Slug})
	}
	if update.Images != nil {
		images := *update.Images
		if images == nil {
			images = []*string{}
		}
		set = append(set, bson.E{Key: "images", Value: images})
	}

	doc := bson.D{}
	if len(set) > 0 {
		doc = append(doc, bson.E{Key: "$set", Value: set})
	}
	if len(unset) > 0 {
		doc = append(doc, bson.E{Key: "$unset", Value: unset})
	}

	return doc
}

func appendOptional(set, unset bson.D, key string, value domain.Optional[float64]) (bson.D, bson.D) {
	if !value.Set {
		return set, unset
	}

	if value.Value == nil {
		return set, append(unset, bson.E{Key: key, Value: ""})
	}

	return append(set, bson.E{Key: key, Value: *value.Value}), unset
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return objectID, fmt.Errorf("%w: %q", errs.ErrInvalidID, id)
	}

	return objectID, nil
}

func translateError(ctx context.Context, component string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		log.Ctx(ctx).Debug().Str("component", component).Msg("product not found")
		return errs.ErrNotFound
	}

	log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
	return fmt.Errorf("%s: %w", component, err)
}
