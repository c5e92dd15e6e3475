package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/villagef/splot-ani-server/config"
	"github.com/villagef/splot-ani-server/internal/domain"
	"github.com/villagef/splot-ani-server/internal/dto"
	"github.com/villagef/splot-ani-server/internal/repository"
	pkgdto "github.com/villagef/splot-ani-server/pkg/dto"
	"github.com/villagef/splot-ani-server/pkg/errs"
)

const publishTimeout = 5 * time.Second

type ProductServiceImpl struct {
	repo      repository.ProductRepository
	config    config.Config
	publisher EventPublisher
}

func CreateProductService(repo repository.ProductRepository, config config.Config, publisher EventPublisher) ProductService {
	if publisher == nil {
		publisher = NoopPublisher{}
	}

	return &ProductServiceImpl{repo: repo, config: config, publisher: publisher}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error) {
	return s.repo.GetProducts(ctx, s.normalizeFilter(filter))
}

func (s *ProductServiceImpl) GetCategoryProducts(ctx context.Context, category string) (data []domain.Product, err error) {
	return s.repo.GetProducts(ctx, pkgdto.Filter{
		Page:     1,
		Limit:    s.config.GraphQLConfig.MaxLimit,
		Category: &category,
	})
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	return found(product, err)
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (*domain.Product, error) {
	product, err := s.repo.AddProduct(ctx, data.ToDomain())
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, dto.EventProductCreated, product.ID.Hex(), product)

	return &product, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	product, err := s.repo.UpdateProduct(ctx, id, update)
	updated, err := found(product, err)
	if err != nil || updated == nil {
		return updated, err
	}

	if !update.IsEmpty() {
		s.publishEvent(ctx, dto.EventProductUpdated, updated.ID.Hex(), dto.ProductUpdatedEvent{
			Product:       updated,
			ChangedFields: update.Fields(),
		})
	}

	return updated, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.DeleteProduct(ctx, id)
	deleted, err := found(product, err)
	if err != nil || deleted == nil {
		return deleted, err
	}

	s.publishEvent(ctx, dto.EventProductDeleted, deleted.ID.Hex(), deleted)

	return deleted, nil
}

// normalizeFilter applies the page defaults: pages start at 1, a missing or
// non-positive limit falls back to the default and large limits are capped.
func (s *ProductServiceImpl) normalizeFilter(filter pkgdto.Filter) pkgdto.Filter {
	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.Limit < 1 {
		filter.Limit = s.config.GraphQLConfig.DefaultLimit
	}

	if maxLimit := s.config.GraphQLConfig.MaxLimit; maxLimit > 0 && filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	return filter
}

// publishEvent reports a committed change. The write already happened, so a
// failed publish is logged and otherwise ignored.
func (s *ProductServiceImpl) publishEvent(ctx context.Context, eventType string, key string, data interface{}) {
	kafkaMsg := dto.KafkaMessage{
		EventID:   ulid.Make().String(),
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("failed to marshal Kafka message")
		return
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(publishCtx, key, jsonMsg); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").
			Str("event_type", eventType).Str("product_id", key).
			Msg("failed to write Kafka message")
	}
}

func found(product domain.Product, err error) (*domain.Product, error) {
	if errs.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &product, nil
}
