package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/villagef/splot-ani-server/config"
	"github.com/villagef/splot-ani-server/internal/domain"
	"github.com/villagef/splot-ani-server/internal/dto"
	repomocks "github.com/villagef/splot-ani-server/internal/repository/mocks"
	"github.com/villagef/splot-ani-server/internal/service/mocks"
	pkgdto "github.com/villagef/splot-ani-server/pkg/dto"
	"github.com/villagef/splot-ani-server/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceTestSuite struct {
	suite.Suite
	repo      *repomocks.MockProductRepository
	publisher *mocks.MockEventPublisher
	service   ProductService
	ctx       context.Context
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.repo = new(repomocks.MockProductRepository)
	s.publisher = new(mocks.MockEventPublisher)
	s.ctx = context.Background()
	s.service = CreateProductService(s.repo, config.Config{
		GraphQLConfig: config.GraphQLConfig{DefaultLimit: 4, MaxLimit: 100, MaxDepth: 10},
	}, s.publisher)
}

func (s *ProductServiceTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.publisher.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) decodeEvent(msg []byte) dto.KafkaMessage {
	var event dto.KafkaMessage
	s.Require().NoError(json.Unmarshal(msg, &event))
	return event
}

func (s *ProductServiceTestSuite) Test_GetProducts_Pagination() {
	testCases := []struct {
		Name     string
		Filter   pkgdto.Filter
		Expected pkgdto.Filter
	}{
		{Name: "Defaults", Filter: pkgdto.Filter{}, Expected: pkgdto.Filter{Page: 1, Limit: 4}},
		{Name: "Non-positive values", Filter: pkgdto.Filter{Page: -2, Limit: 0}, Expected: pkgdto.Filter{Page: 1, Limit: 4}},
		{Name: "Explicit values", Filter: pkgdto.Filter{Page: 3, Limit: 10}, Expected: pkgdto.Filter{Page: 3, Limit: 10}},
		{Name: "Limit is capped", Filter: pkgdto.Filter{Page: 1, Limit: 1000}, Expected: pkgdto.Filter{Page: 1, Limit: 100}},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			s.repo.On("GetProducts", s.ctx, tc.Expected).Return([]domain.Product{}, nil).Once()

			products, err := s.service.GetProducts(s.ctx, tc.Filter)
			s.NoError(err)
			s.NotNil(products)
		})
	}
}

func (s *ProductServiceTestSuite) Test_GetCategoryProducts_CappedAtMaxLimit() {
	category := "kitchen"
	s.repo.On("GetProducts", s.ctx, pkgdto.Filter{Page: 1, Limit: 100, Category: &category}).
		Return([]domain.Product{{Name: "Mug", Category: category}}, nil)

	products, err := s.service.GetCategoryProducts(s.ctx, category)
	s.NoError(err)
	s.Len(products, 1)
}

func (s *ProductServiceTestSuite) Test_GetProductByID() {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Mug"}
	storeErr := errors.New("boom")

	s.repo.On("GetProductByID", s.ctx, product.ID.Hex()).Return(product, nil)
	s.repo.On("GetProductByID", s.ctx, "missing").Return(domain.Product{}, errs.ErrNotFound)
	s.repo.On("GetProductByID", s.ctx, "abc").Return(domain.Product{}, errs.ErrInvalidID)
	s.repo.On("GetProductByID", s.ctx, "broken").Return(domain.Product{}, storeErr)

	found, err := s.service.GetProductByID(s.ctx, product.ID.Hex())
	s.NoError(err)
	s.Equal(&product, found)

	for _, id := range []string{"missing", "abc"} {
		found, err = s.service.GetProductByID(s.ctx, id)
		s.NoError(err)
		s.Nil(found)
	}

	found, err = s.service.GetProductByID(s.ctx, "broken")
	s.ErrorIs(err, storeErr)
	s.Nil(found)
}

func (s *ProductServiceTestSuite) Test_AddProduct_PublishesEvent() {
	request := dto.ProductRequest{Name: "Mug", Price: 10, Category: "kitchen", Slug: "mug"}
	created := request.ToDomain()
	created.ID = primitive.NewObjectID()

	s.repo.On("AddProduct", s.ctx, request.ToDomain()).Return(created, nil)
	s.publisher.On("Publish", mock.Anything, created.ID.Hex(), mock.Anything).
		Run(func(args mock.Arguments) {
			event := s.decodeEvent(args.Get(2).([]byte))
			s.Equal(dto.EventProductCreated, event.EventType)
			s.NotEmpty(event.EventID)
		}).
		Return(nil)

	product, err := s.service.AddProduct(s.ctx, request)
	s.NoError(err)
	s.Equal(&created, product)
}

func (s *ProductServiceTestSuite) Test_AddProduct_PublishFailureIsIgnored() {
	request := dto.ProductRequest{Name: "Mug"}
	created := request.ToDomain()
	created.ID = primitive.NewObjectID()

	s.repo.On("AddProduct", s.ctx, request.ToDomain()).Return(created, nil)
	s.publisher.On("Publish", mock.Anything, created.ID.Hex(), mock.Anything).Return(errors.New("broker down"))

	product, err := s.service.AddProduct(s.ctx, request)
	s.NoError(err)
	s.Equal(&created, product)
}

func (s *ProductServiceTestSuite) Test_UpdateProduct() {
	id := primitive.NewObjectID()
	name := "Cup"
	update := domain.ProductUpdate{Name: &name}
	updated := domain.Product{ID: id, Name: name}

	s.Run("Publishes changed fields", func() {
		s.repo.On("UpdateProduct", s.ctx, id.Hex(), update).Return(updated, nil).Once()
		s.publisher.On("Publish", mock.Anything, id.Hex(), mock.Anything).
			Run(func(args mock.Arguments) {
				event := s.decodeEvent(args.Get(2).([]byte))
				s.Equal(dto.EventProductUpdated, event.EventType)
				data := event.Data.(map[string]interface{})
				s.Equal([]interface{}{"name"}, data["changed_fields"])
			}).
			Return(nil).Once()

		product, err := s.service.UpdateProduct(s.ctx, id.Hex(), update)
		s.NoError(err)
		s.Equal(&updated, product)
	})

	s.Run("Empty mask publishes nothing", func() {
		s.repo.On("UpdateProduct", s.ctx, id.Hex(), domain.ProductUpdate{}).Return(updated, nil).Once()

		product, err := s.service.UpdateProduct(s.ctx, id.Hex(), domain.ProductUpdate{})
		s.NoError(err)
		s.Equal(&updated, product)
	})

	s.Run("Missing product is nil", func() {
		s.repo.On("UpdateProduct", s.ctx, "missing", update).Return(domain.Product{}, errs.ErrNotFound).Once()

		product, err := s.service.UpdateProduct(s.ctx, "missing", update)
		s.NoError(err)
		s.Nil(product)
	})
}

func (s *ProductServiceTestSuite) Test_DeleteProduct() {
	deleted := domain.Product{ID: primitive.NewObjectID(), Name: "Mug"}

	s.repo.On("DeleteProduct", s.ctx, deleted.ID.Hex()).Return(deleted, nil)
	s.repo.On("DeleteProduct", s.ctx, "missing").Return(domain.Product{}, errs.ErrNotFound)
	s.publisher.On("Publish", mock.Anything, deleted.ID.Hex(), mock.Anything).
		Run(func(args mock.Arguments) {
			s.Equal(dto.EventProductDeleted, s.decodeEvent(args.Get(2).([]byte)).EventType)
		}).
		Return(nil).Once()

	product, err := s.service.DeleteProduct(s.ctx, deleted.ID.Hex())
	s.NoError(err)
	s.Equal(&deleted, product)

	product, err = s.service.DeleteProduct(s.ctx, "missing")
	s.NoError(err)
	s.Nil(product)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
