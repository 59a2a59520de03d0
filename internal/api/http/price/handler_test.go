package price

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"phonefix/internal/api/http/middleware/auth"
	"phonefix/internal/domain/catalog"
	"phonefix/internal/domain/price"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, filter price.Filter) ([]price.Price, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]price.Price), args.Error(1)
}

func (m *MockService) PriceList(ctx context.Context) (price.List, error) {
	args := m.Called(ctx)
	return args.Get(0).(price.List), args.Error(1)
}

func (m *MockService) Upsert(ctx context.Context, in price.Input, id *int) (price.Price, error) {
	args := m.Called(ctx, in, id)
	return args.Get(0).(price.Price), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int, in price.Input) (price.Price, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(price.Price), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestHandler_upsert(t *testing.T) {
	authCtx := auth.WithLogin(context.Background(), "admin")

	t.Run("Create_AppliesDefaults", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil, nil)

		input := &upsertInput{}
		input.Body.CategoryID = 1
		input.Body.RepairTypeID = 2
		input.Body.ModelName = "iPhone 13"
		input.Body.Price = 12800

		svc.On("Upsert", mock.Anything, mock.MatchedBy(func(in price.Input) bool {
			return in.PriceSuffix == defaultPriceSuffix && in.IsVisible && in.SortOrder == 0 &&
				in.Price.Equal(decimal.NewFromInt(12800))
		}), (*int)(nil)).Return(price.Price{ID: 10}, nil)

		resp, err := h.upsert(authCtx, input)

		assert.NoError(t, err)
		assert.Equal(t, 10, resp.Body.ID)
		svc.AssertExpectations(t)
	})

	t.Run("Overwrite_WithPriceID", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil, nil)

		id := 10
		input := &upsertInput{PriceID: &id}
		input.Body.CategoryID = 1
		input.Body.RepairTypeID = 2
		input.Body.ModelName = "iPhone 13"
		input.Body.Price = 9800

		svc.On("Upsert", mock.Anything, mock.Anything, &id).Return(price.Price{ID: id}, nil)

		resp, err := h.upsert(authCtx, input)

		assert.NoError(t, err)
		assert.Equal(t, id, resp.Body.ID)
	})

	t.Run("UnknownCatalogReference", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil, nil)

		input := &upsertInput{}
		input.Body.CategoryID = 999
		input.Body.RepairTypeID = 2
		input.Body.ModelName = "iPhone 13"

		svc.On("Upsert", mock.Anything, mock.Anything, (*int)(nil)).
			Return(price.Price{}, price.ErrInvalidReference)

		resp, err := h.upsert(authCtx, input)

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown category or repair type")
	})
}

func TestHandler_priceList(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	svc.On("PriceList", mock.Anything).Return(price.List{
		Categories:  []catalog.Category{{ID: 1}},
		RepairTypes: []catalog.RepairType{{ID: 2}},
		Prices:      []price.Price{{ID: 10}},
	}, nil)

	resp, err := h.priceList(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, resp.Body.Categories, 1)
	assert.Len(t, resp.Body.RepairTypes, 1)
	assert.Len(t, resp.Body.Prices, 1)
}

func TestHandler_delete_NotFound(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	svc.On("Delete", mock.Anything, 99).Return(price.ErrNotFound)

	resp, err := h.delete(auth.WithLogin(context.Background(), "admin"), &deleteInput{ID: 99})

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
