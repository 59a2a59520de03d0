package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"phonefix/internal/api/http/middleware/auth"
	"phonefix/internal/domain/batch"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, in batch.CreateInput) (batch.Batch, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(batch.Batch), args.Error(1)
}

func (m *MockService) List(ctx context.Context, filter batch.ListFilter) ([]batch.Batch, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]batch.Batch), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int) (batch.Batch, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(batch.Batch), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int, in batch.UpdateInput) (batch.Batch, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(batch.Batch), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestHandler_create(t *testing.T) {
	authCtx := auth.WithLogin(context.Background(), "admin")

	t.Run("Success_DefaultsEnabled", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		input := &createInput{}
		input.Body.GoodName = "iPhone 13"
		input.Body.MakeshopIdentifier = "shop_A"
		input.Body.KakakuProductID = "kakaku_Z"
		input.Body.BatchType = 1

		// is_enabled omitted in the body must come through as true
		svc.On("Create", mock.Anything, mock.MatchedBy(func(in batch.CreateInput) bool {
			return in.IsEnabled && in.GoodName == "iPhone 13"
		})).Return(batch.Batch{ID: 7, GoodName: "iPhone 13"}, nil)

		resp, err := h.create(authCtx, input)

		assert.NoError(t, err)
		assert.Equal(t, 7, resp.Body.ID)
		svc.AssertExpectations(t)
	})

	t.Run("Conflict_DuplicatePair", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		input := &createInput{}
		input.Body.GoodName = "iPhone 13"
		input.Body.MakeshopIdentifier = "shop_A"
		input.Body.KakakuProductID = "kakaku_Z"
		input.Body.BatchType = 1

		svc.On("Create", mock.Anything, mock.Anything).Return(batch.Batch{}, batch.ErrConflict)

		resp, err := h.create(authCtx, input)

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestHandler_get_NotFound(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Get", mock.Anything, 99).Return(batch.Batch{}, batch.ErrNotFound)

	resp, err := h.get(auth.WithLogin(context.Background(), "admin"), &getInput{ID: 99})

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestHandler_list_PassesFilters(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	goodName := "iPhone"
	enabled := true

	svc.On("List", mock.Anything, mock.MatchedBy(func(f batch.ListFilter) bool {
		return f.Skip == 5 && f.Limit == 50 &&
			f.GoodName != nil && *f.GoodName == goodName &&
			f.IsEnabled != nil && *f.IsEnabled
	})).Return([]batch.Batch{{ID: 1}, {ID: 2}}, nil)

	resp, err := h.list(auth.WithLogin(context.Background(), "admin"), &listInput{
		Skip:      5,
		Limit:     50,
		GoodName:  &goodName,
		IsEnabled: &enabled,
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Body, 2)
	svc.AssertExpectations(t)
}

func TestHandler_update(t *testing.T) {
	authCtx := auth.WithLogin(context.Background(), "admin")

	t.Run("Success_PartialBody", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		name := "renamed"
		input := &updateInput{ID: 7}
		input.Body.GoodName = &name

		svc.On("Update", mock.Anything, 7, mock.MatchedBy(func(in batch.UpdateInput) bool {
			return in.GoodName != nil && *in.GoodName == name && in.BatchType == nil
		})).Return(batch.Batch{ID: 7, GoodName: name}, nil)

		resp, err := h.update(authCtx, input)

		assert.NoError(t, err)
		assert.Equal(t, name, resp.Body.GoodName)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Update", mock.Anything, 99, mock.Anything).Return(batch.Batch{}, batch.ErrNotFound)

		resp, err := h.update(authCtx, &updateInput{ID: 99})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}

func TestHandler_delete(t *testing.T) {
	authCtx := auth.WithLogin(context.Background(), "admin")

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Delete", mock.Anything, 7).Return(nil)

		resp, err := h.delete(authCtx, &deleteInput{ID: 7})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Delete", mock.Anything, 99).Return(batch.ErrNotFound)

		resp, err := h.delete(authCtx, &deleteInput{ID: 99})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}
