package news

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"phonefix/internal/api/http/middleware/auth"
	"phonefix/internal/domain/news"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]news.News, error) {
	args := m.Called(ctx)
	return args.Get(0).([]news.News), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, in news.Input) (news.News, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(news.News), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int, in news.Input) (news.News, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(news.News), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestHandler_create(t *testing.T) {
	authCtx := auth.WithLogin(context.Background(), "admin")

	t.Run("Success_ParsesDate", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil, nil)

		input := &createInput{}
		input.Body.Title = "Summer hours"
		input.Body.Content = "We close at 18:00."
		input.Body.PublishDate = "2025-08-01"

		want := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(in news.Input) bool {
			return in.PublishDate.Equal(want)
		})).Return(news.News{ID: 1, Title: "Summer hours", PublishDate: want}, nil)

		resp, err := h.create(authCtx, input)

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Body.ID)
		svc.AssertExpectations(t)
	})

	t.Run("Error_BadDate", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil, nil)

		input := &createInput{}
		input.Body.Title = "Summer hours"
		input.Body.Content = "text"
		input.Body.PublishDate = "01.08.2025"

		resp, err := h.create(authCtx, input)

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestHandler_update_NotFound(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	svc.On("Update", mock.Anything, 99, mock.Anything).Return(news.News{}, news.ErrNotFound)

	input := &updateInput{ID: 99}
	input.Body.Title = "x"
	input.Body.Content = "y"
	input.Body.PublishDate = "2025-08-01"

	resp, err := h.update(auth.WithLogin(context.Background(), "admin"), input)

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestHandler_list_Public(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	svc.On("List", mock.Anything).Return([]news.News{{ID: 2}, {ID: 1}}, nil)

	// No auth context; the list endpoint is public
	resp, err := h.list(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, resp.Body, 2)
}
