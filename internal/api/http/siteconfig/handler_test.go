package siteconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"phonefix/internal/api/http/middleware/auth"
	"phonefix/internal/domain/siteconfig"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context) (siteconfig.Config, error) {
	args := m.Called(ctx)
	return args.Get(0).(siteconfig.Config), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, in siteconfig.Input) (siteconfig.Config, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(siteconfig.Config), args.Error(1)
}

func TestHandler_get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil, nil)

		svc.On("Get", mock.Anything).Return(siteconfig.Config{
			ID:        siteconfig.SingletonID,
			HeroTitle: "Fast phone repairs",
		}, nil)

		resp, err := h.get(context.Background(), nil)

		assert.NoError(t, err)
		assert.Equal(t, siteconfig.SingletonID, resp.Body.ID)
	})

	t.Run("NotProvisioned", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil, nil)

		svc.On("Get", mock.Anything).Return(siteconfig.Config{}, siteconfig.ErrNotProvisioned)

		resp, err := h.get(context.Background(), nil)

		// A missing singleton row is a deployment fault, not a 404
		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not provisioned")
	})
}

func TestHandler_update(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	line := "https://line.me/repair"
	input := &updateInput{}
	input.Body.HeroTitle = "New title"
	input.Body.HeroContent = "New content"
	input.Body.LineURL = &line

	svc.On("Update", mock.Anything, mock.MatchedBy(func(in siteconfig.Input) bool {
		return in.HeroTitle == "New title" && in.LineURL != nil && *in.LineURL == line &&
			in.XURL == nil
	})).Return(siteconfig.Config{ID: siteconfig.SingletonID, HeroTitle: "New title"}, nil)

	resp, err := h.update(auth.WithLogin(context.Background(), "admin"), input)

	assert.NoError(t, err)
	assert.Equal(t, "New title", resp.Body.HeroTitle)
	svc.AssertExpectations(t)
}
