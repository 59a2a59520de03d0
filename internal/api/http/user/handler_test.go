package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, loginID, password string) (string, error) {
	args := m.Called(ctx, loginID, password)
	return args.String(0), args.Error(1)
}

func (m *MockService) Validate(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockService) Provision(ctx context.Context, loginID, password string) error {
	args := m.Called(ctx, loginID, password)
	return args.Error(0)
}

func TestHandler_login_Success(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Login", mock.Anything, "admin", "password123").Return("issued-token", nil)

	input := &loginInput{}
	input.Body.LoginID = "admin"
	input.Body.Password = "password123"

	resp, err := h.login(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "issued-token", resp.Body.Token)
	svc.AssertExpectations(t)
}

func TestHandler_login_Failure(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Login", mock.Anything, "admin", "wrong").Return("", user.ErrInvalidAuth)

	input := &loginInput{}
	input.Body.LoginID = "admin"
	input.Body.Password = "wrong"

	resp, err := h.login(context.Background(), input)

	assert.Nil(t, resp)
	assert.Error(t, err)
	// The 401 message never distinguishes a bad login id from a bad password
	assert.Contains(t, err.Error(), "Invalid login id or password")
}
