package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByLoginID(ctx context.Context, loginID string) (User, error) {
	args := m.Called(ctx, loginID)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByToken(ctx context.Context, token string) (User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) UpdateToken(ctx context.Context, loginID, token string) error {
	args := m.Called(ctx, loginID, token)
	return args.Error(0)
}

func (m *MockRepository) Upsert(ctx context.Context, loginID, passwordHash string) error {
	args := m.Called(ctx, loginID, passwordHash)
	return args.Error(0)
}

func isTokenShaped(token string) bool {
	if len(token) != tokenLength {
		return false
	}
	for _, c := range token {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

func TestService_Login_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	loginID := "admin"
	password := "testpassword123"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo.On("FindByLoginID", mock.Anything, loginID).Return(User{
		LoginID:  loginID,
		Password: string(hash),
	}, nil)

	// Token content is random, so only its shape can be asserted
	mockRepo.On("UpdateToken", mock.Anything, loginID, mock.MatchedBy(isTokenShaped)).Return(nil)

	token, err := service.Login(context.Background(), loginID, password)
	assert.NoError(t, err)
	assert.True(t, isTokenShaped(token))

	mockRepo.AssertExpectations(t)
}

func TestService_Login_UnknownUser(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByLoginID", mock.Anything, "nobody").Return(User{}, ErrNotFound)

	_, err := service.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidAuth)

	mockRepo.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	hash, err := bcrypt.GenerateFromPassword([]byte("correctpassword"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo.On("FindByLoginID", mock.Anything, "admin").Return(User{
		LoginID:  "admin",
		Password: string(hash),
	}, nil)

	_, err = service.Login(context.Background(), "admin", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidAuth)

	mockRepo.AssertExpectations(t)
}

// Unknown user and wrong password must be indistinguishable to the caller.
func TestService_Login_UniformFailure(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	repoUnknown := new(MockRepository)
	repoUnknown.On("FindByLoginID", mock.Anything, "ghost").Return(User{}, ErrNotFound)

	repoWrongPass := new(MockRepository)
	repoWrongPass.On("FindByLoginID", mock.Anything, "admin").Return(User{
		LoginID:  "admin",
		Password: string(hash),
	}, nil)

	_, errUnknown := NewService(repoUnknown, slog.Default()).Login(context.Background(), "ghost", "x")
	_, errWrongPass := NewService(repoWrongPass, slog.Default()).Login(context.Background(), "admin", "x")

	assert.Equal(t, errUnknown, errWrongPass)
}

func TestService_Login_TokensDiffer(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	password := "testpassword123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo.On("FindByLoginID", mock.Anything, "admin").Return(User{
		LoginID:  "admin",
		Password: string(hash),
	}, nil)
	mockRepo.On("UpdateToken", mock.Anything, "admin", mock.AnythingOfType("string")).Return(nil)

	first, err := service.Login(context.Background(), "admin", password)
	assert.NoError(t, err)
	second, err := service.Login(context.Background(), "admin", password)
	assert.NoError(t, err)

	// Each login overwrites the stored token with a fresh one
	assert.NotEqual(t, first, second)
	mockRepo.AssertNumberOfCalls(t, "UpdateToken", 2)
}

func TestService_Validate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	token := "sometoken"
	mockRepo.On("FindByToken", mock.Anything, token).Return(User{LoginID: "admin"}, nil)

	loginID, err := service.Validate(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", loginID)
}

func TestService_Validate_UnknownToken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByToken", mock.Anything, "stale").Return(User{}, ErrNotFound)

	_, err := service.Validate(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Validate_EmptyToken(t *testing.T) {
	service := NewService(new(MockRepository), slog.Default())

	_, err := service.Validate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Provision(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	password := "adminpassword"
	mockRepo.On("Upsert", mock.Anything, "admin", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	})).Return(nil)

	err := service.Provision(context.Background(), "admin", password)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Provision_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Upsert", mock.Anything, "admin", mock.AnythingOfType("string")).
		Return(errors.New("database error"))

	err := service.Provision(context.Background(), "admin", "adminpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}
