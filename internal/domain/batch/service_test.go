package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, in CreateInput) (Batch, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(Batch), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]Batch, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]Batch), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (Batch, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Batch), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, in UpdateInput) (Batch, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(Batch), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) FindByIdentifiers(ctx context.Context, makeshopID, kakakuID string) (Batch, error) {
	args := m.Called(ctx, makeshopID, kakakuID)
	return args.Get(0).(Batch), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	in := CreateInput{
		GoodName:           "iPhone 13",
		MakeshopIdentifier: "shop_A",
		KakakuProductID:    "kakaku_Z",
		BatchType:          1,
		IsEnabled:          true,
	}

	mockRepo.On("FindByIdentifiers", mock.Anything, "shop_A", "kakaku_Z").Return(Batch{}, ErrNotFound)
	mockRepo.On("Create", mock.Anything, in).Return(Batch{ID: 7, GoodName: "iPhone 13"}, nil)

	b, err := service.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, 7, b.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_DuplicatePair(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	in := CreateInput{
		MakeshopIdentifier: "shop_A",
		KakakuProductID:    "kakaku_Z",
		BatchType:          1,
	}

	mockRepo.On("FindByIdentifiers", mock.Anything, "shop_A", "kakaku_Z").Return(Batch{ID: 3}, nil)

	_, err := service.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrConflict)

	// Create must not run when the pair already exists
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_List_ClampsLimit(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		skip          int
		expectedLimit int
		expectedSkip  int
	}{
		{name: "zero limit", limit: 0, skip: 0, expectedLimit: DefaultLimit, expectedSkip: 0},
		{name: "negative limit", limit: -5, skip: 0, expectedLimit: DefaultLimit, expectedSkip: 0},
		{name: "oversized limit", limit: 5000, skip: 0, expectedLimit: DefaultLimit, expectedSkip: 0},
		{name: "negative skip", limit: 10, skip: -1, expectedLimit: 10, expectedSkip: 0},
		{name: "in range", limit: 50, skip: 20, expectedLimit: 50, expectedSkip: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())

			mockRepo.On("List", mock.Anything, ListFilter{
				Skip:  tt.expectedSkip,
				Limit: tt.expectedLimit,
			}).Return([]Batch{}, nil)

			_, err := service.List(context.Background(), ListFilter{Skip: tt.skip, Limit: tt.limit})
			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateInput_Empty(t *testing.T) {
	assert.True(t, UpdateInput{}.Empty())

	name := "renamed"
	assert.False(t, UpdateInput{GoodName: &name}.Empty())

	enabled := false
	assert.False(t, UpdateInput{IsEnabled: &enabled}.Empty())
}
