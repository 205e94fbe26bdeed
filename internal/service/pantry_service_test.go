package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "cookingapp/internal/errors"
	"cookingapp/internal/model"
)

// MockPantryRepository is a mock implementation of PantryRepository.
type MockPantryRepository struct {
	mock.Mock
}

func (m *MockPantryRepository) Create(ctx context.Context, pantry *model.Pantry) error {
	args := m.Called(ctx, pantry)
	return args.Error(0)
}

func (m *MockPantryRepository) FindByID(ctx context.Context, id uint) (*model.Pantry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pantry), args.Error(1)
}

func (m *MockPantryRepository) List(ctx context.Context) ([]model.Pantry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pantry), args.Error(1)
}

func TestPantryService_CreatePantry(t *testing.T) {
	repo := new(MockPantryRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Pantry")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Pantry).ID = 1
		}).
		Return(nil)

	svc := NewPantryService(repo, nil)
	created, err := svc.CreatePantry(context.Background(), &model.Pantry{Name: "Spice Rack"})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Spice Rack", created.Name)
	assert.Nil(t, created.Description)
	repo.AssertExpectations(t)
}

func TestPantryService_GetPantry(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		desc := "everything dry"
		repo := new(MockPantryRepository)
		repo.On("FindByID", mock.Anything, uint(2)).
			Return(&model.Pantry{ID: 2, Name: "Cupboard", Description: &desc}, nil)

		svc := NewPantryService(repo, nil)
		pantry, err := svc.GetPantry(context.Background(), 2)

		assert.NoError(t, err)
		assert.Equal(t, "Cupboard", pantry.Name)
	})

	t.Run("absent row is ErrPantryNotFound, not a fault", func(t *testing.T) {
		repo := new(MockPantryRepository)
		repo.On("FindByID", mock.Anything, uint(999999)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPantryService(repo, nil)
		pantry, err := svc.GetPantry(context.Background(), 999999)

		assert.ErrorIs(t, err, apperrors.ErrPantryNotFound)
		assert.Nil(t, pantry)
	})
}

func TestPantryService_ListPantries(t *testing.T) {
	t.Run("empty store yields empty slice", func(t *testing.T) {
		repo := new(MockPantryRepository)
		repo.On("List", mock.Anything).Return([]model.Pantry{}, nil)

		svc := NewPantryService(repo, nil)
		pantries, err := svc.ListPantries(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, pantries)
	})

	t.Run("store errors propagate unchanged", func(t *testing.T) {
		repo := new(MockPantryRepository)
		repo.On("List", mock.Anything).Return(nil, gorm.ErrInvalidDB)

		svc := NewPantryService(repo, nil)
		_, err := svc.ListPantries(context.Background())

		assert.ErrorIs(t, err, gorm.ErrInvalidDB)
	})
}
