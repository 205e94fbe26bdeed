package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "cookingapp/internal/errors"
	"cookingapp/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, name, email, role string) (*model.User, error) {
	args := m.Called(ctx, id, name, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     *model.User
		repoErr  error
		wantErr  error
		wantRole string
	}{
		{
			name:     "assigns default role when empty",
			user:     &model.User{Name: "Alice", Email: "alice@example.com", Password: "secret"},
			wantRole: model.RoleClient,
		},
		{
			name:     "keeps explicit chef role",
			user:     &model.User{Name: "Bob", Email: "bob@example.com", Password: "secret", Role: model.RoleChef},
			wantRole: model.RoleChef,
		},
		{
			name:    "duplicate email becomes ErrEmailTaken",
			user:    &model.User{Name: "Alice", Email: "alice@example.com", Password: "secret"},
			repoErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantErr: apperrors.ErrEmailTaken,
		},
		{
			name:    "other store errors propagate unchanged",
			user:    &model.User{Name: "Alice", Email: "alice@example.com", Password: "secret"},
			repoErr: gorm.ErrInvalidDB,
			wantErr: gorm.ErrInvalidDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
				Run(func(args mock.Arguments) {
					u := args.Get(1).(*model.User)
					u.ID = 1
					u.CreatedAt = time.Now()
				}).
				Return(tt.repoErr)

			svc := NewUserService(repo, nil)
			created, err := svc.CreateUser(context.Background(), tt.user)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, created)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRole, created.Role)
			assert.NotZero(t, created.ID)
			assert.False(t, created.CreatedAt.IsZero())
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(7)).
			Return(&model.User{ID: 7, Name: "Alice", Email: "alice@example.com", Role: model.RoleClient}, nil)

		svc := NewUserService(repo, nil)
		user, err := svc.GetUser(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("absent row is ErrUserNotFound, not a fault", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(999999)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(repo, nil)
		user, err := svc.GetUser(context.Background(), 999999)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	earlier := time.Now().Add(-time.Hour)
	later := time.Now()

	repo := new(MockUserRepository)
	repo.On("List", mock.Anything).Return([]model.User{
		{ID: 2, Name: "B", CreatedAt: later},
		{ID: 1, Name: "A", CreatedAt: earlier},
	}, nil)

	svc := NewUserService(repo, nil)
	users, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	// repository order (created_at DESC) passes through untouched
	assert.Equal(t, uint(2), users[0].ID)
	assert.Equal(t, uint(1), users[1].ID)
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("updates name, email, and role only", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Update", mock.Anything, uint(3), "Alice", "alice@new.example.com", model.RoleChef).
			Return(&model.User{ID: 3, Name: "Alice", Email: "alice@new.example.com", Role: model.RoleChef}, nil)

		svc := NewUserService(repo, nil)
		updated, err := svc.UpdateUser(context.Background(), 3, "Alice", "alice@new.example.com", model.RoleChef)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleChef, updated.Role)
		repo.AssertExpectations(t)
	})

	t.Run("absent id is ErrUserNotFound", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Update", mock.Anything, uint(404), "X", "x@example.com", model.RoleClient).
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(repo, nil)
		updated, err := svc.UpdateUser(context.Background(), 404, "X", "x@example.com", model.RoleClient)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, updated)
	})

	t.Run("duplicate email becomes ErrEmailTaken", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Update", mock.Anything, uint(3), "Alice", "taken@example.com", model.RoleClient).
			Return(nil, &pgconn.PgError{Code: "23505"})

		svc := NewUserService(repo, nil)
		_, err := svc.UpdateUser(context.Background(), 3, "Alice", "taken@example.com", model.RoleClient)

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}
