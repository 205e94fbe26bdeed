package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"cookingapp/internal/cache"
	"cookingapp/internal/db"
	"cookingapp/internal/errors"
	"cookingapp/internal/model"
	"cookingapp/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes domain operations for users.
type UserService interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, name, email, role string) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// CreateUser inserts a user. Email uniqueness is enforced by the store;
// the race between two concurrent creates for the same email is settled
// there and surfaces as ErrEmailTaken for the loser.
func (s *userService) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user.Role == "" {
		user.Role = model.RoleClient
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, errors.ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by id with a fail-safe read-through cache.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// ListUsers returns all users, most recently created first.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// UpdateUser overwrites name, email, and role. The password column is
// not reachable through this operation.
func (s *userService) UpdateUser(ctx context.Context, id uint, name, email, role string) (*model.User, error) {
	user, err := s.repo.Update(ctx, id, name, email, role)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, errors.ErrEmailTaken
		}
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}
