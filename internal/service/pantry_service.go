package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"cookingapp/internal/cache"
	"cookingapp/internal/errors"
	"cookingapp/internal/model"
	"cookingapp/internal/repository"
)

const pantryCacheTTL = 5 * time.Minute

// PantryService exposes domain operations for pantries. Input is assumed
// to be normalized by the handler (trimmed name, nil for an empty
// description) before it reaches this layer.
type PantryService interface {
	CreatePantry(ctx context.Context, pantry *model.Pantry) (*model.Pantry, error)
	GetPantry(ctx context.Context, id uint) (*model.Pantry, error)
	ListPantries(ctx context.Context) ([]model.Pantry, error)
}

type pantryService struct {
	repo  repository.PantryRepository
	cache *cache.Client
}

// NewPantryService builds a PantryService with repository and cache.
func NewPantryService(repo repository.PantryRepository, cache *cache.Client) PantryService {
	return &pantryService{repo: repo, cache: cache}
}

func (s *pantryService) cacheKey(id uint) string {
	return fmt.Sprintf("pantry:%d", id)
}

func (s *pantryService) CreatePantry(ctx context.Context, pantry *model.Pantry) (*model.Pantry, error) {
	if err := s.repo.Create(ctx, pantry); err != nil {
		return nil, err
	}
	return pantry, nil
}

// GetPantry retrieves a pantry by id with a fail-safe read-through cache.
func (s *pantryService) GetPantry(ctx context.Context, id uint) (*model.Pantry, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Pantry
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	pantry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPantryNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(pantry); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, pantryCacheTTL)
	}
	return pantry, nil
}

func (s *pantryService) ListPantries(ctx context.Context) ([]model.Pantry, error) {
	return s.repo.List(ctx)
}
