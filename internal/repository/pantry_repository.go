package repository

import (
	"context"

	"gorm.io/gorm"

	"cookingapp/internal/model"
)

// PantryRepository defines persistence operations for pantries. Only
// create and read exist; there is no update or delete path.
//
// Precondition: the pantries table must already exist (cmd/migrate).
type PantryRepository interface {
	Create(ctx context.Context, pantry *model.Pantry) error
	FindByID(ctx context.Context, id uint) (*model.Pantry, error)
	List(ctx context.Context) ([]model.Pantry, error)
}

type pantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository builds a GORM-backed repository.
func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) Create(ctx context.Context, pantry *model.Pantry) error {
	return r.db.WithContext(ctx).Create(pantry).Error
}

func (r *pantryRepository) FindByID(ctx context.Context, id uint) (*model.Pantry, error) {
	var pantry model.Pantry
	if err := r.db.WithContext(ctx).First(&pantry, id).Error; err != nil {
		return nil, err
	}
	return &pantry, nil
}

func (r *pantryRepository) List(ctx context.Context) ([]model.Pantry, error) {
	pantries := make([]model.Pantry, 0)
	if err := r.db.WithContext(ctx).Find(&pantries).Error; err != nil {
		return nil, err
	}
	return pantries, nil
}
