package model

import "time"

// Pantry is a named collection of ingredients a user keeps at home.
// Only the metadata lives here; pantry contents are a separate feature.
type Pantry struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName keeps the table name aligned with the existing database.
func (Pantry) TableName() string {
	return "pantries"
}
