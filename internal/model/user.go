package model

import "time"

// Role values allowed by the user_role enum in the database.
const (
	RoleClient = "client"
	RoleChef   = "chef"
)

// User represents an account in the cooking app. A user is either a
// client or a chef; the store's user_role enum is the final authority
// on the role value.
type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:100;not null"`
	Email string `json:"email" gorm:"uniqueIndex;size:100;not null"`
	// Stored verbatim. No hashing exists anywhere in this system yet;
	// that has to land before this service can face real traffic.
	Password  string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role      string    `json:"role" gorm:"type:user_role;default:'client'"`
	CreatedAt time.Time `json:"created_at"`
}
