package db

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateObject(t *testing.T) {
	dup := &pgconn.PgError{Code: "42710", Message: `type "user_role" already exists`}

	assert.True(t, IsDuplicateObject(dup))
	assert.True(t, IsDuplicateObject(fmt.Errorf("create user_role type: %w", dup)))
	assert.False(t, IsDuplicateObject(&pgconn.PgError{Code: "42601"}))
	assert.False(t, IsDuplicateObject(gorm.ErrInvalidDB))
	assert.False(t, IsDuplicateObject(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	uniq := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	assert.True(t, IsUniqueViolation(uniq))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert user: %w", uniq)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))
	assert.False(t, IsUniqueViolation(nil))
}
