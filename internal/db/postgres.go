package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgreSQL error codes we classify explicitly. Everything else is
// propagated as-is for the handler layer to treat as an internal fault.
const (
	pgDuplicateObject = "42710"
	pgUniqueViolation = "23505"
)

// NewPostgres returns a connected GORM DB instance. The underlying pgx
// pool is shared for the process lifetime and is safe for concurrent use.
func NewPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// IsDuplicateObject reports whether err is Postgres complaining that a
// DDL object (e.g. the user_role type) already exists.
func IsDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgDuplicateObject
}

// IsUniqueViolation reports whether err is a unique-constraint violation,
// which for this schema means a duplicate email.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
