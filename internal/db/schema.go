package db

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

const createUserRoleType = `CREATE TYPE user_role AS ENUM ('client', 'chef')`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(100) UNIQUE NOT NULL,
	password VARCHAR(255) NOT NULL,
	role user_role DEFAULT 'client',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// InitSchema ensures the enum type and the users table exist. It runs on
// every boot and is idempotent: an already-existing user_role type is
// tolerated, any other failure aborts startup.
//
// The pantries table is deliberately not created here; it is provisioned
// out of band by cmd/migrate.
func InitSchema(db *gorm.DB) error {
	if err := db.Exec(createUserRoleType).Error; err != nil && !IsDuplicateObject(err) {
		return fmt.Errorf("create user_role type: %w", err)
	}
	if err := db.Exec(createUsersTable).Error; err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	log.Println("database schema initialized")
	return nil
}
