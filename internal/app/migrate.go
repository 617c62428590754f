package app

import (
	"database/sql"
	"fmt"

	goose "github.com/pressly/goose/v3"
)

// MigrationsDir is where the goose SQL migrations live, relative to the repository root.
const MigrationsDir = "db/migrations"

// Migrate applies every pending migration in dir.
func Migrate(db *sql.DB, dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
