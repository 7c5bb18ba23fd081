package sqlite

import (
	"database/sql"
	"fmt"

	"mentalbank/internal/goal/repository"
	"mentalbank/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the goal domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("goal/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("goal/repository/sqlite.%s", method)
}
