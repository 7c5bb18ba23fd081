package sqlite

import (
	"database/sql"
	"fmt"

	"mentalbank/internal/balance/repository"
	"mentalbank/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the balance domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("balance/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("balance/repository/sqlite.%s", method)
}
