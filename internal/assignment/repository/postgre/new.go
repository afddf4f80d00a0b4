package postgre

import (
	"database/sql"
	"fmt"

	"campus-day-planner/internal/assignment/repository"
	"campus-day-planner/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the assignment domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("assignment/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("assignment/repository/postgre.%s", method)
}
