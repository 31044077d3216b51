package sqlite

import (
	"database/sql"

	"pet-inventory/internal/adapters/storage/sqlrow"
)

// NewPetsRepo: repo SQL compartido con placeholders ?.
func NewPetsRepo(db *sql.DB) *sqlrow.PetsRepo {
	return sqlrow.NewPetsRepo(db, sqlrow.Question)
}
