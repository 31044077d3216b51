package storage

import (
	"context"
	"fmt"

	"pet-inventory/internal/adapters/storage/memory"
	pg "pet-inventory/internal/adapters/storage/postgres"
	"pet-inventory/internal/adapters/storage/sqlite"
	"pet-inventory/internal/config"
	"pet-inventory/internal/domain/pets"
)

// Open elige el repo según el driver configurado.
// closeFn libera la conexión (no-op en memoria).
func Open(ctx context.Context, cfg config.Store) (pets.Repository, func() error, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return pg.NewPetsRepo(db), db.Close, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewPetsRepo(db), db.Close, nil

	case config.DriverMemory, "":
		return memory.NewPetRepo(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
