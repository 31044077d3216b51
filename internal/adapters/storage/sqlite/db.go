package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open abre (o crea) el archivo SQLite y asegura la tabla pets.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// sqlite serializa escrituras; una conexión evita "database is locked"
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS pets (
			seq           INTEGER PRIMARY KEY AUTOINCREMENT,
			id            TEXT NOT NULL UNIQUE,
			session_id    TEXT NOT NULL,
			kind          TEXT NOT NULL,
			name          TEXT NOT NULL,
			gender        TEXT NOT NULL,
			owner         TEXT NOT NULL,
			breed         TEXT NULL,
			is_longhaired BOOLEAN NULL,
			can_fly       BOOLEAN NULL,
			created_at    DATETIME NOT NULL
		)
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create pets table: %w", err)
	}

	return db, nil
}
