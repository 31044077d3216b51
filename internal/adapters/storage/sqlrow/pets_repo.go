package sqlrow

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"pet-inventory/internal/domain/pets"
)

// Placeholder arma el parámetro n (desde 1) en el dialecto del driver.
type Placeholder func(n int) string

// Dollar: $1, $2... (postgres).
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Question: ? (sqlite).
func Question(int) string { return "?" }

// PetsRepo es el repo de mascotas sobre database/sql. Las consultas son las
// mismas para todos los drivers; solo cambian los placeholders.
type PetsRepo struct {
	db *sql.DB
	ph Placeholder
}

func NewPetsRepo(db *sql.DB, ph Placeholder) *PetsRepo {
	return &PetsRepo{db: db, ph: ph}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	args := Args(p)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+Columns+`
		) VALUES (`+r.params(len(args))+`)
	`, args...)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+Columns+` FROM pets WHERE id = `+r.ph(1), id)

	p, err := ScanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+Columns+` FROM pets ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	return Collect(rows)
}

func (r *PetsRepo) ListBySession(ctx context.Context, sessionID string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+Columns+`
		FROM pets
		WHERE session_id = `+r.ph(1)+`
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	return Collect(rows)
}

// params devuelve "p1,p2,...,pn".
func (r *PetsRepo) params(n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = r.ph(i + 1)
	}
	return strings.Join(out, ",")
}
