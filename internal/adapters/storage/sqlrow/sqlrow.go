// Package sqlrow tiene el mapeo fila <-> pets.Pet que comparten los repos
// SQL (postgres y sqlite). Las columnas van en el orden de Columns.
package sqlrow

import (
	"database/sql"

	"pet-inventory/internal/domain/pets"
)

const Columns = `
		id, session_id,
		kind, name, gender, owner,
		breed, is_longhaired, can_fly,
		created_at`

type Scanner interface {
	Scan(dest ...any) error
}

// Args devuelve los valores a insertar, en el orden de Columns.
func Args(p pets.Pet) []any {
	attrs := pets.AttributesOf(p.Attr)
	return []any{
		p.ID,
		p.SessionID,
		string(p.Kind()),
		p.Name,
		string(p.Gender),
		p.Owner,
		toNullString(attrs.Breed),
		toNullBool(attrs.IsLonghaired),
		toNullBool(attrs.CanFly),
		p.CreatedAt,
	}
}

func ScanPet(s Scanner) (pets.Pet, error) {
	var (
		p          pets.Pet
		kind       string
		gender     string
		breed      sql.NullString
		longhaired sql.NullBool
		canFly     sql.NullBool
	)
	if err := s.Scan(
		&p.ID,
		&p.SessionID,
		&kind,
		&p.Name,
		&gender,
		&p.Owner,
		&breed,
		&longhaired,
		&canFly,
		&p.CreatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	attr, err := pets.Attributes{
		Breed:        fromNullString(breed),
		IsLonghaired: fromNullBool(longhaired),
		CanFly:       fromNullBool(canFly),
	}.For(pets.Kind(kind))
	if err != nil {
		return pets.Pet{}, err
	}

	p.Gender = pets.Gender(gender)
	p.Attr = attr
	return p, nil
}

// Collect cierra rows.
func Collect(rows *sql.Rows) ([]pets.Pet, error) {
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := ScanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toNullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{Valid: false}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func fromNullBool(b sql.NullBool) *bool {
	if !b.Valid {
		return nil
	}
	v := b.Bool
	return &v
}
