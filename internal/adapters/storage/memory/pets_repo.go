package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-inventory/internal/domain/pets"
)

// petRepo guarda en un slice para conservar el orden de inserción;
// byID es solo un índice sobre ese slice.
type petRepo struct {
	mu    sync.RWMutex
	items []pets.Pet
	byID  map[string]int
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]int),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = len(r.items)
	r.items = append(r.items, p)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return r.items[i], nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *petRepo) ListBySession(ctx context.Context, sessionID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.items {
		if p.SessionID == sessionID {
			out = append(out, p)
		}
	}
	return out, nil
}
