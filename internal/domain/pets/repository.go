package pets

import "context"

// Repository guarda mascotas en orden de inserción.
// List y ListBySession devuelven ese mismo orden.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	ListBySession(ctx context.Context, sessionID string) ([]Pet, error)
}
