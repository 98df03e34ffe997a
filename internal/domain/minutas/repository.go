package minutas

import (
	"context"

	"birrieria-admin/internal/ports/auth"
)

type Repository interface {
	Create(ctx context.Context, m Minuta) error
	SetEventID(ctx context.Context, id, eventID string) error
	GetByID(ctx context.Context, id string) (Minuta, error)
	// List regresa las minutas más recientes primero.
	List(ctx context.Context) ([]Minuta, error)
	ListByRoleAndBranch(ctx context.Context, role auth.Role, branch auth.Branch) ([]Minuta, error)
}
