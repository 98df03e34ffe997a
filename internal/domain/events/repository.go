package events

import "context"

type Repository interface {
	Create(ctx context.Context, e Event) error
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Event, error)
	// ListByYear regresa los eventos del año ordenados por fecha
	// ascendente.
	ListByYear(ctx context.Context, year int) ([]Event, error)
	CountByYearAndType(ctx context.Context, year int, t EventType) (int, error)
}
