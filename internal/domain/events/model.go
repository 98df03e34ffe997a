package events

import (
	"time"

	"birrieria-admin/internal/ports/auth"
)

type Event struct {
	ID          string
	Title       string
	Description string

	Date time.Time
	Year int

	Color string
	Type  EventType

	CreatedBy string
	CreatedAt time.Time

	// Solo para eventos de minuta: a quién le aparece en el calendario.
	TargetRole   auth.Role
	TargetBranch auth.Branch
	MinutaID     string
}
