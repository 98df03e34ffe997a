package minutas

import (
	"time"

	"birrieria-admin/internal/ports/auth"
)

// Minuta es el registro de una reunión de supervisión con un puesto de
// una sucursal.
type Minuta struct {
	ID         string
	Supervisor string
	Branch     auth.Branch
	Role       auth.Role

	WhatHappened    string
	Expectations    string
	NextMeetingDate time.Time

	CreatedAt time.Time
	CreatedBy string

	// Evento de seguimiento creado en el calendario.
	EventID string
}
