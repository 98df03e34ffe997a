package users

import (
	"time"

	"birrieria-admin/internal/ports/auth"
)

// Profile es la ficha interna del empleado o administrador.
type Profile struct {
	ID          string
	Email       string
	DisplayName string
	Role        auth.Role
	Branch      auth.Branch
	PhoneNumber string
	CreatedAt   time.Time
}
