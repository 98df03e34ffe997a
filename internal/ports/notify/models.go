package notify

import (
	"context"
	"time"
)

// Recipient es un destinatario con teléfono móvil.
type Recipient struct {
	Name  string
	Phone string
}

// MinutaNotification son los datos del aviso de reunión de seguimiento.
type MinutaNotification struct {
	Supervisor      string
	Role            string
	Branch          string
	NextMeetingDate time.Time
	Expectations    string
}

// Notifier manda avisos a los destinatarios. Los errores se reportan
// pero el que llama decide si son fatales.
type Notifier interface {
	NotifyMinuta(ctx context.Context, n MinutaNotification, recipients []Recipient) error
}
