package whatsapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"birrieria-admin/internal/platform/logger"
	"birrieria-admin/internal/ports/notify"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

type Config struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

// Notifier manda el aviso de minuta por la pasarela de WhatsApp. Si la
// pasarela no está configurada, solo deja el mensaje en la bitácora
// para envío manual.
type Notifier struct {
	client *resty.Client
	apiURL string
	apiKey string
	log    logger.Logger
}

func New(cfg Config, log logger.Logger) *Notifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(1*time.Second).
		SetHeader("Content-Type", "application/json")

	return &Notifier{
		client: client,
		apiURL: strings.TrimSpace(cfg.APIURL),
		apiKey: strings.TrimSpace(cfg.APIKey),
		log:    log,
	}
}

type sendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (n *Notifier) NotifyMinuta(ctx context.Context, msg notify.MinutaNotification, recipients []notify.Recipient) error {
	body := minutaMessage(msg)

	var failed []string
	for _, r := range recipients {
		phone := NormalizePhone(r.Phone)
		if phone == "" {
			n.log.Warn("destinatario sin teléfono, omitido", map[string]any{"name": r.Name})
			continue
		}

		if n.apiURL == "" {
			// sin pasarela: dejar el enlace listo para envío manual
			n.log.Info("aviso de minuta (sin pasarela configurada)", map[string]any{
				"name":  r.Name,
				"phone": "+" + phone,
			})
			continue
		}

		if err := n.send(ctx, phone, body); err != nil {
			n.log.Warn("no se pudo mandar aviso de minuta", map[string]any{
				"name":  r.Name,
				"phone": "+" + phone,
				"error": err.Error(),
			})
			failed = append(failed, r.Name)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("whatsapp: fallaron %d avisos: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

func (n *Notifier) send(ctx context.Context, phone, message string) error {
	req := n.client.R().
		SetContext(ctx).
		SetBody(sendRequest{Phone: phone, Message: message})
	if n.apiKey != "" {
		req.SetHeader("X-Api-Key", n.apiKey)
	}

	resp, err := req.Post(n.apiURL)
	if err != nil {
		return fmt.Errorf("whatsapp: enviar: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("whatsapp: enviar: status %d", resp.StatusCode())
	}
	return nil
}

// NormalizePhone limpia el número y le antepone la lada de México. Los
// celulares mexicanos son de 10 dígitos; 12 dígitos que empiezan con 52
// ya traen lada.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	switch {
	case digits == "":
		return ""
	case len(digits) == 12 && strings.HasPrefix(digits, "52"):
		return digits
	default:
		return "52" + digits
	}
}

func minutaMessage(msg notify.MinutaNotification) string {
	var b strings.Builder
	b.WriteString("*Birriería La Purísima - Nueva Reunión de Seguimiento*\n\n")
	b.WriteString("Hola! Se ha programado una nueva reunión de seguimiento.\n\n")
	b.WriteString("*Detalles:*\n")
	fmt.Fprintf(&b, "- *Supervisor:* %s\n", msg.Supervisor)
	fmt.Fprintf(&b, "- *Puesto:* %s\n", msg.Role)
	fmt.Fprintf(&b, "- *Sucursal:* %s\n", msg.Branch)
	fmt.Fprintf(&b, "- *Fecha:* %s\n\n", longSpanishDate(msg.NextMeetingDate))
	b.WriteString("*Lo que se espera de ti:*\n")
	b.WriteString(msg.Expectations)
	b.WriteString("\n\nPor favor, asegúrate de estar disponible en la fecha programada.\n\n")
	b.WriteString("¡Gracias por tu compromiso!\n\n")
	b.WriteString("_Este es un mensaje automático del sistema de gestión._")
	return b.String()
}

func longSpanishDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d, %02d:%02d",
		spanishWeekdays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
