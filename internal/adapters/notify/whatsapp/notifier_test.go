package whatsapp

import (
	"strings"
	"testing"
	"time"

	"birrieria-admin/internal/ports/notify"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"6623581262", "526623581262"},
		{"(662) 358-1262", "526623581262"},
		{"526623581262", "526623581262"},
		{"+52 662 358 1262", "526623581262"},
		{"", ""},
		{"sin número", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, quería %q", tc.in, got, tc.want)
		}
	}
}

func TestMinutaMessageContents(t *testing.T) {
	msg := minutaMessage(notify.MinutaNotification{
		Supervisor:      "Ana Ruiz",
		Role:            "Cocina",
		Branch:          "Las Quintas",
		NextMeetingDate: time.Date(2025, time.March, 17, 9, 30, 0, 0, time.UTC),
		Expectations:    "Llegar con el reporte de mermas.",
	})

	for _, want := range []string{
		"Birriería La Purísima",
		"*Supervisor:* Ana Ruiz",
		"*Sucursal:* Las Quintas",
		"lunes, 17 de marzo de 2025, 09:30",
		"Llegar con el reporte de mermas.",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("el mensaje no incluye %q:\n%s", want, msg)
		}
	}
}
