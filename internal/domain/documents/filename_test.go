package documents

import (
	"strings"
	"testing"
	"time"
)

func TestDeriveFileName(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		label string
		party string
		ext   string
		want  string
	}{
		{"Contrato", "Juan Pérez García", "docx", "Contrato_Juan_Pérez_García_2025-03-10.docx"},
		{"Carta_Finiquito", "  Juan  Pérez, S.A. ", "txt", "Carta_Finiquito_Juan_Pérez_S.A._2025-03-10.txt"},
		{"Acta_Administrativa", "ana/../../etc", "docx", "Acta_Administrativa_ana_.._.._etc_2025-03-10.docx"},
		{"Minuta", "", "docx", "Minuta_Sin_Nombre_2025-03-10.docx"},
		{"Contrato", "***", "docx", "Contrato_Sin_Nombre_2025-03-10.docx"},
	}
	for _, tc := range cases {
		got := DeriveFileName(tc.label, tc.party, tc.ext, now)
		if got != tc.want {
			t.Fatalf("DeriveFileName(%q, %q) = %q, quería %q", tc.label, tc.party, got, tc.want)
		}
		if strings.ContainsAny(got, " \t\n/\\:*?\"<>|") {
			t.Fatalf("el nombre %q trae caracteres inseguros para rutas", got)
		}
	}
}
