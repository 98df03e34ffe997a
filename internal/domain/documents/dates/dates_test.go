package dates

import "testing"

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"2025-03-05",
		"2025-01-01",
		"2025-12-31",
		"2024-02-29",
		"2025-06-15",
	}
	for _, d := range cases {
		canonical := NormalizeToFixedOffset(d)
		if canonical == "" {
			t.Fatalf("NormalizeToFixedOffset(%q) devolvió vacío", d)
		}
		got := DenormalizeToLocalDateString(canonical)
		if got != d {
			t.Fatalf("round-trip %q: got %q (canonical %q)", d, got, canonical)
		}
		// Normalizar otra vez debe ser estable
		if again := NormalizeToFixedOffset(got); again != canonical {
			t.Fatalf("re-normalize %q: got %q, want %q", d, again, canonical)
		}
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	a := NormalizeToFixedOffset("2025-03-05")
	b := NormalizeToFixedOffset("2025-03-05")
	if a != b {
		t.Fatalf("misma entrada produjo %q y %q", a, b)
	}
	// Medianoche UTC-7 == 07:00 UTC del mismo día
	if a != "2025-03-05T07:00:00Z" {
		t.Fatalf("canonical inesperado: %q", a)
	}
}

func TestExtractDisplayParts(t *testing.T) {
	canonical := NormalizeToFixedOffset("2025-03-05")
	parts, ok := ExtractDisplayParts(canonical)
	if !ok {
		t.Fatalf("ExtractDisplayParts falló para %q", canonical)
	}
	if parts.Day != "5" || parts.Month != "MARZO" || parts.Year != "2025" {
		t.Fatalf("parts = %+v", parts)
	}
}

func TestExtractDisplayParts_YearBoundaries(t *testing.T) {
	parts, ok := ExtractDisplayParts(NormalizeToFixedOffset("2025-01-01"))
	if !ok || parts.Day != "1" || parts.Month != "ENERO" || parts.Year != "2025" {
		t.Fatalf("jan 1: %+v ok=%v", parts, ok)
	}
	parts, ok = ExtractDisplayParts(NormalizeToFixedOffset("2025-12-31"))
	if !ok || parts.Day != "31" || parts.Month != "DICIEMBRE" || parts.Year != "2025" {
		t.Fatalf("dec 31: %+v ok=%v", parts, ok)
	}
}

func TestFormatLongDate(t *testing.T) {
	got := FormatLongDate(NormalizeToFixedOffset("2025-03-05"))
	if got != "5 de marzo de 2025" {
		t.Fatalf("got %q", got)
	}
}

func TestMalformedInputs(t *testing.T) {
	if got := NormalizeToFixedOffset("no-es-fecha"); got != "" {
		t.Fatalf("normalize malformada: %q", got)
	}
	if got := DenormalizeToLocalDateString(""); got != "" {
		t.Fatalf("denormalize vacía: %q", got)
	}
	if _, ok := ExtractDisplayParts("garbage"); ok {
		t.Fatal("ExtractDisplayParts aceptó basura")
	}
	if got := FormatLongDate(""); got != Placeholder {
		t.Fatalf("FormatLongDate vacía: %q", got)
	}
}

func TestParseCanonicalAcceptsPlainDate(t *testing.T) {
	// Registros viejos guardaban la fecha sin hora.
	parts, ok := ExtractDisplayParts("2025-03-05")
	if !ok || parts.Month != "MARZO" {
		t.Fatalf("plain date: %+v ok=%v", parts, ok)
	}
}
