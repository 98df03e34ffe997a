// Package dates normaliza fechas de calendario al offset fijo UTC-7 usado
// por todo el sistema para almacenar y mostrar fechas de documentos.
// Ninguna función depende de la zona horaria local del proceso.
package dates

import (
	"strconv"
	"strings"
	"time"
)

// Placeholder se usa cuando una fecha está vacía o malformada.
// Los documentos se generan como borradores rellenables, así que los
// callers siempre reciben algo imprimible, nunca un error.
const Placeholder = "____________"

const dayLayout = "2006-01-02"

// utcMinus7 es el offset canónico (hora del Pacífico de México, sin DST).
var utcMinus7 = time.FixedZone("UTC-7", -7*60*60)

var monthsUpper = [12]string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

var monthsLower = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// NormalizeToFixedOffset convierte una fecha de calendario (YYYY-MM-DD, como
// la produce un date-picker) a su representación canónica: medianoche de ese
// día en UTC-7, serializada RFC3339. El mismo input produce siempre el mismo
// output sin importar dónde corra el proceso.
func NormalizeToFixedOffset(local string) string {
	local = strings.TrimSpace(local)
	if local == "" {
		return ""
	}
	t, err := time.Parse(dayLayout, local)
	if err != nil {
		return ""
	}
	// Medianoche del día en UTC-7. Usar time.Date (no sumar horas a mano)
	// evita el rollover de día en los límites de mes/año.
	canonical := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, utcMinus7)
	return canonical.UTC().Format(time.RFC3339)
}

// DenormalizeToLocalDateString es la inversa de NormalizeToFixedOffset:
// recupera el YYYY-MM-DD original para repoblar un campo editable.
func DenormalizeToLocalDateString(canonical string) string {
	t, ok := parseCanonical(canonical)
	if !ok {
		return ""
	}
	return t.In(utcMinus7).Format(dayLayout)
}

// DisplayParts son las piezas de fecha que usan las cláusulas tipo
// "a los 5 días del mes de MARZO de 2025".
type DisplayParts struct {
	Day   string
	Month string // mes en español, mayúsculas
	Year  string
}

// ExtractDisplayParts extrae día/mes/año de la representación canónica.
// ok=false si el input está vacío o malformado.
func ExtractDisplayParts(canonical string) (DisplayParts, bool) {
	t, ok := parseCanonical(canonical)
	if !ok {
		return DisplayParts{}, false
	}
	local := t.In(utcMinus7)
	return DisplayParts{
		Day:   strconv.Itoa(local.Day()),
		Month: monthsUpper[int(local.Month())-1],
		Year:  strconv.Itoa(local.Year()),
	}, true
}

// FormatLongDate devuelve "5 de marzo de 2025" (mes en minúsculas) para
// oraciones narrativas. Input malformado devuelve el Placeholder.
func FormatLongDate(canonical string) string {
	t, ok := parseCanonical(canonical)
	if !ok {
		return Placeholder
	}
	local := t.In(utcMinus7)
	return strconv.Itoa(local.Day()) + " de " + monthsLower[int(local.Month())-1] + " de " + strconv.Itoa(local.Year())
}

// CurrentDateString devuelve la fecha actual en UTC-7 como YYYY-MM-DD.
func CurrentDateString(now time.Time) string {
	return now.In(utcMinus7).Format(dayLayout)
}

// parseCanonical acepta la forma canónica RFC3339 y, por tolerancia con
// registros viejos, una fecha de calendario simple.
func parseCanonical(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(dayLayout, s); err == nil {
		// Fecha simple: interpretarla como medianoche UTC-7 del mismo día.
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, utcMinus7), true
	}
	return time.Time{}, false
}
