// Package fields define el registro de captura de un documento y la
// resolución de campos hacia texto de cláusula, con defaults tipados
// cuando el campo está vacío (los documentos se emiten como borradores
// rellenables, nunca se aborta por un texto faltante).
package fields

import "strings"

// Record es el estado de captura de un documento: nombre de campo a valor.
// Los valores son string o []string (multiselección).
type Record map[string]any

// Blank devuelve una corrida de n guiones bajos (línea en blanco visible
// en el documento final).
func Blank(n int) string {
	if n <= 0 {
		n = 1
	}
	return strings.Repeat("_", n)
}

// TextBlank es el default para campos de texto libre ausentes.
var TextBlank = Blank(30)

// Get devuelve el valor string del campo, o "" si no existe o no es string.
func Get(rec Record, name string) string {
	v, ok := rec[name]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// Resolve devuelve el valor del campo o, si está ausente/vacío, una línea
// en blanco del ancho indicado.
func Resolve(rec Record, name string, blankWidth int) string {
	if s := Get(rec, name); s != "" {
		return s
	}
	return Blank(blankWidth)
}

// ResolveUpper es Resolve pero en mayúsculas (la mayoría de las cláusulas
// interpolan los datos del trabajador en mayúsculas).
func ResolveUpper(rec Record, name string, blankWidth int) string {
	if s := Get(rec, name); s != "" {
		return strings.ToUpper(s)
	}
	return Blank(blankWidth)
}

// ResolveList devuelve la lista del campo, o lista vacía si está ausente.
func ResolveList(rec Record, name string) []string {
	v, ok := rec[name]
	if !ok {
		return []string{}
	}
	switch list := v.(type) {
	case []string:
		out := make([]string, 0, len(list))
		for _, s := range list {
			if strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	default:
		return []string{}
	}
}

// Condition es la regla de visibilidad condicional de un campo: el campo
// aplica solo cuando otro campo tiene exactamente cierto valor.
type Condition struct {
	DependsOn string
	ShowWhen  string
}

// ShouldInclude evalúa la regla condicional contra el registro.
// Sin regla, el campo siempre aplica. Con regla insatisfecha, el campo no
// es requerido y su ausencia nunca bloquea el ensamblado.
func ShouldInclude(rec Record, cond *Condition) bool {
	if cond == nil {
		return true
	}
	return Get(rec, cond.DependsOn) == cond.ShowWhen
}
