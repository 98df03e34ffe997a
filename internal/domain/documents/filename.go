package documents

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"birrieria-admin/internal/domain/documents/clauses"
)

// DeriveFileName construye el nombre de archivo
// <Etiqueta>_<Nombre_con_guiones_bajos>_<fecha ISO>.<ext>. Nunca falla:
// los nombres con puntuación se sanitizan y los vacíos caen a
// Sin_Nombre.
func DeriveFileName(label, party, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.%s", label, sanitizeParty(party), now.Format("2006-01-02"), ext)
}

func sanitizeParty(party string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(party) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			// espacios, comas, barras y demás colapsan a un solo guion bajo
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return "Sin_Nombre"
	}
	return name
}

// RenderText emite el documento como texto plano, con la misma
// interpolación de campos que la versión .docx pero sin estilos. Es el
// respaldo cuando el empaquetado binario falla.
func RenderText(doc *clauses.Document) []byte {
	var b strings.Builder
	for _, blk := range doc.Blocks {
		switch {
		case blk.Paragraph != nil:
			for _, run := range blk.Paragraph.Runs {
				b.WriteString(run.Text)
			}
			b.WriteString("\n\n")
		case blk.Table != nil:
			for _, row := range blk.Table.Rows {
				cells := make([]string, len(row.Cells))
				for i, c := range row.Cells {
					cells[i] = c.Text
				}
				b.WriteString(strings.Join(cells, "\t"))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	return []byte(b.String())
}
