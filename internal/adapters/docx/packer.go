package docx

import (
	"bytes"
	"fmt"
	"strconv"

	godocx "github.com/fumiama/go-docx"

	"birrieria-admin/internal/domain/documents/clauses"
)

// Fuente y tamaño por defecto de los machotes originales.
const (
	defaultFont = "Copperplate Gothic Light"
	defaultSize = 22
	headerFill  = "FFA500"
)

// Packer materializa el modelo de bloques en un archivo .docx.
type Packer struct{}

func New() *Packer { return &Packer{} }

func (p *Packer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (p *Packer) Extension() string { return "docx" }

// Render serializa el documento. Cualquier falla regresa error para que
// el servicio degrade a texto plano en vez de entregar un archivo roto.
func (p *Packer) Render(doc *clauses.Document) ([]byte, error) {
	w := godocx.New().WithDefaultTheme()

	for _, blk := range doc.Blocks {
		switch {
		case blk.Paragraph != nil:
			renderParagraph(w, blk.Paragraph)
		case blk.Table != nil:
			renderTable(w, blk.Table)
		case blk.Image != nil:
			if err := renderImage(w, blk.Image); err != nil {
				return nil, fmt.Errorf("docx: imagen: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("docx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

func renderParagraph(w *godocx.Docx, src *clauses.Paragraph) {
	par := w.AddParagraph()
	par.Justification(justification(src.Alignment))
	for _, run := range src.Runs {
		r := par.AddText(run.Text)
		r.Font(defaultFont, "", defaultFont, "")
		size := run.Size
		if size == 0 {
			size = defaultSize
		}
		r.Size(strconv.Itoa(size))
		if run.Bold {
			r.Bold()
		}
		if run.Underline {
			r.Underline("single")
		}
	}
}

func renderTable(w *godocx.Docx, src *clauses.Table) {
	if len(src.Rows) == 0 {
		return
	}
	cols := 0
	for _, row := range src.Rows {
		if len(row.Cells) > cols {
			cols = len(row.Cells)
		}
	}
	tbl := w.AddTable(len(src.Rows), cols, 0, nil)
	for i, row := range src.Rows {
		for j, cell := range row.Cells {
			tc := tbl.TableRows[i].TableCells[j]
			if cell.Shaded {
				tc.Shade("clear", "auto", headerFill)
			}
			par := tc.AddParagraph()
			r := par.AddText(cell.Text)
			r.Font(defaultFont, "", defaultFont, "")
			r.Size(strconv.Itoa(defaultSize))
			if cell.Bold {
				r.Bold()
			}
		}
	}
}

func renderImage(w *godocx.Docx, src *clauses.Image) error {
	par := w.AddParagraph()
	par.Justification(justification(src.Alignment))
	_, err := par.AddInlineDrawing(src.Data)
	return err
}

// justification traduce la alineación del modelo a los valores OOXML
// que espera la librería.
func justification(a clauses.Alignment) string {
	switch a {
	case clauses.AlignCenter:
		return "center"
	case clauses.AlignRight:
		return "end"
	case clauses.AlignJustified:
		return "both"
	default:
		return "start"
	}
}
