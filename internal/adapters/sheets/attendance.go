package sheets

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"birrieria-admin/internal/domain/documents/clauses"
)

const (
	sheetName  = "Lista de Asistencia"
	minRows    = 15
	headerFill = "#FFA500"
)

// Renderer emite la lista de asistencia como libro xlsx, con el mismo
// contenido que la variante docx.
type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func (r *Renderer) AttendanceXLSX(in clauses.AttendanceInput) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("sheets: crear hoja: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{headerFill},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("sheets: estilo de encabezado: %w", err)
	}

	// Encabezado del evento
	meta := [][2]string{
		{"Evento:", in.Evento},
		{"Fecha:", in.Date},
		{"Hora de inicio:", in.StartTime},
		{"Hora de término:", in.EndTime},
	}
	for i, m := range meta {
		if err := setCell(f, 1, i+1, m[0]); err != nil {
			f.Close()
			return nil, err
		}
		if err := setCell(f, 2, i+1, m[1]); err != nil {
			f.Close()
			return nil, err
		}
	}

	headerRow := len(meta) + 2
	headers := []string{"No.", "Nombre del empleado", "Área", "Correo", "Firma"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("sheets: coordenadas: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheets: celda %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheets: estilo %s: %w", cell, err)
		}
	}

	widths := []float64{6, 32, 20, 28, 22}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("sheets: columna %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheets: ancho de columna %s: %w", col, err)
		}
	}

	// Renglones de firma: numeración consecutiva aun en los vacíos
	rows := len(in.Employees)
	if rows < minRows {
		rows = minRows
	}
	for i := 0; i < rows; i++ {
		row := headerRow + 1 + i
		if err := setCell(f, 1, row, strconv.Itoa(i+1)); err != nil {
			f.Close()
			return nil, err
		}
		if i < len(in.Employees) {
			e := in.Employees[i]
			for col, v := range []string{e.DisplayName, e.Area, e.Email} {
				if err := setCell(f, col+2, row, v); err != nil {
					f.Close()
					return nil, err
				}
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("sheets: congelar encabezado: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("sheets: escribir libro: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("sheets: cerrar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("sheets: coordenadas: %w", err)
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("sheets: celda %s: %w", cell, err)
	}
	return nil
}
