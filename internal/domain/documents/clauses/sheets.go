package clauses

import (
	"fmt"
	"strconv"

	"birrieria-admin/internal/domain/documents/fields"
)

// Hojas del sistema de gestión de calidad: minuta de reunión y lista de
// asistencia. No pasan por el ensamblador de cláusulas porque su cuerpo
// es tabular, pero producen el mismo modelo de documento.

// MinutaArea es un renglón de la tabla de acuerdos.
type MinutaArea struct {
	Area            string
	Planteamiento   string
	Seguimiento     string
	FechaCompromiso string
	EncargadoName   string
}

type MinutaAttendee struct {
	DisplayName string
	Email       string
	UID         string
}

type MinutaInput struct {
	Date      string
	StartTime string
	EndTime   string
	Lugar     string
	Evento    string
	Areas     []MinutaArea
	Attendees []MinutaAttendee
}

// minMinutaRows y minAttendanceRows rellenan la tabla con renglones en
// blanco para que la hoja impresa conserve el machote original.
const (
	minMinutaRows     = 6
	minAttendanceRows = 15
)

// BuildMinuta arma la minuta de reunión. El logo es opcional: si la
// descarga falló la hoja sale sin él.
func BuildMinuta(in MinutaInput, logo []byte) *Document {
	doc := &Document{FileLabel: "Minuta", PartyName: in.Evento}

	if len(logo) > 0 {
		doc.Blocks = append(doc.Blocks, image(Image{Data: logo, Width: 80, Height: 80, Alignment: AlignLeft}))
	}
	doc.Blocks = append(doc.Blocks,
		para(Paragraph{
			Runs:         []Run{{Text: "Sistema de Gestión de Calidad", Bold: true, Size: 20}},
			Alignment:    AlignCenter,
			SpacingAfter: 100,
		}),
		para(Paragraph{
			Runs:         []Run{{Text: "Minuta de reunión", Bold: true, Size: 18}},
			Alignment:    AlignCenter,
			SpacingAfter: 300,
		}),
		table(Table{Rows: []Row{
			{Cells: []Cell{
				{Text: "Fecha:\t\t" + in.Date, Bold: true},
				{Text: "Inició:\t\t" + in.StartTime, Bold: true},
				{Text: "Terminó:\t\t" + in.EndTime, Bold: true},
			}},
			{Cells: []Cell{{Text: "Lugar:\t\t" + in.Lugar, Bold: true}}},
			{Cells: []Cell{{Text: "Evento:\t\t" + in.Evento, Bold: true}}},
		}}),
		para(Paragraph{
			Runs:          []Run{{Text: "Asuntos a tratar:", Bold: true}},
			SpacingBefore: 300,
			SpacingAfter:  100,
		}),
		table(Table{Rows: []Row{{Cells: []Cell{{Text: ""}}}}}),
	)

	rows := []Row{{Cells: []Cell{
		{Text: "No.", Bold: true, Shaded: true},
		{Text: "Área", Bold: true, Shaded: true},
		{Text: "Planteamiento o problemática", Bold: true, Shaded: true},
		{Text: "Seguimiento o actividades por realizar", Bold: true, Shaded: true},
		{Text: "Fecha compromiso", Bold: true, Shaded: true},
		{Text: "Responsable / firma", Bold: true, Shaded: true},
	}}}
	for i, a := range in.Areas {
		rows = append(rows, Row{Cells: []Cell{
			{Text: strconv.Itoa(i + 1)},
			{Text: a.Area},
			{Text: a.Planteamiento},
			{Text: a.Seguimiento},
			{Text: a.FechaCompromiso},
			{Text: a.EncargadoName},
		}})
	}
	for len(rows)-1 < minMinutaRows {
		rows = append(rows, Row{Cells: make([]Cell, 6)})
	}
	doc.Blocks = append(doc.Blocks,
		table(Table{Rows: rows, ColumnWidths: []int{6, 15, 20, 20, 19, 20}}),
		para(Paragraph{
			Runs:          []Run{{Text: "Ver. 1, 30/09/2016", Size: 16}},
			Alignment:     AlignRight,
			SpacingBefore: 400,
		}),
		para(Paragraph{
			Runs:          []Run{{Text: "Asistentes:", Bold: true}},
			SpacingBefore: 300,
			SpacingAfter:  100,
		}),
	)
	for i, a := range in.Attendees {
		doc.Blocks = append(doc.Blocks, para(Paragraph{
			Runs: []Run{{Text: fmt.Sprintf("%d. %s", i+1, attendeeLabel(a))}},
		}))
	}
	return doc
}

func attendeeLabel(a MinutaAttendee) string {
	switch {
	case a.DisplayName != "":
		return a.DisplayName
	case a.Email != "":
		return a.Email
	default:
		return a.UID
	}
}

type AttendanceEmployee struct {
	DisplayName string
	Area        string
	Email       string
}

type AttendanceInput struct {
	Date      string
	StartTime string
	EndTime   string
	Evento    string
	Employees []AttendanceEmployee
}

// BuildAttendanceList arma la lista de asistencia con renglones para
// firma. Los campos vacíos se imprimen como línea para llenar a mano.
func BuildAttendanceList(in AttendanceInput, logo []byte) *Document {
	doc := &Document{FileLabel: "Lista_Asistencia", PartyName: in.Evento}

	if len(logo) > 0 {
		doc.Blocks = append(doc.Blocks, image(Image{Data: logo, Width: 80, Height: 80, Alignment: AlignLeft}))
	}
	doc.Blocks = append(doc.Blocks,
		para(Paragraph{
			Runs:         []Run{{Text: "Sistema de Gestión de Calidad", Bold: true, Size: 20}},
			Alignment:    AlignCenter,
			SpacingAfter: 100,
		}),
		para(Paragraph{
			Runs:         []Run{{Text: "Lista de asistencia", Bold: true, Size: 18}},
			Alignment:    AlignCenter,
			SpacingAfter: 300,
		}),
		table(Table{Rows: []Row{
			{Cells: []Cell{
				{Text: "Hora de inicio: " + blankIfEmpty(in.StartTime, 20), Bold: true},
				{Text: "Hora de término: " + blankIfEmpty(in.EndTime, 20), Bold: true},
			}},
			{Cells: []Cell{
				{Text: "Evento: " + blankIfEmpty(in.Evento, 80), Bold: true},
				{Text: "Fecha: " + blankIfEmpty(in.Date, 15), Bold: true},
			}},
		}}),
	)

	rows := []Row{{Cells: []Cell{
		{Text: "No.", Bold: true, Shaded: true},
		{Text: "Nombre", Bold: true, Shaded: true},
		{Text: "Área", Bold: true, Shaded: true},
		{Text: "Correo electrónico", Bold: true, Shaded: true},
		{Text: "Firma", Bold: true, Shaded: true},
	}}}
	for i, e := range in.Employees {
		rows = append(rows, Row{Cells: []Cell{
			{Text: strconv.Itoa(i + 1)},
			{Text: e.DisplayName},
			{Text: e.Area},
			{Text: e.Email},
			{Text: ""},
		}})
	}
	for i := len(in.Employees); i < minAttendanceRows; i++ {
		rows = append(rows, Row{Cells: []Cell{
			{Text: strconv.Itoa(i + 1)}, {}, {}, {}, {},
		}})
	}
	doc.Blocks = append(doc.Blocks, table(Table{Rows: rows, ColumnWidths: []int{8, 30, 20, 25, 17}}))
	return doc
}

func blankIfEmpty(v string, width int) string {
	if v == "" {
		return fields.Blank(width)
	}
	return v
}
