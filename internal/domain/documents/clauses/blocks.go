package clauses

// Modelo intermedio de documento: los ensambladores producen bloques
// neutrales y los adaptadores de salida (docx, texto plano) los
// materializan en el formato final.

type Alignment string

const (
	AlignLeft      Alignment = "left"
	AlignCenter    Alignment = "center"
	AlignRight     Alignment = "right"
	AlignJustified Alignment = "justified"
)

// Run es un tramo de texto con formato uniforme.
type Run struct {
	Text      string
	Bold      bool
	Underline bool
	Size      int // puntos; 0 usa el tamaño por defecto del adaptador
}

// Paragraph agrupa runs con alineación y espaciado propios.
type Paragraph struct {
	Runs          []Run
	Alignment     Alignment
	SpacingBefore int // twips
	SpacingAfter  int
}

// Cell es una celda de tabla; Shaded marca celdas de encabezado.
type Cell struct {
	Text   string
	Bold   bool
	Shaded bool
}

type Row struct {
	Cells []Cell
}

// Table describe una tabla simple de filas uniformes.
type Table struct {
	Rows         []Row
	ColumnWidths []int // twips por columna; vacío deja el ancho automático
}

// Image referencia un recurso binario ya descargado (logo).
type Image struct {
	Data      []byte
	Width     int // px
	Height    int
	Alignment Alignment
}

// Block es la unión de los tipos de bloque. Exactamente uno de los
// campos viene poblado.
type Block struct {
	Paragraph *Paragraph
	Table     *Table
	Image     *Image
}

func para(p Paragraph) Block { return Block{Paragraph: &p} }
func table(t Table) Block    { return Block{Table: &t} }
func image(img Image) Block  { return Block{Image: &img} }

// text arma un párrafo justificado de un solo run, el caso más común
// en los contratos.
func text(s string, spacingAfter int) Block {
	return para(Paragraph{
		Runs:         []Run{{Text: s}},
		Alignment:    AlignJustified,
		SpacingAfter: spacingAfter,
	})
}

// centeredTitle arma el título principal en negrita.
func centeredTitle(s string, size int) Block {
	return para(Paragraph{
		Runs:         []Run{{Text: s, Bold: true, Size: size}},
		Alignment:    AlignCenter,
		SpacingAfter: 400,
	})
}

// Document es el resultado del ensamblado, listo para empaquetar.
type Document struct {
	// FileLabel es el prefijo del nombre de archivo (Contrato, Carta_Finiquito, ...).
	FileLabel string
	// PartyName es el nombre de la persona que aparece en el nombre de archivo.
	PartyName string
	Blocks    []Block
}
