package clauses

import (
	"fmt"
	"time"

	"birrieria-admin/internal/domain/documents/dates"
	"birrieria-admin/internal/domain/documents/fields"
	"birrieria-admin/internal/domain/documents/schema"
)

// ordinals cubre hasta dieciocho cláusulas numeradas, el máximo que
// alcanza cualquier contrato de la cadena con sus opcionales incluidas.
var ordinals = []string{
	"PRIMERA", "SEGUNDA", "TERCERA", "CUARTA", "QUINTA", "SEXTA",
	"SEPTIMA", "OCTAVA", "NOVENA", "DECIMA", "DECIMA PRIMERA",
	"DECIMA SEGUNDA", "DECIMA TERCERA", "DECIMA CUARTA",
	"DECIMA QUINTA", "DECIMA SEXTA", "DECIMA SEPTIMA", "DECIMA OCTAVA",
}

// MissingDataError señala un campo sin el cual el documento no puede
// armarse de forma segura (fechas de vigencia, partes del contrato).
type MissingDataError struct {
	Field string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("dato obligatorio ausente: %s", e.Field)
}

// clauseSpec es una cláusula candidata de una variante. Las opcionales
// declaran Include; las numeradas reciben su ordinal según la posición
// final entre las incluidas, nunca según la posición en la tabla.
type clauseSpec struct {
	Numbered bool
	Include  func(rec fields.Record) bool
	Build    func(ctx *buildContext, ordinal string) []Block
}

// buildContext agrupa lo ya resuelto para que cada cláusula no repita
// lookups de propietario y sucursal.
type buildContext struct {
	rec    fields.Record
	owner  Owner
	branch Branch
	now    time.Time
}

func (c *buildContext) field(name string) string {
	return fields.Get(c.rec, name)
}

func (c *buildContext) fieldOr(name string, width int) string {
	return fields.Resolve(c.rec, name, width)
}

type variant struct {
	FileLabel string
	// PartyField nombra el campo que identifica a la persona del
	// documento, usado para el nombre de archivo.
	PartyField string
	// NeedsParties indica si la variante interpola propietario y
	// sucursal; las cartas individuales no los usan.
	NeedsParties bool
	// RequiredDates falla el ensamblado completo si están ausentes.
	RequiredDates []string
	Header        func(ctx *buildContext) []Block
	Clauses       []clauseSpec
	Footer        func(ctx *buildContext) []Block
}

var variants = map[schema.DocType]*variant{
	schema.TypeTrial:           trialVariant,
	schema.TypeTimeUnit:        timeUnitVariant,
	schema.TypeIndefinite:      indefiniteVariant,
	schema.TypeConfidentiality: confidentialityVariant,
	schema.TypeVoluntaryQuit:   voluntaryQuitVariant,
	schema.TypeFiniquito:       finiquitoVariant,
	schema.TypeActa:            actaVariant,
}

// Assemble arma el documento completo de un tipo a partir del registro
// del formulario. Los campos de texto ausentes degradan a líneas de
// guion bajo; las fechas de vigencia ausentes son error. El reloj entra
// como parámetro porque las cartas fechan con el día de emisión cuando
// el formulario no trae fecha.
func Assemble(docType schema.DocType, rec fields.Record, now time.Time) (*Document, error) {
	v, ok := variants[docType]
	if !ok {
		return nil, schema.ErrUnknownType
	}
	for _, name := range v.RequiredDates {
		if _, ok := dates.ExtractDisplayParts(fields.Get(rec, name)); !ok {
			return nil, &MissingDataError{Field: name}
		}
	}

	ctx := &buildContext{rec: rec, now: now}
	if v.NeedsParties {
		owner, err := lookupOwner(fields.Get(rec, "ownerKey"))
		if err != nil {
			return nil, err
		}
		branch, err := lookupBranch(fields.Get(rec, "branchKey"))
		if err != nil {
			return nil, err
		}
		ctx.owner = owner
		ctx.branch = branch
	}

	doc := &Document{
		FileLabel: v.FileLabel,
		PartyName: fields.Get(rec, v.PartyField),
	}
	if v.Header != nil {
		doc.Blocks = append(doc.Blocks, v.Header(ctx)...)
	}

	numbered := 0
	for _, spec := range v.Clauses {
		if spec.Include != nil && !spec.Include(rec) {
			continue
		}
		ordinal := ""
		if spec.Numbered {
			if numbered >= len(ordinals) {
				return nil, fmt.Errorf("variante %s excede las cláusulas numerables", docType)
			}
			ordinal = ordinals[numbered]
			numbered++
		}
		doc.Blocks = append(doc.Blocks, spec.Build(ctx, ordinal)...)
	}

	if v.Footer != nil {
		doc.Blocks = append(doc.Blocks, v.Footer(ctx)...)
	}
	return doc, nil
}
