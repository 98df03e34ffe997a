// Package schema contiene las tablas declarativas de pasos/campos por tipo
// de documento. Son la única fuente de verdad de qué campos existen en el
// registro de captura: el flujo de captura las renderiza y la validación
// las consulta. Cada tipo tiene su tabla independiente; agregar un campo a
// un tipo no toca los demás.
package schema

import (
	"errors"
	"strings"

	"birrieria-admin/internal/domain/documents/fields"
)

var ErrUnknownType = errors.New("unknown document type")

// DocType identifica un tipo de documento generable.
type DocType string

const (
	TypeTrial           DocType = "trial"
	TypeTimeUnit        DocType = "time-unit"
	TypeIndefinite      DocType = "indefinite"
	TypeConfidentiality DocType = "confidentiality"
	TypeVoluntaryQuit   DocType = "voluntary-quitting"
	TypeFiniquito       DocType = "finiquito"
	TypeActa            DocType = "acta-administrativa"
)

// Types devuelve los tipos soportados, en el orden en que se ofrecen.
func Types() []DocType {
	return []DocType{
		TypeTrial, TypeTimeUnit, TypeIndefinite, TypeConfidentiality,
		TypeVoluntaryQuit, TypeFiniquito, TypeActa,
	}
}

type FieldType string

const (
	FieldText        FieldType = "text"
	FieldNumber      FieldType = "number"
	FieldTextarea    FieldType = "textarea"
	FieldSelect      FieldType = "select"
	FieldMultiselect FieldType = "multiselect"
	FieldTime        FieldType = "time"
	FieldDate        FieldType = "date"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FormField struct {
	Name         string            `json:"name"`
	Label        string            `json:"label"`
	Type         FieldType         `json:"type"`
	Required     bool              `json:"required"`
	Placeholder  string            `json:"placeholder,omitempty"`
	Options      []Option          `json:"options,omitempty"`
	DefaultValue string            `json:"default_value,omitempty"`
	Conditional  *fields.Condition `json:"conditional,omitempty"`
}

type FormStep struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Fields      []FormField `json:"fields"`
}

// Steps devuelve la tabla de pasos del tipo de documento.
func Steps(t DocType) ([]FormStep, error) {
	steps, ok := byType[t]
	if !ok {
		return nil, ErrUnknownType
	}
	return steps, nil
}

// MissingRequired devuelve los nombres de campos requeridos que faltan en
// el registro, respetando la visibilidad condicional: un campo cuya
// dependencia no se cumple nunca se reporta como faltante.
func MissingRequired(t DocType, rec fields.Record) ([]string, error) {
	steps, err := Steps(t)
	if err != nil {
		return nil, err
	}

	missing := make([]string, 0)
	for _, step := range steps {
		for _, f := range step.Fields {
			if !f.Required {
				continue
			}
			if !fields.ShouldInclude(rec, f.Conditional) {
				continue
			}
			if f.Type == FieldMultiselect {
				if len(fields.ResolveList(rec, f.Name)) == 0 {
					missing = append(missing, f.Name)
				}
				continue
			}
			if strings.TrimSpace(fields.Get(rec, f.Name)) == "" {
				missing = append(missing, f.Name)
			}
		}
	}
	return missing, nil
}
