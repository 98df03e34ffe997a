package documents

import (
	"time"

	"birrieria-admin/internal/domain/documents/fields"
	"birrieria-admin/internal/domain/documents/schema"
)

// File es un documento generado listo para descargar. La generación no
// persiste nada: el archivo viaja en la respuesta HTTP.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Draft es un borrador de formulario guardado explícitamente, separado
// de la generación.
type Draft struct {
	ID        string         `json:"id"`
	DocType   schema.DocType `json:"doc_type"`
	Record    fields.Record  `json:"record"`
	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
