package documents

import (
	"context"

	"birrieria-admin/internal/domain/documents/clauses"
)

// Repository persiste borradores de formularios.
type Repository interface {
	Create(ctx context.Context, d Draft) error
	Update(ctx context.Context, d Draft) error
	GetByID(ctx context.Context, id string) (Draft, error)
}

// Packager serializa el modelo de bloques al formato binario final.
type Packager interface {
	Render(doc *clauses.Document) ([]byte, error)
	ContentType() string
	Extension() string
}

// AssetFetcher trae recursos decorativos (logo del membrete). Un error
// nunca aborta la generación: la hoja sale sin imagen.
type AssetFetcher interface {
	Logo(ctx context.Context) ([]byte, error)
}

// SheetRenderer produce la variante de hoja de cálculo de la lista de
// asistencia.
type SheetRenderer interface {
	AttendanceXLSX(in clauses.AttendanceInput) ([]byte, error)
}
