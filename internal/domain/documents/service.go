package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"birrieria-admin/internal/domain/documents/clauses"
	"birrieria-admin/internal/domain/documents/fields"
	"birrieria-admin/internal/domain/documents/schema"
	"birrieria-admin/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// ValidationError agrupa los campos obligatorios ausentes del registro.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "campos obligatorios ausentes: " + strings.Join(e.Fields, ", ")
}

type Service struct {
	packer Packager
	assets AssetFetcher
	sheets SheetRenderer
	drafts Repository
	log    logger.Logger
	now    func() time.Time
}

func NewService(packer Packager, assets AssetFetcher, sheets SheetRenderer, drafts Repository, log logger.Logger) *Service {
	return &Service{
		packer: packer,
		assets: assets,
		sheets: sheets,
		drafts: drafts,
		log:    log,
		now:    time.Now,
	}
}

// Types lista los tipos de documento disponibles.
func (s *Service) Types() []schema.DocType {
	return schema.Types()
}

// Schema regresa los pasos del formulario del tipo indicado.
func (s *Service) Schema(docType schema.DocType) ([]schema.FormStep, error) {
	return schema.Steps(docType)
}

// Generate valida, ensambla y empaqueta el documento. Si el empaquetado
// binario falla, degrada a texto plano con el mismo contenido en vez de
// fallar la operación completa.
func (s *Service) Generate(ctx context.Context, docType schema.DocType, rec fields.Record) (*File, error) {
	missing, err := schema.MissingRequired(docType, rec)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	doc, err := clauses.Assemble(docType, rec, s.now())
	if err != nil {
		return nil, err
	}
	return s.pack(ctx, doc)
}

// GenerateMinuta arma la minuta de reunión en docx. El logo se descarga
// en el momento; sin logo la hoja sale igual.
func (s *Service) GenerateMinuta(ctx context.Context, in clauses.MinutaInput) (*File, error) {
	doc := clauses.BuildMinuta(in, s.fetchLogo(ctx))
	return s.pack(ctx, doc)
}

// GenerateAttendance arma la lista de asistencia. format acepta docx o
// xlsx; vacío cae a docx.
func (s *Service) GenerateAttendance(ctx context.Context, in clauses.AttendanceInput, format string) (*File, error) {
	switch format {
	case "", "docx":
		doc := clauses.BuildAttendanceList(in, s.fetchLogo(ctx))
		return s.pack(ctx, doc)
	case "xlsx":
		data, err := s.sheets.AttendanceXLSX(in)
		if err != nil {
			return nil, fmt.Errorf("hoja de asistencia: %w", err)
		}
		return &File{
			Name:        DeriveFileName("Lista_Asistencia", in.Evento, "xlsx", s.now()),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, ErrInvalidInput
	}
}

// SaveDraft guarda el borrador del formulario. Es la única persistencia
// del módulo: generar nunca guarda.
func (s *Service) SaveDraft(ctx context.Context, docType schema.DocType, rec fields.Record, createdBy string) (Draft, error) {
	if _, err := schema.Steps(docType); err != nil {
		return Draft{}, err
	}
	if len(rec) == 0 || strings.TrimSpace(createdBy) == "" {
		return Draft{}, ErrInvalidInput
	}

	now := s.now()
	d := Draft{
		ID:        uuid.NewString(),
		DocType:   docType,
		Record:    rec,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.drafts.Create(ctx, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

func (s *Service) GetDraft(ctx context.Context, id string) (Draft, error) {
	if strings.TrimSpace(id) == "" {
		return Draft{}, ErrInvalidInput
	}
	return s.drafts.GetByID(ctx, id)
}

func (s *Service) pack(ctx context.Context, doc *clauses.Document) (*File, error) {
	now := s.now()
	data, err := s.packer.Render(doc)
	if err != nil {
		// el contenido ya está interpolado: entregar texto plano vale
		// más que fallar la descarga
		s.log.Warn("empaquetado docx falló, degradando a texto", map[string]any{
			"file_label": doc.FileLabel,
			"error":      err.Error(),
		})
		return &File{
			Name:        DeriveFileName(doc.FileLabel, doc.PartyName, "txt", now),
			ContentType: "text/plain; charset=utf-8",
			Data:        RenderText(doc),
		}, nil
	}
	return &File{
		Name:        DeriveFileName(doc.FileLabel, doc.PartyName, s.packer.Extension(), now),
		ContentType: s.packer.ContentType(),
		Data:        data,
	}, nil
}

func (s *Service) fetchLogo(ctx context.Context) []byte {
	if s.assets == nil {
		return nil
	}
	logo, err := s.assets.Logo(ctx)
	if err != nil {
		s.log.Warn("logo no disponible, la hoja sale sin imagen", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	return logo
}
