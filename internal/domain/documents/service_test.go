package documents

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"birrieria-admin/internal/domain/documents/clauses"
	"birrieria-admin/internal/domain/documents/fields"
	"birrieria-admin/internal/domain/documents/schema"
	"birrieria-admin/internal/platform/logger"
)

// -------------------------
// Fakes de puertos
// -------------------------

type testPacker struct {
	fail bool
}

func (p *testPacker) Render(doc *clauses.Document) ([]byte, error) {
	if p.fail {
		return nil, errors.New("packer: corrupt archive")
	}
	return []byte("DOCX"), nil
}

func (p *testPacker) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (p *testPacker) Extension() string { return "docx" }

type testAssets struct {
	data []byte
	err  error
}

func (a *testAssets) Logo(ctx context.Context) ([]byte, error) {
	return a.data, a.err
}

type testSheets struct {
	err error
}

func (s *testSheets) AttendanceXLSX(in clauses.AttendanceInput) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("XLSX"), nil
}

type testDraftRepo struct {
	byID map[string]Draft
}

func newTestDraftRepo() *testDraftRepo {
	return &testDraftRepo{byID: map[string]Draft{}}
}

func (r *testDraftRepo) Create(ctx context.Context, d Draft) error {
	if d.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testDraftRepo) Update(ctx context.Context, d Draft) error {
	if _, ok := r.byID[d.ID]; !ok {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testDraftRepo) GetByID(ctx context.Context, id string) (Draft, error) {
	d, ok := r.byID[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return d, nil
}

func newTestService(packer Packager) (*Service, *testDraftRepo) {
	repo := newTestDraftRepo()
	svc := NewService(packer, &testAssets{}, &testSheets{}, repo, logger.New(logger.Options{Level: logger.Error}))
	svc.now = func() time.Time {
		return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func validFiniquitoRecord() fields.Record {
	return fields.Record{
		"employeeName":    "Ana Ruiz López",
		"position":        "COCINERA",
		"finiquitoAmount": "850",
		"finiquitoDate":   "2025-03-05T07:00:00Z",
	}
}

// -------------------------
// Tests
// -------------------------

func TestGenerateReturnsDocx(t *testing.T) {
	svc, _ := newTestService(&testPacker{})

	f, err := svc.Generate(context.Background(), schema.TypeFiniquito, validFiniquitoRecord())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if f.ContentType != "application/vnd.openxmlformats-officedocument.wordprocessingml.document" {
		t.Fatalf("content type inesperado: %s", f.ContentType)
	}
	if want := "Carta_Finiquito_Ana_Ruiz_López_2025-03-10.docx"; f.Name != want {
		t.Fatalf("nombre = %q, quería %q", f.Name, want)
	}
	if string(f.Data) != "DOCX" {
		t.Fatalf("datos inesperados: %q", f.Data)
	}
}

func TestGenerateMissingRequiredIs422Shape(t *testing.T) {
	svc, _ := newTestService(&testPacker{})

	rec := validFiniquitoRecord()
	delete(rec, "finiquitoAmount")

	_, err := svc.Generate(context.Background(), schema.TypeFiniquito, rec)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("esperaba ValidationError, obtuve %v", err)
	}
	found := false
	for _, f := range verr.Fields {
		if f == "finiquitoAmount" {
			found = true
		}
	}
	if !found {
		t.Fatalf("ValidationError no menciona finiquitoAmount: %v", verr.Fields)
	}
}

func TestGenerateUnknownTypeFails(t *testing.T) {
	svc, _ := newTestService(&testPacker{})

	_, err := svc.Generate(context.Background(), schema.DocType("poder-notarial"), fields.Record{})
	if !errors.Is(err, schema.ErrUnknownType) {
		t.Fatalf("esperaba ErrUnknownType, obtuve %v", err)
	}
}

func TestGenerateFallsBackToTextWhenPackerFails(t *testing.T) {
	svc, _ := newTestService(&testPacker{fail: true})

	f, err := svc.Generate(context.Background(), schema.TypeFiniquito, validFiniquitoRecord())
	if err != nil {
		t.Fatalf("la falla del empaquetador no debe fallar la operación: %v", err)
	}
	if f.ContentType != "text/plain; charset=utf-8" {
		t.Fatalf("content type = %s", f.ContentType)
	}
	if !strings.HasSuffix(f.Name, ".txt") {
		t.Fatalf("nombre = %q, esperaba extensión .txt", f.Name)
	}
	// el texto plano conserva el contenido ya interpolado
	if !strings.Contains(string(f.Data), "OCHOCIENTOS CINCUENTA PESOS") {
		t.Fatalf("el texto no incluye la cantidad en letra:\n%s", f.Data)
	}
}

func TestGenerateMinutaOmitsLogoOnFetchError(t *testing.T) {
	repo := newTestDraftRepo()
	svc := NewService(&testPacker{}, &testAssets{err: errors.New("assets: 503")}, &testSheets{}, repo, logger.New(logger.Options{Level: logger.Error}))
	svc.now = func() time.Time {
		return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	}

	f, err := svc.GenerateMinuta(context.Background(), clauses.MinutaInput{Evento: "Revisión mensual"})
	if err != nil {
		t.Fatalf("GenerateMinuta: %v", err)
	}
	if want := "Minuta_Revisión_mensual_2025-03-10.docx"; f.Name != want {
		t.Fatalf("nombre = %q, quería %q", f.Name, want)
	}
}

func TestGenerateAttendanceFormats(t *testing.T) {
	svc, _ := newTestService(&testPacker{})
	in := clauses.AttendanceInput{Evento: "Capacitación"}

	f, err := svc.GenerateAttendance(context.Background(), in, "")
	if err != nil {
		t.Fatalf("formato vacío: %v", err)
	}
	if !strings.HasSuffix(f.Name, ".docx") {
		t.Fatalf("formato vacío debe caer a docx, nombre = %q", f.Name)
	}

	f, err = svc.GenerateAttendance(context.Background(), in, "xlsx")
	if err != nil {
		t.Fatalf("xlsx: %v", err)
	}
	if f.ContentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("content type xlsx = %s", f.ContentType)
	}
	if !strings.HasSuffix(f.Name, ".xlsx") {
		t.Fatalf("nombre = %q", f.Name)
	}

	if _, err = svc.GenerateAttendance(context.Background(), in, "pdf"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("formato desconocido debe regresar ErrInvalidInput, obtuve %v", err)
	}
}

func TestSaveDraftRoundTrip(t *testing.T) {
	svc, repo := newTestService(&testPacker{})

	rec := fields.Record{"employeeName": "Ana Ruiz"}
	d, err := svc.SaveDraft(context.Background(), schema.TypeTimeUnit, rec, "user-1")
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if d.ID == "" {
		t.Fatalf("el borrador guardado debe traer ID")
	}
	if d.CreatedBy != "user-1" {
		t.Fatalf("CreatedBy = %q", d.CreatedBy)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("esperaba 1 borrador persistido, hay %d", len(repo.byID))
	}

	got, err := svc.GetDraft(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("GetDraft: %v", err)
	}
	if fields.Get(got.Record, "employeeName") != "Ana Ruiz" {
		t.Fatalf("registro recuperado: %#v", got.Record)
	}
}

func TestSaveDraftRejectsUnknownType(t *testing.T) {
	svc, _ := newTestService(&testPacker{})

	_, err := svc.SaveDraft(context.Background(), schema.DocType("poder-notarial"), fields.Record{"x": "y"}, "user-1")
	if !errors.Is(err, schema.ErrUnknownType) {
		t.Fatalf("esperaba ErrUnknownType, obtuve %v", err)
	}
}

func TestGetDraftNotFound(t *testing.T) {
	svc, _ := newTestService(&testPacker{})

	_, err := svc.GetDraft(context.Background(), "no-existe")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("esperaba ErrNotFound, obtuve %v", err)
	}
}
