package documents

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"birrieria-admin/internal/domain/documents/clauses"
	"birrieria-admin/internal/domain/documents/fields"
	"birrieria-admin/internal/domain/documents/schema"
	"birrieria-admin/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/documents", func(dr chi.Router) {
		dr.Get("/types", listTypesHandler(svc))
		dr.Get("/{docType}/schema", getSchemaHandler(svc))
		dr.Post("/{docType}/generate", generateHandler(svc))
		dr.Post("/{docType}/drafts", saveDraftHandler(svc))
		dr.Get("/{docType}/drafts/{draftID}", getDraftHandler(svc))
		dr.Post("/minuta", generateMinutaHandler(svc))
		dr.Post("/attendance", generateAttendanceHandler(svc))
	})
}

// validationResponse detalla los campos obligatorios que faltan.
type validationResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

// listTypesHandler godoc
// @Summary Listar tipos de documento
// @Description Lista los tipos de documento laboral que el sistema sabe generar.
// @Tags documents
// @Produce json
// @Success 200 {array} string
// @Router /documents/types [get]
func listTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Types())
	}
}

// getSchemaHandler godoc
// @Summary Esquema del formulario
// @Description Regresa los pasos y campos del formulario del tipo de documento indicado, incluyendo reglas de visibilidad condicional.
// @Tags documents
// @Produce json
// @Param docType path string true "Tipo de documento" Enums(trial,time-unit,indefinite,confidentiality,voluntary-quitting,finiquito,acta-administrativa)
// @Success 200 {array} schema.FormStep
// @Failure 404 {string} string "unknown document type"
// @Router /documents/{docType}/schema [get]
func getSchemaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		steps, err := svc.Schema(schema.DocType(chi.URLParam(r, "docType")))
		if err != nil {
			http.Error(w, "unknown document type", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, steps)
	}
}

// generateHandler godoc
// @Summary Generar documento
// @Description Valida el registro del formulario, ensambla las cláusulas y regresa el archivo binario para descarga. Si el empaquetado docx falla, la respuesta es el mismo contenido en texto plano.
// @Tags documents
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param docType path string true "Tipo de documento"
// @Param payload body fields.Record true "Registro del formulario"
// @Success 200 {file} binary
// @Failure 404 {string} string "unknown document type"
// @Failure 422 {object} validationResponse
// @Router /documents/{docType}/generate [post]
func generateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec fields.Record
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		f, err := svc.Generate(r.Context(), schema.DocType(chi.URLParam(r, "docType")), rec)
		if err != nil {
			writeDocumentError(w, err)
			return
		}
		writeFile(w, f)
	}
}

// minutaRequest es el cuerpo para generar la minuta de reunión.
type minutaRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Lugar     string `json:"lugar"`
	Evento    string `json:"evento"`
	Areas     []struct {
		Area            string `json:"area"`
		Planteamiento   string `json:"planteamiento"`
		Seguimiento     string `json:"seguimiento"`
		FechaCompromiso string `json:"fecha_compromiso"`
		EncargadoName   string `json:"encargado_name"`
	} `json:"areas"`
	Attendees []struct {
		UID         string `json:"uid"`
		DisplayName string `json:"display_name"`
		Email       string `json:"email"`
	} `json:"attendees"`
}

// generateMinutaHandler godoc
// @Summary Generar minuta de reunión
// @Description Arma la hoja de minuta del sistema de gestión de calidad con la tabla de acuerdos y la lista de asistentes.
// @Tags documents
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param payload body minutaRequest true "Datos de la minuta"
// @Success 200 {file} binary
// @Failure 400 {string} string "invalid json"
// @Router /documents/minuta [post]
func generateMinutaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req minutaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := clauses.MinutaInput{
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Lugar:     req.Lugar,
			Evento:    req.Evento,
		}
		for _, a := range req.Areas {
			in.Areas = append(in.Areas, clauses.MinutaArea{
				Area:            a.Area,
				Planteamiento:   a.Planteamiento,
				Seguimiento:     a.Seguimiento,
				FechaCompromiso: a.FechaCompromiso,
				EncargadoName:   a.EncargadoName,
			})
		}
		for _, a := range req.Attendees {
			in.Attendees = append(in.Attendees, clauses.MinutaAttendee{
				UID:         a.UID,
				DisplayName: a.DisplayName,
				Email:       a.Email,
			})
		}

		f, err := svc.GenerateMinuta(r.Context(), in)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeFile(w, f)
	}
}

// attendanceRequest es el cuerpo para generar la lista de asistencia.
type attendanceRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Evento    string `json:"evento"`
	Employees []struct {
		DisplayName string `json:"display_name"`
		Area        string `json:"area"`
		Email       string `json:"email"`
	} `json:"employees"`
}

// generateAttendanceHandler godoc
// @Summary Generar lista de asistencia
// @Description Arma la lista de asistencia con renglones para firma. El parámetro format elige entre docx (por defecto) y xlsx.
// @Tags documents
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param format query string false "Formato de salida" Enums(docx,xlsx)
// @Param payload body attendanceRequest true "Datos de la lista"
// @Success 200 {file} binary
// @Failure 400 {string} string "invalid json / formato desconocido"
// @Router /documents/attendance [post]
func generateAttendanceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req attendanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := clauses.AttendanceInput{
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Evento:    req.Evento,
		}
		for _, e := range req.Employees {
			in.Employees = append(in.Employees, clauses.AttendanceEmployee{
				DisplayName: e.DisplayName,
				Area:        e.Area,
				Email:       e.Email,
			})
		}

		f, err := svc.GenerateAttendance(r.Context(), in, r.URL.Query().Get("format"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "unknown format", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeFile(w, f)
	}
}

// draftResponse representa un borrador guardado.
type draftResponse struct {
	ID        string         `json:"id"`
	DocType   schema.DocType `json:"doc_type"`
	Record    fields.Record  `json:"record"`
	CreatedBy string         `json:"created_by"`
}

// saveDraftHandler godoc
// @Summary Guardar borrador
// @Description Guarda el registro parcial del formulario para retomarlo después. Guardar es explícito: generar un documento nunca persiste nada.
// @Tags documents
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param docType path string true "Tipo de documento"
// @Param payload body fields.Record true "Registro parcial del formulario"
// @Success 201 {object} draftResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "unknown document type"
// @Router /documents/{docType}/drafts [post]
func saveDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var rec fields.Record
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.SaveDraft(r.Context(), schema.DocType(chi.URLParam(r, "docType")), rec, claims.UserID)
		if err != nil {
			if errors.Is(err, schema.ErrUnknownType) {
				http.Error(w, "unknown document type", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, toDraftResponse(d))
	}
}

// getDraftHandler godoc
// @Summary Obtener borrador
// @Description Regresa un borrador guardado por su ID.
// @Tags documents
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param docType path string true "Tipo de documento"
// @Param draftID path string true "ID del borrador"
// @Success 200 {object} draftResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "draft not found"
// @Router /documents/{docType}/drafts/{draftID} [get]
func getDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		d, err := svc.GetDraft(r.Context(), chi.URLParam(r, "draftID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "draft not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toDraftResponse(d))
	}
}

func toDraftResponse(d Draft) draftResponse {
	return draftResponse{
		ID:        d.ID,
		DocType:   d.DocType,
		Record:    d.Record,
		CreatedBy: d.CreatedBy,
	}
}

func writeDocumentError(w http.ResponseWriter, err error) {
	var validation *ValidationError
	if errors.As(err, &validation) {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Error:  "missing required fields",
			Fields: validation.Fields,
		})
		return
	}
	var missing *clauses.MissingDataError
	if errors.As(err, &missing) {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Error:  "missing required fields",
			Fields: []string{missing.Field},
		})
		return
	}
	if errors.Is(err, schema.ErrUnknownType) {
		http.Error(w, "unknown document type", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func writeFile(w http.ResponseWriter, f *File) {
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Data)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
