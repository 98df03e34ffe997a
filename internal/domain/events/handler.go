package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"birrieria-admin/internal/middleware"
	"birrieria-admin/internal/ports/auth"
)

// ProfileLookup resuelve puesto y sucursal del usuario autenticado para
// el filtrado de visibilidad. Lo implementa el módulo de usuarios.
type ProfileLookup interface {
	RoleAndBranch(ctx context.Context, userID string) (auth.Role, auth.Branch, error)
}

func RegisterRoutes(r chi.Router, svc *Service, profiles ProfileLookup) {
	r.Route("/events", func(er chi.Router) {
		er.Get("/", listEventsHandler(svc, profiles))
		er.Post("/", createEventHandler(svc))
		er.Put("/{eventID}", updateEventHandler(svc, profiles))
		er.Delete("/{eventID}", deleteEventHandler(svc, profiles))
		er.Post("/holidays/seed", seedHolidaysHandler(svc, profiles))
	})
}

// createEventRequest es el cuerpo para crear un evento del calendario.
type createEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // RFC3339
	Color       string    `json:"color"`
	Type        EventType `json:"type" enums:"holiday,custom,minuta"`
}

// eventResponse representa un evento del calendario devuelto por la API.
type eventResponse struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Date         time.Time   `json:"date"`
	Year         int         `json:"year"`
	Color        string      `json:"color"`
	Type         EventType   `json:"type"`
	CreatedBy    string      `json:"created_by"`
	CreatedAt    time.Time   `json:"created_at"`
	TargetRole   auth.Role   `json:"target_role,omitempty"`
	TargetBranch auth.Branch `json:"target_branch,omitempty"`
	MinutaID     string      `json:"minuta_id,omitempty"`
}

// listEventsHandler godoc
// @Summary Listar eventos del calendario
// @Description Lista los eventos del año indicado, filtrados por visibilidad: los admin ven todo, los eventos de minuta solo los ve el puesto y sucursal destinatarios. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param year query int true "Año del calendario"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "year inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /events [get]
func listEventsHandler(svc *Service, profiles ProfileLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil || year <= 0 {
			http.Error(w, "year must be a positive integer", http.StatusBadRequest)
			return
		}

		evts, err := svc.ListByYear(r.Context(), year)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		role, branch := callerRoleAndBranch(r.Context(), profiles, claims.UserID)
		visible := VisibleTo(evts, role, branch)

		out := make([]eventResponse, 0, len(visible))
		for _, e := range visible {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createEventHandler godoc
// @Summary Crear evento del calendario
// @Description Crea un evento manual en el calendario. El tipo por omisión es custom.
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createEventRequest true "Datos del evento; date en formato RFC3339"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / date inválido / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /events [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			http.Error(w, "date must be RFC3339", http.StatusBadRequest)
			return
		}

		e, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Title:       req.Title,
			Description: req.Description,
			Date:        t,
			Color:       req.Color,
			Type:        req.Type,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid input", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// updateEventRequest es el cuerpo para modificar un evento; los campos
// ausentes no se tocan.
type updateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *string    `json:"date"` // RFC3339
	Color       *string    `json:"color"`
	Type        *EventType `json:"type"`
}

// updateEventHandler godoc
// @Summary Modificar evento del calendario
// @Description Modifica un evento existente. Solo los admin pueden modificar eventos.
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Param payload body updateEventRequest true "Campos a modificar"
// @Success 200 {object} eventResponse
// @Failure 400 {string} string "invalid json / date inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [put]
func updateEventHandler(svc *Service, profiles ProfileLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !isAdmin(r.Context(), profiles, claims.UserID) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req updateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Title:       req.Title,
			Description: req.Description,
			Color:       req.Color,
			Type:        req.Type,
		}
		if req.Date != nil {
			t, err := time.Parse(time.RFC3339, *req.Date)
			if err != nil {
				http.Error(w, "date must be RFC3339", http.StatusBadRequest)
				return
			}
			in.Date = &t
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "eventID"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "event not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "invalid input", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(e))
	}
}

// deleteEventHandler godoc
// @Summary Eliminar evento del calendario
// @Description Elimina un evento. Solo los admin pueden eliminar eventos.
// @Tags events
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [delete]
func deleteEventHandler(svc *Service, profiles ProfileLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !isAdmin(r.Context(), profiles, claims.UserID) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "eventID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "event not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// seedHolidaysResponse reporta cuántos festivos se sembraron.
type seedHolidaysResponse struct {
	Year    int `json:"year"`
	Created int `json:"created"`
}

// seedHolidaysHandler godoc
// @Summary Sembrar festivos oficiales
// @Description Siembra los festivos oficiales mexicanos del año indicado. Es idempotente: si el año ya tiene festivos no agrega nada. Solo admin.
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param year query int true "Año a sembrar"
// @Success 200 {object} seedHolidaysResponse
// @Failure 400 {string} string "year inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /events/holidays/seed [post]
func seedHolidaysHandler(svc *Service, profiles ProfileLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !isAdmin(r.Context(), profiles, claims.UserID) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil || year <= 0 {
			http.Error(w, "year must be a positive integer", http.StatusBadRequest)
			return
		}

		created, err := svc.SeedHolidays(r.Context(), year, claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, seedHolidaysResponse{Year: year, Created: created})
	}
}

func callerRoleAndBranch(ctx context.Context, profiles ProfileLookup, userID string) (auth.Role, auth.Branch) {
	if profiles == nil {
		return auth.RoleUser, ""
	}
	role, branch, err := profiles.RoleAndBranch(ctx, userID)
	if err != nil {
		// usuario sin perfil registrado: trato de usuario raso
		return auth.RoleUser, ""
	}
	return role, branch
}

func isAdmin(ctx context.Context, profiles ProfileLookup, userID string) bool {
	role, _ := callerRoleAndBranch(ctx, profiles, userID)
	return role == auth.RoleAdmin
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Date:         e.Date,
		Year:         e.Year,
		Color:        e.Color,
		Type:         e.Type,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt,
		TargetRole:   e.TargetRole,
		TargetBranch: e.TargetBranch,
		MinutaID:     e.MinutaID,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
