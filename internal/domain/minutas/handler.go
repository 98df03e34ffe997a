package minutas

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"birrieria-admin/internal/middleware"
	"birrieria-admin/internal/ports/auth"
)

// ProfileLookup resuelve puesto y sucursal del usuario autenticado. Lo
// implementa el módulo de usuarios.
type ProfileLookup interface {
	RoleAndBranch(ctx context.Context, userID string) (auth.Role, auth.Branch, error)
}

func RegisterRoutes(r chi.Router, svc *Service, profiles ProfileLookup) {
	r.Route("/minutas", func(mr chi.Router) {
		mr.Post("/", createMinutaHandler(svc, profiles))
		mr.Get("/", listMinutasHandler(svc, profiles))
		mr.Get("/{minutaID}", getMinutaHandler(svc))
	})
}

// createMinutaRequest es el cuerpo para registrar una minuta.
type createMinutaRequest struct {
	Supervisor      string      `json:"supervisor"`
	Branch          auth.Branch `json:"branch" enums:"San Pedro,Las Quintas"`
	Role            auth.Role   `json:"role" enums:"mesero,tortillero,losero,cocinero,user"`
	WhatHappened    string      `json:"what_happened"`
	Expectations    string      `json:"expectations"`
	NextMeetingDate string      `json:"next_meeting_date"` // RFC3339
}

// minutaResponse representa una minuta devuelta por la API.
type minutaResponse struct {
	ID              string      `json:"id"`
	Supervisor      string      `json:"supervisor"`
	Branch          auth.Branch `json:"branch"`
	Role            auth.Role   `json:"role"`
	WhatHappened    string      `json:"what_happened"`
	Expectations    string      `json:"expectations"`
	NextMeetingDate time.Time   `json:"next_meeting_date"`
	CreatedAt       time.Time   `json:"created_at"`
	CreatedBy       string      `json:"created_by"`
	EventID         string      `json:"event_id,omitempty"`
}

// createMinutaHandler godoc
// @Summary Registrar minuta de supervisión
// @Description Registra la minuta, agenda la reunión de seguimiento en el calendario y avisa por WhatsApp a los admin y al puesto/sucursal destinatarios. Solo admin. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags minutas
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createMinutaRequest true "Datos de la minuta; next_meeting_date en formato RFC3339"
// @Success 201 {object} minutaResponse
// @Failure 400 {string} string "invalid json / next_meeting_date inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /minutas [post]
func createMinutaHandler(svc *Service, profiles ProfileLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if role, _ := callerRoleAndBranch(r.Context(), profiles, claims.UserID); role != auth.RoleAdmin {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req createMinutaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := time.Parse(time.RFC3339, req.NextMeetingDate)
		if err != nil {
			http.Error(w, "next_meeting_date must be RFC3339", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Supervisor:      req.Supervisor,
			Branch:          req.Branch,
			Role:            req.Role,
			WhatHappened:    req.WhatHappened,
			Expectations:    req.Expectations,
			NextMeetingDate: t,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid input", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toMinutaResponse(m))
	}
}

// listMinutasHandler godoc
// @Summary Listar minutas
// @Description Lista las minutas más recientes primero. Los admin ven todas; los demás solo las de su puesto y sucursal.
// @Tags minutas
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} minutaResponse
// @Failure 401 {string} string "unauthorized"
// @Router /minutas [get]
func listMinutasHandler(svc *Service, profiles ProfileLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		role, branch := callerRoleAndBranch(r.Context(), profiles, claims.UserID)

		var (
			list []Minuta
			err  error
		)
		if role == auth.RoleAdmin {
			list, err = svc.List(r.Context())
		} else {
			list, err = svc.ListByRoleAndBranch(r.Context(), role, branch)
			if errors.Is(err, ErrInvalidInput) {
				// sin sucursal asignada no hay minutas que mostrar
				list, err = nil, nil
			}
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]minutaResponse, 0, len(list))
		for _, m := range list {
			out = append(out, toMinutaResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getMinutaHandler godoc
// @Summary Obtener minuta
// @Description Regresa una minuta por su ID.
// @Tags minutas
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param minutaID path string true "ID de la minuta"
// @Success 200 {object} minutaResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "minuta not found"
// @Router /minutas/{minutaID} [get]
func getMinutaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "minutaID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "minuta not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toMinutaResponse(m))
	}
}

func callerRoleAndBranch(ctx context.Context, profiles ProfileLookup, userID string) (auth.Role, auth.Branch) {
	if profiles == nil {
		return auth.RoleUser, ""
	}
	role, branch, err := profiles.RoleAndBranch(ctx, userID)
	if err != nil {
		return auth.RoleUser, ""
	}
	return role, branch
}

func toMinutaResponse(m Minuta) minutaResponse {
	return minutaResponse{
		ID:              m.ID,
		Supervisor:      m.Supervisor,
		Branch:          m.Branch,
		Role:            m.Role,
		WhatHappened:    m.WhatHappened,
		Expectations:    m.Expectations,
		NextMeetingDate: m.NextMeetingDate,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
		EventID:         m.EventID,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
