package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"birrieria-admin/internal/middleware"
	"birrieria-admin/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/", createUserHandler(svc))
		ur.Get("/", listUsersHandler(svc))
		ur.Get("/{userID}", getUserHandler(svc))
	})
}

// createUserRequest es el cuerpo para registrar un usuario.
type createUserRequest struct {
	ID          string      `json:"id"` // opcional: ID del proveedor de identidad
	Email       string      `json:"email"`
	DisplayName string      `json:"display_name"`
	Role        auth.Role   `json:"role" enums:"admin,user,mesero,tortillero,losero,cocinero"`
	Branch      auth.Branch `json:"branch" enums:"San Pedro,Las Quintas"`
	PhoneNumber string      `json:"phone_number"`
}

// userResponse representa la ficha del usuario devuelta por la API.
type userResponse struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	DisplayName string      `json:"display_name"`
	Role        auth.Role   `json:"role"`
	Branch      auth.Branch `json:"branch,omitempty"`
	PhoneNumber string      `json:"phone_number,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// createUserHandler godoc
// @Summary Registrar usuario
// @Description Registra la ficha de un empleado o administrador. Solo admin, salvo el primer perfil del sistema que se registra sin restricción. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags users
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createUserRequest true "Datos del usuario"
// @Success 201 {object} userResponse
// @Failure 400 {string} string "invalid json / email inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 409 {string} string "email already registered"
// @Router /users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		// El primer perfil se registra sin admin (bootstrap del sistema)
		if existing, err := svc.List(r.Context()); err == nil && len(existing) > 0 {
			if !isAdmin(r, svc, claims.UserID) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			ID:          req.ID,
			Email:       req.Email,
			DisplayName: req.DisplayName,
			Role:        req.Role,
			Branch:      req.Branch,
			PhoneNumber: req.PhoneNumber,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicate):
				http.Error(w, "email already registered", http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "invalid input", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusCreated, toUserResponse(p))
	}
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Description Lista las fichas de todos los usuarios. Solo admin.
// @Tags users
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} userResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, svc) {
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]userResponse, 0, len(list))
		for _, p := range list {
			out = append(out, toUserResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Description Regresa la ficha de un usuario por su ID. Los admin pueden consultar cualquiera; los demás solo la propia.
// @Tags users
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param userID path string true "ID del usuario"
// @Success 200 {object} userResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "user not found"
// @Router /users/{userID} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		userID := chi.URLParam(r, "userID")
		if userID != claims.UserID && !isAdmin(r, svc, claims.UserID) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		p, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(p))
	}
}

func requireAdmin(w http.ResponseWriter, r *http.Request, svc *Service) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	if !isAdmin(r, svc, claims.UserID) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func isAdmin(r *http.Request, svc *Service, userID string) bool {
	p, err := svc.GetByID(r.Context(), userID)
	return err == nil && p.Role == auth.RoleAdmin
}

func toUserResponse(p Profile) userResponse {
	return userResponse{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Role:        p.Role,
		Branch:      p.Branch,
		PhoneNumber: p.PhoneNumber,
		CreatedAt:   p.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
