package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"birrieria-admin/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("email already registered")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	ID          string // opcional: ID del proveedor de identidad
	Email       string
	DisplayName string
	Role        auth.Role
	Branch      auth.Branch
	PhoneNumber string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Profile, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return Profile{}, ErrInvalidInput
	}
	if in.Role == "" {
		return Profile{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Profile{}, ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	p := Profile{
		ID:          id,
		Email:       email,
		DisplayName: strings.TrimSpace(in.DisplayName),
		Role:        in.Role,
		Branch:      in.Branch,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Profile, error) {
	return s.repo.List(ctx)
}

// RoleAndBranch es la consulta que usan otros módulos para filtrar por
// visibilidad sin cargar la ficha completa.
func (s *Service) RoleAndBranch(ctx context.Context, userID string) (auth.Role, auth.Branch, error) {
	p, err := s.GetByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	return p.Role, p.Branch, nil
}
