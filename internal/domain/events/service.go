package events

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
	Title       string
	Description string
	Date        time.Time
	Color       string
	Type        EventType

	TargetRole   auth.Role
	TargetBranch auth.Branch
	MinutaID     string
}

func (s *Service) Create(ctx context.Context, createdBy string, in CreateInput) (Event, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Event{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Event{}, ErrInvalidInput
	}
	if strings.TrimSpace(createdBy) == "" {
		return Event{}, ErrInvalidInput
	}

	typ := in.Type
	if typ == "" {
		typ = EventTypeCustom
	}
	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = ColorDefault
	}

	e := Event{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Date:         in.Date,
		Year:         in.Date.Year(),
		Color:        color,
		Type:         typ,
		CreatedBy:    createdBy,
		CreatedAt:    s.now(),
		TargetRole:   in.TargetRole,
		TargetBranch: in.TargetBranch,
		MinutaID:     strings.TrimSpace(in.MinutaID),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

type UpdateInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Color       *string
	Type        *EventType
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrInvalidInput
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Event{}, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return Event{}, ErrInvalidInput
		}
		e.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		e.Description = strings.TrimSpace(*in.Description)
	}
	if in.Date != nil {
		if in.Date.IsZero() {
			return Event{}, ErrInvalidInput
		}
		e.Date = *in.Date
		e.Year = in.Date.Year()
	}
	if in.Color != nil && strings.TrimSpace(*in.Color) != "" {
		e.Color = strings.TrimSpace(*in.Color)
	}
	if in.Type != nil {
		e.Type = *in.Type
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByYear(ctx context.Context, year int) ([]Event, error) {
	if year <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByYear(ctx, year)
}

// SeedHolidays siembra los festivos oficiales del año. Es idempotente:
// si el año ya tiene festivos no agrega nada. Regresa cuántos creó.
func (s *Service) SeedHolidays(ctx context.Context, year int, createdBy string) (int, error) {
	if year <= 0 || strings.TrimSpace(createdBy) == "" {
		return 0, ErrInvalidInput
	}

	existing, err := s.repo.CountByYearAndType(ctx, year, EventTypeHoliday)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	now := s.now()
	created := 0
	for _, h := range mexicanHolidays {
		e := Event{
			ID:          uuid.NewString(),
			Title:       h.Title,
			Description: h.Description,
			Date:        h.dateIn(year),
			Year:        year,
			Color:       h.Color,
			Type:        EventTypeHoliday,
			CreatedBy:   createdBy,
			CreatedAt:   now,
		}
		if err := s.repo.Create(ctx, e); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// VisibleTo filtra la lista según el usuario: los admin ven todo, los
// eventos de minuta solo los ve el puesto y sucursal destinatarios, y
// festivos y eventos manuales los ve cualquiera.
func VisibleTo(evts []Event, role auth.Role, branch auth.Branch) []Event {
	if role == auth.RoleAdmin {
		return evts
	}
	out := make([]Event, 0, len(evts))
	for _, e := range evts {
		if e.Type == EventTypeMinuta {
			if e.TargetRole == role && e.TargetBranch == branch {
				out = append(out, e)
			}
			continue
		}
		out = append(out, e)
	}
	return out
}
