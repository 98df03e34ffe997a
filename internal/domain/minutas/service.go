package minutas

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"birrieria-admin/internal/domain/events"
	"birrieria-admin/internal/domain/users"
	"birrieria-admin/internal/platform/logger"
	"birrieria-admin/internal/ports/auth"
	"birrieria-admin/internal/ports/notify"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// EventScheduler crea el evento de seguimiento en el calendario. Lo
// implementa events.Service.
type EventScheduler interface {
	Create(ctx context.Context, createdBy string, in events.CreateInput) (events.Event, error)
}

// UserDirectory lista las fichas para armar los destinatarios del
// aviso. Lo implementa users.Service.
type UserDirectory interface {
	List(ctx context.Context) ([]users.Profile, error)
}

type Service struct {
	repo     Repository
	events   EventScheduler
	users    UserDirectory
	notifier notify.Notifier
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, events EventScheduler, users UserDirectory, notifier notify.Notifier, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		events:   events,
		users:    users,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

type CreateInput struct {
	Supervisor      string
	Branch          auth.Branch
	Role            auth.Role
	WhatHappened    string
	Expectations    string
	NextMeetingDate time.Time
}

// Create registra la minuta, agenda la reunión de seguimiento en el
// calendario y avisa a los involucrados. El aviso puede fallar sin
// tirar la operación; el evento de calendario no.
func (s *Service) Create(ctx context.Context, createdBy string, in CreateInput) (Minuta, error) {
	if strings.TrimSpace(in.Supervisor) == "" || in.Role == "" || in.Branch == "" {
		return Minuta{}, ErrInvalidInput
	}
	if in.NextMeetingDate.IsZero() {
		return Minuta{}, ErrInvalidInput
	}
	if strings.TrimSpace(createdBy) == "" {
		return Minuta{}, ErrInvalidInput
	}

	m := Minuta{
		ID:              uuid.NewString(),
		Supervisor:      strings.TrimSpace(in.Supervisor),
		Branch:          in.Branch,
		Role:            in.Role,
		WhatHappened:    strings.TrimSpace(in.WhatHappened),
		Expectations:    strings.TrimSpace(in.Expectations),
		NextMeetingDate: in.NextMeetingDate,
		CreatedAt:       s.now(),
		CreatedBy:       createdBy,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return Minuta{}, err
	}

	e, err := s.events.Create(ctx, createdBy, events.CreateInput{
		Title: fmt.Sprintf("Reunión de Seguimiento - %s (%s)", m.Role, m.Branch),
		Description: fmt.Sprintf(
			"Reunión de seguimiento para el rol %s en sucursal %s.\n\nSupervisor: %s\n\nExpectativas: %s",
			m.Role, m.Branch, m.Supervisor, m.Expectations),
		Date:         m.NextMeetingDate,
		Color:        events.ColorMinuta,
		Type:         events.EventTypeMinuta,
		TargetRole:   m.Role,
		TargetBranch: m.Branch,
		MinutaID:     m.ID,
	})
	if err != nil {
		return Minuta{}, fmt.Errorf("agendar seguimiento: %w", err)
	}
	m.EventID = e.ID
	if err := s.repo.SetEventID(ctx, m.ID, e.ID); err != nil {
		return Minuta{}, err
	}

	s.notifyTargets(ctx, m)
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Minuta, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Minuta{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Minuta, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByRoleAndBranch(ctx context.Context, role auth.Role, branch auth.Branch) ([]Minuta, error) {
	if role == "" || branch == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByRoleAndBranch(ctx, role, branch)
}

// notifyTargets manda el aviso a los admin y a los usuarios del puesto
// y sucursal de la minuta. Cualquier falla se registra y se sigue.
func (s *Service) notifyTargets(ctx context.Context, m Minuta) {
	if s.notifier == nil || s.users == nil {
		return
	}

	profiles, err := s.users.List(ctx)
	if err != nil {
		s.log.Warn("no se pudieron cargar destinatarios del aviso", map[string]any{
			"minuta_id": m.ID,
			"error":     err.Error(),
		})
		return
	}

	var recipients []notify.Recipient
	for _, p := range profiles {
		if p.Role != auth.RoleAdmin && (p.Role != m.Role || p.Branch != m.Branch) {
			continue
		}
		if strings.TrimSpace(p.PhoneNumber) == "" {
			continue
		}
		name := p.DisplayName
		if name == "" {
			name = p.Email
		}
		recipients = append(recipients, notify.Recipient{Name: name, Phone: p.PhoneNumber})
	}
	if len(recipients) == 0 {
		s.log.Warn("minuta sin destinatarios con teléfono", map[string]any{"minuta_id": m.ID})
		return
	}

	err = s.notifier.NotifyMinuta(ctx, notify.MinutaNotification{
		Supervisor:      m.Supervisor,
		Role:            string(m.Role),
		Branch:          string(m.Branch),
		NextMeetingDate: m.NextMeetingDate,
		Expectations:    m.Expectations,
	}, recipients)
	if err != nil {
		s.log.Warn("falló el aviso de minuta", map[string]any{
			"minuta_id": m.ID,
			"error":     err.Error(),
		})
	}
}
