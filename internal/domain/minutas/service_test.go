package minutas

import (
	"context"
	"errors"
	"testing"
	"time"

	"birrieria-admin/internal/domain/events"
	"birrieria-admin/internal/domain/users"
	"birrieria-admin/internal/platform/logger"
	"birrieria-admin/internal/ports/auth"
	"birrieria-admin/internal/ports/notify"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	byID map[string]Minuta
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Minuta{}}
}

func (r *testRepo) Create(ctx context.Context, m Minuta) error {
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) SetEventID(ctx context.Context, id, eventID string) error {
	m, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	m.EventID = eventID
	r.byID[id] = m
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Minuta, error) {
	m, ok := r.byID[id]
	if !ok {
		return Minuta{}, ErrNotFound
	}
	return m, nil
}

func (r *testRepo) List(ctx context.Context) ([]Minuta, error) {
	out := make([]Minuta, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}
	return out, nil
}

func (r *testRepo) ListByRoleAndBranch(ctx context.Context, role auth.Role, branch auth.Branch) ([]Minuta, error) {
	out := make([]Minuta, 0)
	for _, m := range r.byID {
		if m.Role == role && m.Branch == branch {
			out = append(out, m)
		}
	}
	return out, nil
}

type testScheduler struct {
	created []events.CreateInput
	fail    bool
}

func (s *testScheduler) Create(ctx context.Context, createdBy string, in events.CreateInput) (events.Event, error) {
	if s.fail {
		return events.Event{}, errors.New("scheduler: repo down")
	}
	s.created = append(s.created, in)
	return events.Event{ID: "event-1", Title: in.Title}, nil
}

type testDirectory struct {
	profiles []users.Profile
}

func (d *testDirectory) List(ctx context.Context) ([]users.Profile, error) {
	return d.profiles, nil
}

type testNotifier struct {
	recipients []notify.Recipient
	fail       bool
}

func (n *testNotifier) NotifyMinuta(ctx context.Context, msg notify.MinutaNotification, recipients []notify.Recipient) error {
	if n.fail {
		return errors.New("notifier: gateway 502")
	}
	n.recipients = append(n.recipients, recipients...)
	return nil
}

func testProfiles() []users.Profile {
	return []users.Profile{
		{ID: "u-admin", DisplayName: "Olivia", Role: auth.RoleAdmin, PhoneNumber: "6621112233"},
		{ID: "u-coc", DisplayName: "Ana", Role: auth.RoleCocinero, Branch: auth.BranchLasQuintas, PhoneNumber: "6624445566"},
		{ID: "u-coc2", DisplayName: "Luis", Role: auth.RoleCocinero, Branch: auth.BranchSanPedro, PhoneNumber: "6627778899"},
		{ID: "u-mes", DisplayName: "Pedro", Role: auth.RoleMesero, Branch: auth.BranchLasQuintas, PhoneNumber: "6620001122"},
		{ID: "u-sin", DisplayName: "SinTel", Role: auth.RoleCocinero, Branch: auth.BranchLasQuintas},
	}
}

func validInput() CreateInput {
	return CreateInput{
		Supervisor:      "Olivia González",
		Branch:          auth.BranchLasQuintas,
		Role:            auth.RoleCocinero,
		WhatHappened:    "Revisión de tiempos de cocción.",
		Expectations:    "Llegar con el reporte de mermas.",
		NextMeetingDate: time.Date(2025, time.March, 17, 9, 30, 0, 0, time.UTC),
	}
}

// -------------------------
// Tests
// -------------------------

func TestCreateSchedulesFollowUpEvent(t *testing.T) {
	repo := newTestRepo()
	sched := &testScheduler{}
	svc := NewService(repo, sched, &testDirectory{profiles: testProfiles()}, &testNotifier{}, logger.New(logger.Options{Level: logger.Error}))

	m, err := svc.Create(context.Background(), "u-admin", validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.EventID != "event-1" {
		t.Fatalf("EventID = %q", m.EventID)
	}
	if len(sched.created) != 1 {
		t.Fatalf("agendó %d eventos", len(sched.created))
	}

	e := sched.created[0]
	if e.Title != "Reunión de Seguimiento - cocinero (Las Quintas)" {
		t.Fatalf("título del evento = %q", e.Title)
	}
	if e.Type != events.EventTypeMinuta {
		t.Fatalf("tipo del evento = %s", e.Type)
	}
	if e.TargetRole != auth.RoleCocinero || e.TargetBranch != auth.BranchLasQuintas {
		t.Fatalf("destino del evento = %s/%s", e.TargetRole, e.TargetBranch)
	}
	if e.MinutaID != m.ID {
		t.Fatalf("MinutaID del evento = %q, minuta = %q", e.MinutaID, m.ID)
	}

	got, err := repo.GetByID(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.EventID != "event-1" {
		t.Fatalf("el repo no guardó el EventID: %#v", got)
	}
}

func TestCreateNotifiesAdminsAndTargetRole(t *testing.T) {
	notifier := &testNotifier{}
	svc := NewService(newTestRepo(), &testScheduler{}, &testDirectory{profiles: testProfiles()}, notifier, logger.New(logger.Options{Level: logger.Error}))

	if _, err := svc.Create(context.Background(), "u-admin", validInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// admin + cocinera de Las Quintas; fuera el de San Pedro, el mesero
	// y la que no tiene teléfono
	if len(notifier.recipients) != 2 {
		t.Fatalf("avisó a %d destinatarios: %#v", len(notifier.recipients), notifier.recipients)
	}
	names := map[string]bool{}
	for _, r := range notifier.recipients {
		names[r.Name] = true
	}
	if !names["Olivia"] || !names["Ana"] {
		t.Fatalf("destinatarios inesperados: %#v", notifier.recipients)
	}
}

func TestCreateSurvivesNotifierFailure(t *testing.T) {
	svc := NewService(newTestRepo(), &testScheduler{}, &testDirectory{profiles: testProfiles()}, &testNotifier{fail: true}, logger.New(logger.Options{Level: logger.Error}))

	m, err := svc.Create(context.Background(), "u-admin", validInput())
	if err != nil {
		t.Fatalf("la falla del aviso no debe tirar la creación: %v", err)
	}
	if m.ID == "" {
		t.Fatalf("minuta sin ID")
	}
}

func TestCreateFailsWhenSchedulerFails(t *testing.T) {
	svc := NewService(newTestRepo(), &testScheduler{fail: true}, &testDirectory{}, &testNotifier{}, logger.New(logger.Options{Level: logger.Error}))

	if _, err := svc.Create(context.Background(), "u-admin", validInput()); err == nil {
		t.Fatalf("sin evento de calendario la creación debe fallar")
	}
}

func TestListByRoleAndBranch(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testScheduler{}, &testDirectory{}, &testNotifier{}, logger.New(logger.Options{Level: logger.Error}))

	if _, err := svc.Create(context.Background(), "u-admin", validInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	other := validInput()
	other.Role = auth.RoleMesero
	if _, err := svc.Create(context.Background(), "u-admin", other); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.ListByRoleAndBranch(context.Background(), auth.RoleCocinero, auth.BranchLasQuintas)
	if err != nil {
		t.Fatalf("ListByRoleAndBranch: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("regresó %d minutas, esperaba 1", len(list))
	}
	if list[0].Role != auth.RoleCocinero {
		t.Fatalf("rol = %s", list[0].Role)
	}

	if _, err := svc.ListByRoleAndBranch(context.Background(), "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("esperaba ErrInvalidInput, obtuve %v", err)
	}
}
