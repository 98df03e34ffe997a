package events

import (
	"context"
	"sort"
	"testing"
	"time"

	"birrieria-admin/internal/ports/auth"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Event
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Event{}}
}

func (r *testRepo) Create(ctx context.Context, e Event) error {
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) Update(ctx context.Context, e Event) error {
	if _, ok := r.byID[e.ID]; !ok {
		return ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) ListByYear(ctx context.Context, year int) ([]Event, error) {
	out := make([]Event, 0)
	for _, e := range r.byID {
		if e.Year == year {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *testRepo) CountByYearAndType(ctx context.Context, year int, t EventType) (int, error) {
	n := 0
	for _, e := range r.byID {
		if e.Year == year && e.Type == t {
			n++
		}
	}
	return n, nil
}

// -------------------------
// Tests
// -------------------------

func TestCreateDefaultsToCustom(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	e, err := svc.Create(context.Background(), "user-1", CreateInput{
		Title: "Inventario general",
		Date:  time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.Type != EventTypeCustom {
		t.Fatalf("tipo = %s, esperaba custom", e.Type)
	}
	if e.Color != ColorDefault {
		t.Fatalf("color = %s", e.Color)
	}
	if e.Year != 2025 {
		t.Fatalf("year = %d", e.Year)
	}
}

func TestCreateRequiresTitleAndDate(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "user-1", CreateInput{Date: time.Now()}); err != ErrInvalidInput {
		t.Fatalf("sin título: %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", CreateInput{Title: "x"}); err != ErrInvalidInput {
		t.Fatalf("sin fecha: %v", err)
	}
}

func TestUpdateRecomputesYear(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	e, err := svc.Create(context.Background(), "user-1", CreateInput{
		Title: "Junta anual",
		Date:  time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newDate := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), e.ID, UpdateInput{Date: &newDate})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Year != 2026 {
		t.Fatalf("year = %d, esperaba 2026", updated.Year)
	}
}

func TestSeedHolidaysIsIdempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.SeedHolidays(context.Background(), 2025, "admin-1")
	if err != nil {
		t.Fatalf("SeedHolidays: %v", err)
	}
	if created != 7 {
		t.Fatalf("creó %d festivos, esperaba 7", created)
	}

	created, err = svc.SeedHolidays(context.Background(), 2025, "admin-1")
	if err != nil {
		t.Fatalf("segunda siembra: %v", err)
	}
	if created != 0 {
		t.Fatalf("la segunda siembra creó %d, esperaba 0", created)
	}

	// otro año sí siembra
	created, err = svc.SeedHolidays(context.Background(), 2026, "admin-1")
	if err != nil {
		t.Fatalf("siembra 2026: %v", err)
	}
	if created != 7 {
		t.Fatalf("2026 creó %d, esperaba 7", created)
	}
}

func TestSeedHolidaysMovableDates(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.SeedHolidays(context.Background(), 2025, "admin-1"); err != nil {
		t.Fatalf("SeedHolidays: %v", err)
	}

	byTitle := map[string]Event{}
	for _, e := range repo.byID {
		byTitle[e.Title] = e
	}

	// primer lunes de febrero 2025 = 3 de febrero
	if got := byTitle["Aniversario de la Constitución"].Date; got.Day() != 3 || got.Month() != time.February {
		t.Fatalf("Constitución = %s", got.Format("2006-01-02"))
	}
	// tercer lunes de marzo 2025 = 17 de marzo
	if got := byTitle["Natalicio de Benito Juárez"].Date; got.Day() != 17 || got.Month() != time.March {
		t.Fatalf("Benito Juárez = %s", got.Format("2006-01-02"))
	}
	// tercer lunes de noviembre 2025 = 17 de noviembre
	if got := byTitle["Aniversario de la Revolución"].Date; got.Day() != 17 || got.Month() != time.November {
		t.Fatalf("Revolución = %s", got.Format("2006-01-02"))
	}
	// fijos
	if got := byTitle["Día de la Independencia"].Date; got.Day() != 16 || got.Month() != time.September {
		t.Fatalf("Independencia = %s", got.Format("2006-01-02"))
	}
}

func TestVisibleToFiltersMinutaEvents(t *testing.T) {
	evts := []Event{
		{Title: "Navidad", Type: EventTypeHoliday},
		{Title: "Inventario", Type: EventTypeCustom},
		{
			Title:        "Reunión de Seguimiento - cocinero (Las Quintas)",
			Type:         EventTypeMinuta,
			TargetRole:   auth.RoleCocinero,
			TargetBranch: auth.BranchLasQuintas,
		},
	}

	if got := VisibleTo(evts, auth.RoleAdmin, ""); len(got) != 3 {
		t.Fatalf("admin ve %d, esperaba 3", len(got))
	}
	if got := VisibleTo(evts, auth.RoleCocinero, auth.BranchLasQuintas); len(got) != 3 {
		t.Fatalf("cocinero de Las Quintas ve %d, esperaba 3", len(got))
	}
	if got := VisibleTo(evts, auth.RoleCocinero, auth.BranchSanPedro); len(got) != 2 {
		t.Fatalf("cocinero de San Pedro ve %d, esperaba 2", len(got))
	}
	if got := VisibleTo(evts, auth.RoleMesero, auth.BranchLasQuintas); len(got) != 2 {
		t.Fatalf("mesero ve %d, esperaba 2", len(got))
	}
}
