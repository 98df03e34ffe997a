package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"birrieria-admin/internal/domain/minutas"
	"birrieria-admin/internal/ports/auth"
)

type minutaRepo struct {
	mu   sync.RWMutex
	byID map[string]minutas.Minuta
}

func NewMinutaRepo() minutas.Repository {
	return &minutaRepo{
		byID: make(map[string]minutas.Minuta),
	}
}

func (r *minutaRepo) Create(ctx context.Context, m minutas.Minuta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == "" {
		return errors.New("minuta id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("minuta already exists")
	}

	r.byID[m.ID] = m
	return nil
}

func (r *minutaRepo) SetEventID(ctx context.Context, id, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[id]
	if !ok {
		return minutas.ErrNotFound
	}
	m.EventID = eventID
	r.byID[id] = m
	return nil
}

func (r *minutaRepo) GetByID(ctx context.Context, id string) (minutas.Minuta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return minutas.Minuta{}, minutas.ErrNotFound
	}
	return m, nil
}

func (r *minutaRepo) List(ctx context.Context) ([]minutas.Minuta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]minutas.Minuta, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *minutaRepo) ListByRoleAndBranch(ctx context.Context, role auth.Role, branch auth.Branch) ([]minutas.Minuta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]minutas.Minuta, 0)
	for _, m := range r.byID {
		if m.Role == role && m.Branch == branch {
			out = append(out, m)
		}
	}
	sortByCreatedDesc(out)
	return out, nil
}

func sortByCreatedDesc(list []minutas.Minuta) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
