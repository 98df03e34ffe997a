package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"birrieria-admin/internal/domain/users"
)

type userRepo struct {
	mu   sync.RWMutex
	byID map[string]users.Profile
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID: make(map[string]users.Profile),
	}
}

func (r *userRepo) Create(ctx context.Context, p users.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("user already exists")
	}

	r.byID[p.ID] = p
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return users.Profile{}, users.ErrNotFound
	}
	return p, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return users.Profile{}, users.ErrNotFound
}

func (r *userRepo) List(ctx context.Context) ([]users.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.Profile, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DisplayName < out[j].DisplayName
	})
	return out, nil
}
