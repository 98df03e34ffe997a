package memory

import (
	"context"
	"errors"
	"sync"

	"birrieria-admin/internal/domain/documents"
)

type draftRepo struct {
	mu   sync.RWMutex
	byID map[string]documents.Draft
}

func NewDraftRepo() documents.Repository {
	return &draftRepo{
		byID: make(map[string]documents.Draft),
	}
}

func (r *draftRepo) Create(ctx context.Context, d documents.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.ID == "" {
		return errors.New("draft id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("draft already exists")
	}

	r.byID[d.ID] = d
	return nil
}

func (r *draftRepo) Update(ctx context.Context, d documents.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[d.ID]; !ok {
		return documents.ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *draftRepo) GetByID(ctx context.Context, id string) (documents.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return documents.Draft{}, documents.ErrNotFound
	}
	return d, nil
}
