package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"interest-projector/domain"
)

// ProjectionRepositoryMemory is an in-memory implementation of ProjectionRepository.
type ProjectionRepositoryMemory struct {
	mu   sync.RWMutex
	data map[uuid.UUID]domain.Projection
}

// NewProjectionRepositoryMemory creates a new in-memory projection repository.
func NewProjectionRepositoryMemory() *ProjectionRepositoryMemory {
	return &ProjectionRepositoryMemory{
		data: make(map[uuid.UUID]domain.Projection),
	}
}

// Save stores the projection in memory, replacing any projection with the same ID.
func (r *ProjectionRepositoryMemory) Save(_ context.Context, p domain.Projection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[p.ID] = p
	return nil
}

func (r *ProjectionRepositoryMemory) FindByID(_ context.Context, id uuid.UUID) (domain.Projection, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[id]
	return p, ok, nil
}

// List returns every stored projection, newest first.
func (r *ProjectionRepositoryMemory) List(_ context.Context) ([]domain.Projection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Projection, 0, len(r.data))
	for _, p := range r.data {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID.String() < list[j].ID.String()
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}
