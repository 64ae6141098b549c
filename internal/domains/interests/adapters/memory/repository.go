package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/havendogs/api-server/internal/domains/interests/domain"
	"github.com/havendogs/api-server/internal/domains/interests/ports"
	"github.com/havendogs/api-server/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory implementation used for demos/tests.
type Repository struct {
	mu        sync.RWMutex
	interests map[string]*storedInterest
	now       func() time.Time
}

type storedInterest struct {
	interest *domain.Interest
	metadata projection.Metadata
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{
		interests: map[string]*storedInterest{},
		now:       time.Now,
	}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// Insert stores a new submission.
func (r *Repository) Insert(_ context.Context, interest *domain.Interest) (*projection.Projection[*domain.Interest], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now()
	stored := &storedInterest{
		interest: interest.Clone(),
		metadata: projection.Metadata{CreatedAt: timestamp, UpdatedAt: timestamp},
	}
	r.interests[interest.ID] = stored
	return projectionCopy(stored), nil
}

// GetByID fetches a submission if present.
func (r *Repository) GetByID(_ context.Context, id string) (*projection.Projection[*domain.Interest], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.interests[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return projectionCopy(entry), nil
}

// FindByPet returns submissions for one listing, newest first.
func (r *Repository) FindByPet(_ context.Context, petID string) ([]*projection.Projection[*domain.Interest], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*projection.Projection[*domain.Interest]
	for _, entry := range r.interests {
		if entry.interest.PetID == petID {
			list = append(list, projectionCopy(entry))
		}
	}
	sortNewestFirst(list)
	return list, nil
}

// List returns submissions matching the filter, newest first.
func (r *Repository) List(_ context.Context, filter ports.Filter) ([]*projection.Projection[*domain.Interest], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*projection.Projection[*domain.Interest]
	for _, entry := range r.interests {
		if filter.Status != nil && entry.interest.Status != *filter.Status {
			continue
		}
		list = append(list, projectionCopy(entry))
	}
	sortNewestFirst(list)
	return list, nil
}

// UpdateStatus replaces the status of one submission.
func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.Status) (*projection.Projection[*domain.Interest], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.interests[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	entry.interest.Status = status
	entry.metadata.UpdatedAt = r.now()
	return projectionCopy(entry), nil
}

func sortNewestFirst(list []*projection.Projection[*domain.Interest]) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Metadata.CreatedAt.After(list[j].Metadata.CreatedAt)
	})
}

func projectionCopy(entry *storedInterest) *projection.Projection[*domain.Interest] {
	return &projection.Projection[*domain.Interest]{
		Entity:   entry.interest.Clone(),
		Metadata: entry.metadata,
	}
}
