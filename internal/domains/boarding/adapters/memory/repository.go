package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/havendogs/api-server/internal/domains/boarding/domain"
	"github.com/havendogs/api-server/internal/domains/boarding/ports"
	"github.com/havendogs/api-server/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory implementation used for demos/tests.
type Repository struct {
	mu          sync.RWMutex
	submissions map[string]*storedSubmission
	now         func() time.Time
}

type storedSubmission struct {
	submission *domain.Submission
	metadata   projection.Metadata
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{
		submissions: map[string]*storedSubmission{},
		now:         time.Now,
	}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// Insert stores a new submission.
func (r *Repository) Insert(_ context.Context, submission *domain.Submission) (*ports.SubmissionProjection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now()
	stored := &storedSubmission{
		submission: submission.Clone(),
		metadata:   projection.Metadata{CreatedAt: timestamp, UpdatedAt: timestamp},
	}
	r.submissions[submission.ID] = stored
	return projectionCopy(stored), nil
}

// GetByID fetches a submission if present.
func (r *Repository) GetByID(_ context.Context, id string) (*ports.SubmissionProjection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.submissions[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return projectionCopy(entry), nil
}

// List returns submissions matching the filter, newest first.
func (r *Repository) List(_ context.Context, filter ports.Filter) ([]*ports.SubmissionProjection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*ports.SubmissionProjection
	for _, entry := range r.submissions {
		if filter.Status != nil && entry.submission.Status != *filter.Status {
			continue
		}
		list = append(list, projectionCopy(entry))
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Metadata.CreatedAt.After(list[j].Metadata.CreatedAt)
	})
	return list, nil
}

// UpdateStatus replaces the status of one submission.
func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.Status) (*ports.SubmissionProjection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.submissions[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	entry.submission.Status = status
	entry.metadata.UpdatedAt = r.now()
	return projectionCopy(entry), nil
}

func projectionCopy(entry *storedSubmission) *ports.SubmissionProjection {
	return &ports.SubmissionProjection{
		Entity:   entry.submission.Clone(),
		Metadata: entry.metadata,
	}
}
