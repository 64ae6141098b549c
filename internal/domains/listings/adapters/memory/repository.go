package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/havendogs/api-server/internal/domains/listings/domain"
	"github.com/havendogs/api-server/internal/domains/listings/ports"
	"github.com/havendogs/api-server/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory implementation used for demos/tests.
type Repository struct {
	mu       sync.RWMutex
	listings map[string]*storedListing
	now      func() time.Time
}

type storedListing struct {
	listing  *domain.Listing
	metadata projection.Metadata
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{
		listings: map[string]*storedListing{},
		now:      time.Now,
	}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// Save inserts or replaces a listing while maintaining metadata.
func (r *Repository) Save(_ context.Context, listing *domain.Listing) (*projection.Projection[*domain.Listing], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now()
	metadata := projection.Metadata{CreatedAt: timestamp, UpdatedAt: timestamp}
	if entry, ok := r.listings[listing.ID]; ok {
		metadata.CreatedAt = entry.metadata.CreatedAt
	}

	stored := &storedListing{listing: cloneListing(listing), metadata: metadata}
	r.listings[listing.ID] = stored
	return projectionCopy(stored), nil
}

// GetByID fetches a listing if present.
func (r *Repository) GetByID(_ context.Context, id string) (*projection.Projection[*domain.Listing], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.listings[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return projectionCopy(entry), nil
}

// Delete removes a listing.
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.listings, id)
	return nil
}

// List returns all listings, newest first.
func (r *Repository) List(_ context.Context) ([]*projection.Projection[*domain.Listing], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*projection.Projection[*domain.Listing], 0, len(r.listings))
	for _, entry := range r.listings {
		list = append(list, projectionCopy(entry))
	}
	sortNewestFirst(list)
	return list, nil
}

// FindByLocation matches available listings whose location contains the fragment.
func (r *Repository) FindByLocation(_ context.Context, location string) ([]*projection.Projection[*domain.Listing], error) {
	return r.findAvailable(func(l *domain.Listing) string { return l.Location }, location), nil
}

// FindByBreed matches available listings whose breed contains the fragment.
func (r *Repository) FindByBreed(_ context.Context, breed string) ([]*projection.Projection[*domain.Listing], error) {
	return r.findAvailable(func(l *domain.Listing) string { return l.Breed }, breed), nil
}

func (r *Repository) findAvailable(field func(*domain.Listing) string, fragment string) []*projection.Projection[*domain.Listing] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fragment = strings.ToLower(fragment)
	var list []*projection.Projection[*domain.Listing]
	for _, entry := range r.listings {
		if entry.listing.Status != domain.StatusAvailable {
			continue
		}
		if strings.Contains(strings.ToLower(field(entry.listing)), fragment) {
			list = append(list, projectionCopy(entry))
		}
	}
	sortNewestFirst(list)
	return list
}

func sortNewestFirst(list []*projection.Projection[*domain.Listing]) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Metadata.CreatedAt.After(list[j].Metadata.CreatedAt)
	})
}

func projectionCopy(entry *storedListing) *projection.Projection[*domain.Listing] {
	return &projection.Projection[*domain.Listing]{
		Entity:   cloneListing(entry.listing),
		Metadata: entry.metadata,
	}
}

func cloneListing(l *domain.Listing) *domain.Listing {
	if l == nil {
		return nil
	}
	clone := *l
	return &clone
}
