package ports

import (
	"context"
	"errors"

	"github.com/havendogs/api-server/internal/domains/listings/domain"
	"github.com/havendogs/api-server/internal/shared/projection"
)

var ErrNotFound = errors.New("listing not found")

// Repository persists adoption listings. List results come back
// newest-first; the location/breed searches match case-insensitive
// substrings and only return available listings.
type Repository interface {
	Save(ctx context.Context, listing *domain.Listing) (*projection.Projection[*domain.Listing], error)
	GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Listing], error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*projection.Projection[*domain.Listing], error)
	FindByLocation(ctx context.Context, location string) ([]*projection.Projection[*domain.Listing], error)
	FindByBreed(ctx context.Context, breed string) ([]*projection.Projection[*domain.Listing], error)
}
