package ports

import (
	"context"
	"errors"

	"github.com/havendogs/api-server/internal/domains/interests/domain"
	"github.com/havendogs/api-server/internal/shared/projection"
)

var ErrNotFound = errors.New("interest not found")

// Filter narrows list queries. A nil Status matches every submission.
type Filter struct {
	Status *domain.Status
}

// Repository persists interest submissions as atomic per-document operations.
// Implementations order list results newest-submission-first and make no
// multi-document transaction guarantee.
type Repository interface {
	Insert(ctx context.Context, interest *domain.Interest) (*projection.Projection[*domain.Interest], error)
	GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Interest], error)
	FindByPet(ctx context.Context, petID string) ([]*projection.Projection[*domain.Interest], error)
	List(ctx context.Context, filter Filter) ([]*projection.Projection[*domain.Interest], error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*projection.Projection[*domain.Interest], error)
}
