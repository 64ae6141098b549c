package ports

import (
	"context"

	"github.com/havendogs/api-server/internal/domains/interests/domain"
	"github.com/havendogs/api-server/internal/shared/projection"
)

// InterestProjection is an interest submission plus persistence metadata.
type InterestProjection = projection.Projection[*domain.Interest]

// ListingRef is the read-time display block joined onto list results.
// It is resolved per request and never persisted on the submission.
type ListingRef struct {
	ID    string
	Name  string
	Breed string
}

// InterestView pairs a submission with its resolved listing for display.
type InterestView struct {
	Interest *InterestProjection
	Pet      *ListingRef
}

// Service defines the interest workflow use cases (inbound port).
type Service interface {
	SubmitInterest(ctx context.Context, petID string, form domain.Form) (*InterestProjection, error)
	ListByPet(ctx context.Context, petID string) ([]*InterestProjection, error)
	ListAll(ctx context.Context, status string) ([]*InterestView, error)
	UpdateStatus(ctx context.Context, id, status string) (*InterestProjection, error)
}
