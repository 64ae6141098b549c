package ports

import (
	"context"

	"github.com/havendogs/api-server/internal/domains/listings/domain"
	"github.com/havendogs/api-server/internal/shared/projection"
)

// ListingProjection is a listing plus persistence metadata.
type ListingProjection = projection.Projection[*domain.Listing]

// CreateListingInput carries the fields accepted when publishing a listing.
// PostedBy is the authenticated caller, never a client-supplied value.
type CreateListingInput struct {
	Name        string
	Breed       string
	Age         int
	Location    string
	ImageURL    string
	Description string
	PostedBy    string
}

// UpdateListingInput applies a partial mutation; nil fields are untouched.
type UpdateListingInput struct {
	Name        *string
	Breed       *string
	Age         *int
	Location    *string
	ImageURL    *string
	Description *string
	Status      *string
}

// Service defines the listings use cases exposed to adapters.
type Service interface {
	Create(ctx context.Context, input CreateListingInput) (*ListingProjection, error)
	GetByID(ctx context.Context, id string) (*ListingProjection, error)
	Update(ctx context.Context, id string, input UpdateListingInput) (*ListingProjection, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*ListingProjection, error)
	FindByLocation(ctx context.Context, location string) ([]*ListingProjection, error)
	FindByBreed(ctx context.Context, breed string) ([]*ListingProjection, error)
}
