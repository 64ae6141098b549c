package listings

import (
	"context"
	"errors"

	"github.com/havendogs/api-server/internal/domains/interests/ports"
	listingports "github.com/havendogs/api-server/internal/domains/listings/ports"
)

var _ ports.ListingDirectory = (*Directory)(nil)

// Directory adapts the listings service into the read-only view the interest
// workflow depends on.
type Directory struct {
	listings listingports.Service
}

// NewDirectory wires the directory over the listings use cases.
func NewDirectory(listings listingports.Service) *Directory {
	return &Directory{listings: listings}
}

// Lookup resolves a listing reference by identifier.
func (d *Directory) Lookup(ctx context.Context, petID string) (*ports.ListingRef, error) {
	found, err := d.listings.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, listingports.ErrNotFound) {
			return nil, ports.ErrListingNotFound
		}
		return nil, err
	}
	return &ports.ListingRef{
		ID:    found.Entity.ID,
		Name:  found.Entity.Name,
		Breed: found.Entity.Breed,
	}, nil
}
