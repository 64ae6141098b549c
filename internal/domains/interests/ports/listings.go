package ports

import (
	"context"
	"errors"
)

var ErrListingNotFound = errors.New("pet listing not found")

// ListingDirectory is the read-only view of the listings context consumed by
// the interest workflow: existence checks on submission and name resolution
// for defaults, display joins, and notifications.
type ListingDirectory interface {
	Lookup(ctx context.Context, petID string) (*ListingRef, error)
}
