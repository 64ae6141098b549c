package mapper

import (
	"time"

	"github.com/havendogs/api-server/internal/domains/listings/domain"
	"github.com/havendogs/api-server/internal/domains/listings/ports"
)

// Listing is the HTTP representation of an adoption listing.
type Listing struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description,omitempty"`
	PostedBy    string    `json:"postedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// CreateListing captures inbound payloads for the create flow.
type CreateListing struct {
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Age         int    `json:"age"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// MutationListing captures inbound payloads for the update flow while preserving field presence.
type MutationListing struct {
	Name        *string `json:"name,omitempty"`
	Breed       *string `json:"breed,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Status      *string `json:"status,omitempty"`
	Location    *string `json:"location,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ToCreateInput converts a create payload into an application input for the given poster.
func ToCreateInput(model CreateListing, postedBy string) ports.CreateListingInput {
	return ports.CreateListingInput{
		Name:        model.Name,
		Breed:       model.Breed,
		Age:         model.Age,
		Location:    model.Location,
		ImageURL:    model.ImageURL,
		Description: model.Description,
		PostedBy:    postedBy,
	}
}

// ToUpdateInput converts a mutation payload into an application input while preserving presence.
func ToUpdateInput(model MutationListing) ports.UpdateListingInput {
	return ports.UpdateListingInput{
		Name:        cloneStringPtr(model.Name),
		Breed:       cloneStringPtr(model.Breed),
		Age:         cloneIntPtr(model.Age),
		Status:      cloneStringPtr(model.Status),
		Location:    cloneStringPtr(model.Location),
		ImageURL:    cloneStringPtr(model.ImageURL),
		Description: cloneStringPtr(model.Description),
	}
}

// FromDomainListing maps a domain aggregate into a transport Listing.
func FromDomainListing(l *domain.Listing) Listing {
	return Listing{
		ID:          l.ID,
		Name:        l.Name,
		Breed:       l.Breed,
		Age:         l.Age,
		Status:      string(l.Status),
		Location:    l.Location,
		ImageURL:    l.ImageURL,
		Description: l.Description,
		PostedBy:    l.PostedBy,
	}
}

// FromProjection maps a projection into a transport listing enriched with metadata.
func FromProjection(projection *ports.ListingProjection) Listing {
	listing := FromDomainListing(projection.Entity)
	listing.CreatedAt = projection.Metadata.CreatedAt
	listing.UpdatedAt = projection.Metadata.UpdatedAt
	return listing
}

// FromProjectionList maps a slice of projections into transport listings with metadata.
func FromProjectionList(list []*ports.ListingProjection) []Listing {
	result := make([]Listing, 0, len(list))
	for _, projection := range list {
		result = append(result, FromProjection(projection))
	}
	return result
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	copy := *value
	return &copy
}

func cloneIntPtr(value *int) *int {
	if value == nil {
		return nil
	}
	copy := *value
	return &copy
}
