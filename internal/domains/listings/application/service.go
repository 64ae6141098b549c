package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/havendogs/api-server/internal/domains/listings/domain"
	"github.com/havendogs/api-server/internal/domains/listings/ports"
)

// Service orchestrates the listings bounded context use cases.
type Service struct {
	repo  ports.Repository
	newID func() string
}

type Option func(*Service)

// WithIDGenerator overrides document ID generation for deterministic tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService wires the listings service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, newID: uuid.NewString}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create publishes a new listing owned by the authenticated caller.
func (s *Service) Create(ctx context.Context, input ports.CreateListingInput) (*ports.ListingProjection, error) {
	listing, err := domain.NewListing(
		s.newID(),
		input.Name,
		input.Breed,
		input.Age,
		input.Location,
		input.ImageURL,
		input.Description,
		input.PostedBy,
	)
	if err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, listing)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetByID loads a single listing.
func (s *Service) GetByID(ctx context.Context, id string) (*ports.ListingProjection, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the provided fields to an existing listing. Status moves are
// unconstrained beyond enum membership.
func (s *Service) Update(ctx context.Context, id string, input ports.UpdateListingInput) (*ports.ListingProjection, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	listing := existing.Entity
	if err := applyPartialMutation(listing, input); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, listing)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Delete removes a listing.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List returns every listing, newest first.
func (s *Service) List(ctx context.Context) ([]*ports.ListingProjection, error) {
	return s.repo.List(ctx)
}

// FindByLocation searches available listings by location fragment.
func (s *Service) FindByLocation(ctx context.Context, location string) ([]*ports.ListingProjection, error) {
	return s.repo.FindByLocation(ctx, location)
}

// FindByBreed searches available listings by breed fragment.
func (s *Service) FindByBreed(ctx context.Context, breed string) ([]*ports.ListingProjection, error) {
	return s.repo.FindByBreed(ctx, breed)
}

func applyPartialMutation(target *domain.Listing, input ports.UpdateListingInput) error {
	if input.Name != nil {
		if err := target.Rename(*input.Name); err != nil {
			return err
		}
	}
	if input.Breed != nil {
		if err := target.SetBreed(*input.Breed); err != nil {
			return err
		}
	}
	if input.Age != nil {
		if err := target.SetAge(*input.Age); err != nil {
			return err
		}
	}
	if input.Location != nil {
		if err := target.SetLocation(*input.Location); err != nil {
			return err
		}
	}
	if input.ImageURL != nil {
		if err := target.SetImageURL(*input.ImageURL); err != nil {
			return err
		}
	}
	if input.Description != nil {
		target.SetDescription(*input.Description)
	}
	if input.Status != nil {
		if err := target.UpdateStatus(domain.Status(*input.Status)); err != nil {
			return err
		}
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
