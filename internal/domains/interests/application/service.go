package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/havendogs/api-server/internal/domains/interests/domain"
	"github.com/havendogs/api-server/internal/domains/interests/ports"
)

// fallbackPetName labels notifications when the listing can no longer be resolved.
const fallbackPetName = "the pet"

// Service orchestrates the interest workflow use cases.
type Service struct {
	repo       ports.Repository
	listings   ports.ListingDirectory
	dispatcher ports.NotificationDispatcher
	logger     *slog.Logger
	newID      func() string
}

type Option func(*Service)

// WithLogger injects the logger used for swallowed notification failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator overrides document ID generation for deterministic tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService wires the interest workflow with its collaborators. dispatcher
// may be nil when no notification channel is configured.
func NewService(repo ports.Repository, listings ports.ListingDirectory, dispatcher ports.NotificationDispatcher, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		listings:   listings,
		dispatcher: dispatcher,
		logger:     slog.Default(),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// SubmitInterest validates the application form against the rule table and
// persists a pending submission. The referenced listing must exist; its name
// seeds the petApplyingFor default, captured once at submission time.
func (s *Service) SubmitInterest(ctx context.Context, petID string, form domain.Form) (*ports.InterestProjection, error) {
	listing, err := s.listings.Lookup(ctx, petID)
	if err != nil {
		return nil, err
	}

	interest, violations := domain.NewInterest(petID, listing.Name, form)
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	interest.ID = s.newID()

	saved, err := s.repo.Insert(ctx, interest)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// ListByPet returns every submission against one listing, newest first.
func (s *Service) ListByPet(ctx context.Context, petID string) ([]*ports.InterestProjection, error) {
	return s.repo.FindByPet(ctx, petID)
}

// ListAll returns submissions newest first, optionally filtered by status,
// with the referenced listing attached as a display-only read-time join.
func (s *Service) ListAll(ctx context.Context, status string) ([]*ports.InterestView, error) {
	filter := ports.Filter{}
	if status != "" {
		parsed, err := domain.ParseStatus(status)
		if err != nil {
			return nil, mapError(err)
		}
		filter.Status = &parsed
	}

	results, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.InterestView, 0, len(results))
	for _, result := range results {
		view := &ports.InterestView{Interest: result}
		if ref, err := s.listings.Lookup(ctx, result.Entity.PetID); err == nil {
			view.Pet = ref
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateStatus writes the new status unconditionally and, when the change
// enters a terminal state, dispatches an applicant notification. Dispatch
// failures are logged and discarded; the persisted status change is the
// operation's authoritative result.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*ports.InterestProjection, error) {
	newStatus, err := domain.ParseStatus(status)
	if err != nil {
		return nil, mapError(err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := existing.Entity.Status

	updated, err := s.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}

	if newStatus.Terminal() && newStatus != oldStatus {
		s.notifyApplicant(ctx, updated.Entity, newStatus)
	}
	return updated, nil
}

func (s *Service) notifyApplicant(ctx context.Context, interest *domain.Interest, status domain.Status) {
	if s.dispatcher == nil {
		return
	}

	petName := fallbackPetName
	if ref, err := s.listings.Lookup(ctx, interest.PetID); err == nil && ref.Name != "" {
		petName = ref.Name
	}

	notification := ports.StatusNotification{
		To:      interest.RecipientEmail(),
		Name:    interest.RecipientName(),
		PetName: petName,
		Status:  string(status),
	}
	if err := s.dispatcher.Dispatch(ctx, notification); err != nil {
		s.logger.Warn("adoption status notification failed",
			slog.String("interest.id", interest.ID),
			slog.String("status", string(status)),
			slog.String("error", err.Error()),
		)
	}
}

var _ ports.Service = (*Service)(nil)
