package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/havendogs/api-server/internal/domains/boarding/domain"
	"github.com/havendogs/api-server/internal/domains/boarding/ports"
)

// ErrInvalidInput signals the intake form or status value violated a rule.
var ErrInvalidInput = errors.New("invalid boarding input")

// ValidationError aggregates every intake violation found in one pass.
type ValidationError struct {
	Violations []domain.FieldViolation
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(messages, "; "))
}

// Is lets callers match with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Fields flattens the violations into a field → message map.
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		if _, seen := fields[v.Field]; !seen {
			fields[v.Field] = v.Message
		}
	}
	return fields
}

// Service orchestrates the boarding intake use cases.
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

// NewService wires the boarding workflow over its repository.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, newID: uuid.NewString}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Submit validates the intake form and persists a pending submission.
func (s *Service) Submit(ctx context.Context, form ports.IntakeForm) (*ports.SubmissionProjection, error) {
	submission, violations := domain.NewSubmission(
		form.Owner, form.Pet, form.EmergencyContact, form.Veterinarian, form.Stay, form.Documents,
	)
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	submission.ID = s.newID()
	return s.repo.Insert(ctx, submission)
}

// GetByID loads one submission.
func (s *Service) GetByID(ctx context.Context, id string) (*ports.SubmissionProjection, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns submissions newest first, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string) ([]*ports.SubmissionProjection, error) {
	filter := ports.Filter{}
	if status != "" {
		parsed, err := domain.ParseStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		filter.Status = &parsed
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus writes the new status unconditionally; any transition between
// valid statuses is allowed.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*ports.SubmissionProjection, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.repo.UpdateStatus(ctx, id, parsed)
}

var _ ports.Service = (*Service)(nil)
