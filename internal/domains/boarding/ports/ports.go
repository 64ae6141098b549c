package ports

import (
	"context"
	"errors"

	"github.com/havendogs/api-server/internal/domains/boarding/domain"
	"github.com/havendogs/api-server/internal/shared/projection"
)

var ErrNotFound = errors.New("boarding submission not found")

// SubmissionProjection is a boarding submission plus persistence metadata.
type SubmissionProjection = projection.Projection[*domain.Submission]

// Filter narrows list queries. A nil Status matches every submission.
type Filter struct {
	Status *domain.Status
}

// Repository persists boarding submissions; list results come back newest first.
type Repository interface {
	Insert(ctx context.Context, submission *domain.Submission) (*SubmissionProjection, error)
	GetByID(ctx context.Context, id string) (*SubmissionProjection, error)
	List(ctx context.Context, filter Filter) ([]*SubmissionProjection, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*SubmissionProjection, error)
}

// IntakeForm carries the raw boarding request.
type IntakeForm struct {
	Owner            domain.Owner
	Pet              domain.Pet
	EmergencyContact domain.Contact
	Veterinarian     domain.Contact
	Stay             domain.Stay
	Documents        domain.Documents
}

// Service defines the boarding use cases (inbound port).
type Service interface {
	Submit(ctx context.Context, form IntakeForm) (*SubmissionProjection, error)
	GetByID(ctx context.Context, id string) (*SubmissionProjection, error)
	List(ctx context.Context, status string) ([]*SubmissionProjection, error)
	UpdateStatus(ctx context.Context, id, status string) (*SubmissionProjection, error)
}
