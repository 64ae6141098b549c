package domain

import (
	"errors"
	"strings"
	"time"
)

// Status represents the review state of a boarding submission.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

var ErrInvalidStatus = errors.New("invalid boarding status")

// ParseStatus validates a raw status value.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.TrimSpace(raw)) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Owner identifies who is boarding the pet.
type Owner struct {
	Name  string
	Email string
	Phone string
}

// Pet describes the boarded animal and its care notes.
type Pet struct {
	Name                string
	Age                 int
	Breed               string
	Allergies           string
	Medications         string
	FeedingInstructions string
	SpecialInstructions string
}

// Contact is a name/phone pair for emergency and vet references.
type Contact struct {
	Name  string
	Phone string
}

// Stay bounds the boarding period.
type Stay struct {
	StartDate time.Time
	EndDate   time.Time
}

// Documents holds URLs of uploads attached to the submission.
type Documents struct {
	PetImages       []string
	VaccinationCard string
	MedicalRecords  string
}

// FieldViolation reports one invalid submission field.
type FieldViolation struct {
	Field   string
	Message string
}

// Submission is the aggregate for one boarding intake request.
type Submission struct {
	ID               string
	Owner            Owner
	Pet              Pet
	EmergencyContact Contact
	Veterinarian     Contact
	Stay             Stay
	Documents        Documents
	Status           Status
}

// NewSubmission validates the intake form and builds a pending submission.
func NewSubmission(owner Owner, pet Pet, emergency, vet Contact, stay Stay, documents Documents) (*Submission, []FieldViolation) {
	owner.Name = strings.TrimSpace(owner.Name)
	owner.Email = strings.ToLower(strings.TrimSpace(owner.Email))
	owner.Phone = strings.TrimSpace(owner.Phone)
	pet.Name = strings.TrimSpace(pet.Name)
	pet.Breed = strings.TrimSpace(pet.Breed)

	var violations []FieldViolation
	require := func(field, value string) {
		if value == "" {
			violations = append(violations, FieldViolation{Field: field, Message: field + " is required"})
		}
	}
	require("owner.name", owner.Name)
	require("owner.email", owner.Email)
	require("owner.phone", owner.Phone)
	require("pet.name", pet.Name)
	require("pet.breed", pet.Breed)
	if pet.Age < 0 {
		violations = append(violations, FieldViolation{Field: "pet.age", Message: "pet.age must not be negative"})
	}
	if stay.StartDate.IsZero() {
		violations = append(violations, FieldViolation{Field: "boarding.startDate", Message: "boarding.startDate is required"})
	}
	if stay.EndDate.IsZero() {
		violations = append(violations, FieldViolation{Field: "boarding.endDate", Message: "boarding.endDate is required"})
	}
	if !stay.StartDate.IsZero() && !stay.EndDate.IsZero() && !stay.EndDate.After(stay.StartDate) {
		violations = append(violations, FieldViolation{Field: "boarding.endDate", Message: "boarding.endDate must be after boarding.startDate"})
	}
	if len(violations) > 0 {
		return nil, violations
	}

	return &Submission{
		Owner:            owner,
		Pet:              pet,
		EmergencyContact: emergency,
		Veterinarian:     vet,
		Stay:             stay,
		Documents:        documents,
		Status:           StatusPending,
	}, nil
}

// Clone returns a deep copy so repositories never alias caller state.
func (s *Submission) Clone() *Submission {
	if s == nil {
		return nil
	}
	clone := *s
	if len(s.Documents.PetImages) > 0 {
		clone.Documents.PetImages = append([]string{}, s.Documents.PetImages...)
	}
	return &clone
}
