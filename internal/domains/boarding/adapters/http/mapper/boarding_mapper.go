package mapper

import (
	"time"

	"github.com/havendogs/api-server/internal/domains/boarding/domain"
	"github.com/havendogs/api-server/internal/domains/boarding/ports"
)

// Owner is the HTTP representation of the boarding owner block.
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Pet is the HTTP representation of the boarded animal.
type Pet struct {
	Name                string `json:"name"`
	Age                 int    `json:"age"`
	Breed               string `json:"breed"`
	Allergies           string `json:"allergies,omitempty"`
	Medications         string `json:"medications,omitempty"`
	FeedingInstructions string `json:"feedingInstructions,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// Contact is a name/phone pair.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Stay bounds the boarding period.
type Stay struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Documents carries URLs of attached uploads.
type Documents struct {
	PetImages       []string `json:"petImages,omitempty"`
	VaccinationCard string   `json:"vaccinationCard,omitempty"`
	MedicalRecords  string   `json:"medicalRecords,omitempty"`
}

// SubmitBoarding captures the inbound intake payload.
type SubmitBoarding struct {
	Owner            Owner     `json:"owner"`
	Pet              Pet       `json:"pet"`
	EmergencyContact Contact   `json:"emergency_contact"`
	Veterinarian     Contact   `json:"veterinarian"`
	Boarding         Stay      `json:"boarding"`
	Documents        Documents `json:"documents"`
}

// UpdateStatus captures the status mutation payload.
type UpdateStatus struct {
	Status string `json:"status"`
}

// Submission is the HTTP representation of a stored boarding request.
type Submission struct {
	ID               string    `json:"id"`
	Owner            Owner     `json:"owner"`
	Pet              Pet       `json:"pet"`
	EmergencyContact Contact   `json:"emergency_contact"`
	Veterinarian     Contact   `json:"veterinarian"`
	Boarding         Stay      `json:"boarding"`
	Documents        Documents `json:"documents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty"`
}

// ToIntakeForm converts the inbound payload into an application form.
func ToIntakeForm(model SubmitBoarding) ports.IntakeForm {
	return ports.IntakeForm{
		Owner: domain.Owner{
			Name:  model.Owner.Name,
			Email: model.Owner.Email,
			Phone: model.Owner.Phone,
		},
		Pet: domain.Pet{
			Name:                model.Pet.Name,
			Age:                 model.Pet.Age,
			Breed:               model.Pet.Breed,
			Allergies:           model.Pet.Allergies,
			Medications:         model.Pet.Medications,
			FeedingInstructions: model.Pet.FeedingInstructions,
			SpecialInstructions: model.Pet.SpecialInstructions,
		},
		EmergencyContact: domain.Contact{Name: model.EmergencyContact.Name, Phone: model.EmergencyContact.Phone},
		Veterinarian:     domain.Contact{Name: model.Veterinarian.Name, Phone: model.Veterinarian.Phone},
		Stay:             domain.Stay{StartDate: model.Boarding.StartDate, EndDate: model.Boarding.EndDate},
		Documents: domain.Documents{
			PetImages:       append([]string{}, model.Documents.PetImages...),
			VaccinationCard: model.Documents.VaccinationCard,
			MedicalRecords:  model.Documents.MedicalRecords,
		},
	}
}

// FromDomainSubmission maps a stored submission into its transport shape.
func FromDomainSubmission(s *domain.Submission) Submission {
	return Submission{
		ID: s.ID,
		Owner: Owner{
			Name:  s.Owner.Name,
			Email: s.Owner.Email,
			Phone: s.Owner.Phone,
		},
		Pet: Pet{
			Name:                s.Pet.Name,
			Age:                 s.Pet.Age,
			Breed:               s.Pet.Breed,
			Allergies:           s.Pet.Allergies,
			Medications:         s.Pet.Medications,
			FeedingInstructions: s.Pet.FeedingInstructions,
			SpecialInstructions: s.Pet.SpecialInstructions,
		},
		EmergencyContact: Contact{Name: s.EmergencyContact.Name, Phone: s.EmergencyContact.Phone},
		Veterinarian:     Contact{Name: s.Veterinarian.Name, Phone: s.Veterinarian.Phone},
		Boarding:         Stay{StartDate: s.Stay.StartDate, EndDate: s.Stay.EndDate},
		Documents: Documents{
			PetImages:       append([]string{}, s.Documents.PetImages...),
			VaccinationCard: s.Documents.VaccinationCard,
			MedicalRecords:  s.Documents.MedicalRecords,
		},
		Status: string(s.Status),
	}
}

// FromProjection maps a projection into a transport submission with metadata.
func FromProjection(projection *ports.SubmissionProjection) Submission {
	submission := FromDomainSubmission(projection.Entity)
	submission.CreatedAt = projection.Metadata.CreatedAt
	submission.UpdatedAt = projection.Metadata.UpdatedAt
	return submission
}

// FromProjectionList maps a slice of projections into transport submissions.
func FromProjectionList(list []*ports.SubmissionProjection) []Submission {
	result := make([]Submission, 0, len(list))
	for _, projection := range list {
		result = append(result, FromProjection(projection))
	}
	return result
}
