package mapper

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/havendogs/api-server/internal/domains/interests/domain"
	"github.com/havendogs/api-server/internal/domains/interests/ports"
)

// FlexString accepts a JSON string or number and keeps the literal text.
// Older clients submit hoursAloneDaily as a number, newer ones as a string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// LegacyContact is the HTTP representation of the flat applicant shape.
type LegacyContact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// SubmitInterest captures the inbound application form. PetID travels in the
// body, not the path.
type SubmitInterest struct {
	PetID string `json:"petId"`

	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	EmailAddress string `json:"emailAddress"`
	HomeAddress  string `json:"homeAddress"`
	Occupation   string `json:"occupation"`
	WorkSchedule string `json:"workSchedule"`

	AccommodationType   string `json:"accommodationType"`
	OwnershipType       string `json:"ownershipType"`
	PetOwnershipAllowed string `json:"petOwnershipAllowed"`
	FencedYard          string `json:"fencedYard"`
	HouseholdMembers    string `json:"householdMembers"`

	OwnedDogBefore        string `json:"ownedDogBefore"`
	PreviousPetOutcome    string `json:"previousPetOutcome"`
	CurrentlyHavePets     string `json:"currentlyHavePets"`
	CurrentPetsDetails    string `json:"currentPetsDetails"`
	CurrentPetsSterilized string `json:"currentPetsSterilized"`

	AdoptionReason     string     `json:"adoptionReason"`
	PrimaryCaregiver   string     `json:"primaryCaregiver"`
	HoursAloneDaily    FlexString `json:"hoursAloneDaily"`
	SleepingLocation   string     `json:"sleepingLocation"`
	TravelManagement   string     `json:"travelManagement"`
	LifetimeCommitment string     `json:"lifetimeCommitment"`

	WillingToVaccinate         string `json:"willingToVaccinate"`
	WillingToProvideVetCare    string `json:"willingToProvideVetCare"`
	WillingToUseFleaPrevention string `json:"willingToUseFleaPrevention"`
	WillingToSterilize         string `json:"willingToSterilize"`
	PreferredVeterinarian      string `json:"preferredVeterinarian"`

	FinanciallyPrepared []string `json:"financiallyPrepared"`

	PetApplyingFor      string `json:"petApplyingFor"`
	OpenToFosterToAdopt string `json:"openToFosterToAdopt"`
	AgreeNotToRehome    string `json:"agreeNotToRehome"`
	WillReturnToShelter string `json:"willReturnToShelter"`

	ConfirmInformationAccurate bool `json:"confirmInformationAccurate"`
	UnderstandSelectiveProcess bool `json:"understandSelectiveProcess"`
	AgreeToHomeCheck           bool `json:"agreeToHomeCheck"`
	AgreeToAdoptionContract    bool `json:"agreeToAdoptionContract"`

	InterestedUser *LegacyContact `json:"interestedUser,omitempty"`
	Message        string         `json:"message,omitempty"`
}

// UpdateStatus captures the status mutation payload.
type UpdateStatus struct {
	Status string `json:"status"`
}

// PetRef is the display block joined onto admin list results.
type PetRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Breed string `json:"breed,omitempty"`
}

// Interest is the HTTP representation of a stored submission. Conditional
// answers serialize only when their governing answer triggered them.
type Interest struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`

	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	EmailAddress string `json:"emailAddress"`
	HomeAddress  string `json:"homeAddress"`
	Occupation   string `json:"occupation"`
	WorkSchedule string `json:"workSchedule"`

	AccommodationType   string `json:"accommodationType"`
	OwnershipType       string `json:"ownershipType"`
	PetOwnershipAllowed string `json:"petOwnershipAllowed,omitempty"`
	FencedYard          string `json:"fencedYard"`
	HouseholdMembers    string `json:"householdMembers"`

	OwnedDogBefore        string `json:"ownedDogBefore"`
	PreviousPetOutcome    string `json:"previousPetOutcome,omitempty"`
	CurrentlyHavePets     string `json:"currentlyHavePets"`
	CurrentPetsDetails    string `json:"currentPetsDetails,omitempty"`
	CurrentPetsSterilized string `json:"currentPetsSterilized,omitempty"`

	AdoptionReason     string `json:"adoptionReason"`
	PrimaryCaregiver   string `json:"primaryCaregiver"`
	HoursAloneDaily    int    `json:"hoursAloneDaily"`
	SleepingLocation   string `json:"sleepingLocation"`
	TravelManagement   string `json:"travelManagement"`
	LifetimeCommitment string `json:"lifetimeCommitment"`

	WillingToVaccinate         string `json:"willingToVaccinate"`
	WillingToProvideVetCare    string `json:"willingToProvideVetCare"`
	WillingToUseFleaPrevention string `json:"willingToUseFleaPrevention"`
	WillingToSterilize         string `json:"willingToSterilize"`
	PreferredVeterinarian      string `json:"preferredVeterinarian,omitempty"`

	FinanciallyPrepared []string `json:"financiallyPrepared"`

	PetApplyingFor      string `json:"petApplyingFor"`
	OpenToFosterToAdopt string `json:"openToFosterToAdopt"`
	AgreeNotToRehome    string `json:"agreeNotToRehome"`
	WillReturnToShelter string `json:"willReturnToShelter"`

	ConfirmInformationAccurate bool `json:"confirmInformationAccurate"`
	UnderstandSelectiveProcess bool `json:"understandSelectiveProcess"`
	AgreeToHomeCheck           bool `json:"agreeToHomeCheck"`
	AgreeToAdoptionContract    bool `json:"agreeToAdoptionContract"`

	InterestedUser LegacyContact `json:"interestedUser"`
	Message        string        `json:"message"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`

	Pet *PetRef `json:"pet,omitempty"`
}

// ToForm converts the inbound payload into a raw domain form.
func ToForm(model SubmitInterest) domain.Form {
	form := domain.Form{
		FullName:     model.FullName,
		PhoneNumber:  model.PhoneNumber,
		EmailAddress: model.EmailAddress,
		HomeAddress:  model.HomeAddress,
		Occupation:   model.Occupation,
		WorkSchedule: model.WorkSchedule,

		AccommodationType:   model.AccommodationType,
		OwnershipType:       model.OwnershipType,
		PetOwnershipAllowed: model.PetOwnershipAllowed,
		FencedYard:          model.FencedYard,
		HouseholdMembers:    model.HouseholdMembers,

		OwnedDogBefore:        model.OwnedDogBefore,
		PreviousPetOutcome:    model.PreviousPetOutcome,
		CurrentlyHavePets:     model.CurrentlyHavePets,
		CurrentPetsDetails:    model.CurrentPetsDetails,
		CurrentPetsSterilized: model.CurrentPetsSterilized,

		AdoptionReason:     model.AdoptionReason,
		PrimaryCaregiver:   model.PrimaryCaregiver,
		HoursAloneDaily:    string(model.HoursAloneDaily),
		SleepingLocation:   model.SleepingLocation,
		TravelManagement:   model.TravelManagement,
		LifetimeCommitment: model.LifetimeCommitment,

		WillingToVaccinate:         model.WillingToVaccinate,
		WillingToProvideVetCare:    model.WillingToProvideVetCare,
		WillingToUseFleaPrevention: model.WillingToUseFleaPrevention,
		WillingToSterilize:         model.WillingToSterilize,
		PreferredVeterinarian:      model.PreferredVeterinarian,

		FinanciallyPrepared: append([]string{}, model.FinanciallyPrepared...),

		PetApplyingFor:      model.PetApplyingFor,
		OpenToFosterToAdopt: model.OpenToFosterToAdopt,
		AgreeNotToRehome:    model.AgreeNotToRehome,
		WillReturnToShelter: model.WillReturnToShelter,

		ConfirmInformationAccurate: model.ConfirmInformationAccurate,
		UnderstandSelectiveProcess: model.UnderstandSelectiveProcess,
		AgreeToHomeCheck:           model.AgreeToHomeCheck,
		AgreeToAdoptionContract:    model.AgreeToAdoptionContract,

		Message: model.Message,
	}
	if model.InterestedUser != nil {
		form.InterestedUser = domain.LegacyContact{
			Name:  model.InterestedUser.Name,
			Email: model.InterestedUser.Email,
			Phone: model.InterestedUser.Phone,
		}
	}
	return form
}

// FromDomainInterest maps a stored submission into its transport shape.
func FromDomainInterest(i *domain.Interest) Interest {
	return Interest{
		ID:    i.ID,
		PetID: i.PetID,

		FullName:     i.FullName,
		PhoneNumber:  i.PhoneNumber,
		EmailAddress: i.EmailAddress,
		HomeAddress:  i.HomeAddress,
		Occupation:   i.Occupation,
		WorkSchedule: i.WorkSchedule,

		AccommodationType:   i.AccommodationType,
		OwnershipType:       i.OwnershipType,
		PetOwnershipAllowed: i.PetOwnershipAllowed,
		FencedYard:          i.FencedYard,
		HouseholdMembers:    i.HouseholdMembers,

		OwnedDogBefore:        i.OwnedDogBefore,
		PreviousPetOutcome:    i.PreviousPetOutcome,
		CurrentlyHavePets:     i.CurrentlyHavePets,
		CurrentPetsDetails:    i.CurrentPetsDetails,
		CurrentPetsSterilized: i.CurrentPetsSterilized,

		AdoptionReason:     i.AdoptionReason,
		PrimaryCaregiver:   i.PrimaryCaregiver,
		HoursAloneDaily:    i.HoursAloneDaily,
		SleepingLocation:   i.SleepingLocation,
		TravelManagement:   i.TravelManagement,
		LifetimeCommitment: i.LifetimeCommitment,

		WillingToVaccinate:         i.WillingToVaccinate,
		WillingToProvideVetCare:    i.WillingToProvideVetCare,
		WillingToUseFleaPrevention: i.WillingToUseFleaPrevention,
		WillingToSterilize:         i.WillingToSterilize,
		PreferredVeterinarian:      i.PreferredVeterinarian,

		FinanciallyPrepared: append([]string{}, i.FinanciallyPrepared...),

		PetApplyingFor:      i.PetApplyingFor,
		OpenToFosterToAdopt: i.OpenToFosterToAdopt,
		AgreeNotToRehome:    i.AgreeNotToRehome,
		WillReturnToShelter: i.WillReturnToShelter,

		ConfirmInformationAccurate: i.ConfirmInformationAccurate,
		UnderstandSelectiveProcess: i.UnderstandSelectiveProcess,
		AgreeToHomeCheck:           i.AgreeToHomeCheck,
		AgreeToAdoptionContract:    i.AgreeToAdoptionContract,

		InterestedUser: LegacyContact{
			Name:  i.InterestedUser.Name,
			Email: i.InterestedUser.Email,
			Phone: i.InterestedUser.Phone,
		},
		Message: i.Message,

		Status: string(i.Status),
	}
}

// FromProjection maps a projection into a transport submission enriched with metadata.
func FromProjection(projection *ports.InterestProjection) Interest {
	interest := FromDomainInterest(projection.Entity)
	interest.CreatedAt = projection.Metadata.CreatedAt
	interest.UpdatedAt = projection.Metadata.UpdatedAt
	return interest
}

// FromProjectionList maps a slice of projections into transport submissions.
func FromProjectionList(list []*ports.InterestProjection) []Interest {
	result := make([]Interest, 0, len(list))
	for _, projection := range list {
		result = append(result, FromProjection(projection))
	}
	return result
}

// FromView maps an admin view, attaching the resolved listing when present.
func FromView(view *ports.InterestView) Interest {
	interest := FromProjection(view.Interest)
	if view.Pet != nil {
		interest.Pet = &PetRef{ID: view.Pet.ID, Name: view.Pet.Name, Breed: view.Pet.Breed}
	}
	return interest
}

// FromViewList maps a slice of admin views.
func FromViewList(list []*ports.InterestView) []Interest {
	result := make([]Interest, 0, len(list))
	for _, view := range list {
		result = append(result, FromView(view))
	}
	return result
}
