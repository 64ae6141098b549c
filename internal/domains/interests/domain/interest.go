package domain

import (
	"strconv"
	"strings"
)

// Status represents the review state of an adoption-interest submission.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus validates a raw status value.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.TrimSpace(raw)) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Terminal reports whether the status ends the review (approved or rejected).
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// LegacyContact is the older, flat applicant shape kept for consumers that
// predate the structured application form.
type LegacyContact struct {
	Name  string
	Email string
	Phone string
}

// Interest is the aggregate for one adoption application against a listing.
// Conditional fields (PetOwnershipAllowed, PreviousPetOutcome,
// CurrentPetsDetails, CurrentPetsSterilized) are empty when their governing
// answer did not trigger them and must stay absent from the stored document.
type Interest struct {
	ID    string
	PetID string

	// Basic information
	FullName     string
	PhoneNumber  string
	EmailAddress string
	HomeAddress  string
	Occupation   string
	WorkSchedule string

	// Living situation
	AccommodationType   string
	OwnershipType       string
	PetOwnershipAllowed string
	FencedYard          string
	HouseholdMembers    string

	// Pet experience
	OwnedDogBefore        string
	PreviousPetOutcome    string
	CurrentlyHavePets     string
	CurrentPetsDetails    string
	CurrentPetsSterilized string

	// Lifestyle and commitment
	AdoptionReason     string
	PrimaryCaregiver   string
	HoursAloneDaily    int
	SleepingLocation   string
	TravelManagement   string
	LifetimeCommitment string

	// Health and responsibility
	WillingToVaccinate         string
	WillingToProvideVetCare    string
	WillingToUseFleaPrevention string
	WillingToSterilize         string
	PreferredVeterinarian      string

	// Financial readiness
	FinanciallyPrepared []string

	// Dog-specific questions
	PetApplyingFor      string
	OpenToFosterToAdopt string
	AgreeNotToRehome    string
	WillReturnToShelter string

	// Agreement section
	ConfirmInformationAccurate bool
	UnderstandSelectiveProcess bool
	AgreeToHomeCheck           bool
	AgreeToAdoptionContract    bool

	// Legacy shadow fields, always populated at construction.
	InterestedUser LegacyContact
	Message        string

	Status Status
}

// Form carries the raw submission values prior to validation. String fields
// arrive untrimmed; HoursAloneDaily is the raw numeric-or-digit-string value.
type Form struct {
	FullName     string
	PhoneNumber  string
	EmailAddress string
	HomeAddress  string
	Occupation   string
	WorkSchedule string

	AccommodationType   string
	OwnershipType       string
	PetOwnershipAllowed string
	FencedYard          string
	HouseholdMembers    string

	OwnedDogBefore        string
	PreviousPetOutcome    string
	CurrentlyHavePets     string
	CurrentPetsDetails    string
	CurrentPetsSterilized string

	AdoptionReason     string
	PrimaryCaregiver   string
	HoursAloneDaily    string
	SleepingLocation   string
	TravelManagement   string
	LifetimeCommitment string

	WillingToVaccinate         string
	WillingToProvideVetCare    string
	WillingToUseFleaPrevention string
	WillingToSterilize         string
	PreferredVeterinarian      string

	FinanciallyPrepared []string

	PetApplyingFor      string
	OpenToFosterToAdopt string
	AgreeNotToRehome    string
	WillReturnToShelter string

	ConfirmInformationAccurate bool
	UnderstandSelectiveProcess bool
	AgreeToHomeCheck           bool
	AgreeToAdoptionContract    bool

	InterestedUser LegacyContact
	Message        string
}

// NewInterest validates the form and builds a pending submission.
// listingName supplies the petApplyingFor default, captured once here.
// The returned violations list is non-empty exactly when validation failed.
func NewInterest(petID, listingName string, form Form) (*Interest, []FieldViolation) {
	form.normalize()
	if violations := Validate(form); len(violations) > 0 {
		return nil, violations
	}

	hours, _ := strconv.Atoi(form.HoursAloneDaily)
	interest := &Interest{
		PetID:        petID,
		FullName:     form.FullName,
		PhoneNumber:  form.PhoneNumber,
		EmailAddress: form.EmailAddress,
		HomeAddress:  form.HomeAddress,
		Occupation:   form.Occupation,
		WorkSchedule: form.WorkSchedule,

		AccommodationType: form.AccommodationType,
		OwnershipType:     form.OwnershipType,
		FencedYard:        form.FencedYard,
		HouseholdMembers:  form.HouseholdMembers,

		OwnedDogBefore:    form.OwnedDogBefore,
		CurrentlyHavePets: form.CurrentlyHavePets,

		AdoptionReason:     form.AdoptionReason,
		PrimaryCaregiver:   form.PrimaryCaregiver,
		HoursAloneDaily:    hours,
		SleepingLocation:   form.SleepingLocation,
		TravelManagement:   form.TravelManagement,
		LifetimeCommitment: form.LifetimeCommitment,

		WillingToVaccinate:         form.WillingToVaccinate,
		WillingToProvideVetCare:    form.WillingToProvideVetCare,
		WillingToUseFleaPrevention: form.WillingToUseFleaPrevention,
		WillingToSterilize:         form.WillingToSterilize,
		PreferredVeterinarian:      form.PreferredVeterinarian,

		FinanciallyPrepared: append([]string{}, form.FinanciallyPrepared...),

		PetApplyingFor:      form.PetApplyingFor,
		OpenToFosterToAdopt: form.OpenToFosterToAdopt,
		AgreeNotToRehome:    form.AgreeNotToRehome,
		WillReturnToShelter: form.WillReturnToShelter,

		ConfirmInformationAccurate: form.ConfirmInformationAccurate,
		UnderstandSelectiveProcess: form.UnderstandSelectiveProcess,
		AgreeToHomeCheck:           form.AgreeToHomeCheck,
		AgreeToAdoptionContract:    form.AgreeToAdoptionContract,

		InterestedUser: form.InterestedUser,
		Message:        form.Message,

		Status: StatusPending,
	}

	// Conditional answers are stored only when their governing answer
	// triggered them; anything else is silently dropped.
	if form.OwnershipType == "rent" {
		interest.PetOwnershipAllowed = form.PetOwnershipAllowed
	}
	if form.OwnedDogBefore == "yes" {
		interest.PreviousPetOutcome = form.PreviousPetOutcome
	}
	if form.CurrentlyHavePets == "yes" {
		interest.CurrentPetsDetails = form.CurrentPetsDetails
		interest.CurrentPetsSterilized = form.CurrentPetsSterilized
	}

	if interest.PetApplyingFor == "" {
		interest.PetApplyingFor = listingName
	}
	interest.deriveLegacyFields()
	return interest, nil
}

// deriveLegacyFields populates the backward-compatible shadow shape from the
// structured answers. Explicitly supplied legacy values always win: a legacy
// contact with a name set is left untouched.
func (i *Interest) deriveLegacyFields() {
	if i.InterestedUser.Name == "" {
		if i.FullName != "" {
			i.InterestedUser.Name = i.FullName
		}
		if i.EmailAddress != "" {
			i.InterestedUser.Email = i.EmailAddress
		}
		if i.PhoneNumber != "" {
			i.InterestedUser.Phone = i.PhoneNumber
		}
	}
	if i.Message == "" && i.AdoptionReason != "" {
		i.Message = i.AdoptionReason
	}
}

// RecipientEmail resolves the applicant email for notifications, preferring
// the structured field over the legacy contact.
func (i *Interest) RecipientEmail() string {
	if i.EmailAddress != "" {
		return i.EmailAddress
	}
	return i.InterestedUser.Email
}

// RecipientName resolves the applicant name for notifications.
func (i *Interest) RecipientName() string {
	if i.FullName != "" {
		return i.FullName
	}
	return i.InterestedUser.Name
}

// Clone returns a deep copy so repositories never alias caller state.
func (i *Interest) Clone() *Interest {
	if i == nil {
		return nil
	}
	clone := *i
	if len(i.FinanciallyPrepared) > 0 {
		clone.FinanciallyPrepared = append([]string{}, i.FinanciallyPrepared...)
	}
	return &clone
}

func (f *Form) normalize() {
	trim := func(values ...*string) {
		for _, v := range values {
			*v = strings.TrimSpace(*v)
		}
	}
	trim(
		&f.FullName, &f.PhoneNumber, &f.EmailAddress, &f.HomeAddress,
		&f.Occupation, &f.WorkSchedule,
		&f.AccommodationType, &f.OwnershipType, &f.PetOwnershipAllowed,
		&f.FencedYard, &f.HouseholdMembers,
		&f.OwnedDogBefore, &f.PreviousPetOutcome, &f.CurrentlyHavePets,
		&f.CurrentPetsDetails, &f.CurrentPetsSterilized,
		&f.AdoptionReason, &f.PrimaryCaregiver, &f.HoursAloneDaily,
		&f.SleepingLocation, &f.TravelManagement, &f.LifetimeCommitment,
		&f.WillingToVaccinate, &f.WillingToProvideVetCare,
		&f.WillingToUseFleaPrevention, &f.WillingToSterilize,
		&f.PreferredVeterinarian,
		&f.PetApplyingFor, &f.OpenToFosterToAdopt, &f.AgreeNotToRehome,
		&f.WillReturnToShelter,
		&f.InterestedUser.Name, &f.InterestedUser.Email, &f.InterestedUser.Phone,
		&f.Message,
	)
	f.EmailAddress = strings.ToLower(f.EmailAddress)
	f.InterestedUser.Email = strings.ToLower(f.InterestedUser.Email)

	cleaned := f.FinanciallyPrepared[:0]
	for _, option := range f.FinanciallyPrepared {
		if option = strings.TrimSpace(option); option != "" {
			cleaned = append(cleaned, option)
		}
	}
	f.FinanciallyPrepared = cleaned
}
