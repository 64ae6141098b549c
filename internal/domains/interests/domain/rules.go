package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidStatus signals a status value outside the pending/approved/rejected set.
var ErrInvalidStatus = errors.New("status must be one of: pending, approved, rejected")

// FieldViolation describes a single failed validation rule.
type FieldViolation struct {
	Field   string
	Message string
}

const (
	minHoursAlone = 0
	maxHoursAlone = 24
)

// requiredTextFields are free-text answers that must always be non-empty.
// Conditionally required text answers live in conditionalRules instead.
var requiredTextFields = []string{
	"fullName",
	"phoneNumber",
	"emailAddress",
	"homeAddress",
	"occupation",
	"householdMembers",
	"adoptionReason",
	"primaryCaregiver",
	"travelManagement",
}

type enumField struct {
	name    string
	allowed []string
}

var yesNo = []string{"yes", "no"}

// enumFields are answers constrained to a declared value set.
var enumFields = []enumField{
	{"workSchedule", []string{"9-5", "remote", "shift-work", "flexible", "unemployed", "retired", "other"}},
	{"accommodationType", []string{"apartment", "detached-house", "shared-accommodation"}},
	{"ownershipType", []string{"own", "rent"}},
	{"petOwnershipAllowed", yesNo},
	{"fencedYard", yesNo},
	{"ownedDogBefore", yesNo},
	{"currentlyHavePets", yesNo},
	{"currentPetsSterilized", []string{"yes", "no", "some"}},
	{"sleepingLocation", []string{"inside-house", "bedroom", "living-room", "crate-inside", "other"}},
	{"lifetimeCommitment", []string{"yes", "unsure", "no"}},
	{"willingToVaccinate", yesNo},
	{"willingToProvideVetCare", yesNo},
	{"willingToUseFleaPrevention", yesNo},
	{"willingToSterilize", yesNo},
	{"openToFosterToAdopt", []string{"yes", "no", "maybe"}},
	{"agreeNotToRehome", yesNo},
	{"willReturnToShelter", yesNo},
}

// ConditionalRule marks dependent answers as required exactly when the
// governing answer equals the trigger value.
type ConditionalRule struct {
	Governing  string
	Trigger    string
	Dependents []string
}

// conditionalRules is the single source of truth for sibling-dependent
// requirements on the application form.
var conditionalRules = []ConditionalRule{
	{Governing: "ownershipType", Trigger: "rent", Dependents: []string{"petOwnershipAllowed"}},
	{Governing: "ownedDogBefore", Trigger: "yes", Dependents: []string{"previousPetOutcome"}},
	{Governing: "currentlyHavePets", Trigger: "yes", Dependents: []string{"currentPetsDetails", "currentPetsSterilized"}},
}

// conditionalOnly marks enum fields whose presence is governed by
// conditionalRules; absence alone is not a violation for these.
var conditionalOnly = map[string]bool{
	"petOwnershipAllowed":   true,
	"currentPetsSterilized": true,
}

// Validate runs a single pass over the form and collects every violation:
// unconditional requirements, enum membership, the conditional-required rule
// table, the hours-alone range, and the financial-readiness selection.
func Validate(form Form) []FieldViolation {
	var violations []FieldViolation
	add := func(field, message string) {
		violations = append(violations, FieldViolation{Field: field, Message: message})
	}

	for _, name := range requiredTextFields {
		if form.valueOf(name) == "" {
			add(name, fmt.Sprintf("%s is required", name))
		}
	}

	for _, rule := range enumFields {
		value := form.valueOf(rule.name)
		if value == "" {
			if !conditionalOnly[rule.name] {
				add(rule.name, fmt.Sprintf("%s is required", rule.name))
			}
			continue
		}
		if !contains(rule.allowed, value) {
			add(rule.name, fmt.Sprintf("%s must be one of: %s", rule.name, strings.Join(rule.allowed, ", ")))
		}
	}

	for _, rule := range conditionalRules {
		if form.valueOf(rule.Governing) != rule.Trigger {
			continue
		}
		for _, dependent := range rule.Dependents {
			if form.valueOf(dependent) == "" {
				add(dependent, fmt.Sprintf("%s is required when %s is %q", dependent, rule.Governing, rule.Trigger))
			}
		}
	}

	if form.HoursAloneDaily == "" {
		add("hoursAloneDaily", "hoursAloneDaily is required")
	} else if hours, err := strconv.Atoi(form.HoursAloneDaily); err != nil {
		add("hoursAloneDaily", "hoursAloneDaily must be a whole number")
	} else if hours < minHoursAlone || hours > maxHoursAlone {
		add("hoursAloneDaily", fmt.Sprintf("hoursAloneDaily must be between %d and %d", minHoursAlone, maxHoursAlone))
	}

	if len(form.FinanciallyPrepared) == 0 {
		add("financiallyPrepared", "select at least one financial preparation option")
	}

	return violations
}

func (f Form) valueOf(name string) string {
	switch name {
	case "fullName":
		return f.FullName
	case "phoneNumber":
		return f.PhoneNumber
	case "emailAddress":
		return f.EmailAddress
	case "homeAddress":
		return f.HomeAddress
	case "occupation":
		return f.Occupation
	case "workSchedule":
		return f.WorkSchedule
	case "accommodationType":
		return f.AccommodationType
	case "ownershipType":
		return f.OwnershipType
	case "petOwnershipAllowed":
		return f.PetOwnershipAllowed
	case "fencedYard":
		return f.FencedYard
	case "householdMembers":
		return f.HouseholdMembers
	case "ownedDogBefore":
		return f.OwnedDogBefore
	case "previousPetOutcome":
		return f.PreviousPetOutcome
	case "currentlyHavePets":
		return f.CurrentlyHavePets
	case "currentPetsDetails":
		return f.CurrentPetsDetails
	case "currentPetsSterilized":
		return f.CurrentPetsSterilized
	case "adoptionReason":
		return f.AdoptionReason
	case "primaryCaregiver":
		return f.PrimaryCaregiver
	case "sleepingLocation":
		return f.SleepingLocation
	case "travelManagement":
		return f.TravelManagement
	case "lifetimeCommitment":
		return f.LifetimeCommitment
	case "willingToVaccinate":
		return f.WillingToVaccinate
	case "willingToProvideVetCare":
		return f.WillingToProvideVetCare
	case "willingToUseFleaPrevention":
		return f.WillingToUseFleaPrevention
	case "willingToSterilize":
		return f.WillingToSterilize
	case "preferredVeterinarian":
		return f.PreferredVeterinarian
	case "openToFosterToAdopt":
		return f.OpenToFosterToAdopt
	case "agreeNotToRehome":
		return f.AgreeNotToRehome
	case "willReturnToShelter":
		return f.WillReturnToShelter
	default:
		return ""
	}
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
