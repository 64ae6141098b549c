package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	interestmemory "github.com/havendogs/api-server/internal/domains/interests/adapters/memory"
	"github.com/havendogs/api-server/internal/domains/interests/domain"
	"github.com/havendogs/api-server/internal/domains/interests/ports"
)

type stubDirectory struct {
	listings map[string]*ports.ListingRef
}

func (d *stubDirectory) Lookup(_ context.Context, petID string) (*ports.ListingRef, error) {
	if ref, ok := d.listings[petID]; ok {
		return ref, nil
	}
	return nil, ports.ErrListingNotFound
}

type recordingDispatcher struct {
	dispatched []ports.StatusNotification
	err        error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, notification ports.StatusNotification) error {
	if d.err != nil {
		return d.err
	}
	d.dispatched = append(d.dispatched, notification)
	return nil
}

func validForm() domain.Form {
	return domain.Form{
		FullName:     "Jamie Doe",
		PhoneNumber:  "+351 912 345 678",
		EmailAddress: "jamie@example.com",
		HomeAddress:  "Rua das Flores 12, Lisboa",
		Occupation:   "nurse",
		WorkSchedule: "9-5",

		AccommodationType: "apartment",
		OwnershipType:     "own",
		FencedYard:        "no",
		HouseholdMembers:  "2 adults",

		OwnedDogBefore:    "no",
		CurrentlyHavePets: "no",

		AdoptionReason:     "Looking for a companion",
		PrimaryCaregiver:   "myself",
		HoursAloneDaily:    "5",
		SleepingLocation:   "inside-house",
		TravelManagement:   "pet sitter",
		LifetimeCommitment: "yes",

		WillingToVaccinate:         "yes",
		WillingToProvideVetCare:    "yes",
		WillingToUseFleaPrevention: "yes",
		WillingToSterilize:         "yes",

		FinanciallyPrepared: []string{"food", "vet-bills"},

		OpenToFosterToAdopt: "yes",
		AgreeNotToRehome:    "yes",
		WillReturnToShelter: "yes",

		ConfirmInformationAccurate: true,
		UnderstandSelectiveProcess: true,
		AgreeToHomeCheck:           true,
		AgreeToAdoptionContract:    true,
	}
}

func newFixture() (*Service, *recordingDispatcher) {
	directory := &stubDirectory{listings: map[string]*ports.ListingRef{
		"pet-1": {ID: "pet-1", Name: "Bella", Breed: "Labrador"},
	}}
	dispatcher := &recordingDispatcher{}
	svc := NewService(interestmemory.NewRepository(), directory, dispatcher)
	return svc, dispatcher
}

func TestSubmitInterest_Success(t *testing.T) {
	svc, _ := newFixture()

	saved, err := svc.SubmitInterest(context.Background(), "pet-1", validForm())

	require.NoError(t, err)
	require.NotNil(t, saved)
	require.NotEmpty(t, saved.Entity.ID)
	require.Equal(t, domain.StatusPending, saved.Entity.Status)
	require.False(t, saved.Metadata.CreatedAt.IsZero())
}

func TestSubmitInterest_UnknownListing(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.SubmitInterest(context.Background(), "missing", validForm())
	require.ErrorIs(t, err, ports.ErrListingNotFound)
}

func TestSubmitInterest_ValidationFailure(t *testing.T) {
	svc, _ := newFixture()

	form := validForm()
	form.FullName = ""
	form.HoursAloneDaily = "30"

	_, err := svc.SubmitInterest(context.Background(), "pet-1", form)

	require.ErrorIs(t, err, ErrInvalidInput)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := validationErr.Fields()
	require.Contains(t, fields, "fullName")
	require.Contains(t, fields, "hoursAloneDaily")
}

func TestSubmitInterest_DefaultsPetApplyingFor(t *testing.T) {
	svc, _ := newFixture()

	saved, err := svc.SubmitInterest(context.Background(), "pet-1", validForm())

	require.NoError(t, err)
	require.Equal(t, "Bella", saved.Entity.PetApplyingFor)
}

func TestUpdateStatus_ApprovalNotifiesApplicant(t *testing.T) {
	svc, dispatcher := newFixture()
	saved, err := svc.SubmitInterest(context.Background(), "pet-1", validForm())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), saved.Entity.ID, "approved")

	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, updated.Entity.Status)
	require.Len(t, dispatcher.dispatched, 1)
	notification := dispatcher.dispatched[0]
	require.Equal(t, "jamie@example.com", notification.To)
	require.Equal(t, "Jamie Doe", notification.Name)
	require.Equal(t, "Bella", notification.PetName)
	require.Equal(t, "approved", notification.Status)
}

func TestUpdateStatus_SameStatusSkipsNotification(t *testing.T) {
	svc, dispatcher := newFixture()
	saved, err := svc.SubmitInterest(context.Background(), "pet-1", validForm())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), saved.Entity.ID, "approved")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), saved.Entity.ID, "approved")
	require.NoError(t, err)

	require.Len(t, dispatcher.dispatched, 1)
}

func TestUpdateStatus_PendingSkipsNotification(t *testing.T) {
	svc, dispatcher := newFixture()
	saved, err := svc.SubmitInterest(context.Background(), "pet-1", validForm())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), saved.Entity.ID, "rejected")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), saved.Entity.ID, "pending")
	require.NoError(t, err)

	require.Len(t, dispatcher.dispatched, 1)
	require.Equal(t, "rejected", dispatcher.dispatched[0].Status)
}

func TestUpdateStatus_DispatchFailureDoesNotFailUpdate(t *testing.T) {
	svc, dispatcher := newFixture()
	saved, err := svc.SubmitInterest(context.Background(), "pet-1", validForm())
	require.NoError(t, err)

	dispatcher.err = errors.New("broker unavailable")
	updated, err := svc.UpdateStatus(context.Background(), saved.Entity.ID, "approved")

	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, updated.Entity.Status)

	fetched, err := svc.ListByPet(context.Background(), "pet-1")
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	require.Equal(t, domain.StatusApproved, fetched[0].Entity.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newFixture()
	saved, err := svc.SubmitInterest(context.Background(), "pet-1", validForm())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), saved.Entity.ID, "archived")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.UpdateStatus(context.Background(), "missing", "approved")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListAll_StatusFilter(t *testing.T) {
	svc, _ := newFixture()
	first, err := svc.SubmitInterest(context.Background(), "pet-1", validForm())
	require.NoError(t, err)
	_, err = svc.SubmitInterest(context.Background(), "pet-1", validForm())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), first.Entity.ID, "approved")
	require.NoError(t, err)

	approved, err := svc.ListAll(context.Background(), "approved")
	require.NoError(t, err)
	require.Len(t, approved, 1)
	require.Equal(t, first.Entity.ID, approved[0].Interest.Entity.ID)

	all, err := svc.ListAll(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestListAll_InvalidStatusFilter(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.ListAll(context.Background(), "archived")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAll_AttachesListing(t *testing.T) {
	svc, _ := newFixture()
	_, err := svc.SubmitInterest(context.Background(), "pet-1", validForm())
	require.NoError(t, err)

	views, err := svc.ListAll(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Pet)
	require.Equal(t, "Bella", views[0].Pet.Name)
	require.Equal(t, "Labrador", views[0].Pet.Breed)
}
