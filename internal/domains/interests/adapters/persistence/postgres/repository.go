package postgres

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/havendogs/api-server/internal/domains/interests/domain"
	"github.com/havendogs/api-server/internal/domains/interests/ports"
	"github.com/havendogs/api-server/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists interest submissions in PostgreSQL using GORM-mapped columns.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. The caller owns the DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		if err := db.AutoMigrate(&interestRecord{}); err != nil {
			log.Printf("postgres interests repository migration failed: %v", err)
		}
	}
	return repo
}

type interestRecord struct {
	ID    string `gorm:"primaryKey;column:id;type:varchar(64)"`
	PetID string `gorm:"column:pet_id;type:varchar(64);index"`

	FullName     string `gorm:"column:full_name"`
	PhoneNumber  string `gorm:"column:phone_number"`
	EmailAddress string `gorm:"column:email_address"`
	HomeAddress  string `gorm:"column:home_address"`
	Occupation   string `gorm:"column:occupation"`
	WorkSchedule string `gorm:"column:work_schedule"`

	AccommodationType   string `gorm:"column:accommodation_type"`
	OwnershipType       string `gorm:"column:ownership_type"`
	PetOwnershipAllowed string `gorm:"column:pet_ownership_allowed"`
	FencedYard          string `gorm:"column:fenced_yard"`
	HouseholdMembers    string `gorm:"column:household_members"`

	OwnedDogBefore        string `gorm:"column:owned_dog_before"`
	PreviousPetOutcome    string `gorm:"column:previous_pet_outcome"`
	CurrentlyHavePets     string `gorm:"column:currently_have_pets"`
	CurrentPetsDetails    string `gorm:"column:current_pets_details"`
	CurrentPetsSterilized string `gorm:"column:current_pets_sterilized"`

	AdoptionReason     string `gorm:"column:adoption_reason"`
	PrimaryCaregiver   string `gorm:"column:primary_caregiver"`
	HoursAloneDaily    int    `gorm:"column:hours_alone_daily"`
	SleepingLocation   string `gorm:"column:sleeping_location"`
	TravelManagement   string `gorm:"column:travel_management"`
	LifetimeCommitment string `gorm:"column:lifetime_commitment"`

	WillingToVaccinate         string `gorm:"column:willing_to_vaccinate"`
	WillingToProvideVetCare    string `gorm:"column:willing_to_provide_vet_care"`
	WillingToUseFleaPrevention string `gorm:"column:willing_to_use_flea_prevention"`
	WillingToSterilize         string `gorm:"column:willing_to_sterilize"`
	PreferredVeterinarian      string `gorm:"column:preferred_veterinarian"`

	FinanciallyPrepared pq.StringArray `gorm:"column:financially_prepared;type:text[]"`

	PetApplyingFor      string `gorm:"column:pet_applying_for"`
	OpenToFosterToAdopt string `gorm:"column:open_to_foster_to_adopt"`
	AgreeNotToRehome    string `gorm:"column:agree_not_to_rehome"`
	WillReturnToShelter string `gorm:"column:will_return_to_shelter"`

	ConfirmInformationAccurate bool `gorm:"column:confirm_information_accurate"`
	UnderstandSelectiveProcess bool `gorm:"column:understand_selective_process"`
	AgreeToHomeCheck           bool `gorm:"column:agree_to_home_check"`
	AgreeToAdoptionContract    bool `gorm:"column:agree_to_adoption_contract"`

	InterestedUserName  string `gorm:"column:interested_user_name"`
	InterestedUserEmail string `gorm:"column:interested_user_email"`
	InterestedUserPhone string `gorm:"column:interested_user_phone"`
	Message             string `gorm:"column:message"`

	Status    string    `gorm:"column:status;type:varchar(32);index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (interestRecord) TableName() string { return "pet_interests" }

func newInterestRecord(i *domain.Interest) interestRecord {
	return interestRecord{
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

		FinanciallyPrepared: copyStringArray(i.FinanciallyPrepared),

		PetApplyingFor:      i.PetApplyingFor,
		OpenToFosterToAdopt: i.OpenToFosterToAdopt,
		AgreeNotToRehome:    i.AgreeNotToRehome,
		WillReturnToShelter: i.WillReturnToShelter,

		ConfirmInformationAccurate: i.ConfirmInformationAccurate,
		UnderstandSelectiveProcess: i.UnderstandSelectiveProcess,
		AgreeToHomeCheck:           i.AgreeToHomeCheck,
		AgreeToAdoptionContract:    i.AgreeToAdoptionContract,

		InterestedUserName:  i.InterestedUser.Name,
		InterestedUserEmail: i.InterestedUser.Email,
		InterestedUserPhone: i.InterestedUser.Phone,
		Message:             i.Message,

		Status: string(i.Status),
	}
}

// Insert stores a new submission.
func (r *Repository) Insert(ctx context.Context, interest *domain.Interest) (*projection.Projection[*domain.Interest], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if interest == nil {
		return nil, errors.New("cannot insert nil interest")
	}
	record := newInterestRecord(interest)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, interest.ID)
}

// GetByID fetches a submission by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Interest], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record interestRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return toProjection(&record), nil
}

// FindByPet returns submissions for one listing, newest first.
func (r *Repository) FindByPet(ctx context.Context, petID string) ([]*projection.Projection[*domain.Interest], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []interestRecord
	if err := r.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return recordsToProjections(records), nil
}

// List returns submissions matching the filter, newest first.
func (r *Repository) List(ctx context.Context, filter ports.Filter) ([]*projection.Projection[*domain.Interest], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	var records []interestRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return recordsToProjections(records), nil
}

// UpdateStatus replaces the status of one submission.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*projection.Projection[*domain.Interest], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).
		Model(&interestRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func recordsToProjections(records []interestRecord) []*projection.Projection[*domain.Interest] {
	list := make([]*projection.Projection[*domain.Interest], 0, len(records))
	for i := range records {
		list = append(list, toProjection(&records[i]))
	}
	return list
}

func toProjection(record *interestRecord) *projection.Projection[*domain.Interest] {
	if record == nil {
		return nil
	}
	return &projection.Projection[*domain.Interest]{
		Entity:   record.toDomain(),
		Metadata: projection.Metadata{CreatedAt: record.CreatedAt, UpdatedAt: record.UpdatedAt},
	}
}

func (r *interestRecord) toDomain() *domain.Interest {
	if r == nil {
		return nil
	}
	interest := &domain.Interest{
		ID:    r.ID,
		PetID: r.PetID,

		FullName:     r.FullName,
		PhoneNumber:  r.PhoneNumber,
		EmailAddress: r.EmailAddress,
		HomeAddress:  r.HomeAddress,
		Occupation:   r.Occupation,
		WorkSchedule: r.WorkSchedule,

		AccommodationType:   r.AccommodationType,
		OwnershipType:       r.OwnershipType,
		PetOwnershipAllowed: r.PetOwnershipAllowed,
		FencedYard:          r.FencedYard,
		HouseholdMembers:    r.HouseholdMembers,

		OwnedDogBefore:        r.OwnedDogBefore,
		PreviousPetOutcome:    r.PreviousPetOutcome,
		CurrentlyHavePets:     r.CurrentlyHavePets,
		CurrentPetsDetails:    r.CurrentPetsDetails,
		CurrentPetsSterilized: r.CurrentPetsSterilized,

		AdoptionReason:     r.AdoptionReason,
		PrimaryCaregiver:   r.PrimaryCaregiver,
		HoursAloneDaily:    r.HoursAloneDaily,
		SleepingLocation:   r.SleepingLocation,
		TravelManagement:   r.TravelManagement,
		LifetimeCommitment: r.LifetimeCommitment,

		WillingToVaccinate:         r.WillingToVaccinate,
		WillingToProvideVetCare:    r.WillingToProvideVetCare,
		WillingToUseFleaPrevention: r.WillingToUseFleaPrevention,
		WillingToSterilize:         r.WillingToSterilize,
		PreferredVeterinarian:      r.PreferredVeterinarian,

		PetApplyingFor:      r.PetApplyingFor,
		OpenToFosterToAdopt: r.OpenToFosterToAdopt,
		AgreeNotToRehome:    r.AgreeNotToRehome,
		WillReturnToShelter: r.WillReturnToShelter,

		ConfirmInformationAccurate: r.ConfirmInformationAccurate,
		UnderstandSelectiveProcess: r.UnderstandSelectiveProcess,
		AgreeToHomeCheck:           r.AgreeToHomeCheck,
		AgreeToAdoptionContract:    r.AgreeToAdoptionContract,

		InterestedUser: domain.LegacyContact{
			Name:  r.InterestedUserName,
			Email: r.InterestedUserEmail,
			Phone: r.InterestedUserPhone,
		},
		Message: r.Message,

		Status: domain.Status(r.Status),
	}
	if len(r.FinanciallyPrepared) > 0 {
		interest.FinanciallyPrepared = append([]string{}, r.FinanciallyPrepared...)
	}
	return interest
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres repository not configured")
	}
	return nil
}

func copyStringArray(values []string) pq.StringArray {
	if len(values) == 0 {
		return nil
	}
	dup := append([]string{}, values...)
	return pq.StringArray(dup)
}
