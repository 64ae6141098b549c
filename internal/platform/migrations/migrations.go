package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&listingRecord{},
		&interestRecord{},
		&boardingRecord{},
		&userRecord{},
	)
}

// Listing schema mirrors the listings Postgres adapter.
type listingRecord struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name        string    `gorm:"column:name"`
	Breed       string    `gorm:"column:breed;index"`
	Age         int       `gorm:"column:age"`
	Status      string    `gorm:"column:status;type:varchar(32);index"`
	Location    string    `gorm:"column:location;index"`
	ImageURL    string    `gorm:"column:image_url"`
	Description string    `gorm:"column:description"`
	PostedBy    string    `gorm:"column:posted_by;type:varchar(64);index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (listingRecord) TableName() string { return "adoptions" }

// Interest schema mirrors the interests Postgres adapter.
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

// Boarding schema mirrors the boarding Postgres adapter.
type boardingRecord struct {
	ID string `gorm:"primaryKey;column:id;type:varchar(64)"`

	OwnerName  string `gorm:"column:owner_name"`
	OwnerEmail string `gorm:"column:owner_email"`
	OwnerPhone string `gorm:"column:owner_phone"`

	PetName                string `gorm:"column:pet_name"`
	PetAge                 int    `gorm:"column:pet_age"`
	PetBreed               string `gorm:"column:pet_breed"`
	PetAllergies           string `gorm:"column:pet_allergies"`
	PetMedications         string `gorm:"column:pet_medications"`
	PetFeedingInstructions string `gorm:"column:pet_feeding_instructions"`
	PetSpecialInstructions string `gorm:"column:pet_special_instructions"`

	EmergencyContactName  string `gorm:"column:emergency_contact_name"`
	EmergencyContactPhone string `gorm:"column:emergency_contact_phone"`
	VeterinarianName      string `gorm:"column:veterinarian_name"`
	VeterinarianPhone     string `gorm:"column:veterinarian_phone"`

	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`

	PetImages       pq.StringArray `gorm:"column:pet_images;type:text[]"`
	VaccinationCard string         `gorm:"column:vaccination_card"`
	MedicalRecords  string         `gorm:"column:medical_records"`

	Status    string    `gorm:"column:status;type:varchar(32);index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (boardingRecord) TableName() string { return "boardings" }

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID                  string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	FirstName           string    `gorm:"column:first_name"`
	LastName            string    `gorm:"column:last_name"`
	Email               string    `gorm:"column:email;uniqueIndex"`
	PasswordHash        string    `gorm:"column:password_hash"`
	UserType            string    `gorm:"column:user_type;type:varchar(32);index"`
	PhoneNumber         string    `gorm:"column:phone_number"`
	Address             string    `gorm:"column:address"`
	IsBoardingAvailable bool      `gorm:"column:is_boarding_available;index"`
	BoardingFee         float64   `gorm:"column:boarding_fee"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }
