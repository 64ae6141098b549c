package postgres

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/havendogs/api-server/internal/domains/boarding/domain"
	"github.com/havendogs/api-server/internal/domains/boarding/ports"
	"github.com/havendogs/api-server/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists boarding submissions in PostgreSQL using GORM-mapped columns.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. The caller owns the DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		if err := db.AutoMigrate(&boardingRecord{}); err != nil {
			log.Printf("postgres boarding repository migration failed: %v", err)
		}
	}
	return repo
}

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

func newBoardingRecord(s *domain.Submission) boardingRecord {
	record := boardingRecord{
		ID: s.ID,

		OwnerName:  s.Owner.Name,
		OwnerEmail: s.Owner.Email,
		OwnerPhone: s.Owner.Phone,

		PetName:                s.Pet.Name,
		PetAge:                 s.Pet.Age,
		PetBreed:               s.Pet.Breed,
		PetAllergies:           s.Pet.Allergies,
		PetMedications:         s.Pet.Medications,
		PetFeedingInstructions: s.Pet.FeedingInstructions,
		PetSpecialInstructions: s.Pet.SpecialInstructions,

		EmergencyContactName:  s.EmergencyContact.Name,
		EmergencyContactPhone: s.EmergencyContact.Phone,
		VeterinarianName:      s.Veterinarian.Name,
		VeterinarianPhone:     s.Veterinarian.Phone,

		StartDate: s.Stay.StartDate,
		EndDate:   s.Stay.EndDate,

		VaccinationCard: s.Documents.VaccinationCard,
		MedicalRecords:  s.Documents.MedicalRecords,

		Status: string(s.Status),
	}
	if len(s.Documents.PetImages) > 0 {
		record.PetImages = pq.StringArray(append([]string{}, s.Documents.PetImages...))
	}
	return record
}

// Insert stores a new submission.
func (r *Repository) Insert(ctx context.Context, submission *domain.Submission) (*ports.SubmissionProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, errors.New("cannot insert nil submission")
	}
	record := newBoardingRecord(submission)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, submission.ID)
}

// GetByID fetches a submission by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*ports.SubmissionProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record boardingRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return toProjection(&record), nil
}

// List returns submissions matching the filter, newest first.
func (r *Repository) List(ctx context.Context, filter ports.Filter) ([]*ports.SubmissionProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	var records []boardingRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]*ports.SubmissionProjection, 0, len(records))
	for i := range records {
		list = append(list, toProjection(&records[i]))
	}
	return list, nil
}

// UpdateStatus replaces the status of one submission.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*ports.SubmissionProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).
		Model(&boardingRecord{}).
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

func toProjection(record *boardingRecord) *ports.SubmissionProjection {
	if record == nil {
		return nil
	}
	return &ports.SubmissionProjection{
		Entity:   record.toDomain(),
		Metadata: projection.Metadata{CreatedAt: record.CreatedAt, UpdatedAt: record.UpdatedAt},
	}
}

func (r *boardingRecord) toDomain() *domain.Submission {
	if r == nil {
		return nil
	}
	submission := &domain.Submission{
		ID: r.ID,
		Owner: domain.Owner{
			Name:  r.OwnerName,
			Email: r.OwnerEmail,
			Phone: r.OwnerPhone,
		},
		Pet: domain.Pet{
			Name:                r.PetName,
			Age:                 r.PetAge,
			Breed:               r.PetBreed,
			Allergies:           r.PetAllergies,
			Medications:         r.PetMedications,
			FeedingInstructions: r.PetFeedingInstructions,
			SpecialInstructions: r.PetSpecialInstructions,
		},
		EmergencyContact: domain.Contact{Name: r.EmergencyContactName, Phone: r.EmergencyContactPhone},
		Veterinarian:     domain.Contact{Name: r.VeterinarianName, Phone: r.VeterinarianPhone},
		Stay:             domain.Stay{StartDate: r.StartDate, EndDate: r.EndDate},
		Documents: domain.Documents{
			VaccinationCard: r.VaccinationCard,
			MedicalRecords:  r.MedicalRecords,
		},
		Status: domain.Status(r.Status),
	}
	if len(r.PetImages) > 0 {
		submission.Documents.PetImages = append([]string{}, r.PetImages...)
	}
	return submission
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres repository not configured")
	}
	return nil
}
