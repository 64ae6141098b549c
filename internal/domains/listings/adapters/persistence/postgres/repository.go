package postgres

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/havendogs/api-server/internal/domains/listings/domain"
	"github.com/havendogs/api-server/internal/domains/listings/ports"
	"github.com/havendogs/api-server/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists adoption listings in PostgreSQL using GORM-mapped columns.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. The caller owns the DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		if err := db.AutoMigrate(&listingRecord{}); err != nil {
			log.Printf("postgres listings repository migration failed: %v", err)
		}
	}
	return repo
}

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

func newListingRecord(l *domain.Listing) listingRecord {
	return listingRecord{
		ID:          l.ID,
		Name:        l.Name,
		Breed:       l.Breed,
		Age:         l.Age,
		Status:      string(l.Status),
		Location:    l.Location,
		ImageURL:    l.ImageURL,
		Description: l.Description,
		PostedBy:    l.PostedBy,
	}
}

// Save inserts or updates a listing aggregate.
func (r *Repository) Save(ctx context.Context, listing *domain.Listing) (*projection.Projection[*domain.Listing], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, errors.New("cannot save nil listing")
	}
	record := newListingRecord(listing)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":        record.Name,
				"breed":       record.Breed,
				"age":         record.Age,
				"status":      record.Status,
				"location":    record.Location,
				"image_url":   record.ImageURL,
				"description": record.Description,
				"posted_by":   record.PostedBy,
				"updated_at":  gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, listing.ID)
}

// GetByID fetches a listing by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Listing], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record listingRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return toProjection(&record), nil
}

// Delete removes a listing by identifier.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&listingRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns every persisted listing, newest first.
func (r *Repository) List(ctx context.Context) ([]*projection.Projection[*domain.Listing], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []listingRecord
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return recordsToProjections(records), nil
}

// FindByLocation returns available listings whose location contains the fragment.
func (r *Repository) FindByLocation(ctx context.Context, location string) ([]*projection.Projection[*domain.Listing], error) {
	return r.findAvailable(ctx, "location ILIKE ?", location)
}

// FindByBreed returns available listings whose breed contains the fragment.
func (r *Repository) FindByBreed(ctx context.Context, breed string) ([]*projection.Projection[*domain.Listing], error) {
	return r.findAvailable(ctx, "breed ILIKE ?", breed)
}

func (r *Repository) findAvailable(ctx context.Context, condition, fragment string) ([]*projection.Projection[*domain.Listing], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []listingRecord
	if err := r.db.WithContext(ctx).
		Where(condition, "%"+fragment+"%").
		Where("status = ?", string(domain.StatusAvailable)).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return recordsToProjections(records), nil
}

func recordsToProjections(records []listingRecord) []*projection.Projection[*domain.Listing] {
	list := make([]*projection.Projection[*domain.Listing], 0, len(records))
	for i := range records {
		list = append(list, toProjection(&records[i]))
	}
	return list
}

func toProjection(record *listingRecord) *projection.Projection[*domain.Listing] {
	if record == nil {
		return nil
	}
	return &projection.Projection[*domain.Listing]{
		Entity:   record.toDomain(),
		Metadata: projection.Metadata{CreatedAt: record.CreatedAt, UpdatedAt: record.UpdatedAt},
	}
}

func (r *listingRecord) toDomain() *domain.Listing {
	if r == nil {
		return nil
	}
	return &domain.Listing{
		ID:          r.ID,
		Name:        r.Name,
		Breed:       r.Breed,
		Age:         r.Age,
		Status:      domain.Status(r.Status),
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		PostedBy:    r.PostedBy,
	}
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres repository not configured")
	}
	return nil
}
