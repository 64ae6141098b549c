package postgres

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/havendogs/api-server/internal/domains/users/domain"
	"github.com/havendogs/api-server/internal/domains/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists accounts in PostgreSQL using GORM-mapped columns.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. The caller owns the DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		if err := db.AutoMigrate(&userRecord{}); err != nil {
			log.Printf("postgres users repository migration failed: %v", err)
		}
	}
	return repo
}

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

func newUserRecord(u *domain.User) userRecord {
	return userRecord{
		ID:                  u.ID,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		UserType:            string(u.UserType),
		PhoneNumber:         u.PhoneNumber,
		Address:             u.Address,
		IsBoardingAvailable: u.IsBoardingAvailable,
		BoardingFee:         u.BoardingFee,
	}
}

// Insert stores a new account, enforcing email uniqueness.
func (r *Repository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("cannot insert nil user")
	}
	record := newUserRecord(user)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrEmailTaken
	}
	return record.toDomain(), nil
}

// GetByID fetches an account by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record userRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// GetByEmail fetches an account by its lowercase address.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record userRecord
	err := r.db.WithContext(ctx).
		First(&record, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Update replaces a stored account.
func (r *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := newUserRecord(user)
	result := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"first_name":            record.FirstName,
			"last_name":             record.LastName,
			"email":                 record.Email,
			"password_hash":         record.PasswordHash,
			"user_type":             record.UserType,
			"phone_number":          record.PhoneNumber,
			"address":               record.Address,
			"is_boarding_available": record.IsBoardingAvailable,
			"boarding_fee":          record.BoardingFee,
			"updated_at":            gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, user.ID)
}

// ListBoarders returns accounts currently offering boarding.
func (r *Repository) ListBoarders(ctx context.Context) ([]*domain.User, error) {
	return r.find(ctx, "is_boarding_available = ?", true)
}

// ListVets returns veterinary accounts.
func (r *Repository) ListVets(ctx context.Context) ([]*domain.User, error) {
	return r.find(ctx, "user_type IN ?", []string{string(domain.TypeVeterinarian), string(domain.TypeVet)})
}

func (r *Repository) find(ctx context.Context, condition string, arg any) ([]*domain.User, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []userRecord
	if err := r.db.WithContext(ctx).
		Where(condition, arg).
		Order("email ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]*domain.User, 0, len(records))
	for i := range records {
		list = append(list, records[i].toDomain())
	}
	return list, nil
}

func (r *userRecord) toDomain() *domain.User {
	if r == nil {
		return nil
	}
	return &domain.User{
		ID:                  r.ID,
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		Email:               r.Email,
		PasswordHash:        r.PasswordHash,
		UserType:            domain.UserType(r.UserType),
		PhoneNumber:         r.PhoneNumber,
		Address:             r.Address,
		IsBoardingAvailable: r.IsBoardingAvailable,
		BoardingFee:         r.BoardingFee,
	}
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres repository not configured")
	}
	return nil
}
