package domain

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// UserType categorizes accounts. Adopter is the default for registrations
// that do not declare a type.
type UserType string

const (
	TypeAdopter      UserType = "adopter"
	TypePetOwner     UserType = "petOwner"
	TypeVeterinarian UserType = "veterinarian"
	// TypeVet is the short legacy spelling still present in stored accounts.
	TypeVet   UserType = "vet"
	TypeAdmin UserType = "admin"
)

var (
	ErrEmptyFirstName  = errors.New("first name must not be empty")
	ErrEmptyLastName   = errors.New("last name must not be empty")
	ErrInvalidEmail    = errors.New("email must contain '@'")
	ErrWeakPassword    = errors.New("password must be at least 6 characters")
	ErrInvalidUserType = errors.New("invalid user type")
	ErrNegativeFee     = errors.New("boarding fee must not be negative")
)

// ParseUserType validates a raw account type; empty defaults to adopter.
func ParseUserType(raw string) (UserType, error) {
	switch UserType(strings.TrimSpace(raw)) {
	case "":
		return TypeAdopter, nil
	case TypeAdopter:
		return TypeAdopter, nil
	case TypePetOwner:
		return TypePetOwner, nil
	case TypeVeterinarian:
		return TypeVeterinarian, nil
	case TypeVet:
		return TypeVet, nil
	case TypeAdmin:
		return TypeAdmin, nil
	default:
		return "", ErrInvalidUserType
	}
}

// Veterinary reports whether this account type belongs to the vet directory.
func (t UserType) Veterinary() bool {
	return t == TypeVeterinarian || t == TypeVet
}

// User is the account aggregate. PasswordHash is a bcrypt digest; the clear
// password never leaves the constructor.
type User struct {
	ID                  string
	FirstName           string
	LastName            string
	Email               string
	PasswordHash        string
	UserType            UserType
	PhoneNumber         string
	Address             string
	IsBoardingAvailable bool
	BoardingFee         float64
}

// Registration carries the raw sign-up values.
type Registration struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	UserType    string
	PhoneNumber string
	Address     string
}

// NewUser validates the registration and hashes the password.
func NewUser(reg Registration) (*User, error) {
	firstName := strings.TrimSpace(reg.FirstName)
	lastName := strings.TrimSpace(reg.LastName)
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if firstName == "" {
		return nil, ErrEmptyFirstName
	}
	if lastName == "" {
		return nil, ErrEmptyLastName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(reg.Password) < 6 {
		return nil, ErrWeakPassword
	}
	userType, err := ParseUserType(reg.UserType)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		UserType:     userType,
		PhoneNumber:  strings.TrimSpace(reg.PhoneNumber),
		Address:      strings.TrimSpace(reg.Address),
	}, nil
}

// CheckPassword compares a candidate password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetBoardingAvailability updates the boarding profile.
func (u *User) SetBoardingAvailability(available bool, fee float64) error {
	if fee < 0 {
		return ErrNegativeFee
	}
	u.IsBoardingAvailable = available
	u.BoardingFee = fee
	return nil
}

// Clone returns a copy so repositories never alias caller state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}
