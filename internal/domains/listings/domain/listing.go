package domain

import (
	"errors"
	"strings"
)

// Status represents the adoption lifecycle state of a listing.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

var (
	ErrEmptyName     = errors.New("listing name is required")
	ErrEmptyBreed    = errors.New("listing breed is required")
	ErrInvalidAge    = errors.New("listing age must be zero or greater")
	ErrEmptyLocation = errors.New("listing location is required")
	ErrEmptyImage    = errors.New("listing image url is required")
	ErrEmptyOwner    = errors.New("listing must reference the posting user")
	ErrInvalidStatus = errors.New("status must be one of: available, pending, adopted")
)

// ParseStatus validates a raw listing status value.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.TrimSpace(raw)) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusPending:
		return StatusPending, nil
	case StatusAdopted:
		return StatusAdopted, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Listing is an adoptable-animal record. Status transitions are deliberately
// unconstrained: any enumerated value may follow any other.
type Listing struct {
	ID          string
	Name        string
	Breed       string
	Age         int
	Status      Status
	Location    string
	ImageURL    string
	Description string
	PostedBy    string
}

// NewListing validates the invariants and builds a listing in the available state.
func NewListing(id, name, breed string, age int, location, imageURL, description, postedBy string) (*Listing, error) {
	l := &Listing{ID: id, Status: StatusAvailable}
	if err := l.Rename(name); err != nil {
		return nil, err
	}
	if err := l.SetBreed(breed); err != nil {
		return nil, err
	}
	if err := l.SetAge(age); err != nil {
		return nil, err
	}
	if err := l.SetLocation(location); err != nil {
		return nil, err
	}
	if err := l.SetImageURL(imageURL); err != nil {
		return nil, err
	}
	l.Description = strings.TrimSpace(description)
	if err := l.AssignOwner(postedBy); err != nil {
		return nil, err
	}
	return l, nil
}

// Rename mutates the listing name ensuring the invariant.
func (l *Listing) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	l.Name = name
	return nil
}

// SetBreed mutates the breed ensuring the invariant.
func (l *Listing) SetBreed(breed string) error {
	breed = strings.TrimSpace(breed)
	if breed == "" {
		return ErrEmptyBreed
	}
	l.Breed = breed
	return nil
}

// SetAge stores the listing age in years.
func (l *Listing) SetAge(age int) error {
	if age < 0 {
		return ErrInvalidAge
	}
	l.Age = age
	return nil
}

// SetLocation mutates the free-text location.
func (l *Listing) SetLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrEmptyLocation
	}
	l.Location = location
	return nil
}

// SetImageURL mutates the image reference.
func (l *Listing) SetImageURL(imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return ErrEmptyImage
	}
	l.ImageURL = imageURL
	return nil
}

// SetDescription replaces the free-text description.
func (l *Listing) SetDescription(description string) {
	l.Description = strings.TrimSpace(description)
}

// AssignOwner records the posting user. Writes that record an owner always
// require a genuine authenticated identity.
func (l *Listing) AssignOwner(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrEmptyOwner
	}
	l.PostedBy = userID
	return nil
}

// UpdateStatus validates the value only; any transition is permitted.
func (l *Listing) UpdateStatus(status Status) error {
	parsed, err := ParseStatus(string(status))
	if err != nil {
		return err
	}
	l.Status = parsed
	return nil
}
