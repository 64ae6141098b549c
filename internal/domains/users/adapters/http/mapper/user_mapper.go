package mapper

import (
	"github.com/havendogs/api-server/internal/domains/users/domain"
)

// Register captures the sign-up payload.
type Register struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	UserType    string `json:"userType"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// Login captures the credential payload.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BoardingAvailability captures the boarding profile mutation.
type BoardingAvailability struct {
	IsBoardingAvailable bool    `json:"isBoardingAvailable"`
	BoardingFee         float64 `json:"boardingFee"`
}

// User is the account view returned from auth endpoints. The password hash
// never appears here.
type User struct {
	ID                  string  `json:"id"`
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Email               string  `json:"email"`
	UserType            string  `json:"userType"`
	PhoneNumber         string  `json:"phoneNumber,omitempty"`
	Address             string  `json:"address,omitempty"`
	IsBoardingAvailable bool    `json:"isBoardingAvailable"`
	BoardingFee         float64 `json:"boardingFee"`
}

// Boarder is the public projection of an account offering boarding.
type Boarder struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	Address     string  `json:"address,omitempty"`
	BoardingFee float64 `json:"boardingFee"`
}

// Vet is the public projection of a veterinary account.
type Vet struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
}

// ToRegistration maps the sign-up payload into a domain registration.
func ToRegistration(model Register) domain.Registration {
	return domain.Registration{
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		Email:       model.Email,
		Password:    model.Password,
		UserType:    model.UserType,
		PhoneNumber: model.PhoneNumber,
		Address:     model.Address,
	}
}

// FromDomainUser maps an account into its transport view.
func FromDomainUser(u *domain.User) User {
	return User{
		ID:                  u.ID,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Email:               u.Email,
		UserType:            string(u.UserType),
		PhoneNumber:         u.PhoneNumber,
		Address:             u.Address,
		IsBoardingAvailable: u.IsBoardingAvailable,
		BoardingFee:         u.BoardingFee,
	}
}

// FromDomainBoarders maps accounts into the public boarder projection.
func FromDomainBoarders(list []*domain.User) []Boarder {
	result := make([]Boarder, 0, len(list))
	for _, u := range list {
		result = append(result, Boarder{
			ID:          u.ID,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Email:       u.Email,
			PhoneNumber: u.PhoneNumber,
			Address:     u.Address,
			BoardingFee: u.BoardingFee,
		})
	}
	return result
}

// FromDomainVets maps accounts into the public vet projection.
func FromDomainVets(list []*domain.User) []Vet {
	result := make([]Vet, 0, len(list))
	for _, u := range list {
		result = append(result, Vet{
			ID:          u.ID,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Email:       u.Email,
			PhoneNumber: u.PhoneNumber,
			Address:     u.Address,
		})
	}
	return result
}
