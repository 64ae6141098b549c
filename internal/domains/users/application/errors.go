package application

import (
	"errors"
	"fmt"

	"github.com/havendogs/api-server/internal/domains/users/domain"
)

var (
	// ErrInvalidInput signals a registration or profile value violated a rule.
	ErrInvalidInput = errors.New("invalid user input")
	// ErrInvalidCredentials signals a failed login password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrEmptyFirstName),
		errors.Is(err, domain.ErrEmptyLastName),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrInvalidUserType),
		errors.Is(err, domain.ErrNegativeFee):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}
