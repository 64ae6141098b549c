package application

import (
	"errors"
	"fmt"

	"github.com/havendogs/api-server/internal/domains/listings/domain"
)

// ErrInvalidInput signals the request violated a listing invariant.
var ErrInvalidInput = errors.New("invalid listing input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrEmptyBreed) ||
		errors.Is(err, domain.ErrInvalidAge) ||
		errors.Is(err, domain.ErrEmptyLocation) ||
		errors.Is(err, domain.ErrEmptyImage) ||
		errors.Is(err, domain.ErrEmptyOwner) ||
		errors.Is(err, domain.ErrInvalidStatus) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
