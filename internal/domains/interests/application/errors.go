package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/havendogs/api-server/internal/domains/interests/domain"
)

// ErrInvalidInput signals the submission or status value violated a rule.
var ErrInvalidInput = errors.New("invalid interest input")

// ValidationError aggregates every rule violation found in one pass so the
// caller can surface field-level detail.
type ValidationError struct {
	Violations []domain.FieldViolation
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(messages, "; "))
}

// Is lets callers match with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Fields flattens the violations into a field → message map.
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		if _, seen := fields[v.Field]; !seen {
			fields[v.Field] = v.Message
		}
	}
	return fields
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidStatus) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
