package provider

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned for a failed sign-in attempt.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNotFound is returned when the requested provider does not exist.
var ErrNotFound = errors.New("provider not found")

// ValidationError marks a rejected request payload; handlers map it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a rejected payload.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
