package booking

import (
	"errors"
	"fmt"
)

// Error codes for the booking taxonomy. All of these are expected,
// recoverable outcomes returned to the caller for user-facing messaging;
// anything outside this set is a storage fault.
const (
	CodeInvalidInput        = "invalidInput"
	CodeProviderUnavailable = "providerUnavailable"
	CodeOutsideWorkingHours = "outsideWorkingHours"
	CodeSlotAlreadyBooked   = "slotAlreadyBooked"
	CodeConcurrencyConflict = "concurrencyConflict"
)

// Error is a typed booking outcome with a stable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidInputError(msg string) error {
	return &Error{Code: CodeInvalidInput, Message: msg}
}

func NewProviderUnavailableError(msg string) error {
	return &Error{Code: CodeProviderUnavailable, Message: msg}
}

func NewOutsideWorkingHoursError(msg string) error {
	return &Error{Code: CodeOutsideWorkingHours, Message: msg}
}

func NewSlotAlreadyBookedError(msg string) error {
	return &Error{Code: CodeSlotAlreadyBooked, Message: msg}
}

func NewConcurrencyConflictError(msg string) error {
	return &Error{Code: CodeConcurrencyConflict, Message: msg}
}

// AsBookingError unwraps err into a *Error if it belongs to the taxonomy.
func AsBookingError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// ErrCode returns the taxonomy code of err, or "" for unexpected faults.
func ErrCode(err error) string {
	if be, ok := AsBookingError(err); ok {
		return be.Code
	}
	return ""
}
