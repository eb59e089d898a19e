package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the class every ValidationError unwraps to.
	ErrValidation = errors.New("validation failed")

	// ErrActiveShiftExists is returned when a second open shift would be appended.
	ErrActiveShiftExists = &ValidationError{Msg: "an active shift already exists"}

	// ErrNoActiveShift means there is no open shift to close. Callers treat it
	// as "nothing to do".
	ErrNoActiveShift = errors.New("no active shift")

	// ErrNotOnDuty is returned when a user tries to end a shift they don't own.
	ErrNotOnDuty = errors.New("user is not on duty")

	// ErrNoPendingTakeover is returned by a takeover confirmation that was never prompted.
	ErrNoPendingTakeover = errors.New("no pending takeover")
)

// ValidationError reports input or invariant violations.
type ValidationError struct {
	Msg string
}

// NewValidationError formats a ValidationError.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }
