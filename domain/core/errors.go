package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrColumnNotFound = fmt.Errorf("%w: column", ErrNotFound)
	ErrSheetNotFound  = fmt.Errorf("%w: sheet", ErrNotFound)

	// Input errors
	ErrNoValidData       = errors.New("no valid data")
	ErrInsufficientData  = errors.New("insufficient data for analysis")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// Numeric degeneracy
	ErrDegenerate     = errors.New("degenerate numeric condition")
	ErrSingularMatrix = fmt.Errorf("%w: singular matrix", ErrDegenerate)

	// ErrInvalidResult backs failed envelopes that carry no specific cause.
	ErrInvalidResult = errors.New("invalid result")
)

// Error constructors with context
func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %s", ErrColumnNotFound, column)
}

func NewInsufficientDataError(required, got int) error {
	return fmt.Errorf("%w: need at least %d values, got %d", ErrInsufficientData, required, got)
}

func NewParameterError(name string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, name, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInputError reports failures caused by the caller's data or parameters
func IsInputError(err error) bool {
	return errors.Is(err, ErrNoValidData) ||
		errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrDimensionMismatch)
}

func IsDegenerateError(err error) bool {
	return errors.Is(err, ErrDegenerate)
}
