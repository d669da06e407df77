package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Load-time errors. These are the only fatal failures in the system:
	// once a table is enriched, filtering and aggregation cannot fail.
	ErrDataLoad = errors.New("dataset load failed")
	ErrSchema   = errors.New("dataset schema invalid")

	// Lookup errors
	ErrColumnNotFound = errors.New("column not found")

	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// Error constructors with context
func NewDataLoadError(source string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrDataLoad, source, cause)
}

func NewSchemaError(column string) error {
	return fmt.Errorf("%w: required column %q is absent", ErrSchema, column)
}

func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}

// Error checking helpers
func IsDataLoadError(err error) bool {
	return errors.Is(err, ErrDataLoad)
}

func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

func IsColumnNotFoundError(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}
