package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the business-rule taxonomy. Handlers translate these
// into the response envelope; anything else is an internal error.
var (
	// ErrDataNotFound marks a lookup for a record that does not exist
	ErrDataNotFound = errors.New("data tidak ditemukan")
	// ErrDataExists marks a unique-key collision (NIK or phone number)
	ErrDataExists = errors.New("data sudah ada")
)

// NotFoundf wraps ErrDataNotFound with a formatted message
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrDataNotFound)
}

// Conflictf wraps ErrDataExists with a formatted message
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrDataExists)
}
