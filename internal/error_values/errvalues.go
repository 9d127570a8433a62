package errorvalues

import (
	"errors"
	"fmt"
)

// Base error kinds. Callers should match with errors.Is.
var (
	ErrDuplicateDate = errors.New("an entry for this day already exists")
	ErrEntryNotFound = errors.New("entry doesn't exist")
	ErrValidation    = errors.New("validation error")
	ErrStorage       = errors.New("storage error")
)

var (
	ErrReferenceNotFound = fmt.Errorf("%w: referenced mood, category or tag doesn't exist", ErrStorage)
	ErrInvalidPagination = fmt.Errorf("%w: page must be >= 1 and page size between 1 and 100", ErrValidation)
	ErrInvalidDateRange  = fmt.Errorf("%w: invalid date range", ErrValidation)
	ErrBlankTagName      = fmt.Errorf("%w: tag name cannot be blank", ErrValidation)
)

// Storage wraps a persistence failure so that it matches ErrStorage while
// keeping the original cause reachable.
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// Validation builds an ErrValidation with a human readable reason.
func Validation(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}
