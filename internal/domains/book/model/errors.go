package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrBookNotFound is returned when a book id resolves to nothing.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookNotAvailable is returned when a borrow is attempted with
	// zero available copies.
	ErrBookNotAvailable = errors.New("book has no available copies")

	// ErrAllCopiesIn is returned when a copy return would push
	// available copies past total copies. It signals a return without a
	// matching prior borrow, which the loan service must never produce.
	ErrAllCopiesIn = errors.New("all copies are already available")

	// ErrInvalidTotalCopies is returned when a book is created with a
	// non-positive copy count.
	ErrInvalidTotalCopies = errors.New("total copies must be a positive integer")

	// ErrBookOnLoan is returned when deleting a book that still has
	// copies out with members.
	ErrBookOnLoan = errors.New("book has copies on loan")

	// ErrInvalidBookInput is returned for malformed create/update payloads.
	ErrInvalidBookInput = errors.New("invalid book input")
)

// NewBookNotFoundError creates a detailed not found error.
func NewBookNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrBookNotFound, id)
}

// NewBookNotAvailableError creates a detailed availability error.
func NewBookNotAvailableError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrBookNotAvailable, id)
}

// NewAllCopiesInError creates a detailed max-copies error.
func NewAllCopiesInError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrAllCopiesIn, id)
}

// IsNotFoundError checks if err is a book not found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrBookNotFound)
}

// IsValidationError checks if err is an input validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidBookInput) || errors.Is(err, ErrInvalidTotalCopies)
}

// IsConflictError checks if err is a copy-count conflict.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrBookNotAvailable) ||
		errors.Is(err, ErrAllCopiesIn) ||
		errors.Is(err, ErrBookOnLoan)
}
