package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrLoanNotFound is returned when a loan id resolves to nothing.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrLoanNotActive is returned when returning a loan that is
	// already closed.
	ErrLoanNotActive = errors.New("loan is not active")

	// ErrDuplicateActiveLoan is returned when the single-loan-per-pair
	// policy is on and the member already holds this book.
	ErrDuplicateActiveLoan = errors.New("member already has an active loan for this book")

	// ErrInvalidLoanInput is returned for malformed loan payloads.
	ErrInvalidLoanInput = errors.New("invalid loan input")
)

// NewLoanNotFoundError creates a detailed not found error.
func NewLoanNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrLoanNotFound, id)
}

// NewLoanNotActiveError creates a detailed not-active error.
func NewLoanNotActiveError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrLoanNotActive, id)
}

// IsNotFoundError checks if err is a loan not found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrLoanNotFound)
}

// IsValidationError checks if err is an input validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidLoanInput)
}

// IsConflictError checks if err is a lifecycle conflict.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrLoanNotActive) || errors.Is(err, ErrDuplicateActiveLoan)
}
