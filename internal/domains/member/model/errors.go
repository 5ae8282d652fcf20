package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrMemberNotFound is returned when a member id resolves to nothing.
	ErrMemberNotFound = errors.New("member not found")

	// ErrInvalidMemberInput is returned for malformed name/email payloads.
	ErrInvalidMemberInput = errors.New("invalid member input")

	// ErrMemberHasActiveLoans is returned when deleting a member who
	// still has loans out.
	ErrMemberHasActiveLoans = errors.New("member has active loans")
)

// NewMemberNotFoundError creates a detailed not found error.
func NewMemberNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrMemberNotFound, id)
}

// IsNotFoundError checks if err is a member not found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrMemberNotFound)
}

// IsValidationError checks if err is an input validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidMemberInput)
}
