package model

import (
	"time"

	"github.com/google/uuid"
)

// Book is the inventory record for a title. TotalCopies is fixed at
// creation; AvailableCopies moves between 0 and TotalCopies and is
// mutated only through the repository's guarded borrow/restore statements
// so the copy-count invariant has a single authoritative implementation.
type Book struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsAvailable reports whether at least one copy can be borrowed.
func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// CopiesOnLoan is the number of copies currently out with members.
func (b *Book) CopiesOnLoan() int {
	return b.TotalCopies - b.AvailableCopies
}
