package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookAvailability(t *testing.T) {
	book := &Book{TotalCopies: 3, AvailableCopies: 2}

	assert.True(t, book.IsAvailable())
	assert.Equal(t, 1, book.CopiesOnLoan())

	book.AvailableCopies = 0
	assert.False(t, book.IsAvailable())
	assert.Equal(t, 3, book.CopiesOnLoan())

	book.AvailableCopies = 3
	assert.True(t, book.IsAvailable())
	assert.Equal(t, 0, book.CopiesOnLoan())
}
