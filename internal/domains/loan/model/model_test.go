package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoan(t *testing.T) {
	bookID := uuid.New()
	memberID := uuid.New()
	loanDate := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	loan := NewLoan(bookID, memberID, loanDate, 14)

	assert.NotEqual(t, uuid.Nil, loan.ID)
	assert.Equal(t, bookID, loan.BookID)
	assert.Equal(t, memberID, loan.MemberID)
	assert.Equal(t, StatusActive, loan.Status)
	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC), loan.DueDate)
	assert.Nil(t, loan.ReturnDate)
	assert.True(t, loan.FineAmount.IsZero())
}

func TestLoanIsOpen(t *testing.T) {
	loan := &Loan{Status: StatusActive}
	assert.True(t, loan.IsOpen())

	loan.Status = StatusOverdue
	assert.True(t, loan.IsOpen())

	loan.Status = StatusReturned
	assert.False(t, loan.IsOpen())
}

func TestLoanIsPastDue(t *testing.T) {
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	loan := &Loan{DueDate: due}

	assert.False(t, loan.IsPastDue(due.Add(-time.Hour)))
	assert.False(t, loan.IsPastDue(due))
	assert.True(t, loan.IsPastDue(due.Add(time.Hour)))
}

func TestMarkReturned(t *testing.T) {
	rate := decimal.RequireFromString("0.50")

	t.Run("on time return owes nothing", func(t *testing.T) {
		loan := NewLoan(uuid.New(), uuid.New(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 14)
		returnedAt := loan.DueDate.Add(-48 * time.Hour)

		loan.MarkReturned(returnedAt, rate)

		assert.Equal(t, StatusReturned, loan.Status)
		require.NotNil(t, loan.ReturnDate)
		assert.Equal(t, returnedAt, *loan.ReturnDate)
		assert.True(t, loan.FineAmount.IsZero())
	})

	t.Run("late return accrues a fine from ACTIVE", func(t *testing.T) {
		loan := NewLoan(uuid.New(), uuid.New(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 14)
		returnedAt := loan.DueDate.AddDate(0, 0, 3)

		loan.MarkReturned(returnedAt, rate)

		assert.Equal(t, StatusReturned, loan.Status)
		assert.True(t, loan.FineAmount.Equal(decimal.RequireFromString("2.00")),
			"3 full days late plus the partial-day rule is 4 billable days: got %s", loan.FineAmount)
	})

	t.Run("late return accrues a fine from OVERDUE", func(t *testing.T) {
		loan := NewLoan(uuid.New(), uuid.New(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 14)
		loan.Status = StatusOverdue
		returnedAt := loan.DueDate.Add(time.Hour)

		loan.MarkReturned(returnedAt, rate)

		assert.Equal(t, StatusReturned, loan.Status)
		assert.True(t, loan.FineAmount.Equal(rate), "one partial day late bills one day")
	})
}

func TestFineFor(t *testing.T) {
	rate := decimal.RequireFromString("0.50")
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		returnedAt time.Time
		want       string
	}{
		{"before due date", due.AddDate(0, 0, -1), "0"},
		{"exactly at due date", due, "0"},
		{"one hour late bills one day", due.Add(time.Hour), "0.50"},
		{"one full day late bills two days", due.AddDate(0, 0, 1), "1.00"},
		{"ten days late", due.AddDate(0, 0, 10), "5.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FineFor(due, tt.returnedAt, rate)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"want %s, got %s", tt.want, got)
		})
	}
}
