package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	StatusActive   LoanStatus = "ACTIVE"
	StatusReturned LoanStatus = "RETURNED"
	StatusOverdue  LoanStatus = "OVERDUE"
)

// Loan ties one book copy to one member for a lending period.
type Loan struct {
	ID         uuid.UUID       `json:"id"`
	BookID     uuid.UUID       `json:"book_id"`
	MemberID   uuid.UUID       `json:"member_id"`
	LoanDate   time.Time       `json:"loan_date"`
	DueDate    time.Time       `json:"due_date"`
	ReturnDate *time.Time      `json:"return_date,omitempty"`
	Status     LoanStatus      `json:"status"`
	FineAmount decimal.Decimal `json:"fine_amount"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewLoan opens a loan starting at loanDate with the configured period.
func NewLoan(bookID, memberID uuid.UUID, loanDate time.Time, periodDays int) *Loan {
	return &Loan{
		ID:         uuid.New(),
		BookID:     bookID,
		MemberID:   memberID,
		LoanDate:   loanDate,
		DueDate:    loanDate.AddDate(0, 0, periodDays),
		Status:     StatusActive,
		FineAmount: decimal.Zero,
		CreatedAt:  loanDate,
		UpdatedAt:  loanDate,
	}
}

// IsOpen reports whether the loan still holds a copy. Both ACTIVE and
// OVERDUE loans are open; OVERDUE is a flag, not a terminal state.
func (l *Loan) IsOpen() bool {
	return l.Status == StatusActive || l.Status == StatusOverdue
}

// IsPastDue reports whether the loan's due date has passed as of t.
func (l *Loan) IsPastDue(t time.Time) bool {
	return t.After(l.DueDate)
}

// MarkReturned closes the loan and computes any late fine. Returning is
// valid from ACTIVE or OVERDUE and always wins over a concurrent sweep.
func (l *Loan) MarkReturned(returnedAt time.Time, dailyRate decimal.Decimal) {
	l.Status = StatusReturned
	l.ReturnDate = &returnedAt
	l.FineAmount = FineFor(l.DueDate, returnedAt, dailyRate)
	l.UpdatedAt = returnedAt
}

// FineFor computes the late fine: the daily rate times the number of
// days (or partial days) past due. On-time returns owe nothing.
func FineFor(dueDate, returnedAt time.Time, dailyRate decimal.Decimal) decimal.Decimal {
	if !returnedAt.After(dueDate) {
		return decimal.Zero
	}
	daysLate := int64(returnedAt.Sub(dueDate).Hours()/24) + 1
	return dailyRate.Mul(decimal.NewFromInt(daysLate))
}
