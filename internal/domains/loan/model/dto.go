package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// requiredUUID rejects the zero UUID. ozzo's Required treats a fixed
// size array as never empty, so uuid fields need an explicit check.
func requiredUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}

// CreateLoanRequest is the borrow payload.
type CreateLoanRequest struct {
	BookID   uuid.UUID `json:"book_id" binding:"required"`
	MemberID uuid.UUID `json:"member_id" binding:"required"`
}

func (r CreateLoanRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.By(requiredUUID)),
		validation.Field(&r.MemberID, validation.By(requiredUUID)),
	)
}

// LoanFilter narrows loan listings.
type LoanFilter struct {
	Status   *LoanStatus
	BookID   *uuid.UUID
	MemberID *uuid.UUID
}

// LoanResponse is the wire shape for a loan.
type LoanResponse struct {
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

// SweepOverdueResponse summarizes one sweep run.
type SweepOverdueResponse struct {
	AsOf          time.Time   `json:"as_of"`
	PromotedCount int         `json:"promoted_count"`
	PromotedIDs   []uuid.UUID `json:"promoted_ids"`
}

func (l *Loan) ToResponse() LoanResponse {
	return LoanResponse{
		ID:         l.ID,
		BookID:     l.BookID,
		MemberID:   l.MemberID,
		LoanDate:   l.LoanDate,
		DueDate:    l.DueDate,
		ReturnDate: l.ReturnDate,
		Status:     l.Status,
		FineAmount: l.FineAmount,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

// ToResponseList converts a slice of loans to response DTOs.
func ToResponseList(loans []Loan) []LoanResponse {
	out := make([]LoanResponse, 0, len(loans))
	for i := range loans {
		out = append(out, loans[i].ToResponse())
	}
	return out
}
