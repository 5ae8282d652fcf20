package service

import (
	"context"

	"github.com/google/uuid"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/domains/loan/model"
	membermodel "library-backend/internal/domains/member/model"
	"library-backend/pkg/database"
)

// ServiceInterface is the loan lifecycle use-case surface.
type ServiceInterface interface {
	CreateLoan(ctx context.Context, req *model.CreateLoanRequest) (*model.LoanResponse, error)
	GetLoanByID(ctx context.Context, id uuid.UUID) (*model.LoanResponse, error)
	ListLoans(ctx context.Context, filter model.LoanFilter) ([]model.LoanResponse, error)
	ReturnLoan(ctx context.Context, id uuid.UUID) (*model.LoanResponse, error)
	SweepOverdue(ctx context.Context) (*model.SweepOverdueResponse, error)
}

// BookInventory is the slice of the book repository the loan service
// needs. Borrow and restore take a Querier so both the inventory and
// the loan row mutate inside one transaction.
type BookInventory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*bookmodel.Book, error)
	BorrowCopy(ctx context.Context, q database.Querier, id uuid.UUID) error
	RestoreCopy(ctx context.Context, q database.Querier, id uuid.UUID) error
}

// MemberDirectory is the slice of the member repository the loan
// service needs.
type MemberDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*membermodel.Member, error)
}
