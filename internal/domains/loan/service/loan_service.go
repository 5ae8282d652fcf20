package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/config"
	"library-backend/internal/domains/loan/model"
	"library-backend/internal/domains/loan/repository"
	"library-backend/pkg/database"
	"library-backend/pkg/logger"
)

// LoanService implements ServiceInterface. It owns the transaction
// boundary: a loan row and its inventory adjustment commit or roll back
// together, never separately.
type LoanService struct {
	repo     repository.RepositoryInterface
	books    BookInventory
	members  MemberDirectory
	txRunner database.TxRunner
	cfg      config.LoanConfig
	now      func() time.Time
}

// NewLoanService creates a new loan service.
func NewLoanService(
	repo repository.RepositoryInterface,
	books BookInventory,
	members MemberDirectory,
	txRunner database.TxRunner,
	cfg config.LoanConfig,
) *LoanService {
	return &LoanService{
		repo:     repo,
		books:    books,
		members:  members,
		txRunner: txRunner,
		cfg:      cfg,
		now:      time.Now,
	}
}

// CreateLoan borrows one copy of a book for a member. The availability
// decrement and the loan insert share a transaction: if either fails,
// neither persists.
func (s *LoanService) CreateLoan(ctx context.Context, req *model.CreateLoanRequest) (*model.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidLoanInput, err)
	}

	// Member existence is checked up front; book existence and
	// availability are enforced by the guarded decrement inside the tx.
	if _, err := s.members.GetByID(ctx, req.MemberID); err != nil {
		return nil, err
	}

	if s.cfg.SingleActivePerPair {
		exists, err := s.repo.ExistsOpenByBookAndMember(ctx, req.BookID, req.MemberID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: book_id=%s member_id=%s",
				model.ErrDuplicateActiveLoan, req.BookID, req.MemberID)
		}
	}

	loan := model.NewLoan(req.BookID, req.MemberID, s.now(), s.cfg.PeriodDays)

	err := s.txRunner.WithinTx(ctx, func(tx database.Querier) error {
		if err := s.books.BorrowCopy(ctx, tx, req.BookID); err != nil {
			return err
		}
		return s.repo.Create(ctx, tx, loan)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Loan created", map[string]interface{}{
		"loan_id":   loan.ID.String(),
		"book_id":   loan.BookID.String(),
		"member_id": loan.MemberID.String(),
		"due_date":  loan.DueDate,
	})

	resp := loan.ToResponse()
	return &resp, nil
}

// GetLoanByID looks up a single loan.
func (s *LoanService) GetLoanByID(ctx context.Context, id uuid.UUID) (*model.LoanResponse, error) {
	loan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := loan.ToResponse()
	return &resp, nil
}

// ListLoans returns loans matching the filter.
func (s *LoanService) ListLoans(ctx context.Context, filter model.LoanFilter) ([]model.LoanResponse, error) {
	loans, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return model.ToResponseList(loans), nil
}

// ReturnLoan closes an open loan and restores the copy to inventory.
// The loan row is locked first, so a sweep running at the same moment
// either sees ACTIVE and promotes before we lock (we accept OVERDUE and
// return anyway) or waits on the lock and then matches nothing.
func (s *LoanService) ReturnLoan(ctx context.Context, id uuid.UUID) (*model.LoanResponse, error) {
	var loan *model.Loan

	err := s.txRunner.WithinTx(ctx, func(tx database.Querier) error {
		var err error
		loan, err = s.repo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if !loan.IsOpen() {
			return model.NewLoanNotActiveError(id)
		}

		loan.MarkReturned(s.now(), s.cfg.FineDailyRate)

		if err := s.repo.Update(ctx, tx, loan); err != nil {
			return err
		}
		return s.books.RestoreCopy(ctx, tx, loan.BookID)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Loan returned", map[string]interface{}{
		"loan_id":     loan.ID.String(),
		"book_id":     loan.BookID.String(),
		"fine_amount": loan.FineAmount.String(),
	})

	resp := loan.ToResponse()
	return &resp, nil
}

// SweepOverdue promotes every ACTIVE loan past due to OVERDUE. It never
// touches inventory: an overdue copy is still out. Safe to run on a
// schedule and on demand; repeat runs promote nothing new.
func (s *LoanService) SweepOverdue(ctx context.Context) (*model.SweepOverdueResponse, error) {
	asOf := s.now()

	ids, err := s.repo.SweepOverdue(ctx, asOf)
	if err != nil {
		return nil, err
	}

	logger.Info("Overdue sweep completed", map[string]interface{}{
		"as_of":          asOf,
		"promoted_count": len(ids),
	})

	return &model.SweepOverdueResponse{
		AsOf:          asOf,
		PromotedCount: len(ids),
		PromotedIDs:   ids,
	}, nil
}
