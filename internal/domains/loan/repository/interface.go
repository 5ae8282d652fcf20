package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/loan/model"
	"library-backend/pkg/database"
)

// RepositoryInterface is the storage contract for loans. Mutations that
// must share a transaction with the inventory take a database.Querier so
// the service can run them against the same tx.
type RepositoryInterface interface {
	Create(ctx context.Context, q database.Querier, loan *model.Loan) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Loan, error)
	GetByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*model.Loan, error)
	List(ctx context.Context, filter model.LoanFilter) ([]model.Loan, error)
	Update(ctx context.Context, q database.Querier, loan *model.Loan) error
	SweepOverdue(ctx context.Context, asOf time.Time) ([]uuid.UUID, error)
	CountActiveByMember(ctx context.Context, memberID uuid.UUID) (int, error)
	ExistsOpenByBookAndMember(ctx context.Context, bookID, memberID uuid.UUID) (bool, error)
}
