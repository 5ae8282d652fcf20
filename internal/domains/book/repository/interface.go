package repository

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
	"library-backend/pkg/database"
)

// RepositoryInterface is the storage contract for the inventory ledger.
//
// BorrowCopy and RestoreCopy accept a Querier so the loan service can run
// them inside the same transaction as the loan mutation; passing the pool
// runs them standalone.
type RepositoryInterface interface {
	Create(ctx context.Context, book *model.Book) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error

	// BorrowCopy atomically decrements available copies, failing with
	// ErrBookNotAvailable when none are left.
	BorrowCopy(ctx context.Context, q database.Querier, id uuid.UUID) error

	// RestoreCopy atomically increments available copies, failing with
	// ErrAllCopiesIn when the book is already at total copies.
	RestoreCopy(ctx context.Context, q database.Querier, id uuid.UUID) error
}
