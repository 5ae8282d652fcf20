package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/loan/model"
	"library-backend/pkg/database"
)

const loanColumns = "id, book_id, member_id, loan_date, due_date, return_date, status, fine_amount, created_at, updated_at"

// postgresRepository implements RepositoryInterface.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL loan repository.
func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

func scanLoan(row pgx.Row) (*model.Loan, error) {
	var loan model.Loan
	err := row.Scan(
		&loan.ID,
		&loan.BookID,
		&loan.MemberID,
		&loan.LoanDate,
		&loan.DueDate,
		&loan.ReturnDate,
		&loan.Status,
		&loan.FineAmount,
		&loan.CreatedAt,
		&loan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// Create implements RepositoryInterface.Create.
func (r *postgresRepository) Create(ctx context.Context, q database.Querier, loan *model.Loan) error {
	query := `
		INSERT INTO loans (id, book_id, member_id, loan_date, due_date, return_date, status, fine_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		loan.ID,
		loan.BookID,
		loan.MemberID,
		loan.LoanDate,
		loan.DueDate,
		loan.ReturnDate,
		loan.Status,
		loan.FineAmount,
		loan.CreatedAt,
		loan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert loan: %w", err)
	}

	return nil
}

// GetByID implements RepositoryInterface.GetByID.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Loan, error) {
	query := "SELECT " + loanColumns + " FROM loans WHERE id = $1"

	loan, err := scanLoan(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewLoanNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get loan by id: %w", err)
	}

	return loan, nil
}

// GetByIDForUpdate locks the loan row for the rest of the transaction.
// Serializes a return racing a sweep over the same loan.
func (r *postgresRepository) GetByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*model.Loan, error) {
	query := "SELECT " + loanColumns + " FROM loans WHERE id = $1 FOR UPDATE"

	loan, err := scanLoan(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewLoanNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to lock loan row: %w", err)
	}

	return loan, nil
}

// List implements RepositoryInterface.List.
func (r *postgresRepository) List(ctx context.Context, filter model.LoanFilter) ([]model.Loan, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + loanColumns + " FROM loans")

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.BookID != nil {
		args = append(args, *filter.BookID)
		conditions = append(conditions, "book_id = $"+strconv.Itoa(len(args)))
	}
	if filter.MemberID != nil {
		args = append(args, *filter.MemberID)
		conditions = append(conditions, "member_id = $"+strconv.Itoa(len(args)))
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY loan_date DESC, id ASC")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	loans := make([]model.Loan, 0)
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		loans = append(loans, *loan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", err)
	}

	return loans, nil
}

// Update implements RepositoryInterface.Update.
func (r *postgresRepository) Update(ctx context.Context, q database.Querier, loan *model.Loan) error {
	query := `
		UPDATE loans
		SET status = $2, return_date = $3, fine_amount = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		loan.ID,
		loan.Status,
		loan.ReturnDate,
		loan.FineAmount,
		loan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.NewLoanNotFoundError(loan.ID)
	}

	return nil
}

// SweepOverdue promotes every ACTIVE loan past due as of asOf to
// OVERDUE in one statement. RETURNED loans can never match, so a
// return that commits first always wins; re-running the sweep matches
// nothing new, so it is idempotent. Inventory is untouched.
func (r *postgresRepository) SweepOverdue(ctx context.Context, asOf time.Time) ([]uuid.UUID, error) {
	query := `
		UPDATE loans
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND due_date < $3
		RETURNING id
	`

	rows, err := r.pool.Query(ctx, query, model.StatusOverdue, model.StatusActive, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to sweep overdue loans: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan swept loan id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating swept loan ids: %w", err)
	}

	return ids, nil
}

// CountActiveByMember counts the member's open loans (ACTIVE or OVERDUE).
func (r *postgresRepository) CountActiveByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM loans
		WHERE member_id = $1 AND status IN ($2, $3)
	`

	var count int
	err := r.pool.QueryRow(ctx, query, memberID, model.StatusActive, model.StatusOverdue).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active loans: %w", err)
	}

	return count, nil
}

// ExistsOpenByBookAndMember implements RepositoryInterface.ExistsOpenByBookAndMember.
func (r *postgresRepository) ExistsOpenByBookAndMember(ctx context.Context, bookID, memberID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM loans
			WHERE book_id = $1 AND member_id = $2 AND status IN ($3, $4)
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, bookID, memberID, model.StatusActive, model.StatusOverdue).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check open loan existence: %w", err)
	}

	return exists, nil
}
