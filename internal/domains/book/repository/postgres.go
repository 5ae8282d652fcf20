package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book/model"
	"library-backend/pkg/cache"
	"library-backend/pkg/database"
	"library-backend/pkg/logger"
)

const (
	bookCacheTTL = 5 * time.Minute
)

// postgresRepository implements RepositoryInterface with a read-through
// cache in front of single-book lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewRepository creates a new PostgreSQL book repository.
func NewRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func bookCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("book:%s", id)
}

// Create implements RepositoryInterface.Create.
func (r *postgresRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
		INSERT INTO books (
			id, title, author, total_copies, available_copies, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := r.pool.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		book.TotalCopies,
		book.AvailableCopies,
		book.CreatedAt,
		book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}

	return nil
}

// GetByID implements RepositoryInterface.GetByID.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if r.cache != nil {
		var cached model.Book
		if found, err := r.cache.Get(ctx, bookCacheKey(id), &cached); err == nil && found {
			return &cached, nil
		}
	}

	query := `
		SELECT id, title, author, total_copies, available_copies, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var book model.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.TotalCopies,
		&book.AvailableCopies,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewBookNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	if r.cache != nil {
		// Cache failures are non-critical; the next read hits the database.
		_ = r.cache.Set(ctx, bookCacheKey(id), &book, bookCacheTTL)
	}

	return &book, nil
}

// List implements RepositoryInterface.List.
func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	query := `
		SELECT id, title, author, total_copies, available_copies, created_at, updated_at
		FROM books
		ORDER BY title ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Author,
			&b.TotalCopies,
			&b.AvailableCopies,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, nil
}

// Update implements RepositoryInterface.Update. Copy counts are not
// touched here; only descriptive fields change.
func (r *postgresRepository) Update(ctx context.Context, book *model.Book) error {
	query := `
		UPDATE books
		SET title = $2, author = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query, book.ID, book.Title, book.Author).Scan(&book.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NewBookNotFoundError(book.ID)
		}
		return fmt.Errorf("failed to update book: %w", err)
	}

	r.invalidate(ctx, book.ID)
	return nil
}

// Delete implements RepositoryInterface.Delete. The guard refuses to
// remove a book that still has copies out with members.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM books
		WHERE id = $1
		  AND available_copies = total_copies
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.NewBookNotFoundError(id)
		}
		return model.ErrBookOnLoan
	}

	r.invalidate(ctx, id)
	return nil
}

// BorrowCopy implements RepositoryInterface.BorrowCopy.
//
// The availability check and the decrement are one guarded UPDATE, so two
// concurrent borrows of a book with a single copy left cannot both
// succeed: the row lock serializes them and the loser matches zero rows.
func (r *postgresRepository) BorrowCopy(ctx context.Context, q database.Querier, id uuid.UUID) error {
	query := `
		UPDATE books
		SET available_copies = available_copies - 1, updated_at = NOW()
		WHERE id = $1
		  AND available_copies > 0
	`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to borrow copy: %w", err)
	}

	if result.RowsAffected() == 0 {
		exists, err := r.existsQ(ctx, q, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.NewBookNotFoundError(id)
		}
		return model.NewBookNotAvailableError(id)
	}

	r.invalidate(ctx, id)
	return nil
}

// RestoreCopy implements RepositoryInterface.RestoreCopy.
func (r *postgresRepository) RestoreCopy(ctx context.Context, q database.Querier, id uuid.UUID) error {
	query := `
		UPDATE books
		SET available_copies = available_copies + 1, updated_at = NOW()
		WHERE id = $1
		  AND available_copies < total_copies
	`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to restore copy: %w", err)
	}

	if result.RowsAffected() == 0 {
		exists, err := r.existsQ(ctx, q, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.NewBookNotFoundError(id)
		}
		return model.NewAllCopiesInError(id)
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.existsQ(ctx, r.pool, id)
}

func (r *postgresRepository) existsQ(ctx context.Context, q database.Querier, id uuid.UUID) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, bookCacheKey(id)); err != nil {
		// Stale reads are possible until the TTL expires.
		logger.Warn("Failed to invalidate book cache", map[string]interface{}{
			"book_id": id.String(),
			"error":   err.Error(),
		})
	}
}
