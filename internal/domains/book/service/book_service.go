package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/repository"
	"library-backend/pkg/database"
)

// BookService owns book records and the copy-count invariant
// 0 <= available_copies <= total_copies.
type BookService struct {
	repo repository.RepositoryInterface
	pool database.Querier
}

// NewService creates a new book service. pool is the Querier used for
// copy mutations issued outside a loan transaction.
func NewService(repo repository.RepositoryInterface, pool database.Querier) ServiceInterface {
	return &BookService{
		repo: repo,
		pool: pool,
	}
}

// CreateBook implements ServiceInterface.CreateBook. A new book starts
// with every copy available.
func (s *BookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidBookInput, err)
	}
	if req.TotalCopies <= 0 {
		return nil, model.ErrInvalidTotalCopies
	}

	now := time.Now().UTC()
	book := &model.Book{
		ID:              uuid.New(),
		Title:           req.Title,
		Author:          req.Author,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.TotalCopies,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	resp := book.ToResponse()
	return &resp, nil
}

// GetBookByID implements ServiceInterface.GetBookByID.
func (s *BookService) GetBookByID(ctx context.Context, id uuid.UUID) (*model.BookResponse, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := book.ToResponse()
	return &resp, nil
}

// ListBooks implements ServiceInterface.ListBooks.
func (s *BookService) ListBooks(ctx context.Context) ([]model.BookResponse, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return model.ToResponseList(books), nil
}

// UpdateBook implements ServiceInterface.UpdateBook. Copy counts are
// immutable; only title and author can change.
func (s *BookService) UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (*model.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidBookInput, err)
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	resp := book.ToResponse()
	return &resp, nil
}

// DeleteBook implements ServiceInterface.DeleteBook. The repository
// refuses while copies are on loan.
func (s *BookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// CheckAvailability implements ServiceInterface.CheckAvailability.
func (s *BookService) CheckAvailability(ctx context.Context, id uuid.UUID) (*model.AvailabilityResponse, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.AvailabilityResponse{
		BookID:    book.ID,
		Available: book.IsAvailable(),
		Copies:    book.AvailableCopies,
	}, nil
}

// BorrowCopy implements ServiceInterface.BorrowCopy.
func (s *BookService) BorrowCopy(ctx context.Context, id uuid.UUID) (*model.BookResponse, error) {
	if err := s.repo.BorrowCopy(ctx, s.pool, id); err != nil {
		return nil, err
	}

	return s.GetBookByID(ctx, id)
}

// ReturnCopy implements ServiceInterface.ReturnCopy.
func (s *BookService) ReturnCopy(ctx context.Context, id uuid.UUID) (*model.BookResponse, error) {
	if err := s.repo.RestoreCopy(ctx, s.pool, id); err != nil {
		return nil, err
	}

	return s.GetBookByID(ctx, id)
}
