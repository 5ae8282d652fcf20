package service

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
)

// ServiceInterface is the inventory ledger's operation contract.
type ServiceInterface interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.BookResponse, error)
	GetBookByID(ctx context.Context, id uuid.UUID) (*model.BookResponse, error)
	ListBooks(ctx context.Context) ([]model.BookResponse, error)
	UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (*model.BookResponse, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error

	// CheckAvailability reports whether the book has a borrowable copy.
	CheckAvailability(ctx context.Context, id uuid.UUID) (*model.AvailabilityResponse, error)

	// BorrowCopy and ReturnCopy mutate the copy count directly, outside
	// any loan. They back the standalone inventory endpoints.
	BorrowCopy(ctx context.Context, id uuid.UUID) (*model.BookResponse, error)
	ReturnCopy(ctx context.Context, id uuid.UUID) (*model.BookResponse, error)
}
