package repository

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/member/model"
)

// RepositoryInterface is the storage contract for the member directory.
type RepositoryInterface interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	List(ctx context.Context) ([]model.Member, error)
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id uuid.UUID) error
}
