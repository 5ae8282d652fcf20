package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/member/model"
)

// postgresRepository implements RepositoryInterface.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL member repository.
func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

// Create implements RepositoryInterface.Create.
func (r *postgresRepository) Create(ctx context.Context, member *model.Member) error {
	query := `
		INSERT INTO members (id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		member.ID,
		member.Name,
		member.Email,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}

// GetByID implements RepositoryInterface.GetByID.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM members
		WHERE id = $1
	`

	var member model.Member
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.Email,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewMemberNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get member by id: %w", err)
	}

	return &member, nil
}

// List implements RepositoryInterface.List.
func (r *postgresRepository) List(ctx context.Context) ([]model.Member, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM members
		ORDER BY name ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := make([]model.Member, 0)
	for rows.Next() {
		var m model.Member
		err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

// Update implements RepositoryInterface.Update.
func (r *postgresRepository) Update(ctx context.Context, member *model.Member) error {
	query := `
		UPDATE members
		SET name = $2, email = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query, member.ID, member.Name, member.Email).Scan(&member.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NewMemberNotFoundError(member.ID)
		}
		return fmt.Errorf("failed to update member: %w", err)
	}

	return nil
}

// Delete implements RepositoryInterface.Delete. The active-loan guard
// lives in the service; the directory has no visibility into loans.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM members WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.NewMemberNotFoundError(id)
	}

	return nil
}
