package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/member/model"
	"library-backend/internal/domains/member/repository"
	"library-backend/pkg/logger"
)

// MemberService implements ServiceInterface.
type MemberService struct {
	repo        repository.RepositoryInterface
	loanCounter ActiveLoanCounter
}

// NewMemberService creates a new member service.
func NewMemberService(repo repository.RepositoryInterface, loanCounter ActiveLoanCounter) *MemberService {
	return &MemberService{
		repo:        repo,
		loanCounter: loanCounter,
	}
}

// CreateMember registers a new borrower.
func (s *MemberService) CreateMember(ctx context.Context, req *model.CreateMemberRequest) (*model.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidMemberInput, err)
	}

	now := time.Now()
	member := &model.Member{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	logger.Info("Member registered", map[string]interface{}{
		"member_id": member.ID.String(),
		"email":     member.Email,
	})

	resp := member.ToResponse()
	return &resp, nil
}

// GetMemberByID looks up a single member.
func (s *MemberService) GetMemberByID(ctx context.Context, id uuid.UUID) (*model.MemberResponse, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := member.ToResponse()
	return &resp, nil
}

// ListMembers returns the whole directory.
func (s *MemberService) ListMembers(ctx context.Context) ([]model.MemberResponse, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.ToResponseList(members), nil
}

// UpdateMember applies a partial update to name and/or email.
func (s *MemberService) UpdateMember(ctx context.Context, id uuid.UUID, req *model.UpdateMemberRequest) (*model.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidMemberInput, err)
	}

	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = *req.Email
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}

	resp := member.ToResponse()
	return &resp, nil
}

// DeleteMember removes a member. Members with active loans cannot be
// deleted; the directory must not orphan open obligations.
func (s *MemberService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	count, err := s.loanCounter.CountActiveByMember(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: id=%s active_loans=%d", model.ErrMemberHasActiveLoans, id, count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Member deleted", map[string]interface{}{
		"member_id": id.String(),
	})

	return nil
}
