package service

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/member/model"
)

// ServiceInterface is the member directory use-case surface.
type ServiceInterface interface {
	CreateMember(ctx context.Context, req *model.CreateMemberRequest) (*model.MemberResponse, error)
	GetMemberByID(ctx context.Context, id uuid.UUID) (*model.MemberResponse, error)
	ListMembers(ctx context.Context) ([]model.MemberResponse, error)
	UpdateMember(ctx context.Context, id uuid.UUID, req *model.UpdateMemberRequest) (*model.MemberResponse, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
}

// ActiveLoanCounter reports how many active loans a member currently
// holds. Implemented by the loan repository; declared here so the
// member domain does not import the loan domain.
type ActiveLoanCounter interface {
	CountActiveByMember(ctx context.Context, memberID uuid.UUID) (int, error)
}
