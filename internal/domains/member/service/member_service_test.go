package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/member/model"
)

type fakeMemberRepo struct {
	members map[uuid.UUID]*model.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uuid.UUID]*model.Member)}
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *model.Member) error {
	cp := *member
	f.members[member.ID] = &cp
	return nil
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	member, ok := f.members[id]
	if !ok {
		return nil, model.NewMemberNotFoundError(id)
	}
	cp := *member
	return &cp, nil
}

func (f *fakeMemberRepo) List(ctx context.Context) ([]model.Member, error) {
	out := make([]model.Member, 0, len(f.members))
	for _, m := range f.members {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, member *model.Member) error {
	if _, ok := f.members[member.ID]; !ok {
		return model.NewMemberNotFoundError(member.ID)
	}
	cp := *member
	f.members[member.ID] = &cp
	return nil
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.members[id]; !ok {
		return model.NewMemberNotFoundError(id)
	}
	delete(f.members, id)
	return nil
}

type fakeLoanCounter struct {
	counts map[uuid.UUID]int
}

func (f *fakeLoanCounter) CountActiveByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	return f.counts[memberID], nil
}

func newService() (*MemberService, *fakeMemberRepo, *fakeLoanCounter) {
	repo := newFakeMemberRepo()
	counter := &fakeLoanCounter{counts: make(map[uuid.UUID]int)}
	return NewMemberService(repo, counter), repo, counter
}

func TestCreateMember(t *testing.T) {
	t.Run("registers a member", func(t *testing.T) {
		svc, repo, _ := newService()

		resp, err := svc.CreateMember(context.Background(), &model.CreateMemberRequest{
			Name:  "Ada Lovelace",
			Email: "ada@example.org",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, "Ada Lovelace", resp.Name)
		assert.Len(t, repo.members, 1)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		svc, repo, _ := newService()

		_, err := svc.CreateMember(context.Background(), &model.CreateMemberRequest{
			Name:  "Ada Lovelace",
			Email: "ada-at-example-org",
		})

		assert.ErrorIs(t, err, model.ErrInvalidMemberInput)
		assert.Empty(t, repo.members)
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		svc, _, _ := newService()

		_, err := svc.CreateMember(context.Background(), &model.CreateMemberRequest{
			Email: "ada@example.org",
		})

		assert.ErrorIs(t, err, model.ErrInvalidMemberInput)
	})
}

func TestUpdateMember(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("applies partial updates", func(t *testing.T) {
		svc, _, _ := newService()

		created, err := svc.CreateMember(context.Background(), &model.CreateMemberRequest{
			Name:  "Ada Lovelace",
			Email: "ada@example.org",
		})
		require.NoError(t, err)

		resp, err := svc.UpdateMember(context.Background(), created.ID, &model.UpdateMemberRequest{
			Email: str("ada@newhost.org"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", resp.Name)
		assert.Equal(t, "ada@newhost.org", resp.Email)
	})

	t.Run("fails for an unknown member", func(t *testing.T) {
		svc, _, _ := newService()

		_, err := svc.UpdateMember(context.Background(), uuid.New(), &model.UpdateMemberRequest{
			Name: str("Grace Hopper"),
		})

		assert.ErrorIs(t, err, model.ErrMemberNotFound)
	})
}

func TestDeleteMember(t *testing.T) {
	t.Run("deletes a member without open loans", func(t *testing.T) {
		svc, repo, _ := newService()

		created, err := svc.CreateMember(context.Background(), &model.CreateMemberRequest{
			Name:  "Ada Lovelace",
			Email: "ada@example.org",
		})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteMember(context.Background(), created.ID))
		assert.Empty(t, repo.members)
	})

	t.Run("refuses while the member holds open loans", func(t *testing.T) {
		svc, repo, counter := newService()

		created, err := svc.CreateMember(context.Background(), &model.CreateMemberRequest{
			Name:  "Ada Lovelace",
			Email: "ada@example.org",
		})
		require.NoError(t, err)
		counter.counts[created.ID] = 2

		err = svc.DeleteMember(context.Background(), created.ID)

		assert.ErrorIs(t, err, model.ErrMemberHasActiveLoans)
		assert.Len(t, repo.members, 1)
	})

	t.Run("fails for an unknown member", func(t *testing.T) {
		svc, _, _ := newService()

		err := svc.DeleteMember(context.Background(), uuid.New())

		assert.ErrorIs(t, err, model.ErrMemberNotFound)
	})
}
