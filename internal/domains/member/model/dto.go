package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// emailShape is the membership email predicate: contains "@", contains
// ".", and is longer than 5 characters. This is a product decision, not
// an RFC check, so it deliberately does not use is.Email.
func emailShape(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	}
	if !strings.Contains(s, "@") || !strings.Contains(s, ".") {
		return errors.New("must contain '@' and '.'")
	}
	return nil
}

// CreateMemberRequest is the registration payload.
type CreateMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func (r CreateMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Length(6, 254).Error("email must be longer than 5 characters"),
			validation.By(emailShape),
		),
	)
}

// UpdateMemberRequest carries partial updates.
type UpdateMemberRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r UpdateMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be empty"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != nil,
				validation.Length(6, 254).Error("email must be longer than 5 characters"),
				validation.By(emailShape),
			),
		),
	)
}

// MemberResponse is the wire shape for a member.
type MemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Member) ToResponse() MemberResponse {
	return MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToResponseList converts a slice of members to response DTOs.
func ToResponseList(members []Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, members[i].ToResponse())
	}
	return out
}
