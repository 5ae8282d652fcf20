package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMemberRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"plausible address", "ada@example.org", false},
		{"subdomain address", "grace@mail.navy.mil", false},
		{"dot before at is accepted", "first.last@host", false},
		{"missing at sign", "ada.example.org", true},
		{"missing dot", "ada@example", true},
		{"too short", "a@b.c", true},
		{"exactly six characters passes", "a@b.co", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateMemberRequest{Name: "Ada Lovelace", Email: tt.email}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("name is required", func(t *testing.T) {
		req := CreateMemberRequest{Email: "ada@example.org"}
		assert.Error(t, req.Validate())
	})
}

func TestUpdateMemberRequestValidate(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("nil fields are fine", func(t *testing.T) {
		assert.NoError(t, UpdateMemberRequest{}.Validate())
	})

	t.Run("valid partial update", func(t *testing.T) {
		req := UpdateMemberRequest{Email: str("ada@newhost.org")}
		assert.NoError(t, req.Validate())
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		req := UpdateMemberRequest{Email: str("not-an-email")}
		assert.Error(t, req.Validate())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		req := UpdateMemberRequest{Name: str("")}
		assert.Error(t, req.Validate())
	})
}
