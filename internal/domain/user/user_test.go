package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/shared/auth"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		hash      string
		wantErr   bool
	}{
		{
			name:      "valid user",
			firstName: "Ada",
			lastName:  "Lovelace",
			email:     "ada@example.com",
			hash:      "$2a$10$hash",
			wantErr:   false,
		},
		{
			name:      "missing first name",
			firstName: " ",
			lastName:  "Lovelace",
			email:     "ada@example.com",
			hash:      "$2a$10$hash",
			wantErr:   true,
		},
		{
			name:      "invalid email",
			firstName: "Ada",
			lastName:  "Lovelace",
			email:     "not-an-email",
			hash:      "$2a$10$hash",
			wantErr:   true,
		},
		{
			name:      "missing password hash",
			firstName: "Ada",
			lastName:  "Lovelace",
			email:     "ada@example.com",
			hash:      "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.firstName, tt.lastName, tt.email, tt.hash)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, u.ID())
			assert.Equal(t, tt.email, u.Email())
			assert.Empty(t, u.Roles())
		})
	}
}

func TestUser_AssignRole(t *testing.T) {
	u, err := NewUser("Ada", "Lovelace", "ada@example.com", "$2a$10$hash")
	require.NoError(t, err)

	require.NoError(t, u.AssignRole(auth.RoleUser))
	assert.Equal(t, []string{auth.RoleUser}, u.Roles())
	assert.False(t, u.IsAdmin())

	// assigning twice keeps a single entry
	require.NoError(t, u.AssignRole(auth.RoleUser))
	assert.Len(t, u.Roles(), 1)

	require.NoError(t, u.AssignRole(auth.RoleAdmin))
	assert.True(t, u.IsAdmin())

	assert.Error(t, u.AssignRole("SUPERUSER"))
}

func TestUser_FullName(t *testing.T) {
	u, err := ReconstructUser(3, "Grace", "Hopper", "grace@example.com", "hash", nil, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", u.FullName())
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser("Ada", "Lovelace", "ada@example.com", "$2a$10$hash")
	require.NoError(t, err)

	require.NoError(t, u.SetID(42))
	assert.Equal(t, uint(42), u.ID())
	assert.Error(t, u.SetID(43))
}
