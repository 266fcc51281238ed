package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		ownerID     uint
		wantErr     bool
	}{
		{
			name:        "valid project",
			projectName: "Phoenix",
			ownerID:     1,
			wantErr:     false,
		},
		{
			name:        "empty name",
			projectName: "",
			ownerID:     1,
			wantErr:     true,
		},
		{
			name:        "name too long",
			projectName: strings.Repeat("x", 101),
			ownerID:     1,
			wantErr:     true,
		},
		{
			name:        "missing owner",
			projectName: "Phoenix",
			ownerID:     0,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProject(tt.projectName, "desc", tt.ownerID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.projectName, p.Name())
			assert.Equal(t, tt.ownerID, p.OwnerID())
		})
	}
}

func TestProject_UpdateDetails(t *testing.T) {
	p, err := NewProject("Phoenix", "old", 1)
	require.NoError(t, err)

	require.NoError(t, p.UpdateDetails("Omega", "new"))
	assert.Equal(t, "Omega", p.Name())
	assert.Equal(t, "new", p.Description())
	// owner never changes through updates
	assert.Equal(t, uint(1), p.OwnerID())

	assert.Error(t, p.UpdateDetails("", "new"))
}

func TestProject_IsOwnedBy(t *testing.T) {
	p, err := NewProject("Phoenix", "", 5)
	require.NoError(t, err)

	assert.True(t, p.IsOwnedBy(5))
	assert.False(t, p.IsOwnedBy(6))
}
