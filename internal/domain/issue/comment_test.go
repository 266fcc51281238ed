package issue

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeNow() time.Time {
	return time.Now().UTC()
}

func TestNewComment(t *testing.T) {
	tests := []struct {
		name     string
		issueID  uint
		authorID uint
		body     string
		wantErr  bool
	}{
		{
			name:     "valid comment",
			issueID:  1,
			authorID: 2,
			body:     "looks like a race condition",
			wantErr:  false,
		},
		{
			name:     "missing issue",
			issueID:  0,
			authorID: 2,
			body:     "text",
			wantErr:  true,
		},
		{
			name:     "missing author",
			issueID:  1,
			authorID: 0,
			body:     "text",
			wantErr:  true,
		},
		{
			name:     "empty body",
			issueID:  1,
			authorID: 2,
			body:     "",
			wantErr:  true,
		},
		{
			name:     "body too long",
			issueID:  1,
			authorID: 2,
			body:     strings.Repeat("x", 5001),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.issueID, tt.authorID, tt.body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.issueID, c.IssueID())
			assert.Equal(t, tt.authorID, c.AuthorID())
		})
	}
}

func TestComment_IsAuthoredBy(t *testing.T) {
	c, err := NewComment(1, 2, "text")
	require.NoError(t, err)

	assert.True(t, c.IsAuthoredBy(2))
	assert.False(t, c.IsAuthoredBy(3))
}
