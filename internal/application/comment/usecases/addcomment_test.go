package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/domain/issue"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/errors"
)

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	issueRepo := &mockIssueRepository{
		ExistsByIDFunc: func(ctx context.Context, id uint) (bool, error) {
			return true, nil
		},
	}
	commentRepo := &mockCommentRepository{
		CreateFunc: func(ctx context.Context, c *issue.Comment) error {
			return c.SetID(31)
		},
	}

	uc := NewAddCommentUseCase(commentRepo, issueRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), AddCommentCommand{
		Actor:   sharedAuth.Actor{UserID: 5, Roles: []string{"USER"}},
		IssueID: 21,
		Body:    "Reproduced on staging.",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(31), result.ID)
	assert.Equal(t, uint(21), result.IssueID)
	assert.Equal(t, uint(5), result.AuthorID)
	assert.Equal(t, "Reproduced on staging.", result.Body)
}

func TestAddCommentUseCase_Execute_IssueNotFound(t *testing.T) {
	uc := NewAddCommentUseCase(&mockCommentRepository{}, &mockIssueRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		Actor:   sharedAuth.Actor{UserID: 5, Roles: []string{"USER"}},
		IssueID: 404,
		Body:    "Into the void.",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAddCommentUseCase_Execute_EmptyBody(t *testing.T) {
	issueRepo := &mockIssueRepository{
		ExistsByIDFunc: func(ctx context.Context, id uint) (bool, error) {
			return true, nil
		},
	}

	uc := NewAddCommentUseCase(&mockCommentRepository{}, issueRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		Actor:   sharedAuth.Actor{UserID: 5, Roles: []string{"USER"}},
		IssueID: 21,
		Body:    "",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
