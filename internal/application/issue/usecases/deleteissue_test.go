package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/errors"
)

func TestDeleteIssueUseCase_Execute_AsAdmin(t *testing.T) {
	var calls []string
	issueRepo := &mockIssueRepository{
		ExistsByIDFunc: func(ctx context.Context, id uint) (bool, error) {
			return true, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			calls = append(calls, "issue")
			return nil
		},
	}
	commentRepo := &mockCommentRepository{
		DeleteByIssueIDFunc: func(ctx context.Context, issueID uint) error {
			calls = append(calls, "comments")
			return nil
		},
	}

	uc := NewDeleteIssueUseCase(issueRepo, commentRepo, &mockTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), DeleteIssueCommand{
		Actor:   sharedAuth.Actor{UserID: 1, Roles: []string{"USER", "ADMIN"}},
		IssueID: 21,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"comments", "issue"}, calls)
}

func TestDeleteIssueUseCase_Execute_ForbiddenForReporter(t *testing.T) {
	// Unlike updates, deletion is not open to the reporter.
	issueRepo := &mockIssueRepository{
		ExistsByIDFunc: func(ctx context.Context, id uint) (bool, error) {
			return true, nil
		},
	}
	uc := NewDeleteIssueUseCase(issueRepo, &mockCommentRepository{}, &mockTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), DeleteIssueCommand{
		Actor:   sharedAuth.Actor{UserID: 5, Roles: []string{"USER"}},
		IssueID: 21,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestDeleteIssueUseCase_Execute_NotFound(t *testing.T) {
	uc := NewDeleteIssueUseCase(&mockIssueRepository{}, &mockCommentRepository{}, &mockTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), DeleteIssueCommand{
		Actor:   sharedAuth.Actor{UserID: 1, Roles: []string{"ADMIN"}},
		IssueID: 404,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteIssueUseCase_Execute_NotFoundBeforePermission(t *testing.T) {
	// A missing issue reads as absent even to callers who could never
	// delete it.
	uc := NewDeleteIssueUseCase(&mockIssueRepository{}, &mockCommentRepository{}, &mockTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), DeleteIssueCommand{
		Actor:   sharedAuth.Actor{UserID: 5, Roles: []string{"USER"}},
		IssueID: 404,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteIssueUseCase_Execute_RollsUpTransactionError(t *testing.T) {
	issueRepo := &mockIssueRepository{
		ExistsByIDFunc: func(ctx context.Context, id uint) (bool, error) {
			return true, nil
		},
	}
	commentRepo := &mockCommentRepository{
		DeleteByIssueIDFunc: func(ctx context.Context, issueID uint) error {
			return assert.AnError
		},
	}

	uc := NewDeleteIssueUseCase(issueRepo, commentRepo, &mockTxManager{}, noopLogger{})

	err := uc.Execute(context.Background(), DeleteIssueCommand{
		Actor:   sharedAuth.Actor{UserID: 1, Roles: []string{"ADMIN"}},
		IssueID: 21,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
