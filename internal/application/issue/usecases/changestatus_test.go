package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/value_objects"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/biztime"
	"tracker/internal/shared/errors"
)

func reconstructTestIssue(t *testing.T, reporterID uint, assigneeID *uint) *issue.Issue {
	t.Helper()
	now := biztime.NowUTC()
	iss, err := issue.ReconstructIssue(21, "Crash on empty payload", "panic in decoder", vo.StatusOpen, vo.PriorityMedium, 10, reporterID, assigneeID, now, now)
	require.NoError(t, err)
	return iss
}

func TestChangeIssueStatusUseCase_Execute_AsReporter(t *testing.T) {
	var updated *issue.Issue
	issueRepo := &mockIssueRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return reconstructTestIssue(t, 5, nil), nil
		},
		UpdateFunc: func(ctx context.Context, i *issue.Issue) error {
			updated = i
			return nil
		},
	}

	uc := NewChangeIssueStatusUseCase(issueRepo, testUserRepo(t, 5), &mockCommentRepository{}, noopLogger{})

	result, err := uc.Execute(context.Background(), ChangeIssueStatusCommand{
		Actor:   sharedAuth.Actor{UserID: 5, Roles: []string{"USER"}},
		IssueID: 21,
		Status:  "IN_PROGRESS",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "IN_PROGRESS", result.Status)
	assert.Equal(t, vo.StatusInProgress, updated.Status())
}

func TestChangeIssueStatusUseCase_Execute_AsAssignee(t *testing.T) {
	assigneeID := uint(9)
	issueRepo := &mockIssueRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return reconstructTestIssue(t, 5, &assigneeID), nil
		},
	}

	uc := NewChangeIssueStatusUseCase(issueRepo, testUserRepo(t, 5, 9), &mockCommentRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), ChangeIssueStatusCommand{
		Actor:   sharedAuth.Actor{UserID: 9, Roles: []string{"USER"}},
		IssueID: 21,
		Status:  "RESOLVED",
	})
	assert.NoError(t, err)
}

func TestChangeIssueStatusUseCase_Execute_ForbiddenForBystander(t *testing.T) {
	issueRepo := &mockIssueRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return reconstructTestIssue(t, 5, nil), nil
		},
	}

	uc := NewChangeIssueStatusUseCase(issueRepo, testUserRepo(t, 5), &mockCommentRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), ChangeIssueStatusCommand{
		Actor:   sharedAuth.Actor{UserID: 33, Roles: []string{"USER"}},
		IssueID: 21,
		Status:  "CLOSED",
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestChangeIssueStatusUseCase_Execute_InvalidStatus(t *testing.T) {
	uc := NewChangeIssueStatusUseCase(&mockIssueRepository{}, testUserRepo(t, 5), &mockCommentRepository{}, noopLogger{})

	for _, status := range []string{"", "DONE", "open"} {
		_, err := uc.Execute(context.Background(), ChangeIssueStatusCommand{
			Actor:   sharedAuth.Actor{UserID: 5, Roles: []string{"USER"}},
			IssueID: 21,
			Status:  status,
		})
		require.Error(t, err, "status %q", status)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
	}
}

func TestChangeIssueStatusUseCase_Execute_NotFound(t *testing.T) {
	uc := NewChangeIssueStatusUseCase(&mockIssueRepository{}, testUserRepo(t, 5), &mockCommentRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), ChangeIssueStatusCommand{
		Actor:   sharedAuth.Actor{UserID: 5, Roles: []string{"USER"}},
		IssueID: 404,
		Status:  "CLOSED",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
