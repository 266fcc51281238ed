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

func TestChangeIssueAssigneeUseCase_Execute_AsReporter(t *testing.T) {
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

	uc := NewChangeIssueAssigneeUseCase(issueRepo, testUserRepo(t, 5, 9), &mockCommentRepository{}, noopLogger{})

	assigneeID := uint(9)
	result, err := uc.Execute(context.Background(), ChangeIssueAssigneeCommand{
		Actor:      sharedAuth.Actor{UserID: 5, Roles: []string{"USER"}},
		IssueID:    21,
		AssigneeID: &assigneeID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	require.NotNil(t, result.Assignee)
	assert.Equal(t, uint(9), result.Assignee.ID)
	require.NotNil(t, updated.AssigneeID())
	assert.Equal(t, assigneeID, *updated.AssigneeID())
}

func TestChangeIssueAssigneeUseCase_Execute_NilUnassigns(t *testing.T) {
	assigneeID := uint(9)
	var updated *issue.Issue
	issueRepo := &mockIssueRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return reconstructTestIssue(t, 5, &assigneeID), nil
		},
		UpdateFunc: func(ctx context.Context, i *issue.Issue) error {
			updated = i
			return nil
		},
	}

	uc := NewChangeIssueAssigneeUseCase(issueRepo, testUserRepo(t, 5, 9), &mockCommentRepository{}, noopLogger{})

	result, err := uc.Execute(context.Background(), ChangeIssueAssigneeCommand{
		Actor:      sharedAuth.Actor{UserID: 9, Roles: []string{"USER"}},
		IssueID:    21,
		AssigneeID: nil,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Nil(t, result.Assignee)
	assert.Nil(t, updated.AssigneeID())
}

func TestChangeIssueAssigneeUseCase_Execute_BystanderCannotClaim(t *testing.T) {
	// Permission is judged against the assignee before the change, so
	// naming yourself in the payload earns nothing.
	issueRepo := &mockIssueRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return reconstructTestIssue(t, 5, nil), nil
		},
		UpdateFunc: func(ctx context.Context, i *issue.Issue) error {
			t.Fatal("update must not be reached")
			return nil
		},
	}

	uc := NewChangeIssueAssigneeUseCase(issueRepo, testUserRepo(t, 5, 33), &mockCommentRepository{}, noopLogger{})

	assigneeID := uint(33)
	_, err := uc.Execute(context.Background(), ChangeIssueAssigneeCommand{
		Actor:      sharedAuth.Actor{UserID: 33, Roles: []string{"USER"}},
		IssueID:    21,
		AssigneeID: &assigneeID,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestChangeIssueAssigneeUseCase_Execute_AssigneeHandsOff(t *testing.T) {
	assigneeID := uint(9)
	issueRepo := &mockIssueRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return reconstructTestIssue(t, 5, &assigneeID), nil
		},
	}

	uc := NewChangeIssueAssigneeUseCase(issueRepo, testUserRepo(t, 5, 9, 12), &mockCommentRepository{}, noopLogger{})

	nextAssignee := uint(12)
	result, err := uc.Execute(context.Background(), ChangeIssueAssigneeCommand{
		Actor:      sharedAuth.Actor{UserID: 9, Roles: []string{"USER"}},
		IssueID:    21,
		AssigneeID: &nextAssignee,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Assignee)
	assert.Equal(t, uint(12), result.Assignee.ID)
}

func TestChangeIssueAssigneeUseCase_Execute_AssigneeNotFound(t *testing.T) {
	issueRepo := &mockIssueRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return reconstructTestIssue(t, 5, nil), nil
		},
		UpdateFunc: func(ctx context.Context, i *issue.Issue) error {
			t.Fatal("update must not be reached")
			return nil
		},
	}

	uc := NewChangeIssueAssigneeUseCase(issueRepo, testUserRepo(t, 5), &mockCommentRepository{}, noopLogger{})

	assigneeID := uint(404)
	_, err := uc.Execute(context.Background(), ChangeIssueAssigneeCommand{
		Actor:      sharedAuth.Actor{UserID: 5, Roles: []string{"USER"}},
		IssueID:    21,
		AssigneeID: &assigneeID,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestChangeIssueAssigneeUseCase_Execute_NotFound(t *testing.T) {
	uc := NewChangeIssueAssigneeUseCase(&mockIssueRepository{}, testUserRepo(t), &mockCommentRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), ChangeIssueAssigneeCommand{
		Actor:   sharedAuth.Actor{UserID: 5, Roles: []string{"USER"}},
		IssueID: 404,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
