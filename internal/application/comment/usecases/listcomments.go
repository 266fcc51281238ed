package usecases

import (
	"context"
	"fmt"

	domainIssue "tracker/internal/domain/issue"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// ListCommentsUseCase loads the comments of an issue ordered oldest first.
type ListCommentsUseCase struct {
	commentRepo domainIssue.CommentRepository
	issueRepo   domainIssue.Repository
	logger      logger.Interface
}

// NewListCommentsUseCase creates a new list comments use case
func NewListCommentsUseCase(
	commentRepo domainIssue.CommentRepository,
	issueRepo domainIssue.Repository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		issueRepo:   issueRepo,
		logger:      logger,
	}
}

// Execute executes the list comments use case
func (uc *ListCommentsUseCase) Execute(ctx context.Context, issueID uint) ([]CommentResult, error) {
	exists, err := uc.issueRepo.ExistsByID(ctx, issueID)
	if err != nil {
		uc.logger.Errorw("database error while checking issue", "issue_id", issueID, "error", err)
		return nil, fmt.Errorf("failed to check issue: %w", err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("issue not found", fmt.Sprintf("id: %d", issueID))
	}

	comments, err := uc.commentRepo.FindByIssueID(ctx, issueID)
	if err != nil {
		uc.logger.Errorw("database error while listing comments", "issue_id", issueID, "error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	results := make([]CommentResult, 0, len(comments))
	for _, c := range comments {
		results = append(results, newCommentResult(c))
	}
	return results, nil
}
