package usecases

import (
	"context"
	"fmt"

	domainIssue "tracker/internal/domain/issue"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// AddCommentCommand contains the data needed to comment on an issue.
type AddCommentCommand struct {
	Actor   sharedAuth.Actor
	IssueID uint
	Body    string
}

// AddCommentUseCase appends a comment to an issue. Any authenticated user may
// comment; the issue permission rule only governs mutations of the issue
// itself.
type AddCommentUseCase struct {
	commentRepo domainIssue.CommentRepository
	issueRepo   domainIssue.Repository
	logger      logger.Interface
}

// NewAddCommentUseCase creates a new add comment use case
func NewAddCommentUseCase(
	commentRepo domainIssue.CommentRepository,
	issueRepo domainIssue.Repository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		commentRepo: commentRepo,
		issueRepo:   issueRepo,
		logger:      logger,
	}
}

// Execute executes the add comment use case
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentResult, error) {
	uc.logger.Infow("executing add comment use case", "issue_id", cmd.IssueID, "author_id", cmd.Actor.UserID)

	exists, err := uc.issueRepo.ExistsByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("database error while checking issue", "issue_id", cmd.IssueID, "error", err)
		return nil, fmt.Errorf("failed to check issue: %w", err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("issue not found", fmt.Sprintf("id: %d", cmd.IssueID))
	}

	commentEntity, err := domainIssue.NewComment(cmd.IssueID, cmd.Actor.UserID, cmd.Body)
	if err != nil {
		uc.logger.Warnw("invalid comment data", "error", err)
		return nil, errors.NewValidationError("invalid comment data", err.Error())
	}

	if err := uc.commentRepo.Create(ctx, commentEntity); err != nil {
		uc.logger.Errorw("failed to persist comment", "error", err)
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	uc.logger.Infow("comment added", "comment_id", commentEntity.ID(), "issue_id", commentEntity.IssueID())

	result := newCommentResult(commentEntity)
	return &result, nil
}
