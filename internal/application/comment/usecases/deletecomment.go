package usecases

import (
	"context"
	"fmt"

	domainIssue "tracker/internal/domain/issue"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// DeleteCommentCommand identifies the comment to delete and who asks for it.
type DeleteCommentCommand struct {
	Actor     sharedAuth.Actor
	CommentID uint
}

// DeleteCommentUseCase deletes a comment. Only the author or an admin may do
// so.
type DeleteCommentUseCase struct {
	commentRepo domainIssue.CommentRepository
	logger      logger.Interface
}

// NewDeleteCommentUseCase creates a new delete comment use case
func NewDeleteCommentUseCase(commentRepo domainIssue.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute executes the delete comment use case
func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID, "user_id", cmd.Actor.UserID)

	commentEntity, err := uc.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("database error while loading comment", "comment_id", cmd.CommentID, "error", err)
		return fmt.Errorf("failed to load comment: %w", err)
	}
	if commentEntity == nil {
		return errors.NewNotFoundError("comment not found", fmt.Sprintf("id: %d", cmd.CommentID))
	}

	if !commentEntity.IsAuthoredBy(cmd.Actor.UserID) && !cmd.Actor.IsAdmin() {
		uc.logger.Warnw("comment delete denied", "comment_id", cmd.CommentID, "user_id", cmd.Actor.UserID)
		return errors.NewForbiddenError("only the author or an admin can delete the comment")
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	uc.logger.Infow("comment deleted", "comment_id", cmd.CommentID)
	return nil
}
