package usecases

import (
	"context"
	"fmt"

	domainIssue "tracker/internal/domain/issue"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/db"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// DeleteIssueCommand identifies the issue to delete and who asks for it.
type DeleteIssueCommand struct {
	Actor   sharedAuth.Actor
	IssueID uint
}

// DeleteIssueUseCase deletes an issue and its comments. Deletion is reserved
// for admins; the reporter/assignee rule that governs updates does not apply
// here.
type DeleteIssueUseCase struct {
	issueRepo   domainIssue.Repository
	commentRepo domainIssue.CommentRepository
	txManager   db.TxManager
	logger      logger.Interface
}

// NewDeleteIssueUseCase creates a new delete issue use case
func NewDeleteIssueUseCase(
	issueRepo domainIssue.Repository,
	commentRepo domainIssue.CommentRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *DeleteIssueUseCase {
	return &DeleteIssueUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute executes the delete issue use case
func (uc *DeleteIssueUseCase) Execute(ctx context.Context, cmd DeleteIssueCommand) error {
	uc.logger.Infow("executing delete issue use case", "issue_id", cmd.IssueID, "user_id", cmd.Actor.UserID)

	exists, err := uc.issueRepo.ExistsByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("database error while checking issue", "issue_id", cmd.IssueID, "error", err)
		return fmt.Errorf("failed to check issue: %w", err)
	}
	if !exists {
		return errors.NewNotFoundError("issue not found", fmt.Sprintf("id: %d", cmd.IssueID))
	}

	if !cmd.Actor.IsAdmin() {
		uc.logger.Warnw("issue delete denied", "issue_id", cmd.IssueID, "user_id", cmd.Actor.UserID)
		return errors.NewForbiddenError("only an admin can delete an issue")
	}

	// Comments go first so a failure between the two deletes cannot orphan
	// them; both run in one transaction.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByIssueID(txCtx, cmd.IssueID); err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}
		if err := uc.issueRepo.Delete(txCtx, cmd.IssueID); err != nil {
			return fmt.Errorf("failed to delete issue: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete issue", "issue_id", cmd.IssueID, "error", err)
		return err
	}

	uc.logger.Infow("issue deleted", "issue_id", cmd.IssueID)
	return nil
}
