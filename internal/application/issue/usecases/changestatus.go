package usecases

import (
	"context"
	"fmt"

	domainIssue "tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/value_objects"
	domainUser "tracker/internal/domain/user"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// ChangeIssueStatusCommand contains the data needed to move an issue to a
// new status.
type ChangeIssueStatusCommand struct {
	Actor   sharedAuth.Actor
	IssueID uint
	Status  string
}

// ChangeIssueStatusUseCase moves an issue between workflow states. Any state
// can be reached from any other; only an admin, the reporter or the current
// assignee may do so.
type ChangeIssueStatusUseCase struct {
	issueRepo   domainIssue.Repository
	userRepo    domainUser.Repository
	commentRepo domainIssue.CommentRepository
	logger      logger.Interface
}

// NewChangeIssueStatusUseCase creates a new change issue status use case
func NewChangeIssueStatusUseCase(
	issueRepo domainIssue.Repository,
	userRepo domainUser.Repository,
	commentRepo domainIssue.CommentRepository,
	logger logger.Interface,
) *ChangeIssueStatusUseCase {
	return &ChangeIssueStatusUseCase{
		issueRepo:   issueRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute executes the change issue status use case
func (uc *ChangeIssueStatusUseCase) Execute(ctx context.Context, cmd ChangeIssueStatusCommand) (*IssueResult, error) {
	uc.logger.Infow("executing change issue status use case", "issue_id", cmd.IssueID, "status", cmd.Status)

	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		uc.logger.Warnw("invalid status value", "status", cmd.Status)
		return nil, errors.NewBadRequestError("invalid status value", err.Error())
	}

	issueEntity, err := uc.issueRepo.FindByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("database error while loading issue", "issue_id", cmd.IssueID, "error", err)
		return nil, fmt.Errorf("failed to load issue: %w", err)
	}
	if issueEntity == nil {
		return nil, errors.NewNotFoundError("issue not found", fmt.Sprintf("id: %d", cmd.IssueID))
	}

	if !issueEntity.CanModify(cmd.Actor.UserID, cmd.Actor.IsAdmin()) {
		uc.logger.Warnw("status change denied", "issue_id", cmd.IssueID, "user_id", cmd.Actor.UserID)
		return nil, errors.NewForbiddenError("only an admin, the reporter or the assignee can modify the issue")
	}

	if err := issueEntity.ChangeStatus(status); err != nil {
		return nil, errors.NewBadRequestError("invalid status value", err.Error())
	}

	if err := uc.issueRepo.Update(ctx, issueEntity); err != nil {
		uc.logger.Errorw("failed to update issue", "issue_id", cmd.IssueID, "error", err)
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}

	uc.logger.Infow("issue status changed", "issue_id", issueEntity.ID(), "status", issueEntity.Status().String())

	assembler := resultAssembler{userRepo: uc.userRepo, commentRepo: uc.commentRepo}
	return assembler.assemble(ctx, issueEntity)
}
