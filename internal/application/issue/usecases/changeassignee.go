package usecases

import (
	"context"
	"fmt"

	domainIssue "tracker/internal/domain/issue"
	domainUser "tracker/internal/domain/user"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// ChangeIssueAssigneeCommand contains the data needed to assign or unassign
// an issue. A nil AssigneeID clears the assignment.
type ChangeIssueAssigneeCommand struct {
	Actor      sharedAuth.Actor
	IssueID    uint
	AssigneeID *uint
}

// ChangeIssueAssigneeUseCase assigns an issue to a user or clears the
// assignment. Only an admin, the reporter or the current assignee may do so;
// the permission is evaluated against the assignee as it was before the
// change.
type ChangeIssueAssigneeUseCase struct {
	issueRepo   domainIssue.Repository
	userRepo    domainUser.Repository
	commentRepo domainIssue.CommentRepository
	logger      logger.Interface
}

// NewChangeIssueAssigneeUseCase creates a new change issue assignee use case
func NewChangeIssueAssigneeUseCase(
	issueRepo domainIssue.Repository,
	userRepo domainUser.Repository,
	commentRepo domainIssue.CommentRepository,
	logger logger.Interface,
) *ChangeIssueAssigneeUseCase {
	return &ChangeIssueAssigneeUseCase{
		issueRepo:   issueRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute executes the change issue assignee use case
func (uc *ChangeIssueAssigneeUseCase) Execute(ctx context.Context, cmd ChangeIssueAssigneeCommand) (*IssueResult, error) {
	uc.logger.Infow("executing change issue assignee use case", "issue_id", cmd.IssueID, "user_id", cmd.Actor.UserID)

	issueEntity, err := uc.issueRepo.FindByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("database error while loading issue", "issue_id", cmd.IssueID, "error", err)
		return nil, fmt.Errorf("failed to load issue: %w", err)
	}
	if issueEntity == nil {
		return nil, errors.NewNotFoundError("issue not found", fmt.Sprintf("id: %d", cmd.IssueID))
	}

	if !issueEntity.CanModify(cmd.Actor.UserID, cmd.Actor.IsAdmin()) {
		uc.logger.Warnw("assignee change denied", "issue_id", cmd.IssueID, "user_id", cmd.Actor.UserID)
		return nil, errors.NewForbiddenError("only an admin, the reporter or the assignee can modify the issue")
	}

	if cmd.AssigneeID != nil {
		assignee, err := uc.userRepo.FindByID(ctx, *cmd.AssigneeID)
		if err != nil {
			uc.logger.Errorw("database error while checking assignee", "assignee_id", *cmd.AssigneeID, "error", err)
			return nil, fmt.Errorf("failed to check assignee: %w", err)
		}
		if assignee == nil {
			return nil, errors.NewNotFoundError("assignee not found", fmt.Sprintf("id: %d", *cmd.AssigneeID))
		}
	}

	issueEntity.Assign(cmd.AssigneeID)

	if err := uc.issueRepo.Update(ctx, issueEntity); err != nil {
		uc.logger.Errorw("failed to update issue", "issue_id", cmd.IssueID, "error", err)
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}

	uc.logger.Infow("issue assignee changed", "issue_id", issueEntity.ID())

	assembler := resultAssembler{userRepo: uc.userRepo, commentRepo: uc.commentRepo}
	return assembler.assemble(ctx, issueEntity)
}
