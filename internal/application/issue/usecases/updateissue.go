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

// UpdateIssueCommand contains the data needed to rewrite an issue's details.
// Priority is optional; when absent the stored priority is kept.
type UpdateIssueCommand struct {
	Actor       sharedAuth.Actor
	IssueID     uint
	Title       string
	Description string
	Priority    *string
}

// UpdateIssueUseCase rewrites an issue's title, description and priority.
// Only an admin, the reporter or the current assignee may do so.
type UpdateIssueUseCase struct {
	issueRepo   domainIssue.Repository
	userRepo    domainUser.Repository
	commentRepo domainIssue.CommentRepository
	logger      logger.Interface
}

// NewUpdateIssueUseCase creates a new update issue use case
func NewUpdateIssueUseCase(
	issueRepo domainIssue.Repository,
	userRepo domainUser.Repository,
	commentRepo domainIssue.CommentRepository,
	logger logger.Interface,
) *UpdateIssueUseCase {
	return &UpdateIssueUseCase{
		issueRepo:   issueRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute executes the update issue use case
func (uc *UpdateIssueUseCase) Execute(ctx context.Context, cmd UpdateIssueCommand) (*IssueResult, error) {
	uc.logger.Infow("executing update issue use case", "issue_id", cmd.IssueID, "user_id", cmd.Actor.UserID)

	issueEntity, err := uc.issueRepo.FindByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("database error while loading issue", "issue_id", cmd.IssueID, "error", err)
		return nil, fmt.Errorf("failed to load issue: %w", err)
	}
	if issueEntity == nil {
		return nil, errors.NewNotFoundError("issue not found", fmt.Sprintf("id: %d", cmd.IssueID))
	}

	if !issueEntity.CanModify(cmd.Actor.UserID, cmd.Actor.IsAdmin()) {
		uc.logger.Warnw("issue update denied", "issue_id", cmd.IssueID, "user_id", cmd.Actor.UserID)
		return nil, errors.NewForbiddenError("only an admin, the reporter or the assignee can modify the issue")
	}

	var priority *vo.Priority
	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			uc.logger.Warnw("invalid priority", "priority", *cmd.Priority)
			return nil, errors.NewValidationError("invalid priority", err.Error())
		}
		priority = &p
	}

	if err := issueEntity.UpdateDetails(cmd.Title, cmd.Description, priority); err != nil {
		uc.logger.Warnw("invalid issue data", "error", err)
		return nil, errors.NewValidationError("invalid issue data", err.Error())
	}

	if err := uc.issueRepo.Update(ctx, issueEntity); err != nil {
		uc.logger.Errorw("failed to update issue", "issue_id", cmd.IssueID, "error", err)
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}

	uc.logger.Infow("issue updated", "issue_id", issueEntity.ID())

	assembler := resultAssembler{userRepo: uc.userRepo, commentRepo: uc.commentRepo}
	return assembler.assemble(ctx, issueEntity)
}
