package usecases

import (
	"context"
	"fmt"

	domainIssue "tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/value_objects"
	domainProject "tracker/internal/domain/project"
	domainUser "tracker/internal/domain/user"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// CreateIssueCommand contains the data needed to open an issue. Priority is
// optional and defaults to MEDIUM; the status of a new issue is always OPEN.
type CreateIssueCommand struct {
	Actor       sharedAuth.Actor
	ProjectID   uint
	Title       string
	Description string
	Priority    string
	AssigneeID  *uint
}

// CreateIssueUseCase handles issue creation. The acting user becomes the
// reporter.
type CreateIssueUseCase struct {
	issueRepo   domainIssue.Repository
	projectRepo domainProject.Repository
	userRepo    domainUser.Repository
	commentRepo domainIssue.CommentRepository
	logger      logger.Interface
}

// NewCreateIssueUseCase creates a new create issue use case
func NewCreateIssueUseCase(
	issueRepo domainIssue.Repository,
	projectRepo domainProject.Repository,
	userRepo domainUser.Repository,
	commentRepo domainIssue.CommentRepository,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo:   issueRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute executes the create issue use case
func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*IssueResult, error) {
	uc.logger.Infow("executing create issue use case", "project_id", cmd.ProjectID, "reporter_id", cmd.Actor.UserID)

	exists, err := uc.projectRepo.ExistsByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("database error while checking project", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("project not found", fmt.Sprintf("id: %d", cmd.ProjectID))
	}

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		priority, err = vo.NewPriority(cmd.Priority)
		if err != nil {
			uc.logger.Warnw("invalid priority", "priority", cmd.Priority)
			return nil, errors.NewValidationError("invalid priority", err.Error())
		}
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

	issueEntity, err := domainIssue.NewIssue(cmd.Title, cmd.Description, priority, cmd.ProjectID, cmd.Actor.UserID, cmd.AssigneeID)
	if err != nil {
		uc.logger.Warnw("invalid issue data", "error", err)
		return nil, errors.NewValidationError("invalid issue data", err.Error())
	}

	if err := uc.issueRepo.Create(ctx, issueEntity); err != nil {
		uc.logger.Errorw("failed to persist issue", "error", err)
		return nil, fmt.Errorf("failed to save issue: %w", err)
	}

	uc.logger.Infow("issue created", "issue_id", issueEntity.ID(), "project_id", issueEntity.ProjectID())

	assembler := resultAssembler{userRepo: uc.userRepo, commentRepo: uc.commentRepo}
	return assembler.assemble(ctx, issueEntity)
}
