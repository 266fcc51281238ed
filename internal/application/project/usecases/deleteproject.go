package usecases

import (
	"context"
	"fmt"

	domainIssue "tracker/internal/domain/issue"
	domainProject "tracker/internal/domain/project"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// DeleteProjectCommand identifies the project to delete and who asks for it.
type DeleteProjectCommand struct {
	Actor     sharedAuth.Actor
	ProjectID uint
}

// DeleteProjectUseCase deletes a project. Only the owner or an admin may do
// so, and only when the project has no issues; there is no cascade.
type DeleteProjectUseCase struct {
	projectRepo domainProject.Repository
	issueRepo   domainIssue.Repository
	logger      logger.Interface
}

// NewDeleteProjectUseCase creates a new delete project use case
func NewDeleteProjectUseCase(
	projectRepo domainProject.Repository,
	issueRepo domainIssue.Repository,
	logger logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		issueRepo:   issueRepo,
		logger:      logger,
	}
}

// Execute executes the delete project use case
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	uc.logger.Infow("executing delete project use case", "project_id", cmd.ProjectID, "user_id", cmd.Actor.UserID)

	projectEntity, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("database error while loading project", "project_id", cmd.ProjectID, "error", err)
		return fmt.Errorf("failed to load project: %w", err)
	}
	if projectEntity == nil {
		return errors.NewNotFoundError("project not found", fmt.Sprintf("id: %d", cmd.ProjectID))
	}

	if !projectEntity.IsOwnedBy(cmd.Actor.UserID) && !cmd.Actor.IsAdmin() {
		uc.logger.Warnw("project delete denied", "project_id", cmd.ProjectID, "user_id", cmd.Actor.UserID)
		return errors.NewForbiddenError("only the project owner or an admin can delete the project")
	}

	issueCount, err := uc.issueRepo.CountByProjectID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("database error while counting issues", "project_id", cmd.ProjectID, "error", err)
		return fmt.Errorf("failed to count issues: %w", err)
	}
	if issueCount > 0 {
		uc.logger.Warnw("project delete blocked by existing issues", "project_id", cmd.ProjectID, "issues", issueCount)
		return errors.NewConflictError("project still has issues", fmt.Sprintf("issues: %d", issueCount))
	}

	if err := uc.projectRepo.Delete(ctx, cmd.ProjectID); err != nil {
		uc.logger.Errorw("failed to delete project", "project_id", cmd.ProjectID, "error", err)
		return fmt.Errorf("failed to delete project: %w", err)
	}

	uc.logger.Infow("project deleted", "project_id", cmd.ProjectID)
	return nil
}
