package usecases

import (
	"context"
	"fmt"

	domainProject "tracker/internal/domain/project"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// UpdateProjectCommand contains the data needed to update a project.
type UpdateProjectCommand struct {
	Actor       sharedAuth.Actor
	ProjectID   uint
	Name        string
	Description string
}

// UpdateProjectUseCase updates a project's name and description. Only the
// owner or an admin may do so; the owner itself is immutable.
type UpdateProjectUseCase struct {
	projectRepo domainProject.Repository
	logger      logger.Interface
}

// NewUpdateProjectUseCase creates a new update project use case
func NewUpdateProjectUseCase(projectRepo domainProject.Repository, logger logger.Interface) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute executes the update project use case
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*ProjectResult, error) {
	uc.logger.Infow("executing update project use case", "project_id", cmd.ProjectID, "user_id", cmd.Actor.UserID)

	projectEntity, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("database error while loading project", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if projectEntity == nil {
		return nil, errors.NewNotFoundError("project not found", fmt.Sprintf("id: %d", cmd.ProjectID))
	}

	if !projectEntity.IsOwnedBy(cmd.Actor.UserID) && !cmd.Actor.IsAdmin() {
		uc.logger.Warnw("project update denied", "project_id", cmd.ProjectID, "user_id", cmd.Actor.UserID)
		return nil, errors.NewForbiddenError("only the project owner or an admin can update the project")
	}

	if err := projectEntity.UpdateDetails(cmd.Name, cmd.Description); err != nil {
		uc.logger.Warnw("invalid project data", "error", err)
		return nil, errors.NewValidationError("invalid project data", err.Error())
	}

	if err := uc.projectRepo.Update(ctx, projectEntity); err != nil {
		uc.logger.Errorw("failed to update project", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	uc.logger.Infow("project updated", "project_id", projectEntity.ID())

	result := newProjectResult(projectEntity)
	return &result, nil
}
