package usecases

import (
	"context"
	"fmt"

	domainProject "tracker/internal/domain/project"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// CreateProjectCommand contains the data needed to create a project.
type CreateProjectCommand struct {
	Actor       sharedAuth.Actor
	Name        string
	Description string
}

// CreateProjectUseCase handles project creation. The acting user becomes the
// owner; ownership never changes afterwards.
type CreateProjectUseCase struct {
	projectRepo domainProject.Repository
	logger      logger.Interface
}

// NewCreateProjectUseCase creates a new create project use case
func NewCreateProjectUseCase(projectRepo domainProject.Repository, logger logger.Interface) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute executes the create project use case
func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*ProjectResult, error) {
	uc.logger.Infow("executing create project use case", "name", cmd.Name, "owner_id", cmd.Actor.UserID)

	projectEntity, err := domainProject.NewProject(cmd.Name, cmd.Description, cmd.Actor.UserID)
	if err != nil {
		uc.logger.Warnw("invalid project data", "error", err)
		return nil, errors.NewValidationError("invalid project data", err.Error())
	}

	if err := uc.projectRepo.Create(ctx, projectEntity); err != nil {
		uc.logger.Errorw("failed to persist project", "error", err)
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	uc.logger.Infow("project created", "project_id", projectEntity.ID(), "owner_id", projectEntity.OwnerID())

	result := newProjectResult(projectEntity)
	return &result, nil
}
