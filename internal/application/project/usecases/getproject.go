package usecases

import (
	"context"
	"fmt"

	domainProject "tracker/internal/domain/project"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// GetProjectUseCase loads a single project by ID.
type GetProjectUseCase struct {
	projectRepo domainProject.Repository
	logger      logger.Interface
}

// NewGetProjectUseCase creates a new get project use case
func NewGetProjectUseCase(projectRepo domainProject.Repository, logger logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute executes the get project use case
func (uc *GetProjectUseCase) Execute(ctx context.Context, projectID uint) (*ProjectResult, error) {
	projectEntity, err := uc.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("database error while loading project", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if projectEntity == nil {
		return nil, errors.NewNotFoundError("project not found", fmt.Sprintf("id: %d", projectID))
	}

	result := newProjectResult(projectEntity)
	return &result, nil
}
