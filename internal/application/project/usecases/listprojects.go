package usecases

import (
	"context"
	"fmt"

	domainProject "tracker/internal/domain/project"
	"tracker/internal/shared/logger"
)

// ListProjectsUseCase loads all projects. Listing is not filtered by owner;
// every authenticated user sees the full workspace.
type ListProjectsUseCase struct {
	projectRepo domainProject.Repository
	logger      logger.Interface
}

// NewListProjectsUseCase creates a new list projects use case
func NewListProjectsUseCase(projectRepo domainProject.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute executes the list projects use case
func (uc *ListProjectsUseCase) Execute(ctx context.Context) ([]ProjectResult, error) {
	projects, err := uc.projectRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Errorw("database error while listing projects", "error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	results := make([]ProjectResult, 0, len(projects))
	for _, p := range projects {
		results = append(results, newProjectResult(p))
	}
	return results, nil
}
