package usecases

import (
	"context"
	"fmt"

	domainIssue "tracker/internal/domain/issue"
	domainProject "tracker/internal/domain/project"
	domainUser "tracker/internal/domain/user"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// ListIssuesUseCase loads all issues of a project.
type ListIssuesUseCase struct {
	issueRepo   domainIssue.Repository
	projectRepo domainProject.Repository
	userRepo    domainUser.Repository
	commentRepo domainIssue.CommentRepository
	logger      logger.Interface
}

// NewListIssuesUseCase creates a new list issues use case
func NewListIssuesUseCase(
	issueRepo domainIssue.Repository,
	projectRepo domainProject.Repository,
	userRepo domainUser.Repository,
	commentRepo domainIssue.CommentRepository,
	logger logger.Interface,
) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		issueRepo:   issueRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute executes the list issues use case
func (uc *ListIssuesUseCase) Execute(ctx context.Context, projectID uint) ([]IssueResult, error) {
	exists, err := uc.projectRepo.ExistsByID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("database error while checking project", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("project not found", fmt.Sprintf("id: %d", projectID))
	}

	issues, err := uc.issueRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("database error while listing issues", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	assembler := resultAssembler{userRepo: uc.userRepo, commentRepo: uc.commentRepo}
	results := make([]IssueResult, 0, len(issues))
	for _, iss := range issues {
		result, err := assembler.assemble(ctx, iss)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}
