package usecases

import (
	"context"
	"fmt"

	domainIssue "tracker/internal/domain/issue"
	domainUser "tracker/internal/domain/user"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// GetIssueUseCase loads a single issue by ID.
type GetIssueUseCase struct {
	issueRepo   domainIssue.Repository
	userRepo    domainUser.Repository
	commentRepo domainIssue.CommentRepository
	logger      logger.Interface
}

// NewGetIssueUseCase creates a new get issue use case
func NewGetIssueUseCase(
	issueRepo domainIssue.Repository,
	userRepo domainUser.Repository,
	commentRepo domainIssue.CommentRepository,
	logger logger.Interface,
) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo:   issueRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute executes the get issue use case
func (uc *GetIssueUseCase) Execute(ctx context.Context, issueID uint) (*IssueResult, error) {
	issueEntity, err := uc.issueRepo.FindByID(ctx, issueID)
	if err != nil {
		uc.logger.Errorw("database error while loading issue", "issue_id", issueID, "error", err)
		return nil, fmt.Errorf("failed to load issue: %w", err)
	}
	if issueEntity == nil {
		return nil, errors.NewNotFoundError("issue not found", fmt.Sprintf("id: %d", issueID))
	}

	assembler := resultAssembler{userRepo: uc.userRepo, commentRepo: uc.commentRepo}
	return assembler.assemble(ctx, issueEntity)
}
