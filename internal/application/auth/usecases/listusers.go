package usecases

import (
	"context"
	"fmt"

	domainUser "tracker/internal/domain/user"
	"tracker/internal/shared/logger"
)

// ListUsersUseCase loads all registered users.
type ListUsersUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

// NewListUsersUseCase creates a new list users use case
func NewListUsersUseCase(userRepo domainUser.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute executes the list users use case
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]UserResult, error) {
	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Errorw("database error while listing users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	results := make([]UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, newUserResult(u))
	}
	return results, nil
}
