package usecases

import (
	"context"
	"fmt"

	domainUser "tracker/internal/domain/user"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// GetUserUseCase loads a single user by ID.
type GetUserUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

// NewGetUserUseCase creates a new get user use case
func NewGetUserUseCase(userRepo domainUser.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute executes the get user use case
func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*UserResult, error) {
	userEntity, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("database error while loading user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if userEntity == nil {
		return nil, errors.NewNotFoundError("user not found", fmt.Sprintf("id: %d", userID))
	}

	result := newUserResult(userEntity)
	return &result, nil
}
