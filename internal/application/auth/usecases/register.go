package usecases

import (
	"context"
	"fmt"

	domainUser "tracker/internal/domain/user"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/db"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// RegisterCommand contains the data needed to register a new account.
type RegisterCommand struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// RegisterUseCase handles account registration. New accounts always receive
// the default USER role; admin promotion is a seeding concern.
type RegisterUseCase struct {
	userRepo  domainUser.Repository
	roleRepo  domainUser.RoleRepository
	hasher    domainUser.PasswordHasher
	txManager db.TxManager
	logger    logger.Interface
}

// NewRegisterUseCase creates a new register use case
func NewRegisterUseCase(
	userRepo domainUser.Repository,
	roleRepo domainUser.RoleRepository,
	hasher domainUser.PasswordHasher,
	txManager db.TxManager,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		hasher:    hasher,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute executes the register use case
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*UserResult, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("database error while checking for existing email", "email", cmd.Email, "error", err)
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		uc.logger.Warnw("email already registered", "email", cmd.Email)
		return nil, errors.NewConflictError("email already registered", cmd.Email)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userEntity, err := domainUser.NewUser(cmd.FirstName, cmd.LastName, cmd.Email, hash)
	if err != nil {
		uc.logger.Warnw("invalid registration data", "error", err)
		return nil, errors.NewValidationError("invalid registration data", err.Error())
	}

	// The USER role row is seed data; if it is missing the deployment is
	// broken, which is an internal condition rather than a client error.
	defaultRole, err := uc.roleRepo.FindByName(ctx, sharedAuth.RoleUser)
	if err != nil {
		uc.logger.Errorw("database error while loading default role", "error", err)
		return nil, fmt.Errorf("failed to load default role: %w", err)
	}
	if defaultRole == nil {
		uc.logger.Errorw("default role is not seeded", "role", sharedAuth.RoleUser)
		return nil, errors.NewInternalError("default role is not configured")
	}

	if err := userEntity.AssignRole(defaultRole.Name()); err != nil {
		return nil, fmt.Errorf("failed to assign default role: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.userRepo.Create(txCtx, userEntity)
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			uc.logger.Warnw("email already registered", "email", cmd.Email)
			return nil, errors.NewConflictError("email already registered", cmd.Email)
		}
		uc.logger.Errorw("failed to persist user", "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("user registered successfully", "user_id", userEntity.ID(), "email", userEntity.Email())

	result := newUserResult(userEntity)
	return &result, nil
}
