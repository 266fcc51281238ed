package usecases

import (
	"context"
	"fmt"

	domainUser "tracker/internal/domain/user"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

// LoginCommand contains the credentials presented at login.
type LoginCommand struct {
	Email    string
	Password string
}

// LoginUseCase authenticates credentials and issues an access token.
type LoginUseCase struct {
	userRepo domainUser.Repository
	hasher   domainUser.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

// NewLoginUseCase creates a new login use case
func NewLoginUseCase(
	userRepo domainUser.Repository,
	hasher domainUser.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute executes the login use case. Unknown email and wrong password
// produce the same unauthorized error so credentials cannot be probed.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login use case", "email", cmd.Email)

	userEntity, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("database error while looking up user", "email", cmd.Email, "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if userEntity == nil {
		uc.logger.Warnw("login attempt for unknown email", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := userEntity.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", userEntity.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresIn, err := uc.tokens.Generate(userEntity.ID(), userEntity.Email(), userEntity.Roles())
	if err != nil {
		uc.logger.Errorw("failed to sign access token", "user_id", userEntity.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", userEntity.ID())

	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        newUserResult(userEntity),
	}, nil
}
