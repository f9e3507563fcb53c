package usecases

import (
	"context"
	"time"

	"campus/internal/application/user/dto"
	"campus/internal/domain/user"
	"campus/internal/shared/authorization"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

const invalidCredentials = "invalid email or password"

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, role authorization.UserRole) (token string, expiresAt time.Time, err error)
}

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*dto.LoginResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// same answer as a wrong password
			return nil, errors.NewUnauthorizedError(invalidCredentials)
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	if err := existing.Authenticate(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("login rejected", "user_id", existing.ID(), "reason", err.Error())
		return nil, errors.NewUnauthorizedError(invalidCredentials)
	}

	token, expiresAt, err := uc.tokens.Issue(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	// last_login_at is informational, a failed save does not fail the login
	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Warnw("failed to record last login", "user_id", existing.ID(), "error", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existing.ID())
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(existing),
	}, nil
}
