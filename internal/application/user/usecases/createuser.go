package usecases

import (
	"context"

	"campus/internal/application/common"
	"campus/internal/application/user/dto"
	domainUser "campus/internal/domain/user"
	"campus/internal/shared/authorization"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

// CreateUserUseCase handles the business logic for creating a user
type CreateUserUseCase struct {
	userRepo domainUser.Repository
	hasher   domainUser.PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo domainUser.Repository, hasher domainUser.PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

// Execute creates an account. An empty role means a regular user.
func (uc *CreateUserUseCase) Execute(ctx context.Context, request dto.CreateUserRequest) (*dto.UserResponse, error) {
	uc.logger.Infow("executing create user use case", "email", request.Email, "role", request.Role)

	role := authorization.RoleUser
	if request.Role != "" {
		role = authorization.UserRole(request.Role)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, request.Email)
	if err != nil {
		uc.logger.Errorw("database error while checking for existing user", "email", request.Email, "error", err)
		return nil, common.PersistenceError(err, "failed to create user")
	}
	if exists {
		uc.logger.Warnw("user with email already exists", "email", request.Email)
		return nil, errors.NewFieldValidationError("email", "user with this email already exists")
	}

	u, err := domainUser.NewUser(request.Email, request.FullName, role)
	if err != nil {
		return nil, common.DomainError(err)
	}
	if err := u.SetPassword(request.Password, uc.hasher); err != nil {
		return nil, common.DomainError(err)
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "email", request.Email, "error", err)
		return nil, common.PersistenceError(err, "failed to create user")
	}

	uc.logger.Infow("user created successfully", "user_id", u.ID(), "role", u.Role())
	return dto.ToUserResponse(u), nil
}
