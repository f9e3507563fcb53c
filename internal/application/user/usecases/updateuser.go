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

// UpdateUserUseCase applies admin edits: name, role, active flag and a
// password reset.
type UpdateUserUseCase struct {
	userRepo domainUser.Repository
	hasher   domainUser.PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo domainUser.Repository, hasher domainUser.PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, actorID, id uint, request dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get user")
	}

	if request.FullName != nil {
		if err := u.UpdateProfile(*request.FullName); err != nil {
			return nil, common.DomainError(err)
		}
	}
	if request.Role != nil {
		role := authorization.UserRole(*request.Role)
		if id == actorID && role != u.Role() {
			return nil, errors.NewFieldValidationError("role", "you cannot change your own role")
		}
		if err := u.ChangeRole(role); err != nil {
			return nil, common.DomainError(err)
		}
	}
	if request.IsActive != nil {
		if id == actorID && !*request.IsActive {
			return nil, errors.NewFieldValidationError("is_active", "you cannot deactivate your own account")
		}
		u.SetActive(*request.IsActive)
	}
	if request.Password != nil {
		if err := u.SetPassword(*request.Password, uc.hasher); err != nil {
			return nil, common.DomainError(err)
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", id, "error", err)
		return nil, common.PersistenceError(err, "failed to update user")
	}

	uc.logger.Infow("user updated", "user_id", id, "actor_id", actorID)
	return dto.ToUserResponse(u), nil
}
