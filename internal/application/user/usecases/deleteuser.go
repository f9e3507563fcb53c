package usecases

import (
	"context"

	"campus/internal/application/common"
	domainUser "campus/internal/domain/user"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type DeleteUserUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo domainUser.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

// Execute removes the account. The repository applies the actor reference
// rules to every record that points at it.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, actorID, id uint) error {
	if id == actorID {
		return errors.NewValidationError("you cannot delete your own account")
	}
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete user", "user_id", id, "error", err)
		}
		return common.PersistenceError(err, "failed to delete user")
	}
	uc.logger.Infow("user deleted", "user_id", id, "actor_id", actorID)
	return nil
}
