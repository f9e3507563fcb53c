package usecases

import (
	"context"

	"campus/internal/application/common"
	"campus/internal/application/user/dto"
	domainUser "campus/internal/domain/user"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
	"campus/internal/shared/query"
)

// GetUserUseCase handles the business logic for retrieving users
type GetUserUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo domainUser.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) ExecuteByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	if id == 0 {
		return nil, errors.NewValidationError("user ID cannot be zero")
	}

	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get user", "id", id, "error", err)
		}
		return nil, common.PersistenceError(err, "failed to get user")
	}
	return dto.ToUserResponse(u), nil
}

func (uc *GetUserUseCase) ExecuteList(ctx context.Context, request dto.ListUsersRequest) ([]*dto.UserResponse, int64, error) {
	filter := domainUser.Filter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(request.Page, request.PageSize),
			query.WithSort(request.SortBy, request.SortOrder),
		),
		Role:   request.Role,
		Search: request.Search,
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, 0, common.PersistenceError(err, "failed to list users")
	}
	return dto.ToUserResponses(users), total, nil
}
