package usecases

import (
	"context"

	"campus/internal/application/admin/dto"
	"campus/internal/application/common"
	"campus/internal/domain/statushistory"
	"campus/internal/shared/logger"
)

// ListStatusHistoryUseCase lists the status change journal, newest first.
type ListStatusHistoryUseCase struct {
	history statushistory.Repository
	logger  logger.Interface
}

func NewListStatusHistoryUseCase(history statushistory.Repository, log logger.Interface) *ListStatusHistoryUseCase {
	return &ListStatusHistoryUseCase{history: history, logger: log}
}

func (uc *ListStatusHistoryUseCase) Execute(ctx context.Context, filter statushistory.Filter) ([]dto.StatusChangeResponse, int64, error) {
	changes, total, err := uc.history.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list status history", "entity_type", filter.EntityType, "error", err)
		return nil, 0, common.PersistenceError(err, "failed to list status history")
	}

	items := make([]dto.StatusChangeResponse, 0, len(changes))
	for _, c := range changes {
		items = append(items, dto.StatusChangeResponse{
			ID:         c.ID(),
			EntityType: c.EntityType(),
			EntityID:   c.EntityID(),
			OldStatus:  c.OldStatus(),
			NewStatus:  c.NewStatus(),
			ChangedBy:  c.ChangedBy(),
			Note:       c.Note(),
			ChangedAt:  c.ChangedAt(),
		})
	}
	return items, total, nil
}
