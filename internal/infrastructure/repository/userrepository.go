package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"campus/internal/domain/statushistory"
	"campus/internal/domain/user"
	"campus/internal/infrastructure/persistence/mappers"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

var userSortColumns = map[string]bool{
	"id": true, "email": true, "full_name": true, "role": true, "created_at": true, "last_login_at": true,
}

// UserRepository implements user.Repository. Deleting a user applies every
// actor reference policy: visit requests, technician profiles and
// acknowledgments go with the user, other references are cleared.
type UserRepository struct {
	*table[*user.User, models.UserModel]
}

var _ user.Repository = (*UserRepository)(nil)

func NewUserRepository(gdb *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{&table[*user.User, models.UserModel]{
		db:       gdb,
		logger:   logger,
		label:    "user",
		toModel:  mappers.UserToModel,
		toDomain: mappers.UserToDomain,
		modelID:  func(m *models.UserModel) uint { return m.ID },
		unique:   []string{"email"},
		onDelete: userRules(),
	}}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(userSortColumns, "id DESC"),
		db.WhereIf(filter.Role != "", "role = ?", filter.Role),
		search(filter.Search, "email", "full_name"),
	)
}

// StatusHistoryRepository is append-only.
type StatusHistoryRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

var _ statushistory.Repository = (*StatusHistoryRepository)(nil)

func NewStatusHistoryRepository(gdb *gorm.DB, logger logger.Interface) *StatusHistoryRepository {
	return &StatusHistoryRepository{db: gdb, logger: logger}
}

func (r *StatusHistoryRepository) Create(ctx context.Context, change *statushistory.StatusChange) error {
	model := mappers.StatusChangeToModel(change)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to record status change",
			"entity_type", change.EntityType(),
			"entity_id", change.EntityID(),
			"error", err,
		)
		return fmt.Errorf("failed to record status change: %w", err)
	}
	return change.SetID(model.ID)
}

// List returns changes newest first.
func (r *StatusHistoryRepository) List(ctx context.Context, filter statushistory.Filter) ([]*statushistory.StatusChange, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.StatusChangeModel{}).Scopes(
		db.WhereIf(filter.EntityType != "", "entity_type = ?", filter.EntityType),
		db.WhereIf(filter.EntityID != 0, "entity_id = ?", filter.EntityID),
	)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count status changes: %w", err)
	}

	var rows []models.StatusChangeModel
	if err := q.Order("changed_at DESC, id DESC").Scopes(db.Paginate(filter.PageFilter)).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list status changes", "error", err)
		return nil, 0, fmt.Errorf("failed to list status changes: %w", err)
	}

	changes := make([]*statushistory.StatusChange, 0, len(rows))
	for i := range rows {
		change, err := mappers.StatusChangeToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		changes = append(changes, change)
	}
	return changes, total, nil
}
