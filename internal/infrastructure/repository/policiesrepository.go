package repository

import (
	"context"

	"gorm.io/gorm"

	"campus/internal/domain/policies"
	"campus/internal/infrastructure/persistence/mappers"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

var (
	policySortColumns = map[string]bool{"id": true, "title": true, "category": true, "published_date": true}
	planSortColumns   = map[string]bool{"id": true, "year": true, "title": true}
)

type PolicyRepository struct {
	*table[*policies.Policy, models.PolicyModel]
}

var _ policies.PolicyRepository = (*PolicyRepository)(nil)

func NewPolicyRepository(gdb *gorm.DB, logger logger.Interface) *PolicyRepository {
	return &PolicyRepository{&table[*policies.Policy, models.PolicyModel]{
		db:       gdb,
		logger:   logger,
		label:    "policy",
		toModel:  mappers.PolicyToModel,
		toDomain: mappers.PolicyToDomain,
		modelID:  func(m *models.PolicyModel) uint { return m.ID },
		unique:   []string{"slug"},
	}}
}

func (r *PolicyRepository) List(ctx context.Context, filter policies.PolicyFilter) ([]*policies.Policy, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(policySortColumns, "published_date DESC, id DESC"),
		db.WhereIf(filter.Category != "", "category = ?", filter.Category),
		db.WhereIf(filter.ActiveOnly, "is_active = ?", true),
		search(filter.Search, "title", "description"),
	)
}

func (r *PolicyRepository) GetBySlug(ctx context.Context, slug string) (*policies.Policy, error) {
	return r.first(ctx, "slug = ?", slug)
}

type StrategicPlanRepository struct {
	*table[*policies.StrategicPlan, models.StrategicPlanModel]
}

var _ policies.StrategicPlanRepository = (*StrategicPlanRepository)(nil)

func NewStrategicPlanRepository(gdb *gorm.DB, logger logger.Interface) *StrategicPlanRepository {
	return &StrategicPlanRepository{&table[*policies.StrategicPlan, models.StrategicPlanModel]{
		db:       gdb,
		logger:   logger,
		label:    "strategic plan",
		toModel:  mappers.PlanToModel,
		toDomain: mappers.PlanToDomain,
		modelID:  func(m *models.StrategicPlanModel) uint { return m.ID },
		unique:   []string{"slug"},
	}}
}

func (r *StrategicPlanRepository) List(ctx context.Context, filter policies.PlanFilter) ([]*policies.StrategicPlan, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(planSortColumns, "year DESC"),
		db.WhereIf(filter.Year != 0, "year = ?", filter.Year),
		db.WhereIf(filter.ActiveOnly, "is_active = ?", true),
	)
}
