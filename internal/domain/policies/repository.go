package policies

import (
	"context"

	"campus/internal/domain/shared"
	"campus/internal/shared/query"
)

type PolicyFilter struct {
	query.BaseFilter
	Category   string
	ActiveOnly bool
	Search     string
}

type PlanFilter struct {
	query.BaseFilter
	Year       int
	ActiveOnly bool
}

type PolicyRepository interface {
	shared.CRUD[*Policy]
	List(ctx context.Context, filter PolicyFilter) ([]*Policy, int64, error)
	GetBySlug(ctx context.Context, slug string) (*Policy, error)
}

type StrategicPlanRepository interface {
	shared.CRUD[*StrategicPlan]
	List(ctx context.Context, filter PlanFilter) ([]*StrategicPlan, int64, error)
}
