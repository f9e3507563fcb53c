package staff

import (
	"context"

	"campus/internal/domain/shared"
	"campus/internal/shared/query"
)

type MemberFilter struct {
	query.BaseFilter
	Department string
	Search     string
}

type LeaderFilter struct {
	query.BaseFilter
	ActiveOnly bool
}

type StaffMemberRepository interface {
	shared.CRUD[*StaffMember]
	List(ctx context.Context, filter MemberFilter) ([]*StaffMember, int64, error)
}

type LeadershipRepository interface {
	shared.CRUD[*Leadership]
	List(ctx context.Context, filter LeaderFilter) ([]*Leadership, int64, error)
	GetByUserID(ctx context.Context, userID uint) (*Leadership, error)
}
