package repository

import (
	"context"

	"gorm.io/gorm"

	"campus/internal/domain/news"
	"campus/internal/domain/staff"
	"campus/internal/domain/visits"
	"campus/internal/infrastructure/persistence/mappers"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
	"campus/internal/shared/query"
)

var (
	staffSortColumns        = map[string]bool{"id": true, "full_name": true, "department": true}
	visitRequestSortColumns = map[string]bool{"id": true, "status": true, "created_at": true}
)

type StaffMemberRepository struct {
	*table[*staff.StaffMember, models.StaffMemberModel]
}

var _ staff.StaffMemberRepository = (*StaffMemberRepository)(nil)

func NewStaffMemberRepository(gdb *gorm.DB, logger logger.Interface) *StaffMemberRepository {
	return &StaffMemberRepository{&table[*staff.StaffMember, models.StaffMemberModel]{
		db:       gdb,
		logger:   logger,
		label:    "staff member",
		toModel:  mappers.StaffMemberToModel,
		toDomain: mappers.StaffMemberToDomain,
		modelID:  func(m *models.StaffMemberModel) uint { return m.ID },
	}}
}

func (r *StaffMemberRepository) List(ctx context.Context, filter staff.MemberFilter) ([]*staff.StaffMember, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(staffSortColumns, "full_name ASC"),
		db.WhereIf(filter.Department != "", "department = ?", filter.Department),
		search(filter.Search, "full_name", "title", "email"),
	)
}

// LeadershipRepository lists profiles newest first.
type LeadershipRepository struct {
	*table[*staff.Leadership, models.LeadershipModel]
}

var _ staff.LeadershipRepository = (*LeadershipRepository)(nil)

func NewLeadershipRepository(gdb *gorm.DB, logger logger.Interface) *LeadershipRepository {
	return &LeadershipRepository{&table[*staff.Leadership, models.LeadershipModel]{
		db:       gdb,
		logger:   logger,
		label:    "leadership profile",
		toModel:  mappers.LeadershipToModel,
		toDomain: mappers.LeadershipToDomain,
		modelID:  func(m *models.LeadershipModel) uint { return m.ID },
		unique:   []string{"user_id"},
	}}
}

func (r *LeadershipRepository) List(ctx context.Context, filter staff.LeaderFilter) ([]*staff.Leadership, int64, error) {
	return r.page(ctx, filter.PageFilter,
		"created_at DESC, id DESC",
		db.WhereIf(filter.ActiveOnly, "is_active = ?", true),
	)
}

func (r *LeadershipRepository) GetByUserID(ctx context.Context, userID uint) (*staff.Leadership, error) {
	return r.first(ctx, "user_id = ?", userID)
}

// VisitDepartmentRepository rejects deletes while visit requests point at
// the department.
type VisitDepartmentRepository struct {
	*table[*visits.Department, models.VisitDepartmentModel]
}

var _ visits.DepartmentRepository = (*VisitDepartmentRepository)(nil)

func NewVisitDepartmentRepository(gdb *gorm.DB, logger logger.Interface) *VisitDepartmentRepository {
	return &VisitDepartmentRepository{&table[*visits.Department, models.VisitDepartmentModel]{
		db:       gdb,
		logger:   logger,
		label:    "department",
		toModel:  mappers.VisitDepartmentToModel,
		toDomain: mappers.VisitDepartmentToDomain,
		modelID:  func(m *models.VisitDepartmentModel) uint { return m.ID },
		unique:   []string{"name"},
		onDelete: visitDepartmentRules(),
	}}
}

func (r *VisitDepartmentRepository) List(ctx context.Context, page query.PageFilter) ([]*visits.Department, int64, error) {
	return r.page(ctx, page, "name ASC")
}

type VisitRequestRepository struct {
	*table[*visits.VisitRequest, models.VisitRequestModel]
}

var _ visits.VisitRequestRepository = (*VisitRequestRepository)(nil)

func NewVisitRequestRepository(gdb *gorm.DB, logger logger.Interface) *VisitRequestRepository {
	return &VisitRequestRepository{&table[*visits.VisitRequest, models.VisitRequestModel]{
		db:       gdb,
		logger:   logger,
		label:    "visit request",
		toModel:  mappers.VisitRequestToModel,
		toDomain: mappers.VisitRequestToDomain,
		modelID:  func(m *models.VisitRequestModel) uint { return m.ID },
	}}
}

// List scopes to RequesterID when it is set.
func (r *VisitRequestRepository) List(ctx context.Context, filter visits.RequestFilter) ([]*visits.VisitRequest, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(visitRequestSortColumns, "created_at DESC"),
		db.WhereIf(filter.RequesterID != 0, "requester_id = ?", filter.RequesterID),
		db.WhereIf(filter.DepartmentID != 0, "department_id = ?", filter.DepartmentID),
		db.WhereIf(filter.Status != "", "status = ?", filter.Status),
	)
}

// NewsPostRepository orders posts by published_at, newest first; unpublished
// drafts sort last.
type NewsPostRepository struct {
	*table[*news.NewsPost, models.NewsPostModel]
}

var _ news.Repository = (*NewsPostRepository)(nil)

func NewNewsPostRepository(gdb *gorm.DB, logger logger.Interface) *NewsPostRepository {
	return &NewsPostRepository{&table[*news.NewsPost, models.NewsPostModel]{
		db:       gdb,
		logger:   logger,
		label:    "news post",
		toModel:  mappers.NewsPostToModel,
		toDomain: mappers.NewsPostToDomain,
		modelID:  func(m *models.NewsPostModel) uint { return m.ID },
		unique:   []string{"slug"},
	}}
}

func (r *NewsPostRepository) List(ctx context.Context, filter news.Filter) ([]*news.NewsPost, int64, error) {
	return r.page(ctx, filter.PageFilter,
		"CASE WHEN published_at IS NULL THEN 1 ELSE 0 END, published_at DESC, id DESC",
		db.WhereIf(filter.FeaturedOnly, "is_featured = ?", true),
	)
}

func (r *NewsPostRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return r.existsExcept(ctx, "slug", slug, excludeID)
}
