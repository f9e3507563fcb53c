package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"campus/internal/domain/jobs"
	"campus/internal/infrastructure/persistence/mappers"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

var (
	postingSortColumns     = map[string]bool{"id": true, "title": true, "deadline": true, "posted_date": true}
	applicationSortColumns = map[string]bool{"id": true, "last_name": true, "status": true, "applied_at": true}
)

type JobPostingRepository struct {
	*table[*jobs.JobPosting, models.JobPostingModel]
}

var _ jobs.JobPostingRepository = (*JobPostingRepository)(nil)

func NewJobPostingRepository(gdb *gorm.DB, logger logger.Interface) *JobPostingRepository {
	return &JobPostingRepository{&table[*jobs.JobPosting, models.JobPostingModel]{
		db:       gdb,
		logger:   logger,
		label:    "job posting",
		toModel:  mappers.PostingToModel,
		toDomain: mappers.PostingToDomain,
		modelID:  func(m *models.JobPostingModel) uint { return m.ID },
		unique:   []string{"slug"},
		onDelete: jobPostingRules(),
	}}
}

func (r *JobPostingRepository) List(ctx context.Context, filter jobs.PostingFilter) ([]*jobs.JobPosting, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(postingSortColumns, "posted_date DESC, id DESC"),
		db.WhereIf(filter.JobType != "", "job_type = ?", filter.JobType),
		db.WhereIf(filter.Department != "", "department = ?", filter.Department),
		db.WhereIf(filter.ActiveOnly || filter.OpenOn != nil, "is_active = ?", true),
		db.WhereIf(filter.OpenOn != nil, "deadline >= ?", filter.OpenOn),
	)
}

func (r *JobPostingRepository) GetBySlug(ctx context.Context, slug string) (*jobs.JobPosting, error) {
	return r.first(ctx, "slug = ?", slug)
}

// JobApplicationRepository enforces one application per email and posting.
type JobApplicationRepository struct {
	*table[*jobs.JobApplication, models.JobApplicationModel]
}

var _ jobs.JobApplicationRepository = (*JobApplicationRepository)(nil)

func NewJobApplicationRepository(gdb *gorm.DB, logger logger.Interface) *JobApplicationRepository {
	return &JobApplicationRepository{&table[*jobs.JobApplication, models.JobApplicationModel]{
		db:       gdb,
		logger:   logger,
		label:    "job application",
		toModel:  mappers.JobApplicationToModel,
		toDomain: mappers.JobApplicationToDomain,
		modelID:  func(m *models.JobApplicationModel) uint { return m.ID },
		unique:   []string{"email"},
	}}
}

func (r *JobApplicationRepository) List(ctx context.Context, filter jobs.ApplicationFilter) ([]*jobs.JobApplication, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(applicationSortColumns, "applied_at DESC"),
		db.WhereIf(filter.JobID != 0, "job_id = ?", filter.JobID),
		db.WhereIf(filter.Status != "", "status = ?", filter.Status),
		search(filter.Search, "first_name", "last_name", "email"),
	)
}

func (r *JobApplicationRepository) ExistsForJob(ctx context.Context, jobID uint, email string, excludeID uint) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if excludeID == 0 {
		return r.exists(ctx, "job_id = ? AND email = ?", jobID, email)
	}
	return r.exists(ctx, "job_id = ? AND email = ? AND id <> ?", jobID, email, excludeID)
}
