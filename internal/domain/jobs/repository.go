package jobs

import (
	"context"
	"time"

	"campus/internal/domain/shared"
	"campus/internal/shared/query"
)

type PostingFilter struct {
	query.BaseFilter
	JobType    string
	Department string
	ActiveOnly bool
	// OpenOn restricts to active postings whose deadline is not before it.
	OpenOn *time.Time
}

type ApplicationFilter struct {
	query.BaseFilter
	JobID  uint
	Status string
	Search string
}

type JobPostingRepository interface {
	shared.CRUD[*JobPosting]
	List(ctx context.Context, filter PostingFilter) ([]*JobPosting, int64, error)
	GetBySlug(ctx context.Context, slug string) (*JobPosting, error)
}

type JobApplicationRepository interface {
	shared.CRUD[*JobApplication]
	List(ctx context.Context, filter ApplicationFilter) ([]*JobApplication, int64, error)
	ExistsForJob(ctx context.Context, jobID uint, email string, excludeID uint) (bool, error)
}
