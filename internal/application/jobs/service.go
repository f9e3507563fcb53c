// Package jobs manages vacancies and the applications candidates send in.
package jobs

import (
	"context"

	"campus/internal/application/common"
	"campus/internal/application/common/crud"
	"campus/internal/application/common/lifecycle"
	"campus/internal/domain/jobs"
	vo "campus/internal/domain/jobs/valueobjects"
	"campus/internal/domain/shared"
	"campus/internal/shared/biztime"
	"campus/internal/shared/db"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
	"campus/internal/shared/query"
)

const EntityApplication = "job_application"

type (
	PostingService     = crud.Service[*jobs.JobPosting, jobs.PostingDetails, jobs.PostingFilter]
	ApplicationService = crud.Service[*jobs.JobApplication, jobs.ApplicationDetails, jobs.ApplicationFilter]
)

type Service struct {
	Postings          *PostingService
	Applications      *ApplicationService
	ApplicationStatus *lifecycle.ChangeStatusUseCase[*jobs.JobApplication]

	postings     jobs.JobPostingRepository
	applications jobs.JobApplicationRepository
	logger       logger.Interface
}

func NewService(postings jobs.JobPostingRepository, applications jobs.JobApplicationRepository, tx db.Transactor, journal *lifecycle.Journal, log logger.Interface) *Service {
	log = log.Named("jobs")
	s := &Service{postings: postings, applications: applications, logger: log}

	s.Postings = crud.NewService[*jobs.JobPosting, jobs.PostingDetails, jobs.PostingFilter](
		"job posting", postings,
		func(d jobs.PostingDetails, _ uint) (*jobs.JobPosting, error) {
			return jobs.NewJobPosting(d, biztime.Today())
		},
		tx, log).WithPrepare(s.assignSlug)
	s.Applications = crud.NewService[*jobs.JobApplication, jobs.ApplicationDetails, jobs.ApplicationFilter](
		EntityApplication, applications,
		func(d jobs.ApplicationDetails, _ uint) (*jobs.JobApplication, error) {
			return jobs.NewJobApplication(d)
		},
		tx, log).WithPrepare(s.checkApplication)

	s.ApplicationStatus = lifecycle.NewChangeStatusUseCase(ApplicationLifecycle(), applications, tx, journal, log)
	return s
}

func ApplicationLifecycle() lifecycle.Spec[*jobs.JobApplication] {
	return lifecycle.Spec[*jobs.JobApplication]{
		EntityType: EntityApplication,
		Valid:      vo.IsValidApplicationStatus,
		Current:    func(a *jobs.JobApplication) string { return a.Status().String() },
		Apply: func(a *jobs.JobApplication, status, _ string, _ uint) error {
			return a.ChangeStatus(vo.ApplicationStatus(status))
		},
	}
}

func (s *Service) assignSlug(ctx context.Context, id uint, d jobs.PostingDetails) (jobs.PostingDetails, error) {
	slug, err := common.DerivedSlug(ctx, common.SlugLookup(s.postings.GetBySlug), id, d.Slug, d.Title)
	if err != nil {
		return d, common.PersistenceError(err, "failed to check job posting slug")
	}
	d.Slug = slug
	return d, nil
}

// checkApplication keeps one application per email address per posting.
func (s *Service) checkApplication(ctx context.Context, id uint, d jobs.ApplicationDetails) (jobs.ApplicationDetails, error) {
	email, err := shared.NormalizeEmail("email", d.Email)
	if err != nil || d.JobID == 0 {
		return d, nil
	}
	exists, err := s.applications.ExistsForJob(ctx, d.JobID, email, id)
	if err != nil {
		return d, common.PersistenceError(err, "failed to check job application")
	}
	if exists {
		return d, shared.NewFieldError("email", "you have already applied for this position")
	}
	return d, nil
}

// ListOpen is the public vacancy list: active postings whose deadline has
// not passed.
func (s *Service) ListOpen(ctx context.Context, filter jobs.PostingFilter) ([]*jobs.JobPosting, int64, error) {
	today := biztime.Today()
	filter.ActiveOnly = true
	filter.OpenOn = &today
	return s.Postings.List(ctx, filter)
}

// GetOpenBySlug returns an open posting for the public detail page.
func (s *Service) GetOpenBySlug(ctx context.Context, slug string) (*jobs.JobPosting, error) {
	p, err := s.postings.GetBySlug(ctx, slug)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get job posting")
	}
	if !p.IsOpen(biztime.Today()) {
		return nil, errors.NewNotFoundError("job posting not found")
	}
	return p, nil
}

// Apply is the public submission path. Applications are accepted only while
// the posting is open.
func (s *Service) Apply(ctx context.Context, postingID uint, details jobs.ApplicationDetails) (*jobs.JobApplication, error) {
	posting, err := s.postings.GetByID(ctx, postingID)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get job posting")
	}
	details.JobID = posting.ID()
	if _, err := s.checkApplication(ctx, 0, details); err != nil {
		return nil, common.DomainError(err)
	}

	app, err := jobs.SubmitApplication(posting, details, biztime.Today())
	if err != nil {
		return nil, common.DomainError(err)
	}
	if err := s.applications.Create(ctx, app); err != nil {
		s.logger.Warnw("failed to store job application", "job_id", postingID, "error", err)
		return nil, common.PersistenceError(err, "failed to submit job application")
	}

	s.logger.Infow("job application submitted", "job_id", postingID, "application_id", app.ID())
	return app, nil
}

func (s *Service) ListApplicationsForJob(ctx context.Context, jobID uint, page query.PageFilter) ([]*jobs.JobApplication, int64, error) {
	if _, err := s.postings.GetByID(ctx, jobID); err != nil {
		return nil, 0, common.PersistenceError(err, "failed to get job posting")
	}
	return s.Applications.List(ctx, jobs.ApplicationFilter{BaseFilter: query.BaseFilter{PageFilter: page}, JobID: jobID})
}
