// Package jobs models vacancies and the applications submitted to them.
package jobs

import (
	"fmt"
	"strings"
	"time"

	vo "campus/internal/domain/jobs/valueobjects"
	"campus/internal/domain/shared"
)

type PostingDetails struct {
	Title          string
	Slug           string
	Department     string
	Position       string
	JobType        vo.JobType
	Description    string
	Requirements   string
	SalaryMinCents *int64
	SalaryMaxCents *int64
	Currency       string
	Deadline       time.Time
	PostedDate     time.Time
	IsActive       bool
}

func (p PostingDetails) normalize() (PostingDetails, error) {
	p.Title = strings.TrimSpace(p.Title)
	if err := shared.FirstError(
		shared.Required("title", p.Title),
		shared.MaxLength("title", p.Title, 255),
		shared.Required("description", p.Description),
		shared.MaxLength("department", p.Department, 255),
		shared.MaxLength("position", p.Position, 255),
	); err != nil {
		return p, err
	}
	if p.JobType == "" {
		p.JobType = vo.JobTypeFullTime
	}
	if !p.JobType.IsValid() {
		return p, shared.NewFieldError("job_type", "invalid job type: %s", p.JobType)
	}
	if p.Deadline.IsZero() {
		return p, shared.NewFieldError("deadline", "deadline is required")
	}
	if p.SalaryMinCents != nil && p.SalaryMaxCents != nil && *p.SalaryMaxCents < *p.SalaryMinCents {
		return p, shared.NewFieldError("salary_max_cents", "salary_max_cents must not be below salary_min_cents")
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	p.Currency = strings.ToUpper(p.Currency)
	if p.Slug == "" {
		p.Slug = shared.Slugify(p.Title)
	}
	return p, nil
}

// JobPosting is a vacancy. Deleting it removes its applications.
type JobPosting struct {
	shared.Base
	details PostingDetails
}

func NewJobPosting(details PostingDetails, today time.Time) (*JobPosting, error) {
	if details.PostedDate.IsZero() {
		details.PostedDate = today
	}
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &JobPosting{Base: shared.NewBase(), details: d}, nil
}

func ReconstructJobPosting(id uint, details PostingDetails, createdAt, updatedAt time.Time) *JobPosting {
	return &JobPosting{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (p *JobPosting) Details() PostingDetails {
	return p.details
}

func (p *JobPosting) Update(details PostingDetails) error {
	if details.PostedDate.IsZero() {
		details.PostedDate = p.details.PostedDate
	}
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	p.details = normalized
	p.Touch()
	return nil
}

// IsOpen reports whether applications are accepted on the given day.
func (p *JobPosting) IsOpen(today time.Time) bool {
	return p.details.IsActive && !p.details.Deadline.Before(today)
}

type ApplicationDetails struct {
	JobID       uint
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	CoverLetter string
	ResumePath  string
	Notes       string
}

func (a ApplicationDetails) normalize() (ApplicationDetails, error) {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	if a.JobID == 0 {
		return a, shared.NewFieldError("job_id", "job_id is required")
	}
	if err := shared.FirstError(
		shared.Required("first_name", a.FirstName),
		shared.Required("last_name", a.LastName),
		shared.MaxLength("phone", a.Phone, 30),
		shared.MaxLength("resume_path", a.ResumePath, 255),
	); err != nil {
		return a, err
	}
	email, err := shared.NormalizeEmail("email", a.Email)
	a.Email = email
	return a, err
}

// JobApplication is one candidate's application. A candidate applies to a
// posting at most once per email address.
type JobApplication struct {
	shared.Base
	details ApplicationDetails
	status  vo.ApplicationStatus
}

func NewJobApplication(details ApplicationDetails) (*JobApplication, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &JobApplication{Base: shared.NewBase(), details: d, status: vo.ApplicationSubmitted}, nil
}

// SubmitApplication is the public path: the posting must be open.
func SubmitApplication(posting *JobPosting, details ApplicationDetails, today time.Time) (*JobApplication, error) {
	if !posting.IsOpen(today) {
		return nil, fmt.Errorf("this job posting is closed for applications")
	}
	details.JobID = posting.ID()
	return NewJobApplication(details)
}

func ReconstructJobApplication(id uint, details ApplicationDetails, status vo.ApplicationStatus, createdAt, updatedAt time.Time) (*JobApplication, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid application status: %s", status)
	}
	return &JobApplication{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details, status: status}, nil
}

func (a *JobApplication) Details() ApplicationDetails  { return a.details }
func (a *JobApplication) Status() vo.ApplicationStatus { return a.status }
func (a *JobApplication) AppliedAt() time.Time         { return a.CreatedAt() }

func (a *JobApplication) Update(details ApplicationDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	a.details = normalized
	a.Touch()
	return nil
}

func (a *JobApplication) ChangeStatus(status vo.ApplicationStatus) error {
	if !status.IsValid() {
		return shared.NewFieldError("status", "invalid application status: %s", status)
	}
	a.status = status
	a.Touch()
	return nil
}
