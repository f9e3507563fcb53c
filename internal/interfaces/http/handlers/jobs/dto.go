package jobs

import (
	"time"

	"campus/internal/domain/jobs"
	vo "campus/internal/domain/jobs/valueobjects"
	"campus/internal/shared/biztime"
	"campus/internal/shared/utils"
)

type PostingRequest struct {
	Title          string  `json:"title" binding:"required,max=200"`
	Slug           string  `json:"slug" binding:"max=200"`
	Department     string  `json:"department" binding:"required,max=200"`
	Position       string  `json:"position" binding:"required,max=200"`
	JobType        string  `json:"job_type" binding:"required,oneof=full-time part-time contract temporary internship"`
	Description    string  `json:"description" binding:"required"`
	Requirements   string  `json:"requirements"`
	SalaryMinCents *int64  `json:"salary_min_cents" binding:"omitempty,gte=0"`
	SalaryMaxCents *int64  `json:"salary_max_cents" binding:"omitempty,gte=0"`
	Currency       string  `json:"currency" binding:"omitempty,len=3"`
	Deadline       string  `json:"deadline"`
	PostedDate     *string `json:"posted_date"`
	IsActive       *bool   `json:"is_active"`
}

type PostingResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Department     string    `json:"department"`
	Position       string    `json:"position"`
	JobType        string    `json:"job_type"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	SalaryMinCents *int64    `json:"salary_min_cents"`
	SalaryMaxCents *int64    `json:"salary_max_cents"`
	Currency       string    `json:"currency"`
	Deadline       string    `json:"deadline"`
	PostedDate     string    `json:"posted_date"`
	IsActive       bool      `json:"is_active"`
	IsOpen         bool      `json:"is_open"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func postingDetails(r PostingRequest) (jobs.PostingDetails, error) {
	deadline, err := utils.ParseDateField("deadline", r.Deadline)
	if err != nil {
		return jobs.PostingDetails{}, err
	}
	posted, err := utils.ParseOptionalDateField("posted_date", r.PostedDate)
	if err != nil {
		return jobs.PostingDetails{}, err
	}
	d := jobs.PostingDetails{
		Title:          r.Title,
		Slug:           r.Slug,
		Department:     r.Department,
		Position:       r.Position,
		JobType:        vo.JobType(r.JobType),
		Description:    r.Description,
		Requirements:   r.Requirements,
		SalaryMinCents: r.SalaryMinCents,
		SalaryMaxCents: r.SalaryMaxCents,
		Currency:       r.Currency,
		Deadline:       deadline,
		IsActive:       r.IsActive == nil || *r.IsActive,
	}
	if posted != nil {
		d.PostedDate = *posted
	}
	return d, nil
}

func postingRequest(d jobs.PostingDetails) PostingRequest {
	posted := biztime.FormatDate(d.PostedDate)
	active := d.IsActive
	return PostingRequest{
		Title:          d.Title,
		Slug:           d.Slug,
		Department:     d.Department,
		Position:       d.Position,
		JobType:        d.JobType.String(),
		Description:    d.Description,
		Requirements:   d.Requirements,
		SalaryMinCents: d.SalaryMinCents,
		SalaryMaxCents: d.SalaryMaxCents,
		Currency:       d.Currency,
		Deadline:       biztime.FormatDate(d.Deadline),
		PostedDate:     &posted,
		IsActive:       &active,
	}
}

func toPostingResponse(p *jobs.JobPosting) any {
	d := p.Details()
	return PostingResponse{
		ID:             p.ID(),
		Title:          d.Title,
		Slug:           d.Slug,
		Department:     d.Department,
		Position:       d.Position,
		JobType:        d.JobType.String(),
		Description:    d.Description,
		Requirements:   d.Requirements,
		SalaryMinCents: d.SalaryMinCents,
		SalaryMaxCents: d.SalaryMaxCents,
		Currency:       d.Currency,
		Deadline:       biztime.FormatDate(d.Deadline),
		PostedDate:     biztime.FormatDate(d.PostedDate),
		IsActive:       d.IsActive,
		IsOpen:         p.IsOpen(biztime.Today()),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

type ApplicationRequest struct {
	JobID       uint   `json:"job_id" binding:"required"`
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"max=30"`
	CoverLetter string `json:"cover_letter"`
	ResumePath  string `json:"resume_path" binding:"max=255"`
	Notes       string `json:"notes"`
}

// ApplyRequest is the public submission; the posting comes from the path.
type ApplyRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"max=30"`
	CoverLetter string `json:"cover_letter"`
	ResumePath  string `json:"resume_path" binding:"max=255"`
}

type ApplicationResponse struct {
	ID          uint      `json:"id"`
	JobID       uint      `json:"job_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CoverLetter string    `json:"cover_letter"`
	ResumePath  string    `json:"resume_path"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func applicationDetails(r ApplicationRequest) (jobs.ApplicationDetails, error) {
	return jobs.ApplicationDetails(r), nil
}

func applicationRequest(d jobs.ApplicationDetails) ApplicationRequest {
	return ApplicationRequest(d)
}

func toApplicationResponse(a *jobs.JobApplication) any {
	d := a.Details()
	return ApplicationResponse{
		ID:          a.ID(),
		JobID:       d.JobID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Phone:       d.Phone,
		CoverLetter: d.CoverLetter,
		ResumePath:  d.ResumePath,
		Notes:       d.Notes,
		Status:      a.Status().String(),
		AppliedAt:   a.AppliedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}
