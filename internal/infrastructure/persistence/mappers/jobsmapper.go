package mappers

import (
	"campus/internal/domain/jobs"
	vo "campus/internal/domain/jobs/valueobjects"
	"campus/internal/infrastructure/persistence/models"
)

func PostingToModel(p *jobs.JobPosting) *models.JobPostingModel {
	det := p.Details()
	return &models.JobPostingModel{
		ID:             p.ID(),
		Title:          det.Title,
		Slug:           det.Slug,
		Department:     det.Department,
		Position:       det.Position,
		JobType:        det.JobType.String(),
		Description:    det.Description,
		Requirements:   det.Requirements,
		SalaryMinCents: det.SalaryMinCents,
		SalaryMaxCents: det.SalaryMaxCents,
		Currency:       det.Currency,
		Deadline:       det.Deadline,
		PostedDate:     det.PostedDate,
		IsActive:       det.IsActive,
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func PostingToDomain(m *models.JobPostingModel) (*jobs.JobPosting, error) {
	return jobs.ReconstructJobPosting(m.ID, jobs.PostingDetails{
		Title:          m.Title,
		Slug:           m.Slug,
		Department:     m.Department,
		Position:       m.Position,
		JobType:        vo.JobType(m.JobType),
		Description:    m.Description,
		Requirements:   m.Requirements,
		SalaryMinCents: m.SalaryMinCents,
		SalaryMaxCents: m.SalaryMaxCents,
		Currency:       m.Currency,
		Deadline:       m.Deadline,
		PostedDate:     m.PostedDate,
		IsActive:       m.IsActive,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func JobApplicationToModel(a *jobs.JobApplication) *models.JobApplicationModel {
	det := a.Details()
	return &models.JobApplicationModel{
		ID:          a.ID(),
		JobID:       det.JobID,
		FirstName:   det.FirstName,
		LastName:    det.LastName,
		Email:       det.Email,
		Phone:       det.Phone,
		CoverLetter: det.CoverLetter,
		ResumePath:  det.ResumePath,
		Status:      a.Status().String(),
		Notes:       det.Notes,
		AppliedAt:   a.AppliedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

func JobApplicationToDomain(m *models.JobApplicationModel) (*jobs.JobApplication, error) {
	return jobs.ReconstructJobApplication(m.ID, jobs.ApplicationDetails{
		JobID:       m.JobID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       m.Phone,
		CoverLetter: m.CoverLetter,
		ResumePath:  m.ResumePath,
		Notes:       m.Notes,
	}, vo.ApplicationStatus(m.Status), m.AppliedAt, m.UpdatedAt)
}
