package mappers

import (
	"campus/internal/domain/admissions"
	vo "campus/internal/domain/admissions/valueobjects"
	"campus/internal/infrastructure/persistence/models"
)

func CycleToModel(c *admissions.AdmissionCycle) *models.AdmissionCycleModel {
	det := c.Details()
	return &models.AdmissionCycleModel{
		ID:                     c.ID(),
		Year:                   det.Year,
		StartDate:              det.StartDate,
		EndDate:                det.EndDate,
		ApplicationDeadline:    det.ApplicationDeadline,
		ResultAnnouncementDate: det.ResultAnnouncementDate,
		IsActive:               det.IsActive,
		Description:            det.Description,
		CreatedAt:              c.CreatedAt(),
	}
}

func CycleToDomain(m *models.AdmissionCycleModel) (*admissions.AdmissionCycle, error) {
	return admissions.ReconstructAdmissionCycle(m.ID, admissions.CycleDetails{
		Year:                   m.Year,
		StartDate:              m.StartDate,
		EndDate:                m.EndDate,
		ApplicationDeadline:    m.ApplicationDeadline,
		ResultAnnouncementDate: m.ResultAnnouncementDate,
		IsActive:               m.IsActive,
		Description:            m.Description,
	}, m.CreatedAt), nil
}

func RequirementToModel(r *admissions.Requirement) *models.RequirementModel {
	det := r.Details()
	return &models.RequirementModel{
		ID:           r.ID(),
		ProgramID:    det.ProgramID,
		Title:        det.Title,
		Description:  det.Description,
		DocumentType: det.DocumentType,
		IsMandatory:  det.IsMandatory,
		CreatedAt:    r.CreatedAt(),
	}
}

func RequirementToDomain(m *models.RequirementModel) (*admissions.Requirement, error) {
	return admissions.ReconstructRequirement(m.ID, admissions.RequirementDetails{
		ProgramID:    m.ProgramID,
		Title:        m.Title,
		Description:  m.Description,
		DocumentType: m.DocumentType,
		IsMandatory:  m.IsMandatory,
	}, m.CreatedAt), nil
}

func ApplicantToModel(a *admissions.Applicant) *models.ApplicantModel {
	det := a.Details()
	return &models.ApplicantModel{
		ID:                a.ID(),
		CycleID:           det.CycleID,
		ProgramID:         det.ProgramID,
		FirstName:         det.FirstName,
		LastName:          det.LastName,
		Email:             det.Email,
		Phone:             det.Phone,
		DateOfBirth:       det.DateOfBirth,
		Nationality:       det.Nationality,
		GPA:               det.GPA,
		Status:            a.Status().String(),
		DocumentsUploaded: a.DocumentsUploaded(),
		Notes:             det.Notes,
		AppliedAt:         a.AppliedAt(),
		UpdatedAt:         a.UpdatedAt(),
	}
}

func ApplicantToDomain(m *models.ApplicantModel) (*admissions.Applicant, error) {
	return admissions.ReconstructApplicant(m.ID, admissions.ApplicantDetails{
		CycleID:     m.CycleID,
		ProgramID:   m.ProgramID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       m.Phone,
		DateOfBirth: m.DateOfBirth,
		Nationality: m.Nationality,
		GPA:         m.GPA,
		Notes:       m.Notes,
	}, vo.ApplicantStatus(m.Status), m.DocumentsUploaded, m.AppliedAt, m.UpdatedAt)
}

func DocumentToModel(d *admissions.ApplicantDocument) *models.ApplicantDocumentModel {
	det := d.Details()
	return &models.ApplicantDocumentModel{
		ID:             d.ID(),
		ApplicantID:    det.ApplicantID,
		RequirementID:  det.RequirementID,
		FilePath:       det.FilePath,
		Classification: det.Classification,
		UploadedAt:     d.UploadedAt(),
	}
}

func DocumentToDomain(m *models.ApplicantDocumentModel) (*admissions.ApplicantDocument, error) {
	return admissions.ReconstructApplicantDocument(m.ID, admissions.DocumentDetails{
		ApplicantID:    m.ApplicantID,
		RequirementID:  m.RequirementID,
		FilePath:       m.FilePath,
		Classification: m.Classification,
	}, m.UploadedAt), nil
}
