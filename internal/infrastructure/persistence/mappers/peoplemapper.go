package mappers

import (
	"campus/internal/domain/news"
	"campus/internal/domain/staff"
	"campus/internal/domain/visits"
	vo "campus/internal/domain/visits/valueobjects"
	"campus/internal/infrastructure/persistence/models"
)

func StaffMemberToModel(s *staff.StaffMember) *models.StaffMemberModel {
	det := s.Details()
	return &models.StaffMemberModel{
		ID:         s.ID(),
		FullName:   det.FullName,
		Department: det.Department,
		Title:      det.Title,
		Email:      det.Email,
		CreatedAt:  s.CreatedAt(),
		UpdatedAt:  s.UpdatedAt(),
	}
}

func StaffMemberToDomain(m *models.StaffMemberModel) (*staff.StaffMember, error) {
	return staff.ReconstructStaffMember(m.ID, staff.MemberDetails{
		FullName:   m.FullName,
		Department: m.Department,
		Title:      m.Title,
		Email:      m.Email,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func LeadershipToModel(l *staff.Leadership) *models.LeadershipModel {
	det := l.Details()
	return &models.LeadershipModel{
		ID:        l.ID(),
		UserID:    det.UserID,
		FullName:  det.FullName,
		Position:  det.Position,
		Biography: det.Biography,
		Email:     det.Email,
		Phone:     det.Phone,
		IsActive:  det.IsActive,
		CreatedAt: l.CreatedAt(),
		UpdatedAt: l.UpdatedAt(),
	}
}

func LeadershipToDomain(m *models.LeadershipModel) (*staff.Leadership, error) {
	return staff.ReconstructLeadership(m.ID, staff.LeaderDetails{
		UserID:    m.UserID,
		FullName:  m.FullName,
		Position:  m.Position,
		Biography: m.Biography,
		Email:     m.Email,
		Phone:     m.Phone,
		IsActive:  m.IsActive,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func VisitDepartmentToModel(d *visits.Department) *models.VisitDepartmentModel {
	return &models.VisitDepartmentModel{ID: d.ID(), Name: d.Name()}
}

func VisitDepartmentToDomain(m *models.VisitDepartmentModel) (*visits.Department, error) {
	return visits.ReconstructDepartment(m.ID, m.Name), nil
}

func VisitRequestToModel(v *visits.VisitRequest) *models.VisitRequestModel {
	return &models.VisitRequestModel{
		ID:                   v.ID(),
		RequesterID:          v.RequesterID(),
		DepartmentID:         v.DepartmentID(),
		Reason:               v.Reason(),
		CreatedBySecretaryID: v.CreatedBySecretary(),
		Status:               v.Status().String(),
		HeadNote:             v.HeadNote(),
		RespondedByID:        v.RespondedBy(),
		RespondedAt:          v.RespondedAt(),
		CreatedAt:            v.CreatedAt(),
		UpdatedAt:            v.UpdatedAt(),
	}
}

func VisitRequestToDomain(m *models.VisitRequestModel) (*visits.VisitRequest, error) {
	return visits.ReconstructVisitRequest(
		m.ID,
		m.RequesterID,
		m.DepartmentID,
		m.Reason,
		m.CreatedBySecretaryID,
		vo.VisitStatus(m.Status),
		m.HeadNote,
		m.RespondedByID,
		m.RespondedAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func NewsPostToModel(p *news.NewsPost) *models.NewsPostModel {
	det := p.Details()
	return &models.NewsPostModel{
		ID:          p.ID(),
		Title:       det.Title,
		Slug:        det.Slug,
		Summary:     det.Summary,
		Content:     det.Content,
		PhotoPath:   det.PhotoPath,
		IsFeatured:  det.IsFeatured,
		PublishedAt: det.PublishedAt,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func NewsPostToDomain(m *models.NewsPostModel) (*news.NewsPost, error) {
	return news.ReconstructNewsPost(m.ID, news.PostDetails{
		Title:       m.Title,
		Slug:        m.Slug,
		Summary:     m.Summary,
		Content:     m.Content,
		PhotoPath:   m.PhotoPath,
		IsFeatured:  m.IsFeatured,
		PublishedAt: m.PublishedAt,
	}, m.CreatedAt, m.UpdatedAt), nil
}
