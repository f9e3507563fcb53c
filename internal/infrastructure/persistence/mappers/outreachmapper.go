package mappers

import (
	"campus/internal/domain/outreach"
	vo "campus/internal/domain/outreach/valueobjects"
	"campus/internal/infrastructure/persistence/models"
)

func PartnerToModel(p *outreach.Partner) *models.PartnerModel {
	det := p.Details()
	return &models.PartnerModel{
		ID:           p.ID(),
		Name:         det.Name,
		Slug:         det.Slug,
		Website:      det.Website,
		ContactEmail: det.ContactEmail,
		LogoPath:     det.LogoPath,
		Description:  det.Description,
		StartDate:    det.StartDate,
		IsActive:     det.IsActive,
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func PartnerToDomain(m *models.PartnerModel) (*outreach.Partner, error) {
	return outreach.ReconstructPartner(m.ID, outreach.PartnerDetails{
		Name:         m.Name,
		Slug:         m.Slug,
		Website:      m.Website,
		ContactEmail: m.ContactEmail,
		LogoPath:     m.LogoPath,
		Description:  m.Description,
		StartDate:    m.StartDate,
		IsActive:     m.IsActive,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func AffiliateToModel(a *outreach.Affiliate) *models.AffiliateModel {
	det := a.Details()
	return &models.AffiliateModel{
		ID:           a.ID(),
		PartnerID:    det.PartnerID,
		Name:         det.Name,
		Slug:         det.Slug,
		ContactEmail: det.ContactEmail,
		LogoPath:     det.LogoPath,
		Description:  det.Description,
		AddedAt:      a.AddedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func AffiliateToDomain(m *models.AffiliateModel) (*outreach.Affiliate, error) {
	return outreach.ReconstructAffiliate(m.ID, outreach.AffiliateDetails{
		PartnerID:    m.PartnerID,
		Name:         m.Name,
		Slug:         m.Slug,
		ContactEmail: m.ContactEmail,
		LogoPath:     m.LogoPath,
		Description:  m.Description,
	}, m.AddedAt, m.UpdatedAt), nil
}

func EventToModel(e *outreach.Event) *models.EventModel {
	det := e.Details()
	return &models.EventModel{
		ID:            e.ID(),
		Title:         det.Title,
		Description:   det.Description,
		StartDatetime: det.StartAt,
		EndDatetime:   det.EndAt,
		Location:      det.Location,
		PhotoPath:     det.PhotoPath,
		CreatedAt:     e.CreatedAt(),
		UpdatedAt:     e.UpdatedAt(),
	}
}

func EventToDomain(m *models.EventModel) (*outreach.Event, error) {
	return outreach.ReconstructEvent(m.ID, outreach.EventDetails{
		Title:       m.Title,
		Description: m.Description,
		StartAt:     m.StartDatetime,
		EndAt:       m.EndDatetime,
		Location:    m.Location,
		PhotoPath:   m.PhotoPath,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func MediaFileToModel(f *outreach.MediaFile) *models.MediaFileModel {
	det := f.Details()
	return &models.MediaFileModel{
		ID:         f.ID(),
		Title:      det.Title,
		FileType:   det.FileType.String(),
		FilePath:   det.FilePath,
		UploadedAt: f.UploadedAt(),
		UpdatedAt:  f.UpdatedAt(),
	}
}

func MediaFileToDomain(m *models.MediaFileModel) (*outreach.MediaFile, error) {
	return outreach.ReconstructMediaFile(m.ID, outreach.MediaDetails{
		Title:    m.Title,
		FileType: vo.MediaType(m.FileType),
		FilePath: m.FilePath,
	}, m.UploadedAt, m.UpdatedAt), nil
}
