package outreach

import (
	"time"

	"campus/internal/domain/outreach"
	vo "campus/internal/domain/outreach/valueobjects"
	"campus/internal/shared/utils"
)

type PartnerRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Slug         string  `json:"slug" binding:"max=255"`
	Website      string  `json:"website" binding:"max=200"`
	ContactEmail string  `json:"contact_email" binding:"omitempty,email"`
	LogoPath     string  `json:"logo" binding:"max=255"`
	Description  string  `json:"description"`
	StartDate    *string `json:"start_date"`
	IsActive     *bool   `json:"is_active"`
}

type PartnerResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Website      string    `json:"website"`
	ContactEmail string    `json:"contact_email"`
	Logo         string    `json:"logo"`
	Description  string    `json:"description"`
	StartDate    *string   `json:"start_date"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PartnerDetailResponse is a public partner page with its affiliates.
type PartnerDetailResponse struct {
	PartnerResponse
	Affiliates []any `json:"affiliates"`
}

func partnerDetails(r PartnerRequest) (outreach.PartnerDetails, error) {
	start, err := utils.ParseOptionalDateField("start_date", r.StartDate)
	if err != nil {
		return outreach.PartnerDetails{}, err
	}
	return outreach.PartnerDetails{
		Name:         r.Name,
		Slug:         r.Slug,
		Website:      r.Website,
		ContactEmail: r.ContactEmail,
		LogoPath:     r.LogoPath,
		Description:  r.Description,
		StartDate:    start,
		IsActive:     r.IsActive == nil || *r.IsActive,
	}, nil
}

func partnerRequest(d outreach.PartnerDetails) PartnerRequest {
	active := d.IsActive
	return PartnerRequest{
		Name:         d.Name,
		Slug:         d.Slug,
		Website:      d.Website,
		ContactEmail: d.ContactEmail,
		LogoPath:     d.LogoPath,
		Description:  d.Description,
		StartDate:    utils.FormatOptionalDate(d.StartDate),
		IsActive:     &active,
	}
}

func toPartnerResponse(p *outreach.Partner) any {
	return partnerView(p)
}

func partnerView(p *outreach.Partner) PartnerResponse {
	d := p.Details()
	return PartnerResponse{
		ID:           p.ID(),
		Name:         d.Name,
		Slug:         d.Slug,
		Website:      d.Website,
		ContactEmail: d.ContactEmail,
		Logo:         d.LogoPath,
		Description:  d.Description,
		StartDate:    utils.FormatOptionalDate(d.StartDate),
		IsActive:     d.IsActive,
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

type AffiliateRequest struct {
	PartnerID    uint   `json:"partner_id" binding:"required"`
	Name         string `json:"name" binding:"required,max=255"`
	Slug         string `json:"slug" binding:"max=255"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	LogoPath     string `json:"logo" binding:"max=255"`
	Description  string `json:"description"`
}

type AffiliateResponse struct {
	ID           uint      `json:"id"`
	PartnerID    uint      `json:"partner_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ContactEmail string    `json:"contact_email"`
	Logo         string    `json:"logo"`
	Description  string    `json:"description"`
	AddedAt      time.Time `json:"added_at"`
}

func affiliateDetails(r AffiliateRequest) (outreach.AffiliateDetails, error) {
	return outreach.AffiliateDetails(r), nil
}

func affiliateRequest(d outreach.AffiliateDetails) AffiliateRequest {
	return AffiliateRequest(d)
}

func toAffiliateResponse(a *outreach.Affiliate) any {
	d := a.Details()
	return AffiliateResponse{
		ID:           a.ID(),
		PartnerID:    d.PartnerID,
		Name:         d.Name,
		Slug:         d.Slug,
		ContactEmail: d.ContactEmail,
		Logo:         d.LogoPath,
		Description:  d.Description,
		AddedAt:      a.AddedAt(),
	}
}

type EventRequest struct {
	Title         string     `json:"title" binding:"required,max=200"`
	Description   string     `json:"description" binding:"required"`
	StartDatetime time.Time  `json:"start_datetime" binding:"required"`
	EndDatetime   *time.Time `json:"end_datetime"`
	Location      string     `json:"location" binding:"max=255"`
	PhotoPath     string     `json:"photo" binding:"max=255"`
}

type EventResponse struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	StartDatetime time.Time  `json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime"`
	Location      string     `json:"location"`
	Photo         string     `json:"photo"`
	CreatedAt     time.Time  `json:"created_at"`
}

func eventDetails(r EventRequest) (outreach.EventDetails, error) {
	return outreach.EventDetails{
		Title:       r.Title,
		Description: r.Description,
		StartAt:     r.StartDatetime,
		EndAt:       r.EndDatetime,
		Location:    r.Location,
		PhotoPath:   r.PhotoPath,
	}, nil
}

func eventRequest(d outreach.EventDetails) EventRequest {
	return EventRequest{
		Title:         d.Title,
		Description:   d.Description,
		StartDatetime: d.StartAt,
		EndDatetime:   d.EndAt,
		Location:      d.Location,
		PhotoPath:     d.PhotoPath,
	}
}

func toEventResponse(e *outreach.Event) any {
	d := e.Details()
	return EventResponse{
		ID:            e.ID(),
		Title:         d.Title,
		Description:   d.Description,
		StartDatetime: d.StartAt,
		EndDatetime:   d.EndAt,
		Location:      d.Location,
		Photo:         d.PhotoPath,
		CreatedAt:     e.CreatedAt(),
	}
}

// MediaRequest may omit file_type; it is inferred from the file extension.
type MediaRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	FileType string `json:"file_type" binding:"omitempty,oneof=image video document"`
	FilePath string `json:"file" binding:"required,max=255"`
}

type MediaResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	FileType   string    `json:"file_type"`
	File       string    `json:"file"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func mediaDetails(r MediaRequest) (outreach.MediaDetails, error) {
	return outreach.MediaDetails{Title: r.Title, FileType: vo.MediaType(r.FileType), FilePath: r.FilePath}, nil
}

func mediaRequest(d outreach.MediaDetails) MediaRequest {
	return MediaRequest{Title: d.Title, FileType: d.FileType.String(), FilePath: d.FilePath}
}

func toMediaResponse(m *outreach.MediaFile) any {
	d := m.Details()
	return MediaResponse{
		ID:         m.ID(),
		Title:      d.Title,
		FileType:   d.FileType.String(),
		File:       d.FilePath,
		UploadedAt: m.UploadedAt(),
	}
}
