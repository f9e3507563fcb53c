package announcements

import (
	"strings"
	"time"

	app "campus/internal/application/announcements"
	"campus/internal/domain/announcements"
	vo "campus/internal/domain/announcements/valueobjects"
	"campus/internal/shared/biztime"
)

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"max=100"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,hexcolor,len=7"`
	Icon        string `json:"icon" binding:"max=50"`
	IsActive    *bool  `json:"is_active"`
}

type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func categoryDetails(r CategoryRequest) (announcements.CategoryDetails, error) {
	return announcements.CategoryDetails{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Color:       r.Color,
		Icon:        r.Icon,
		IsActive:    r.IsActive == nil || *r.IsActive,
	}, nil
}

func categoryRequest(d announcements.CategoryDetails) CategoryRequest {
	active := d.IsActive
	return CategoryRequest{Name: d.Name, Slug: d.Slug, Description: d.Description, Color: d.Color, Icon: d.Icon, IsActive: &active}
}

func toCategoryResponse(c *announcements.AnnouncementCategory) any {
	d := c.Details()
	return CategoryResponse{
		ID:          c.ID(),
		Name:        d.Name,
		Slug:        d.Slug,
		Description: d.Description,
		Color:       d.Color,
		Icon:        d.Icon,
		IsActive:    d.IsActive,
		CreatedAt:   c.CreatedAt(),
	}
}

// AnnouncementRequest takes tags as one comma separated string.
type AnnouncementRequest struct {
	Title                 string     `json:"title" binding:"required,max=255"`
	Slug                  string     `json:"slug" binding:"max=255"`
	Content               string     `json:"content" binding:"required"`
	Summary               string     `json:"summary" binding:"max=500"`
	CategoryID            uint       `json:"category_id" binding:"required"`
	Priority              string     `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	PublishedAt           *time.Time `json:"published_at"`
	ExpiryAt              *time.Time `json:"expiry_at"`
	IsFeatured            bool       `json:"is_featured"`
	IsSticky              bool       `json:"is_sticky"`
	TargetAudience        string     `json:"target_audience" binding:"omitempty,oneof=all students faculty staff alumni public"`
	AllowComments         *bool      `json:"allow_comments"`
	RequireAcknowledgment bool       `json:"require_acknowledgment"`
	Tags                  string     `json:"tags"`
}

type AnnouncementResponse struct {
	ID                    uint       `json:"id"`
	Title                 string     `json:"title"`
	Slug                  string     `json:"slug"`
	Content               string     `json:"content"`
	ContentHTML           string     `json:"content_html,omitempty"`
	Summary               string     `json:"summary"`
	CategoryID            uint       `json:"category_id"`
	Priority              string     `json:"priority"`
	Status                string     `json:"status"`
	IsPublished           bool       `json:"is_published"`
	PublishedAt           *time.Time `json:"published_at"`
	ExpiryAt              *time.Time `json:"expiry_at"`
	IsFeatured            bool       `json:"is_featured"`
	IsSticky              bool       `json:"is_sticky"`
	TargetAudience        string     `json:"target_audience"`
	ViewCount             int        `json:"view_count"`
	AllowComments         bool       `json:"allow_comments"`
	RequireAcknowledgment bool       `json:"require_acknowledgment"`
	Tags                  []string   `json:"tags"`
	CreatedBy             *uint      `json:"created_by"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func announcementDetails(r AnnouncementRequest) (announcements.AnnouncementDetails, error) {
	return announcements.AnnouncementDetails{
		Title:                 r.Title,
		Slug:                  r.Slug,
		Content:               r.Content,
		Summary:               r.Summary,
		CategoryID:            r.CategoryID,
		Priority:              vo.Priority(r.Priority),
		PublishedAt:           r.PublishedAt,
		ExpiryAt:              r.ExpiryAt,
		IsFeatured:            r.IsFeatured,
		IsSticky:              r.IsSticky,
		TargetAudience:        vo.Audience(r.TargetAudience),
		AllowComments:         r.AllowComments == nil || *r.AllowComments,
		RequireAcknowledgment: r.RequireAcknowledgment,
		Tags:                  announcements.ParseTags(r.Tags),
	}, nil
}

func announcementRequest(d announcements.AnnouncementDetails) AnnouncementRequest {
	allow := d.AllowComments
	return AnnouncementRequest{
		Title:                 d.Title,
		Slug:                  d.Slug,
		Content:               d.Content,
		Summary:               d.Summary,
		CategoryID:            d.CategoryID,
		Priority:              string(d.Priority),
		PublishedAt:           d.PublishedAt,
		ExpiryAt:              d.ExpiryAt,
		IsFeatured:            d.IsFeatured,
		IsSticky:              d.IsSticky,
		TargetAudience:        string(d.TargetAudience),
		AllowComments:         &allow,
		RequireAcknowledgment: d.RequireAcknowledgment,
		Tags:                  strings.Join(d.Tags, ","),
	}
}

func toAnnouncementResponse(a *announcements.Announcement) any {
	return announcementView(a, "")
}

func toPublishedResponse(p *app.Published) AnnouncementResponse {
	return announcementView(p.Announcement, p.HTML)
}

func announcementView(a *announcements.Announcement, html string) AnnouncementResponse {
	d := a.Details()
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return AnnouncementResponse{
		ID:                    a.ID(),
		Title:                 d.Title,
		Slug:                  d.Slug,
		Content:               d.Content,
		ContentHTML:           html,
		Summary:               d.Summary,
		CategoryID:            d.CategoryID,
		Priority:              string(d.Priority),
		Status:                a.Status().String(),
		IsPublished:           a.IsPublished(biztime.NowUTC()),
		PublishedAt:           d.PublishedAt,
		ExpiryAt:              d.ExpiryAt,
		IsFeatured:            d.IsFeatured,
		IsSticky:              d.IsSticky,
		TargetAudience:        string(d.TargetAudience),
		ViewCount:             a.ViewCount(),
		AllowComments:         d.AllowComments,
		RequireAcknowledgment: d.RequireAcknowledgment,
		Tags:                  tags,
		CreatedBy:             a.CreatedBy(),
		CreatedAt:             a.CreatedAt(),
		UpdatedAt:             a.UpdatedAt(),
	}
}

type DistributionRequest struct {
	AnnouncementID uint       `json:"announcement_id" binding:"required"`
	Method         string     `json:"method" binding:"required,oneof=email sms push dashboard all"`
	RecipientGroup string     `json:"recipient_group" binding:"max=100"`
	RecipientCount int        `json:"recipient_count" binding:"gte=0"`
	ScheduledFor   *time.Time `json:"scheduled_for"`
}

type DistributionResponse struct {
	ID             uint       `json:"id"`
	AnnouncementID uint       `json:"announcement_id"`
	Method         string     `json:"method"`
	RecipientGroup string     `json:"recipient_group"`
	RecipientCount int        `json:"recipient_count"`
	Status         string     `json:"status"`
	ScheduledFor   *time.Time `json:"scheduled_for"`
	SentAt         *time.Time `json:"sent_at"`
	SuccessCount   int        `json:"success_count"`
	FailureCount   int        `json:"failure_count"`
	FailureReason  string     `json:"failure_reason"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func distributionDetails(r DistributionRequest) (announcements.DistributionDetails, error) {
	return announcements.DistributionDetails{
		AnnouncementID: r.AnnouncementID,
		Method:         vo.Method(r.Method),
		RecipientGroup: r.RecipientGroup,
		RecipientCount: r.RecipientCount,
		ScheduledFor:   r.ScheduledFor,
	}, nil
}

func distributionRequest(d announcements.DistributionDetails) DistributionRequest {
	return DistributionRequest{
		AnnouncementID: d.AnnouncementID,
		Method:         string(d.Method),
		RecipientGroup: d.RecipientGroup,
		RecipientCount: d.RecipientCount,
		ScheduledFor:   d.ScheduledFor,
	}
}

func toDistributionResponse(d *announcements.Distribution) any {
	det := d.Details()
	return DistributionResponse{
		ID:             d.ID(),
		AnnouncementID: det.AnnouncementID,
		Method:         string(det.Method),
		RecipientGroup: det.RecipientGroup,
		RecipientCount: det.RecipientCount,
		Status:         d.Status().String(),
		ScheduledFor:   det.ScheduledFor,
		SentAt:         d.SentAt(),
		SuccessCount:   d.SuccessCount(),
		FailureCount:   d.FailureCount(),
		FailureReason:  d.FailureReason(),
		CreatedAt:      d.CreatedAt(),
		UpdatedAt:      d.UpdatedAt(),
	}
}

type DispatchRequest struct {
	Recipients []string `json:"recipients" binding:"required,min=1,dive,email"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type ApproveCommentsRequest struct {
	IDs      []uint `json:"ids" binding:"required,min=1"`
	Approved *bool  `json:"approved" binding:"required"`
}

type CommentResponse struct {
	ID             uint      `json:"id"`
	AnnouncementID uint      `json:"announcement_id"`
	UserID         *uint     `json:"user_id"`
	Content        string    `json:"content"`
	IsApproved     bool      `json:"is_approved"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCommentResponse(c *announcements.Comment) CommentResponse {
	return CommentResponse{
		ID:             c.ID(),
		AnnouncementID: c.AnnouncementID(),
		UserID:         c.UserID(),
		Content:        c.Content(),
		IsApproved:     c.IsApproved(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

type AcknowledgeRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}

type AcknowledgmentResponse struct {
	ID             uint      `json:"id"`
	AnnouncementID uint      `json:"announcement_id"`
	UserID         uint      `json:"user_id"`
	Notes          string    `json:"notes"`
	AcknowledgedAt time.Time `json:"acknowledged_at"`
}

func toAcknowledgmentResponse(a *announcements.Acknowledgment) AcknowledgmentResponse {
	return AcknowledgmentResponse{
		ID:             a.ID(),
		AnnouncementID: a.AnnouncementID(),
		UserID:         a.UserID(),
		Notes:          a.Notes(),
		AcknowledgedAt: a.AcknowledgedAt(),
	}
}

type AnalyticsResponse struct {
	AnnouncementID   uint  `json:"announcement_id"`
	Views            int   `json:"views"`
	Comments         int64 `json:"comments"`
	ApprovedComments int64 `json:"approved_comments"`
	Acknowledgments  int64 `json:"acknowledgments"`
}

func toAnalyticsResponse(a *announcements.Analytics) AnalyticsResponse {
	return AnalyticsResponse(*a)
}

type AttachmentRequest struct {
	AnnouncementID uint   `json:"announcement_id" binding:"required"`
	FilePath       string `json:"file" binding:"required,max=255"`
	Filename       string `json:"filename" binding:"max=255"`
}

type AttachmentResponse struct {
	ID             uint      `json:"id"`
	AnnouncementID uint      `json:"announcement_id"`
	File           string    `json:"file"`
	Filename       string    `json:"filename"`
	FileType       string    `json:"file_type"`
	DownloadCount  int       `json:"download_count"`
	UploadedBy     *uint     `json:"uploaded_by"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

func attachmentDetails(r AttachmentRequest) (announcements.AttachmentDetails, error) {
	return announcements.AttachmentDetails(r), nil
}

func attachmentRequest(d announcements.AttachmentDetails) AttachmentRequest {
	return AttachmentRequest(d)
}

func toAttachmentResponse(a *announcements.Attachment) any {
	d := a.Details()
	return AttachmentResponse{
		ID:             a.ID(),
		AnnouncementID: d.AnnouncementID,
		File:           d.FilePath,
		Filename:       d.Filename,
		FileType:       a.FileType(),
		DownloadCount:  a.DownloadCount(),
		UploadedBy:     a.UploadedBy(),
		UploadedAt:     a.UploadedAt(),
	}
}

type TemplateRequest struct {
	Name            string `json:"name" binding:"required,max=200"`
	Description     string `json:"description"`
	ContentTemplate string `json:"content_template" binding:"required"`
	CategoryID      *uint  `json:"category_id"`
	IsActive        *bool  `json:"is_active"`
}

type TemplateResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	ContentTemplate string    `json:"content_template"`
	Placeholders    []string  `json:"placeholders"`
	CategoryID      *uint     `json:"category_id"`
	IsActive        bool      `json:"is_active"`
	CreatedBy       *uint     `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RenderRequest struct {
	Values map[string]string `json:"values"`
}

type RenderResponse struct {
	Content string   `json:"content"`
	Missing []string `json:"missing"`
}

func templateDetails(r TemplateRequest) (announcements.TemplateDetails, error) {
	return announcements.TemplateDetails{
		Name:            r.Name,
		Description:     r.Description,
		ContentTemplate: r.ContentTemplate,
		CategoryID:      r.CategoryID,
		IsActive:        r.IsActive == nil || *r.IsActive,
	}, nil
}

func templateRequest(d announcements.TemplateDetails) TemplateRequest {
	active := d.IsActive
	return TemplateRequest{
		Name:            d.Name,
		Description:     d.Description,
		ContentTemplate: d.ContentTemplate,
		CategoryID:      d.CategoryID,
		IsActive:        &active,
	}
}

func toTemplateResponse(t *announcements.Template) any {
	d := t.Details()
	return TemplateResponse{
		ID:              t.ID(),
		Name:            d.Name,
		Description:     d.Description,
		ContentTemplate: d.ContentTemplate,
		Placeholders:    t.Placeholders(),
		CategoryID:      d.CategoryID,
		IsActive:        d.IsActive,
		CreatedBy:       t.CreatedBy(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}
