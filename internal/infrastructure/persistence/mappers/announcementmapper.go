package mappers

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"campus/internal/domain/announcements"
	vo "campus/internal/domain/announcements/valueobjects"
	"campus/internal/infrastructure/persistence/models"
)

func AnnouncementCategoryToModel(c *announcements.AnnouncementCategory) *models.AnnouncementCategoryModel {
	det := c.Details()
	return &models.AnnouncementCategoryModel{
		ID:          c.ID(),
		Name:        det.Name,
		Slug:        det.Slug,
		Description: det.Description,
		Color:       det.Color,
		Icon:        det.Icon,
		IsActive:    det.IsActive,
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func AnnouncementCategoryToDomain(m *models.AnnouncementCategoryModel) (*announcements.AnnouncementCategory, error) {
	return announcements.ReconstructAnnouncementCategory(m.ID, announcements.CategoryDetails{
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Color:       m.Color,
		Icon:        m.Icon,
		IsActive:    m.IsActive,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func AnnouncementToModel(a *announcements.Announcement) *models.AnnouncementModel {
	det := a.Details()
	return &models.AnnouncementModel{
		ID:                    a.ID(),
		Title:                 det.Title,
		Slug:                  det.Slug,
		Content:               det.Content,
		Summary:               det.Summary,
		CategoryID:            det.CategoryID,
		Priority:              det.Priority.String(),
		Status:                a.Status().String(),
		PublishedAt:           det.PublishedAt,
		ExpiryAt:              det.ExpiryAt,
		IsFeatured:            det.IsFeatured,
		IsSticky:              det.IsSticky,
		TargetAudience:        det.TargetAudience.String(),
		ViewCount:             a.ViewCount(),
		AllowComments:         det.AllowComments,
		RequireAcknowledgment: det.RequireAcknowledgment,
		Tags:                  datatypes.JSONSlice[string](det.Tags),
		CreatedByID:           a.CreatedBy(),
		CreatedAt:             a.CreatedAt(),
		UpdatedAt:             a.UpdatedAt(),
	}
}

func AnnouncementToDomain(m *models.AnnouncementModel) (*announcements.Announcement, error) {
	return announcements.ReconstructAnnouncement(m.ID, announcements.AnnouncementDetails{
		Title:                 m.Title,
		Slug:                  m.Slug,
		Content:               m.Content,
		Summary:               m.Summary,
		CategoryID:            m.CategoryID,
		Priority:              vo.Priority(m.Priority),
		PublishedAt:           m.PublishedAt,
		ExpiryAt:              m.ExpiryAt,
		IsFeatured:            m.IsFeatured,
		IsSticky:              m.IsSticky,
		TargetAudience:        vo.Audience(m.TargetAudience),
		AllowComments:         m.AllowComments,
		RequireAcknowledgment: m.RequireAcknowledgment,
		Tags:                  []string(m.Tags),
	}, vo.AnnouncementStatus(m.Status), m.ViewCount, m.CreatedByID, m.CreatedAt, m.UpdatedAt)
}

func AcknowledgmentToModel(a *announcements.Acknowledgment) *models.AcknowledgmentModel {
	return &models.AcknowledgmentModel{
		ID:             a.ID(),
		AnnouncementID: a.AnnouncementID(),
		UserID:         a.UserID(),
		Notes:          a.Notes(),
		AcknowledgedAt: a.AcknowledgedAt(),
	}
}

func AcknowledgmentToDomain(m *models.AcknowledgmentModel) (*announcements.Acknowledgment, error) {
	return announcements.ReconstructAcknowledgment(m.ID, m.AnnouncementID, m.UserID, m.Notes, m.AcknowledgedAt), nil
}

func CommentToModel(c *announcements.Comment) *models.AnnouncementCommentModel {
	return &models.AnnouncementCommentModel{
		ID:             c.ID(),
		AnnouncementID: c.AnnouncementID(),
		UserID:         c.UserID(),
		Content:        c.Content(),
		IsApproved:     c.IsApproved(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

func CommentToDomain(m *models.AnnouncementCommentModel) (*announcements.Comment, error) {
	return announcements.ReconstructComment(m.ID, m.AnnouncementID, m.UserID, m.Content, m.IsApproved, m.CreatedAt, m.UpdatedAt), nil
}

func DistributionToModel(d *announcements.Distribution) *models.DistributionModel {
	det := d.Details()
	model := &models.DistributionModel{
		ID:             d.ID(),
		AnnouncementID: det.AnnouncementID,
		Method:         det.Method.String(),
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
	if reason := d.FailureReason(); reason != "" {
		details, _ := json.Marshal(strings.Split(reason, "; "))
		model.FailureDetails = datatypes.JSON(details)
	}
	return model
}

func DistributionToDomain(m *models.DistributionModel) (*announcements.Distribution, error) {
	return announcements.ReconstructDistribution(m.ID, announcements.DistributionDetails{
		AnnouncementID: m.AnnouncementID,
		Method:         vo.Method(m.Method),
		RecipientGroup: m.RecipientGroup,
		RecipientCount: m.RecipientCount,
		ScheduledFor:   m.ScheduledFor,
	}, vo.DistributionStatus(m.Status), m.SentAt, m.SuccessCount, m.FailureCount, m.FailureReason, m.CreatedAt, m.UpdatedAt)
}

func AttachmentToModel(a *announcements.Attachment) *models.AttachmentModel {
	det := a.Details()
	return &models.AttachmentModel{
		ID:             a.ID(),
		AnnouncementID: det.AnnouncementID,
		FilePath:       det.FilePath,
		Filename:       det.Filename,
		FileType:       a.FileType(),
		UploadedByID:   a.UploadedBy(),
		DownloadCount:  a.DownloadCount(),
		UploadedAt:     a.UploadedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}

func AttachmentToDomain(m *models.AttachmentModel) (*announcements.Attachment, error) {
	return announcements.ReconstructAttachment(m.ID, announcements.AttachmentDetails{
		AnnouncementID: m.AnnouncementID,
		FilePath:       m.FilePath,
		Filename:       m.Filename,
	}, m.UploadedByID, m.DownloadCount, m.UploadedAt, m.UpdatedAt), nil
}

func TemplateToModel(t *announcements.Template) *models.TemplateModel {
	det := t.Details()
	return &models.TemplateModel{
		ID:              t.ID(),
		Name:            det.Name,
		Description:     det.Description,
		ContentTemplate: det.ContentTemplate,
		CategoryID:      det.CategoryID,
		IsActive:        det.IsActive,
		CreatedByID:     t.CreatedBy(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func TemplateToDomain(m *models.TemplateModel) (*announcements.Template, error) {
	return announcements.ReconstructTemplate(m.ID, announcements.TemplateDetails{
		Name:            m.Name,
		Description:     m.Description,
		ContentTemplate: m.ContentTemplate,
		CategoryID:      m.CategoryID,
		IsActive:        m.IsActive,
	}, m.CreatedByID, m.CreatedAt, m.UpdatedAt), nil
}
