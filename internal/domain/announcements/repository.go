package announcements

import (
	"context"
	"time"

	"campus/internal/domain/shared"
	"campus/internal/shared/query"
)

type CategoryFilter struct {
	query.BaseFilter
	ActiveOnly bool
}

type AnnouncementFilter struct {
	query.BaseFilter
	Status     string
	CategoryID uint
	Priority   string
	Audience   string
	Featured   *bool
	Search     string
}

// PublishedFilter selects announcements visible at Now.
type PublishedFilter struct {
	query.PageFilter
	Now        time.Time
	CategoryID uint
	Audience   string
}

type CommentFilter struct {
	query.BaseFilter
	AnnouncementID uint
	ApprovedOnly   bool
}

type DistributionFilter struct {
	query.BaseFilter
	AnnouncementID uint
	Status         string
}

type AttachmentFilter struct {
	query.BaseFilter
	AnnouncementID uint
}

type TemplateFilter struct {
	query.BaseFilter
	CategoryID uint
	ActiveOnly bool
	Search     string
}

// Analytics are per-announcement engagement counts computed on read.
type Analytics struct {
	AnnouncementID   uint
	Views            int
	Comments         int64
	ApprovedComments int64
	Acknowledgments  int64
}

// AnnouncementCategoryRepository refuses to delete a category announcements
// use and clears it on templates.
type AnnouncementCategoryRepository interface {
	shared.CRUD[*AnnouncementCategory]
	List(ctx context.Context, filter CategoryFilter) ([]*AnnouncementCategory, int64, error)
}

// AnnouncementRepository deletes cascade to comments, acknowledgments,
// distributions and attachments.
type AnnouncementRepository interface {
	shared.CRUD[*Announcement]
	List(ctx context.Context, filter AnnouncementFilter) ([]*Announcement, int64, error)
	ListPublished(ctx context.Context, filter PublishedFilter) ([]*Announcement, int64, error)
	GetBySlug(ctx context.Context, slug string) (*Announcement, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error)
	IncrementViewCount(ctx context.Context, id uint) error
	Analytics(ctx context.Context, id uint) (*Analytics, error)
}

type AcknowledgmentRepository interface {
	Create(ctx context.Context, ack *Acknowledgment) error
	Exists(ctx context.Context, announcementID, userID uint) (bool, error)
	ListByAnnouncement(ctx context.Context, announcementID uint, page query.PageFilter) ([]*Acknowledgment, int64, error)
}

type CommentRepository interface {
	shared.CRUD[*Comment]
	List(ctx context.Context, filter CommentFilter) ([]*Comment, int64, error)
}

type DistributionRepository interface {
	shared.CRUD[*Distribution]
	List(ctx context.Context, filter DistributionFilter) ([]*Distribution, int64, error)
}

// AttachmentRepository lists the newest upload first.
type AttachmentRepository interface {
	shared.CRUD[*Attachment]
	List(ctx context.Context, filter AttachmentFilter) ([]*Attachment, int64, error)
	IncrementDownloadCount(ctx context.Context, id uint) error
}

type TemplateRepository interface {
	shared.CRUD[*Template]
	List(ctx context.Context, filter TemplateFilter) ([]*Template, int64, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
}
