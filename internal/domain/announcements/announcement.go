package announcements

import (
	"fmt"
	"strings"
	"time"

	vo "campus/internal/domain/announcements/valueobjects"
	"campus/internal/domain/shared"
	"campus/internal/shared/biztime"
)

type AnnouncementDetails struct {
	Title                 string
	Slug                  string
	Content               string
	Summary               string
	CategoryID            uint
	Priority              vo.Priority
	PublishedAt           *time.Time
	ExpiryAt              *time.Time
	IsFeatured            bool
	IsSticky              bool
	TargetAudience        vo.Audience
	AllowComments         bool
	RequireAcknowledgment bool
	Tags                  []string
}

func (a AnnouncementDetails) normalize() (AnnouncementDetails, error) {
	a.Title = strings.TrimSpace(a.Title)
	if err := shared.FirstError(
		shared.Required("title", a.Title),
		shared.MaxLength("title", a.Title, 255),
		shared.Required("content", a.Content),
		shared.MaxLength("summary", a.Summary, 500),
	); err != nil {
		return a, err
	}
	if a.CategoryID == 0 {
		return a, shared.NewFieldError("category_id", "category_id is required")
	}
	if a.Priority == "" {
		a.Priority = vo.PriorityNormal
	}
	if !a.Priority.IsValid() {
		return a, shared.NewFieldError("priority", "invalid priority: %s", a.Priority)
	}
	if a.TargetAudience == "" {
		a.TargetAudience = vo.AudienceAll
	}
	if !a.TargetAudience.IsValid() {
		return a, shared.NewFieldError("target_audience", "invalid target audience: %s", a.TargetAudience)
	}
	if a.PublishedAt != nil && a.ExpiryAt != nil && !a.ExpiryAt.After(*a.PublishedAt) {
		return a, shared.NewFieldError("expiry_at", "expiry_at must be after published_at")
	}
	if a.Slug == "" {
		a.Slug = shared.Slugify(a.Title)
	}
	a.Tags = cleanTags(a.Tags)
	return a, nil
}

// ParseTags splits a comma separated tag list.
func ParseTags(s string) []string {
	return cleanTags(strings.Split(s, ","))
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

type Announcement struct {
	shared.Base
	details   AnnouncementDetails
	status    vo.AnnouncementStatus
	viewCount int
	createdBy *uint
}

func NewAnnouncement(details AnnouncementDetails, createdBy *uint) (*Announcement, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Announcement{
		Base:      shared.NewBase(),
		details:   d,
		status:    vo.StatusDraft,
		createdBy: createdBy,
	}, nil
}

func ReconstructAnnouncement(
	id uint,
	details AnnouncementDetails,
	status vo.AnnouncementStatus,
	viewCount int,
	createdBy *uint,
	createdAt, updatedAt time.Time,
) (*Announcement, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid announcement status: %s", status)
	}
	return &Announcement{
		Base:      shared.ReconstructBase(id, createdAt, updatedAt),
		details:   details,
		status:    status,
		viewCount: viewCount,
		createdBy: createdBy,
	}, nil
}

func (a *Announcement) Details() AnnouncementDetails  { return a.details }
func (a *Announcement) Status() vo.AnnouncementStatus { return a.status }
func (a *Announcement) ViewCount() int                { return a.viewCount }
func (a *Announcement) CreatedBy() *uint              { return a.createdBy }

// Update replaces the editable fields. A blank slug keeps the current one.
func (a *Announcement) Update(details AnnouncementDetails) error {
	if details.Slug == "" {
		details.Slug = a.details.Slug
	}
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	a.details = normalized
	a.Touch()
	return nil
}

// SetSlug replaces the slug after de-duplication.
func (a *Announcement) SetSlug(slug string) {
	a.details.Slug = slug
}

func (a *Announcement) ChangeStatus(status vo.AnnouncementStatus) error {
	if !status.IsValid() {
		return shared.NewFieldError("status", "invalid announcement status: %s", status)
	}
	a.status = status
	a.Touch()
	return nil
}

// Publish sets the status to published and published_at to now.
func (a *Announcement) Publish() {
	a.status = vo.StatusPublished
	a.Touch()
	now := biztime.NowUTC()
	a.details.PublishedAt = &now
}

func (a *Announcement) SetFeatured(featured bool) {
	a.details.IsFeatured = featured
	a.Touch()
}

// IsPublished holds when the status is published, the publish time is not
// in the future and the expiry time is not in the past.
func (a *Announcement) IsPublished(now time.Time) bool {
	if a.status != vo.StatusPublished {
		return false
	}
	if a.details.PublishedAt != nil && a.details.PublishedAt.After(now) {
		return false
	}
	if a.details.ExpiryAt != nil && a.details.ExpiryAt.Before(now) {
		return false
	}
	return true
}

// Acknowledgment records that a user has read an announcement. A user
// acknowledges an announcement at most once.
type Acknowledgment struct {
	shared.Base
	announcementID uint
	userID         uint
	notes          string
}

func NewAcknowledgment(announcement *Announcement, userID uint, notes string) (*Acknowledgment, error) {
	if userID == 0 {
		return nil, shared.NewFieldError("user_id", "user_id is required")
	}
	if !announcement.IsPublished(biztime.NowUTC()) {
		return nil, fmt.Errorf("only published announcements can be acknowledged")
	}
	return &Acknowledgment{
		Base:           shared.NewBase(),
		announcementID: announcement.ID(),
		userID:         userID,
		notes:          notes,
	}, nil
}

func ReconstructAcknowledgment(id, announcementID, userID uint, notes string, acknowledgedAt time.Time) *Acknowledgment {
	return &Acknowledgment{
		Base:           shared.ReconstructBase(id, acknowledgedAt, acknowledgedAt),
		announcementID: announcementID,
		userID:         userID,
		notes:          notes,
	}
}

func (a *Acknowledgment) AnnouncementID() uint      { return a.announcementID }
func (a *Acknowledgment) UserID() uint              { return a.userID }
func (a *Acknowledgment) Notes() string             { return a.notes }
func (a *Acknowledgment) AcknowledgedAt() time.Time { return a.CreatedAt() }

type Comment struct {
	shared.Base
	announcementID uint
	userID         *uint
	content        string
	isApproved     bool
}

// NewComment fails when the announcement does not accept comments.
func NewComment(announcement *Announcement, userID *uint, content string) (*Comment, error) {
	if !announcement.Details().AllowComments {
		return nil, fmt.Errorf("comments are disabled for this announcement")
	}
	content = strings.TrimSpace(content)
	if err := shared.FirstError(
		shared.Required("content", content),
		shared.MaxLength("content", content, 2000),
	); err != nil {
		return nil, err
	}
	return &Comment{
		Base:           shared.NewBase(),
		announcementID: announcement.ID(),
		userID:         userID,
		content:        content,
		isApproved:     true,
	}, nil
}

func ReconstructComment(id, announcementID uint, userID *uint, content string, isApproved bool, createdAt, updatedAt time.Time) *Comment {
	return &Comment{
		Base:           shared.ReconstructBase(id, createdAt, updatedAt),
		announcementID: announcementID,
		userID:         userID,
		content:        content,
		isApproved:     isApproved,
	}
}

func (c *Comment) AnnouncementID() uint { return c.announcementID }
func (c *Comment) UserID() *uint        { return c.userID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) IsApproved() bool     { return c.isApproved }

func (c *Comment) SetApproved(approved bool) {
	c.isApproved = approved
	c.Touch()
}

func (c *Comment) Edit(content string) error {
	content = strings.TrimSpace(content)
	if err := shared.Required("content", content); err != nil {
		return err
	}
	c.content = content
	c.Touch()
	return nil
}
