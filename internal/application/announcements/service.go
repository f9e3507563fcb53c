// Package announcements publishes campus announcements and tracks how
// readers engage with them.
package announcements

import (
	"context"
	"fmt"
	"strings"

	"campus/internal/application/common"
	"campus/internal/application/common/crud"
	"campus/internal/application/common/lifecycle"
	"campus/internal/domain/announcements"
	vo "campus/internal/domain/announcements/valueobjects"
	"campus/internal/domain/shared"
	"campus/internal/shared/biztime"
	"campus/internal/shared/db"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
	"campus/internal/shared/query"
)

const (
	EntityAnnouncement = "announcement"
	EntityDistribution = "distribution"

	ActionPublish        = "publish"
	ActionExpire         = "expire"
	ActionArchive        = "archive"
	ActionMarkFeatured   = "mark_featured"
	ActionUnmarkFeatured = "unmark_featured"
)

// Renderer turns markdown into sanitized HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

// Mailer delivers one HTML message to one recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type (
	CategoryService     = crud.Service[*announcements.AnnouncementCategory, announcements.CategoryDetails, announcements.CategoryFilter]
	AnnouncementService = crud.Service[*announcements.Announcement, announcements.AnnouncementDetails, announcements.AnnouncementFilter]
	DistributionService = crud.Service[*announcements.Distribution, announcements.DistributionDetails, announcements.DistributionFilter]
	AttachmentService   = crud.Service[*announcements.Attachment, announcements.AttachmentDetails, announcements.AttachmentFilter]
	TemplateService     = crud.Service[*announcements.Template, announcements.TemplateDetails, announcements.TemplateFilter]
)

type Repositories struct {
	Categories      announcements.AnnouncementCategoryRepository
	Announcements   announcements.AnnouncementRepository
	Acknowledgments announcements.AcknowledgmentRepository
	Comments        announcements.CommentRepository
	Distributions   announcements.DistributionRepository
	Attachments     announcements.AttachmentRepository
	Templates       announcements.TemplateRepository
}

// Published is an announcement as the public surface shows it.
type Published struct {
	*announcements.Announcement
	HTML string
}

// Rendered is a template filled from caller values.
type Rendered struct {
	Content string
	Missing []string
}

type Service struct {
	Categories         *CategoryService
	Announcements      *AnnouncementService
	Distributions      *DistributionService
	Attachments        *AttachmentService
	Templates          *TemplateService
	AnnouncementStatus *lifecycle.ChangeStatusUseCase[*announcements.Announcement]
	DistributionStatus *lifecycle.ChangeStatusUseCase[*announcements.Distribution]

	repos    Repositories
	renderer Renderer
	mailer   Mailer
	tx       db.Transactor
	journal  *lifecycle.Journal
	logger   logger.Interface
}

func NewService(repos Repositories, renderer Renderer, mailer Mailer, tx db.Transactor, journal *lifecycle.Journal, log logger.Interface) *Service {
	log = log.Named("announcements")
	s := &Service{repos: repos, renderer: renderer, mailer: mailer, tx: tx, journal: journal, logger: log}

	s.Categories = crud.NewService[*announcements.AnnouncementCategory, announcements.CategoryDetails, announcements.CategoryFilter](
		"announcement category", repos.Categories,
		func(d announcements.CategoryDetails, _ uint) (*announcements.AnnouncementCategory, error) {
			return announcements.NewAnnouncementCategory(d)
		},
		tx, log)
	s.Announcements = crud.NewService[*announcements.Announcement, announcements.AnnouncementDetails, announcements.AnnouncementFilter](
		EntityAnnouncement, repos.Announcements,
		func(d announcements.AnnouncementDetails, actorID uint) (*announcements.Announcement, error) {
			return announcements.NewAnnouncement(d, common.ActorRef(actorID))
		},
		tx, log).WithPrepare(s.assignSlug)
	s.Distributions = crud.NewService[*announcements.Distribution, announcements.DistributionDetails, announcements.DistributionFilter](
		EntityDistribution, repos.Distributions,
		func(d announcements.DistributionDetails, _ uint) (*announcements.Distribution, error) {
			return announcements.NewDistribution(d)
		},
		tx, log)
	s.Attachments = crud.NewService[*announcements.Attachment, announcements.AttachmentDetails, announcements.AttachmentFilter](
		"announcement attachment", repos.Attachments,
		func(d announcements.AttachmentDetails, actorID uint) (*announcements.Attachment, error) {
			return announcements.NewAttachment(d, common.ActorRef(actorID))
		},
		tx, log).WithPrepare(s.checkAttachmentAnnouncement)
	s.Templates = crud.NewService[*announcements.Template, announcements.TemplateDetails, announcements.TemplateFilter](
		"announcement template", repos.Templates,
		func(d announcements.TemplateDetails, actorID uint) (*announcements.Template, error) {
			return announcements.NewTemplate(d, common.ActorRef(actorID))
		},
		tx, log).WithPrepare(s.checkTemplateName)

	s.AnnouncementStatus = lifecycle.NewChangeStatusUseCase(AnnouncementLifecycle(), repos.Announcements, tx, journal, log)
	s.DistributionStatus = lifecycle.NewChangeStatusUseCase(DistributionLifecycle(), repos.Distributions, tx, journal, log)
	return s
}

// AnnouncementLifecycle publishes through Publish so that a manual change to
// published also stamps published_at.
func AnnouncementLifecycle() lifecycle.Spec[*announcements.Announcement] {
	return lifecycle.Spec[*announcements.Announcement]{
		EntityType: EntityAnnouncement,
		Valid:      vo.IsValidAnnouncementStatus,
		Current:    func(a *announcements.Announcement) string { return a.Status().String() },
		Apply: func(a *announcements.Announcement, status, _ string, _ uint) error {
			if vo.AnnouncementStatus(status) == vo.StatusPublished {
				a.Publish()
				return nil
			}
			return a.ChangeStatus(vo.AnnouncementStatus(status))
		},
	}
}

func DistributionLifecycle() lifecycle.Spec[*announcements.Distribution] {
	return lifecycle.Spec[*announcements.Distribution]{
		EntityType: EntityDistribution,
		Valid:      vo.IsValidDistributionStatus,
		Current:    func(d *announcements.Distribution) string { return d.Status().String() },
		Apply: func(d *announcements.Distribution, status, _ string, _ uint) error {
			return d.ChangeStatus(vo.DistributionStatus(status))
		},
	}
}

func (s *Service) assignSlug(ctx context.Context, id uint, d announcements.AnnouncementDetails) (announcements.AnnouncementDetails, error) {
	slug, err := common.FreeSlug(ctx, s.repos.Announcements.ExistsBySlug, id, d.Slug, d.Title)
	if err != nil {
		return d, common.PersistenceError(err, "failed to check announcement slug")
	}
	d.Slug = slug
	return d, nil
}

// checkAttachmentAnnouncement rejects files for announcements that do not
// exist. Attachments never move, so only creates are checked.
func (s *Service) checkAttachmentAnnouncement(ctx context.Context, id uint, d announcements.AttachmentDetails) (announcements.AttachmentDetails, error) {
	if id != 0 || d.AnnouncementID == 0 {
		return d, nil
	}
	if _, err := s.repos.Announcements.GetByID(ctx, d.AnnouncementID); err != nil {
		if errors.IsNotFoundError(err) {
			return d, shared.NewFieldError("announcement_id", "announcement not found")
		}
		return d, err
	}
	return d, nil
}

func (s *Service) checkTemplateName(ctx context.Context, id uint, d announcements.TemplateDetails) (announcements.TemplateDetails, error) {
	exists, err := s.repos.Templates.ExistsByName(ctx, strings.TrimSpace(d.Name), id)
	if err != nil {
		return d, common.PersistenceError(err, "failed to check template name")
	}
	if exists {
		return d, shared.NewFieldError("name", "announcement template with this name already exists")
	}
	return d, nil
}

// DownloadAttachment counts a download of a published announcement's file
// and returns the attachment with the new count.
func (s *Service) DownloadAttachment(ctx context.Context, id uint) (*announcements.Attachment, error) {
	a, err := s.repos.Attachments.GetByID(ctx, id)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get attachment")
	}
	if _, err := s.publishedByID(ctx, a.Details().AnnouncementID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("attachment not found")
		}
		return nil, common.PersistenceError(err, "failed to get announcement")
	}
	if err := s.repos.Attachments.IncrementDownloadCount(ctx, id); err != nil {
		return nil, common.PersistenceError(err, "failed to count attachment download")
	}
	if a, err = s.repos.Attachments.GetByID(ctx, id); err != nil {
		return nil, common.PersistenceError(err, "failed to get attachment")
	}
	return a, nil
}

// ListPublishedAttachments lists the files of a published announcement.
func (s *Service) ListPublishedAttachments(ctx context.Context, announcementID uint, page query.PageFilter) ([]*announcements.Attachment, int64, error) {
	if _, err := s.publishedByID(ctx, announcementID); err != nil {
		return nil, 0, common.PersistenceError(err, "failed to get announcement")
	}
	items, total, err := s.repos.Attachments.List(ctx, announcements.AttachmentFilter{
		BaseFilter:     query.BaseFilter{PageFilter: page},
		AnnouncementID: announcementID,
	})
	if err != nil {
		return nil, 0, common.PersistenceError(err, "failed to list attachments")
	}
	return items, total, nil
}

// RenderTemplate fills an active template. Placeholders without a value are
// reported back rather than rejected.
func (s *Service) RenderTemplate(ctx context.Context, id uint, values map[string]string) (*Rendered, error) {
	t, err := s.repos.Templates.GetByID(ctx, id)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get announcement template")
	}
	if !t.Details().IsActive {
		return nil, errors.NewFieldValidationError("template", "this template is not active")
	}
	content, missing := t.Render(values)
	return &Rendered{Content: content, Missing: missing}, nil
}

// BulkAction runs one admin list action over the selected announcements.
func (s *Service) BulkAction(ctx context.Context, ids []uint, action string, actorID uint) (*lifecycle.BulkResult, error) {
	switch action {
	case ActionPublish:
		return s.AnnouncementStatus.ExecuteBulk(ctx, lifecycle.BulkCommand{IDs: ids, Status: vo.StatusPublished.String(), ActorID: actorID})
	case ActionExpire:
		return s.AnnouncementStatus.ExecuteBulk(ctx, lifecycle.BulkCommand{IDs: ids, Status: vo.StatusExpired.String(), ActorID: actorID})
	case ActionArchive:
		return s.AnnouncementStatus.ExecuteBulk(ctx, lifecycle.BulkCommand{IDs: ids, Status: vo.StatusArchived.String(), ActorID: actorID})
	case ActionMarkFeatured, ActionUnmarkFeatured:
		featured := action == ActionMarkFeatured
		return s.AnnouncementStatus.Each(ctx, ids, func(ctx context.Context, a *announcements.Announcement) error {
			a.SetFeatured(featured)
			return s.AnnouncementStatus.Save(ctx, a)
		})
	default:
		return nil, errors.NewFieldValidationError("action",
			fmt.Sprintf("unknown action, expected one of: %s, %s, %s, %s, %s",
				ActionArchive, ActionExpire, ActionMarkFeatured, ActionPublish, ActionUnmarkFeatured))
	}
}

// ListPublished is the public feed: visible now, featured and sticky first.
func (s *Service) ListPublished(ctx context.Context, page query.PageFilter, categoryID uint, audience string) ([]*announcements.Announcement, int64, error) {
	items, total, err := s.repos.Announcements.ListPublished(ctx, announcements.PublishedFilter{
		PageFilter: page,
		Now:        biztime.NowUTC(),
		CategoryID: categoryID,
		Audience:   audience,
	})
	if err != nil {
		return nil, 0, common.PersistenceError(err, "failed to list announcements")
	}
	return items, total, nil
}

// ReadBySlug returns a published announcement with its rendered content and
// counts the view.
func (s *Service) ReadBySlug(ctx context.Context, slug string) (*Published, error) {
	a, err := s.publishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Announcements.IncrementViewCount(ctx, a.ID()); err != nil {
		return nil, common.PersistenceError(err, "failed to count announcement view")
	}
	if a, err = s.repos.Announcements.GetByID(ctx, a.ID()); err != nil {
		return nil, common.PersistenceError(err, "failed to get announcement")
	}

	html, err := s.renderer.Render(a.Details().Content)
	if err != nil {
		s.logger.Errorw("failed to render announcement", "id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to render announcement")
	}
	return &Published{Announcement: a, HTML: html}, nil
}

func (s *Service) publishedBySlug(ctx context.Context, slug string) (*announcements.Announcement, error) {
	a, err := s.repos.Announcements.GetBySlug(ctx, slug)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get announcement")
	}
	if !a.IsPublished(biztime.NowUTC()) {
		return nil, errors.NewNotFoundError("announcement not found")
	}
	return a, nil
}

func (s *Service) publishedByID(ctx context.Context, id uint) (*announcements.Announcement, error) {
	a, err := s.repos.Announcements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.IsPublished(biztime.NowUTC()) {
		return nil, errors.NewNotFoundError("announcement not found")
	}
	return a, nil
}

func (s *Service) Analytics(ctx context.Context, id uint) (*announcements.Analytics, error) {
	if _, err := s.publishedByID(ctx, id); err != nil {
		return nil, common.PersistenceError(err, "failed to get announcement")
	}
	stats, err := s.repos.Announcements.Analytics(ctx, id)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to compute announcement analytics")
	}
	return stats, nil
}

// Acknowledge records that userID has read a published announcement. Each
// user acknowledges an announcement once.
func (s *Service) Acknowledge(ctx context.Context, announcementID, userID uint, notes string) (*announcements.Acknowledgment, error) {
	var ack *announcements.Acknowledgment
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		a, err := s.publishedByID(ctx, announcementID)
		if err != nil {
			return err
		}
		exists, err := s.repos.Acknowledgments.Exists(ctx, announcementID, userID)
		if err != nil {
			return err
		}
		if exists {
			return errors.NewFieldValidationError("announcement", "you have already acknowledged this announcement")
		}
		created, err := announcements.NewAcknowledgment(a, userID, notes)
		if err != nil {
			return common.DomainError(err)
		}
		if err := s.repos.Acknowledgments.Create(ctx, created); err != nil {
			return err
		}
		ack = created
		return nil
	})
	if err != nil {
		return nil, common.PersistenceError(err, "failed to acknowledge announcement")
	}
	s.logger.Infow("announcement acknowledged", "announcement_id", announcementID, "user_id", userID)
	return ack, nil
}

func (s *Service) ListAcknowledgments(ctx context.Context, announcementID uint, page query.PageFilter) ([]*announcements.Acknowledgment, int64, error) {
	if _, err := s.repos.Announcements.GetByID(ctx, announcementID); err != nil {
		return nil, 0, common.PersistenceError(err, "failed to get announcement")
	}
	items, total, err := s.repos.Acknowledgments.ListByAnnouncement(ctx, announcementID, page)
	if err != nil {
		return nil, 0, common.PersistenceError(err, "failed to list acknowledgments")
	}
	return items, total, nil
}

// AddComment posts a comment on a published announcement that accepts them.
func (s *Service) AddComment(ctx context.Context, announcementID, userID uint, content string) (*announcements.Comment, error) {
	a, err := s.publishedByID(ctx, announcementID)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get announcement")
	}
	c, err := announcements.NewComment(a, common.ActorRef(userID), content)
	if err != nil {
		return nil, common.DomainError(err)
	}
	if err := s.repos.Comments.Create(ctx, c); err != nil {
		return nil, common.PersistenceError(err, "failed to create comment")
	}
	return c, nil
}

func (s *Service) ListComments(ctx context.Context, filter announcements.CommentFilter) ([]*announcements.Comment, int64, error) {
	items, total, err := s.repos.Comments.List(ctx, filter)
	if err != nil {
		return nil, 0, common.PersistenceError(err, "failed to list comments")
	}
	return items, total, nil
}

func (s *Service) EditComment(ctx context.Context, id uint, content string) (*announcements.Comment, error) {
	c, err := s.repos.Comments.GetByID(ctx, id)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get comment")
	}
	if err := c.Edit(content); err != nil {
		return nil, common.DomainError(err)
	}
	if err := s.repos.Comments.Update(ctx, c); err != nil {
		return nil, common.PersistenceError(err, "failed to update comment")
	}
	return c, nil
}

func (s *Service) DeleteComment(ctx context.Context, id uint) error {
	if err := s.repos.Comments.Delete(ctx, id); err != nil {
		return common.PersistenceError(err, "failed to delete comment")
	}
	return nil
}

// ApproveComments sets is_approved on every selected comment in one
// transaction.
func (s *Service) ApproveComments(ctx context.Context, ids []uint, approved bool) (*lifecycle.BulkResult, error) {
	if len(ids) == 0 {
		return nil, errors.NewFieldValidationError("ids", "select at least one record")
	}
	result := &lifecycle.BulkResult{Updated: []uint{}, Missing: []uint{}}
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, id := range ids {
			c, err := s.repos.Comments.GetByID(ctx, id)
			if errors.IsNotFoundError(err) {
				result.Missing = append(result.Missing, id)
				continue
			}
			if err != nil {
				return err
			}
			c.SetApproved(approved)
			if err := s.repos.Comments.Update(ctx, c); err != nil {
				return err
			}
			result.Updated = append(result.Updated, id)
		}
		return nil
	})
	if err != nil {
		return nil, common.PersistenceError(err, "failed to update comments")
	}
	s.logger.Infow("comments moderated", "approved", approved, "updated", len(result.Updated))
	return result, nil
}

// Dispatch emails the announcement to each recipient and stores the
// outcome counts together with the resulting status.
func (s *Service) Dispatch(ctx context.Context, distributionID uint, recipients []string, actorID uint) (*announcements.Distribution, error) {
	if len(recipients) == 0 {
		return nil, errors.NewFieldValidationError("recipients", "at least one recipient is required")
	}
	d, err := s.repos.Distributions.GetByID(ctx, distributionID)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get distribution")
	}
	a, err := s.repos.Announcements.GetByID(ctx, d.Details().AnnouncementID)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get announcement")
	}
	body, err := s.renderer.Render(a.Details().Content)
	if err != nil {
		return nil, errors.NewInternalError("failed to render announcement")
	}

	succeeded := 0
	var failures []string
	for _, to := range recipients {
		if err := s.mailer.Send(ctx, to, a.Details().Title, body); err != nil {
			s.logger.Warnw("announcement delivery failed", "distribution_id", distributionID, "recipient", to, "error", err)
			failures = append(failures, fmt.Sprintf("%s: %v", to, err))
			continue
		}
		succeeded++
	}

	old := d.Status().String()
	d.RecordDispatch(succeeded, failures)
	err = s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Distributions.Update(ctx, d); err != nil {
			return err
		}
		return s.journal.Log(ctx, EntityDistribution, d.ID(), old, d.Status().String(), actorID,
			fmt.Sprintf("dispatched: %d sent, %d failed", succeeded, len(failures)))
	})
	if err != nil {
		return nil, common.PersistenceError(err, "failed to record distribution")
	}

	s.journal.Committed(EntityDistribution, d.Status().String(), 1)
	s.logger.Infow("distribution dispatched",
		"distribution_id", distributionID,
		"succeeded", succeeded,
		"failed", len(failures),
	)
	return d, nil
}
