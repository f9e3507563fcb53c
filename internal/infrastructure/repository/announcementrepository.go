package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campus/internal/domain/announcements"
	vo "campus/internal/domain/announcements/valueobjects"
	"campus/internal/infrastructure/persistence/mappers"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
	"campus/internal/shared/query"
)

var (
	announcementCategorySortColumns = map[string]bool{"id": true, "name": true}
	announcementSortColumns         = map[string]bool{
		"id": true, "title": true, "priority": true, "status": true, "published_at": true,
		"view_count": true, "created_at": true,
	}
	commentSortColumns      = map[string]bool{"id": true, "created_at": true}
	distributionSortColumns = map[string]bool{"id": true, "status": true, "scheduled_for": true, "created_at": true}
	attachmentSortColumns   = map[string]bool{"id": true, "filename": true, "download_count": true, "uploaded_at": true}
	templateSortColumns     = map[string]bool{"id": true, "name": true, "created_at": true}
)

// AnnouncementCategoryRepository rejects deletes while announcements use the
// category.
type AnnouncementCategoryRepository struct {
	*table[*announcements.AnnouncementCategory, models.AnnouncementCategoryModel]
}

var _ announcements.AnnouncementCategoryRepository = (*AnnouncementCategoryRepository)(nil)

func NewAnnouncementCategoryRepository(gdb *gorm.DB, logger logger.Interface) *AnnouncementCategoryRepository {
	return &AnnouncementCategoryRepository{&table[*announcements.AnnouncementCategory, models.AnnouncementCategoryModel]{
		db:       gdb,
		logger:   logger,
		label:    "announcement category",
		toModel:  mappers.AnnouncementCategoryToModel,
		toDomain: mappers.AnnouncementCategoryToDomain,
		modelID:  func(m *models.AnnouncementCategoryModel) uint { return m.ID },
		unique:   []string{"name", "slug"},
		onDelete: announcementCategoryRules(),
	}}
}

func (r *AnnouncementCategoryRepository) List(ctx context.Context, filter announcements.CategoryFilter) ([]*announcements.AnnouncementCategory, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(announcementCategorySortColumns, "name ASC"),
		db.WhereIf(filter.ActiveOnly, "is_active = ?", true),
	)
}

type AnnouncementRepository struct {
	*table[*announcements.Announcement, models.AnnouncementModel]
}

var _ announcements.AnnouncementRepository = (*AnnouncementRepository)(nil)

func NewAnnouncementRepository(gdb *gorm.DB, logger logger.Interface) *AnnouncementRepository {
	return &AnnouncementRepository{&table[*announcements.Announcement, models.AnnouncementModel]{
		db:       gdb,
		logger:   logger,
		label:    "announcement",
		toModel:  mappers.AnnouncementToModel,
		toDomain: mappers.AnnouncementToDomain,
		modelID:  func(m *models.AnnouncementModel) uint { return m.ID },
		unique:   []string{"slug"},
		onDelete: announcementRules(),
	}}
}

func (r *AnnouncementRepository) List(ctx context.Context, filter announcements.AnnouncementFilter) ([]*announcements.Announcement, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(announcementSortColumns, "created_at DESC"),
		db.WhereIf(filter.Status != "", "status = ?", filter.Status),
		db.WhereIf(filter.CategoryID != 0, "category_id = ?", filter.CategoryID),
		db.WhereIf(filter.Priority != "", "priority = ?", filter.Priority),
		db.WhereIf(filter.Audience != "", "target_audience = ?", filter.Audience),
		db.WhereIf(filter.Featured != nil, "is_featured = ?", filter.Featured != nil && *filter.Featured),
		search(filter.Search, "title", "summary"),
	)
}

// ListPublished returns announcements visible at filter.Now, sticky and
// featured ones first.
func (r *AnnouncementRepository) ListPublished(ctx context.Context, filter announcements.PublishedFilter) ([]*announcements.Announcement, int64, error) {
	return r.page(ctx, filter.PageFilter,
		"is_sticky DESC, is_featured DESC, published_at DESC, id DESC",
		where("status = ?", vo.StatusPublished.String()),
		where("(published_at IS NULL OR published_at <= ?)", filter.Now),
		where("(expiry_at IS NULL OR expiry_at >= ?)", filter.Now),
		db.WhereIf(filter.CategoryID != 0, "category_id = ?", filter.CategoryID),
		db.WhereIf(filter.Audience != "", "target_audience IN ?", []string{filter.Audience, "all"}),
	)
}

func (r *AnnouncementRepository) GetBySlug(ctx context.Context, slug string) (*announcements.Announcement, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *AnnouncementRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return r.existsExcept(ctx, "slug", slug, excludeID)
}

// IncrementViewCount bumps the counter in SQL so concurrent readers do not
// lose increments.
func (r *AnnouncementRepository) IncrementViewCount(ctx context.Context, id uint) error {
	result := r.conn(ctx).Model(&models.AnnouncementModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		r.logger.Errorw("failed to increment view count", "id", id, "error", result.Error)
		return fmt.Errorf("failed to increment view count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.notFound()
	}
	return nil
}

func (r *AnnouncementRepository) Analytics(ctx context.Context, id uint) (*announcements.Analytics, error) {
	var row models.AnnouncementModel
	if err := r.conn(ctx).Select("id", "view_count").Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound()
		}
		return nil, fmt.Errorf("failed to load announcement: %w", err)
	}

	stats := &announcements.Analytics{AnnouncementID: id, Views: row.ViewCount}
	conn := r.conn(ctx)
	if err := conn.Model(&models.AnnouncementCommentModel{}).Where("announcement_id = ?", id).Count(&stats.Comments).Error; err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	if err := conn.Model(&models.AnnouncementCommentModel{}).Where("announcement_id = ? AND is_approved = ?", id, true).Count(&stats.ApprovedComments).Error; err != nil {
		return nil, fmt.Errorf("failed to count approved comments: %w", err)
	}
	if err := conn.Model(&models.AcknowledgmentModel{}).Where("announcement_id = ?", id).Count(&stats.Acknowledgments).Error; err != nil {
		return nil, fmt.Errorf("failed to count acknowledgments: %w", err)
	}
	return stats, nil
}

type AcknowledgmentRepository struct {
	*table[*announcements.Acknowledgment, models.AcknowledgmentModel]
}

var _ announcements.AcknowledgmentRepository = (*AcknowledgmentRepository)(nil)

func NewAcknowledgmentRepository(gdb *gorm.DB, logger logger.Interface) *AcknowledgmentRepository {
	return &AcknowledgmentRepository{&table[*announcements.Acknowledgment, models.AcknowledgmentModel]{
		db:       gdb,
		logger:   logger,
		label:    "acknowledgment",
		toModel:  mappers.AcknowledgmentToModel,
		toDomain: mappers.AcknowledgmentToDomain,
		modelID:  func(m *models.AcknowledgmentModel) uint { return m.ID },
		unique:   []string{"user_id"},
	}}
}

func (r *AcknowledgmentRepository) Exists(ctx context.Context, announcementID, userID uint) (bool, error) {
	return r.exists(ctx, "announcement_id = ? AND user_id = ?", announcementID, userID)
}

func (r *AcknowledgmentRepository) ListByAnnouncement(ctx context.Context, announcementID uint, page query.PageFilter) ([]*announcements.Acknowledgment, int64, error) {
	return r.page(ctx, page, "acknowledged_at DESC", where("announcement_id = ?", announcementID))
}

type CommentRepository struct {
	*table[*announcements.Comment, models.AnnouncementCommentModel]
}

var _ announcements.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(gdb *gorm.DB, logger logger.Interface) *CommentRepository {
	return &CommentRepository{&table[*announcements.Comment, models.AnnouncementCommentModel]{
		db:       gdb,
		logger:   logger,
		label:    "comment",
		toModel:  mappers.CommentToModel,
		toDomain: mappers.CommentToDomain,
		modelID:  func(m *models.AnnouncementCommentModel) uint { return m.ID },
	}}
}

func (r *CommentRepository) List(ctx context.Context, filter announcements.CommentFilter) ([]*announcements.Comment, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(commentSortColumns, "created_at DESC"),
		db.WhereIf(filter.AnnouncementID != 0, "announcement_id = ?", filter.AnnouncementID),
		db.WhereIf(filter.ApprovedOnly, "is_approved = ?", true),
	)
}

type DistributionRepository struct {
	*table[*announcements.Distribution, models.DistributionModel]
}

var _ announcements.DistributionRepository = (*DistributionRepository)(nil)

func NewDistributionRepository(gdb *gorm.DB, logger logger.Interface) *DistributionRepository {
	return &DistributionRepository{&table[*announcements.Distribution, models.DistributionModel]{
		db:       gdb,
		logger:   logger,
		label:    "distribution",
		toModel:  mappers.DistributionToModel,
		toDomain: mappers.DistributionToDomain,
		modelID:  func(m *models.DistributionModel) uint { return m.ID },
	}}
}

func (r *DistributionRepository) List(ctx context.Context, filter announcements.DistributionFilter) ([]*announcements.Distribution, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(distributionSortColumns, "created_at DESC"),
		db.WhereIf(filter.AnnouncementID != 0, "announcement_id = ?", filter.AnnouncementID),
		db.WhereIf(filter.Status != "", "status = ?", filter.Status),
	)
}

type AttachmentRepository struct {
	*table[*announcements.Attachment, models.AttachmentModel]
}

var _ announcements.AttachmentRepository = (*AttachmentRepository)(nil)

func NewAttachmentRepository(gdb *gorm.DB, logger logger.Interface) *AttachmentRepository {
	return &AttachmentRepository{&table[*announcements.Attachment, models.AttachmentModel]{
		db:       gdb,
		logger:   logger,
		label:    "attachment",
		toModel:  mappers.AttachmentToModel,
		toDomain: mappers.AttachmentToDomain,
		modelID:  func(m *models.AttachmentModel) uint { return m.ID },
	}}
}

func (r *AttachmentRepository) List(ctx context.Context, filter announcements.AttachmentFilter) ([]*announcements.Attachment, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(attachmentSortColumns, "uploaded_at DESC"),
		db.WhereIf(filter.AnnouncementID != 0, "announcement_id = ?", filter.AnnouncementID),
	)
}

func (r *AttachmentRepository) IncrementDownloadCount(ctx context.Context, id uint) error {
	result := r.conn(ctx).Model(&models.AttachmentModel{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1))
	if result.Error != nil {
		r.logger.Errorw("failed to increment download count", "id", id, "error", result.Error)
		return fmt.Errorf("failed to increment download count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.notFound()
	}
	return nil
}

type TemplateRepository struct {
	*table[*announcements.Template, models.TemplateModel]
}

var _ announcements.TemplateRepository = (*TemplateRepository)(nil)

func NewTemplateRepository(gdb *gorm.DB, logger logger.Interface) *TemplateRepository {
	return &TemplateRepository{&table[*announcements.Template, models.TemplateModel]{
		db:       gdb,
		logger:   logger,
		label:    "announcement template",
		toModel:  mappers.TemplateToModel,
		toDomain: mappers.TemplateToDomain,
		modelID:  func(m *models.TemplateModel) uint { return m.ID },
		unique:   []string{"name"},
	}}
}

func (r *TemplateRepository) List(ctx context.Context, filter announcements.TemplateFilter) ([]*announcements.Template, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(templateSortColumns, "name ASC"),
		db.WhereIf(filter.CategoryID != 0, "category_id = ?", filter.CategoryID),
		db.WhereIf(filter.ActiveOnly, "is_active = ?", true),
		search(filter.Search, "name", "description"),
	)
}

func (r *TemplateRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	return r.existsExcept(ctx, "name", name, excludeID)
}
