package repository

import (
	"context"

	"gorm.io/gorm"

	"campus/internal/domain/outreach"
	"campus/internal/infrastructure/persistence/mappers"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

var (
	partnerSortColumns   = map[string]bool{"id": true, "name": true, "start_date": true, "created_at": true}
	affiliateSortColumns = map[string]bool{"id": true, "name": true, "added_at": true}
	eventSortColumns     = map[string]bool{"id": true, "title": true, "start_datetime": true, "created_at": true}
	mediaSortColumns     = map[string]bool{"id": true, "title": true, "uploaded_at": true}
)

type PartnerRepository struct {
	*table[*outreach.Partner, models.PartnerModel]
}

var _ outreach.PartnerRepository = (*PartnerRepository)(nil)

func NewPartnerRepository(gdb *gorm.DB, logger logger.Interface) *PartnerRepository {
	return &PartnerRepository{&table[*outreach.Partner, models.PartnerModel]{
		db:       gdb,
		logger:   logger,
		label:    "partner",
		toModel:  mappers.PartnerToModel,
		toDomain: mappers.PartnerToDomain,
		modelID:  func(m *models.PartnerModel) uint { return m.ID },
		unique:   []string{"slug"},
		onDelete: partnerRules(),
	}}
}

func (r *PartnerRepository) List(ctx context.Context, filter outreach.PartnerFilter) ([]*outreach.Partner, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(partnerSortColumns, "name ASC"),
		db.WhereIf(filter.ActiveOnly, "is_active = ?", true),
		search(filter.Search, "name", "description"),
	)
}

func (r *PartnerRepository) GetBySlug(ctx context.Context, slug string) (*outreach.Partner, error) {
	return r.first(ctx, "slug = ?", slug)
}

// AffiliateRepository enforces slug uniqueness within a partner.
type AffiliateRepository struct {
	*table[*outreach.Affiliate, models.AffiliateModel]
}

var _ outreach.AffiliateRepository = (*AffiliateRepository)(nil)

func NewAffiliateRepository(gdb *gorm.DB, logger logger.Interface) *AffiliateRepository {
	return &AffiliateRepository{&table[*outreach.Affiliate, models.AffiliateModel]{
		db:       gdb,
		logger:   logger,
		label:    "affiliate",
		toModel:  mappers.AffiliateToModel,
		toDomain: mappers.AffiliateToDomain,
		modelID:  func(m *models.AffiliateModel) uint { return m.ID },
		unique:   []string{"slug"},
	}}
}

func (r *AffiliateRepository) List(ctx context.Context, filter outreach.AffiliateFilter) ([]*outreach.Affiliate, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(affiliateSortColumns, "name ASC"),
		db.WhereIf(filter.PartnerID != 0, "partner_id = ?", filter.PartnerID),
		search(filter.Search, "name"),
	)
}

func (r *AffiliateRepository) ExistsBySlug(ctx context.Context, partnerID uint, slug string, excludeID uint) (bool, error) {
	return r.exists(ctx, "partner_id = ? AND slug = ? AND id <> ?", partnerID, slug, excludeID)
}

type EventRepository struct {
	*table[*outreach.Event, models.EventModel]
}

var _ outreach.EventRepository = (*EventRepository)(nil)

func NewEventRepository(gdb *gorm.DB, logger logger.Interface) *EventRepository {
	return &EventRepository{&table[*outreach.Event, models.EventModel]{
		db:       gdb,
		logger:   logger,
		label:    "event",
		toModel:  mappers.EventToModel,
		toDomain: mappers.EventToDomain,
		modelID:  func(m *models.EventModel) uint { return m.ID },
	}}
}

// List treats an event without an end time as ending when it starts.
func (r *EventRepository) List(ctx context.Context, filter outreach.EventFilter) ([]*outreach.Event, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(eventSortColumns, "start_datetime ASC"),
		db.WhereIf(filter.EndsAfter != nil, "COALESCE(end_datetime, start_datetime) >= ?", filter.EndsAfter),
		search(filter.Search, "title", "location"),
	)
}

type MediaRepository struct {
	*table[*outreach.MediaFile, models.MediaFileModel]
}

var _ outreach.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(gdb *gorm.DB, logger logger.Interface) *MediaRepository {
	return &MediaRepository{&table[*outreach.MediaFile, models.MediaFileModel]{
		db:       gdb,
		logger:   logger,
		label:    "media file",
		toModel:  mappers.MediaFileToModel,
		toDomain: mappers.MediaFileToDomain,
		modelID:  func(m *models.MediaFileModel) uint { return m.ID },
	}}
}

func (r *MediaRepository) List(ctx context.Context, filter outreach.MediaFilter) ([]*outreach.MediaFile, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(mediaSortColumns, "uploaded_at DESC"),
		db.WhereIf(filter.FileType != "", "file_type = ?", filter.FileType),
		search(filter.Search, "title"),
	)
}
