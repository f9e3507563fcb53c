package outreach

import (
	"context"
	"time"

	"campus/internal/domain/shared"
	"campus/internal/shared/query"
)

type PartnerFilter struct {
	query.BaseFilter
	ActiveOnly bool
	Search     string
}

type AffiliateFilter struct {
	query.BaseFilter
	PartnerID uint
	Search    string
}

type EventFilter struct {
	query.BaseFilter
	// EndsAfter keeps events still running or yet to start at that time.
	EndsAfter *time.Time
	Search    string
}

type MediaFilter struct {
	query.BaseFilter
	FileType string
	Search   string
}

// PartnerRepository deletes cascade to affiliates.
type PartnerRepository interface {
	shared.CRUD[*Partner]
	List(ctx context.Context, filter PartnerFilter) ([]*Partner, int64, error)
	GetBySlug(ctx context.Context, slug string) (*Partner, error)
}

type AffiliateRepository interface {
	shared.CRUD[*Affiliate]
	List(ctx context.Context, filter AffiliateFilter) ([]*Affiliate, int64, error)
	ExistsBySlug(ctx context.Context, partnerID uint, slug string, excludeID uint) (bool, error)
}

// EventRepository lists the earliest start first.
type EventRepository interface {
	shared.CRUD[*Event]
	List(ctx context.Context, filter EventFilter) ([]*Event, int64, error)
}

// MediaRepository lists the newest upload first.
type MediaRepository interface {
	shared.CRUD[*MediaFile]
	List(ctx context.Context, filter MediaFilter) ([]*MediaFile, int64, error)
}
