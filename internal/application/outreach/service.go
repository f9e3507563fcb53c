// Package outreach manages partner institutions, campus events and the
// public media library.
package outreach

import (
	"context"

	"campus/internal/application/common"
	"campus/internal/application/common/crud"
	"campus/internal/domain/outreach"
	"campus/internal/domain/shared"
	"campus/internal/shared/biztime"
	"campus/internal/shared/db"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type (
	PartnerService   = crud.Service[*outreach.Partner, outreach.PartnerDetails, outreach.PartnerFilter]
	AffiliateService = crud.Service[*outreach.Affiliate, outreach.AffiliateDetails, outreach.AffiliateFilter]
	EventService     = crud.Service[*outreach.Event, outreach.EventDetails, outreach.EventFilter]
	MediaService     = crud.Service[*outreach.MediaFile, outreach.MediaDetails, outreach.MediaFilter]
)

type Repositories struct {
	Partners   outreach.PartnerRepository
	Affiliates outreach.AffiliateRepository
	Events     outreach.EventRepository
	Media      outreach.MediaRepository
}

type Service struct {
	Partners   *PartnerService
	Affiliates *AffiliateService
	Events     *EventService
	Media      *MediaService

	repos  Repositories
	logger logger.Interface
}

func NewService(repos Repositories, tx db.Transactor, log logger.Interface) *Service {
	log = log.Named("outreach")
	s := &Service{repos: repos, logger: log}

	s.Partners = crud.NewService[*outreach.Partner, outreach.PartnerDetails, outreach.PartnerFilter](
		"partner", repos.Partners,
		func(d outreach.PartnerDetails, _ uint) (*outreach.Partner, error) { return outreach.NewPartner(d) },
		tx, log).WithPrepare(s.assignPartnerSlug)
	s.Affiliates = crud.NewService[*outreach.Affiliate, outreach.AffiliateDetails, outreach.AffiliateFilter](
		"affiliate", repos.Affiliates,
		func(d outreach.AffiliateDetails, _ uint) (*outreach.Affiliate, error) { return outreach.NewAffiliate(d) },
		tx, log).WithPrepare(s.assignAffiliateSlug)
	s.Events = crud.NewService[*outreach.Event, outreach.EventDetails, outreach.EventFilter](
		"event", repos.Events,
		func(d outreach.EventDetails, _ uint) (*outreach.Event, error) { return outreach.NewEvent(d) },
		tx, log)
	s.Media = crud.NewService[*outreach.MediaFile, outreach.MediaDetails, outreach.MediaFilter](
		"media file", repos.Media,
		func(d outreach.MediaDetails, _ uint) (*outreach.MediaFile, error) { return outreach.NewMediaFile(d) },
		tx, log)
	return s
}

func (s *Service) assignPartnerSlug(ctx context.Context, id uint, d outreach.PartnerDetails) (outreach.PartnerDetails, error) {
	slug, err := common.DerivedSlug(ctx, common.SlugLookup(s.repos.Partners.GetBySlug), id, d.Slug, d.Name)
	if err != nil {
		return d, common.PersistenceError(err, "failed to check partner slug")
	}
	d.Slug = slug
	return d, nil
}

// assignAffiliateSlug checks the partner and keeps slugs unique within it.
func (s *Service) assignAffiliateSlug(ctx context.Context, id uint, d outreach.AffiliateDetails) (outreach.AffiliateDetails, error) {
	if d.PartnerID == 0 {
		return d, nil
	}
	if _, err := s.repos.Partners.GetByID(ctx, d.PartnerID); err != nil {
		if errors.IsNotFoundError(err) {
			return d, shared.NewFieldError("partner_id", "partner not found")
		}
		return d, err
	}
	taken := func(ctx context.Context, slug string, excludeID uint) (bool, error) {
		return s.repos.Affiliates.ExistsBySlug(ctx, d.PartnerID, slug, excludeID)
	}
	slug, err := common.DerivedSlug(ctx, taken, id, d.Slug, d.Name)
	if err != nil {
		return d, common.PersistenceError(err, "failed to check affiliate slug")
	}
	d.Slug = slug
	return d, nil
}

// ListActivePartners is the public partner directory.
func (s *Service) ListActivePartners(ctx context.Context, filter outreach.PartnerFilter) ([]*outreach.Partner, int64, error) {
	filter.ActiveOnly = true
	return s.Partners.List(ctx, filter)
}

// GetActivePartner returns an active partner by slug with its affiliates.
func (s *Service) GetActivePartner(ctx context.Context, slug string) (*outreach.Partner, []*outreach.Affiliate, error) {
	p, err := s.repos.Partners.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, common.PersistenceError(err, "failed to get partner")
	}
	if !p.Details().IsActive {
		return nil, nil, errors.NewNotFoundError("partner not found")
	}
	affiliates, _, err := s.repos.Affiliates.List(ctx, outreach.AffiliateFilter{PartnerID: p.ID()})
	if err != nil {
		return nil, nil, common.PersistenceError(err, "failed to list affiliates")
	}
	return p, affiliates, nil
}

// ListUpcomingEvents keeps events that have not finished yet.
func (s *Service) ListUpcomingEvents(ctx context.Context, filter outreach.EventFilter) ([]*outreach.Event, int64, error) {
	now := biztime.NowUTC()
	filter.EndsAfter = &now
	return s.Events.List(ctx, filter)
}
