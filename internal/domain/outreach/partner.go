// Package outreach models the public-facing relations of the university:
// partner institutions and their affiliates, campus events and the media
// library.
package outreach

import (
	"net/url"
	"strings"
	"time"

	"campus/internal/domain/shared"
)

const (
	PartnerLogoDir   = "partners/logos/"
	AffiliateLogoDir = "partners/affiliates/logos/"
)

// optionalURL accepts an empty value or an absolute http(s) URL.
func optionalURL(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", nil
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", shared.NewFieldError(field, "%s must be an http or https URL", field)
	}
	return v, shared.MaxLength(field, v, 200)
}

type PartnerDetails struct {
	Name         string
	Slug         string
	Website      string
	ContactEmail string
	LogoPath     string
	Description  string
	StartDate    *time.Time
	IsActive     bool
}

func (p PartnerDetails) normalize() (PartnerDetails, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := shared.FirstError(
		shared.Required("name", p.Name),
		shared.MaxLength("name", p.Name, 255),
	); err != nil {
		return p, err
	}
	if p.Slug == "" {
		p.Slug = shared.Slugify(p.Name)
	}
	website, err := optionalURL("website", p.Website)
	if err != nil {
		return p, err
	}
	p.Website = website
	email, err := shared.OptionalEmail("contact_email", p.ContactEmail)
	if err != nil {
		return p, err
	}
	p.ContactEmail = email
	logo, err := shared.StoredPath("logo", PartnerLogoDir, p.LogoPath)
	if err != nil {
		return p, err
	}
	p.LogoPath = logo
	return p, nil
}

// Partner is an institution the university works with. Its slug is unique
// and deleting it removes its affiliates.
type Partner struct {
	shared.Base
	details PartnerDetails
}

func NewPartner(details PartnerDetails) (*Partner, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Partner{Base: shared.NewBase(), details: d}, nil
}

func ReconstructPartner(id uint, details PartnerDetails, createdAt, updatedAt time.Time) *Partner {
	return &Partner{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (p *Partner) Details() PartnerDetails {
	return p.details
}

func (p *Partner) Update(details PartnerDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	p.details = normalized
	p.Touch()
	return nil
}

type AffiliateDetails struct {
	PartnerID    uint
	Name         string
	Slug         string
	ContactEmail string
	LogoPath     string
	Description  string
}

func (a AffiliateDetails) normalize() (AffiliateDetails, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.PartnerID == 0 {
		return a, shared.NewFieldError("partner_id", "partner_id is required")
	}
	if err := shared.FirstError(
		shared.Required("name", a.Name),
		shared.MaxLength("name", a.Name, 255),
	); err != nil {
		return a, err
	}
	if a.Slug == "" {
		a.Slug = shared.Slugify(a.Name)
	}
	email, err := shared.OptionalEmail("contact_email", a.ContactEmail)
	if err != nil {
		return a, err
	}
	a.ContactEmail = email
	logo, err := shared.StoredPath("logo", AffiliateLogoDir, a.LogoPath)
	if err != nil {
		return a, err
	}
	a.LogoPath = logo
	return a, nil
}

// Affiliate belongs to one partner. Slugs are unique within the partner.
type Affiliate struct {
	shared.Base
	details AffiliateDetails
}

func NewAffiliate(details AffiliateDetails) (*Affiliate, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Affiliate{Base: shared.NewBase(), details: d}, nil
}

func ReconstructAffiliate(id uint, details AffiliateDetails, addedAt, updatedAt time.Time) *Affiliate {
	return &Affiliate{Base: shared.ReconstructBase(id, addedAt, updatedAt), details: details}
}

func (a *Affiliate) Details() AffiliateDetails { return a.details }
func (a *Affiliate) AddedAt() time.Time        { return a.CreatedAt() }

func (a *Affiliate) Update(details AffiliateDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	a.details = normalized
	a.Touch()
	return nil
}
