// Package announcements models campus announcements with their categories,
// reader comments and acknowledgments, and outbound distributions.
package announcements

import (
	"regexp"
	"strings"
	"time"

	"campus/internal/domain/shared"
)

const DefaultColor = "#007bff"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type CategoryDetails struct {
	Name        string
	Slug        string
	Description string
	Color       string
	Icon        string
	IsActive    bool
}

func (c CategoryDetails) normalize() (CategoryDetails, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := shared.FirstError(
		shared.Required("name", c.Name),
		shared.MaxLength("name", c.Name, 100),
		shared.MaxLength("icon", c.Icon, 50),
	); err != nil {
		return c, err
	}
	if c.Slug == "" {
		c.Slug = shared.Slugify(c.Name)
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if !hexColor.MatchString(c.Color) {
		return c, shared.NewFieldError("color", "color must be a hex colour such as %s", DefaultColor)
	}
	return c, nil
}

// AnnouncementCategory cannot be deleted while announcements use it.
type AnnouncementCategory struct {
	shared.Base
	details CategoryDetails
}

func NewAnnouncementCategory(details CategoryDetails) (*AnnouncementCategory, error) {
	c, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &AnnouncementCategory{Base: shared.NewBase(), details: c}, nil
}

func ReconstructAnnouncementCategory(id uint, details CategoryDetails, createdAt, updatedAt time.Time) *AnnouncementCategory {
	return &AnnouncementCategory{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (c *AnnouncementCategory) Details() CategoryDetails {
	return c.details
}

func (c *AnnouncementCategory) Update(details CategoryDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	c.details = normalized
	c.Touch()
	return nil
}
