// Package news models news posts shown on the public site.
package news

import (
	"context"
	"strings"
	"time"

	"campus/internal/domain/shared"
	"campus/internal/shared/query"
)

type PostDetails struct {
	Title       string
	Slug        string
	Summary     string
	Content     string
	PhotoPath   string
	IsFeatured  bool
	PublishedAt *time.Time
}

func (p PostDetails) normalize() (PostDetails, error) {
	p.Title = strings.TrimSpace(p.Title)
	if err := shared.FirstError(
		shared.Required("title", p.Title),
		shared.MaxLength("title", p.Title, 255),
		shared.Required("content", p.Content),
		shared.MaxLength("summary", p.Summary, 500),
		shared.MaxLength("photo_path", p.PhotoPath, 255),
	); err != nil {
		return p, err
	}
	if p.Slug == "" {
		p.Slug = shared.Slugify(p.Title)
	}
	return p, nil
}

type NewsPost struct {
	shared.Base
	details PostDetails
}

func NewNewsPost(details PostDetails) (*NewsPost, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &NewsPost{Base: shared.NewBase(), details: d}, nil
}

func ReconstructNewsPost(id uint, details PostDetails, createdAt, updatedAt time.Time) *NewsPost {
	return &NewsPost{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (p *NewsPost) Details() PostDetails {
	return p.details
}

func (p *NewsPost) Update(details PostDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	p.details = normalized
	p.Touch()
	return nil
}

// SetSlug replaces the slug after de-duplication.
func (p *NewsPost) SetSlug(slug string) {
	p.details.Slug = slug
}

type Filter struct {
	query.PageFilter
	FeaturedOnly bool
}

// Repository lists posts newest published first.
type Repository interface {
	shared.CRUD[*NewsPost]
	List(ctx context.Context, filter Filter) ([]*NewsPost, int64, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error)
}
