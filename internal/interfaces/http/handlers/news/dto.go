package news

import (
	"time"

	"campus/internal/domain/news"
)

type PostRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Slug        string     `json:"slug" binding:"max=255"`
	Summary     string     `json:"summary" binding:"max=500"`
	Content     string     `json:"content" binding:"required"`
	PhotoPath   string     `json:"photo_path" binding:"max=255"`
	IsFeatured  bool       `json:"is_featured"`
	PublishedAt *time.Time `json:"published_at"`
}

type PostResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	PhotoPath   string     `json:"photo_path"`
	IsFeatured  bool       `json:"is_featured"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toPostResponse(p *news.NewsPost) any {
	d := p.Details()
	return PostResponse{
		ID:          p.ID(),
		Title:       d.Title,
		Slug:        d.Slug,
		Summary:     d.Summary,
		Content:     d.Content,
		PhotoPath:   d.PhotoPath,
		IsFeatured:  d.IsFeatured,
		PublishedAt: d.PublishedAt,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
