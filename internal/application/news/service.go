// Package news manages the public news feed.
package news

import (
	"context"

	"campus/internal/application/common"
	"campus/internal/application/common/crud"
	"campus/internal/domain/news"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

type Service = crud.Service[*news.NewsPost, news.PostDetails, news.Filter]

func NewService(repo news.Repository, tx db.Transactor, log logger.Interface) *Service {
	assignSlug := func(ctx context.Context, id uint, d news.PostDetails) (news.PostDetails, error) {
		slug, err := common.DerivedSlug(ctx, repo.ExistsBySlug, id, d.Slug, d.Title)
		if err != nil {
			return d, common.PersistenceError(err, "failed to check news slug")
		}
		d.Slug = slug
		return d, nil
	}
	return crud.NewService[*news.NewsPost, news.PostDetails, news.Filter](
		"news post", repo,
		func(d news.PostDetails, _ uint) (*news.NewsPost, error) { return news.NewNewsPost(d) },
		tx, log.Named("news")).WithPrepare(assignSlug)
}
