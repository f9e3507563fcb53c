// Package news serves the news feed. Reading is public.
package news

import (
	"github.com/gin-gonic/gin"

	app "campus/internal/application/news"
	"campus/internal/domain/news"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

type Handler struct {
	posts *common.RecordHandler[*news.NewsPost, news.PostDetails, news.Filter, PostRequest]
}

func NewHandler(svc *app.Service, log logger.Interface) *Handler {
	return &Handler{
		posts: common.NewRecordHandler[*news.NewsPost, news.PostDetails, news.Filter, PostRequest](
			"news post", svc,
			common.Mapper[*news.NewsPost, news.PostDetails, PostRequest]{
				ToDetails:   func(r PostRequest) (news.PostDetails, error) { return news.PostDetails(r), nil },
				FromDetails: func(d news.PostDetails) PostRequest { return PostRequest(d) },
				ToResponse:  toPostResponse,
			},
			func(c *gin.Context) news.Filter {
				return news.Filter{
					PageFilter:   utils.ParseBaseFilter(c).PageFilter,
					FeaturedOnly: mapper.Deref(utils.QueryBool(c, "featured")),
				}
			}, log),
	}
}

// Register mounts /news. write guards every mutating route.
func (h *Handler) Register(rg *gin.RouterGroup, write gin.HandlerFunc) {
	h.posts.Register(rg, nil, write)
}
