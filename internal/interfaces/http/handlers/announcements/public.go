package announcements

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "campus/internal/application/announcements"
	"campus/internal/domain/announcements"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

// PublicHandler serves the published feed to anonymous readers. Comments
// and acknowledgments need an authenticated caller.
type PublicHandler struct {
	service *app.Service
	logger  logger.Interface
}

func NewPublicHandler(svc *app.Service, log logger.Interface) *PublicHandler {
	return &PublicHandler{service: svc, logger: log}
}

// Register mounts the feed under rg. authed guards the write routes.
func (h *PublicHandler) Register(rg *gin.RouterGroup, authed gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/slug/:slug", h.Read)
	rg.GET("/:id/analytics", h.Analytics)
	rg.GET("/:id/comments", h.ListComments)
	rg.POST("/:id/comments", common.Chain(authed, h.AddComment)...)
	rg.POST("/:id/acknowledge", common.Chain(authed, h.Acknowledge)...)
	rg.GET("/:id/attachments", h.ListAttachments)
	rg.GET("/attachments/:id/download", h.Download)
}

// ListAttachments handles GET /announcements/:id/attachments for a
// published announcement.
func (h *PublicHandler) ListAttachments(c *gin.Context) {
	id, ok := common.ParseID(c, "announcement")
	if !ok {
		return
	}
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListPublishedAttachments(c.Request.Context(), id, pageFilter(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toAttachmentResponse), total, p.Page, p.PageSize)
}

// Download handles GET /announcements/attachments/:id/download. It counts
// the download and returns the stored file reference.
func (h *PublicHandler) Download(c *gin.Context) {
	id, ok := common.ParseID(c, "attachment")
	if !ok {
		return
	}
	a, err := h.service.DownloadAttachment(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toAttachmentResponse(a))
}

// List handles GET /announcements
func (h *PublicHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListPublished(c.Request.Context(), pageFilter(c),
		mapper.Deref(utils.QueryUint(c, "category_id")), c.Query("target_audience"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toAnnouncementResponse), total, p.Page, p.PageSize)
}

// Read handles GET /announcements/slug/:slug and counts the view.
func (h *PublicHandler) Read(c *gin.Context) {
	published, err := h.service.ReadBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toPublishedResponse(published))
}

// Analytics handles GET /announcements/:id/analytics
func (h *PublicHandler) Analytics(c *gin.Context) {
	id, ok := common.ParseID(c, "announcement")
	if !ok {
		return
	}
	stats, err := h.service.Analytics(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toAnalyticsResponse(stats))
}

// ListComments handles GET /announcements/:id/comments; only approved
// comments are shown.
func (h *PublicHandler) ListComments(c *gin.Context) {
	id, ok := common.ParseID(c, "announcement")
	if !ok {
		return
	}
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListComments(c.Request.Context(), announcements.CommentFilter{
		BaseFilter:     utils.ParseBaseFilter(c),
		AnnouncementID: id,
		ApprovedOnly:   true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toCommentResponse), total, p.Page, p.PageSize)
}

// AddComment handles POST /announcements/:id/comments
func (h *PublicHandler) AddComment(c *gin.Context) {
	id, ok := common.ParseID(c, "announcement")
	if !ok {
		return
	}
	var req CommentRequest
	if !common.BindJSON(c, &req) {
		return
	}
	comment, err := h.service.AddComment(c.Request.Context(), id, common.ActorID(c), req.Content)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toCommentResponse(comment), "Comment posted")
}

// Acknowledge handles POST /announcements/:id/acknowledge
func (h *PublicHandler) Acknowledge(c *gin.Context) {
	id, ok := common.ParseID(c, "announcement")
	if !ok {
		return
	}
	var req AcknowledgeRequest
	if c.Request.ContentLength != 0 && !common.BindJSON(c, &req) {
		return
	}
	ack, err := h.service.Acknowledge(c.Request.Context(), id, common.ActorID(c), req.Notes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toAcknowledgmentResponse(ack), "Announcement acknowledged")
}
