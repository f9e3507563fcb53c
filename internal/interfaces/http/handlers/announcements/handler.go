// Package announcements serves announcement administration and the public
// announcement feed.
package announcements

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "campus/internal/application/announcements"
	"campus/internal/domain/announcements"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/query"
	"campus/internal/shared/utils"
)

type Handler struct {
	service            *app.Service
	categories         *common.RecordHandler[*announcements.AnnouncementCategory, announcements.CategoryDetails, announcements.CategoryFilter, CategoryRequest]
	announcements      *common.RecordHandler[*announcements.Announcement, announcements.AnnouncementDetails, announcements.AnnouncementFilter, AnnouncementRequest]
	distributions      *common.RecordHandler[*announcements.Distribution, announcements.DistributionDetails, announcements.DistributionFilter, DistributionRequest]
	attachments        *common.RecordHandler[*announcements.Attachment, announcements.AttachmentDetails, announcements.AttachmentFilter, AttachmentRequest]
	templates          *common.RecordHandler[*announcements.Template, announcements.TemplateDetails, announcements.TemplateFilter, TemplateRequest]
	announcementStatus *common.StatusHandler[*announcements.Announcement]
	distributionStatus *common.StatusHandler[*announcements.Distribution]
	logger             logger.Interface
}

func NewHandler(svc *app.Service, log logger.Interface) *Handler {
	return &Handler{
		service: svc,
		categories: common.NewRecordHandler[*announcements.AnnouncementCategory, announcements.CategoryDetails, announcements.CategoryFilter, CategoryRequest](
			"announcement category", svc.Categories,
			common.Mapper[*announcements.AnnouncementCategory, announcements.CategoryDetails, CategoryRequest]{
				ToDetails: categoryDetails, FromDetails: categoryRequest, ToResponse: toCategoryResponse,
			},
			func(c *gin.Context) announcements.CategoryFilter {
				return announcements.CategoryFilter{
					BaseFilter: utils.ParseBaseFilter(c),
					ActiveOnly: mapper.Deref(utils.QueryBool(c, "active_only")),
				}
			}, log),
		announcements: common.NewRecordHandler[*announcements.Announcement, announcements.AnnouncementDetails, announcements.AnnouncementFilter, AnnouncementRequest](
			"announcement", svc.Announcements,
			common.Mapper[*announcements.Announcement, announcements.AnnouncementDetails, AnnouncementRequest]{
				ToDetails: announcementDetails, FromDetails: announcementRequest, ToResponse: toAnnouncementResponse,
			},
			announcementFilter, log),
		distributions: common.NewRecordHandler[*announcements.Distribution, announcements.DistributionDetails, announcements.DistributionFilter, DistributionRequest](
			"distribution", svc.Distributions,
			common.Mapper[*announcements.Distribution, announcements.DistributionDetails, DistributionRequest]{
				ToDetails: distributionDetails, FromDetails: distributionRequest, ToResponse: toDistributionResponse,
			},
			func(c *gin.Context) announcements.DistributionFilter {
				return announcements.DistributionFilter{
					BaseFilter:     utils.ParseBaseFilter(c),
					AnnouncementID: mapper.Deref(utils.QueryUint(c, "announcement_id")),
					Status:         c.Query("status"),
				}
			}, log),
		attachments: common.NewRecordHandler[*announcements.Attachment, announcements.AttachmentDetails, announcements.AttachmentFilter, AttachmentRequest](
			"attachment", svc.Attachments,
			common.Mapper[*announcements.Attachment, announcements.AttachmentDetails, AttachmentRequest]{
				ToDetails: attachmentDetails, FromDetails: attachmentRequest, ToResponse: toAttachmentResponse,
			},
			func(c *gin.Context) announcements.AttachmentFilter {
				return announcements.AttachmentFilter{
					BaseFilter:     utils.ParseBaseFilter(c),
					AnnouncementID: mapper.Deref(utils.QueryUint(c, "announcement_id")),
				}
			}, log),
		templates: common.NewRecordHandler[*announcements.Template, announcements.TemplateDetails, announcements.TemplateFilter, TemplateRequest](
			"announcement template", svc.Templates,
			common.Mapper[*announcements.Template, announcements.TemplateDetails, TemplateRequest]{
				ToDetails: templateDetails, FromDetails: templateRequest, ToResponse: toTemplateResponse,
			},
			func(c *gin.Context) announcements.TemplateFilter {
				return announcements.TemplateFilter{
					BaseFilter: utils.ParseBaseFilter(c),
					CategoryID: mapper.Deref(utils.QueryUint(c, "category_id")),
					ActiveOnly: mapper.Deref(utils.QueryBool(c, "active_only")),
					Search:     c.Query("search"),
				}
			}, log),
		announcementStatus: common.NewStatusHandler[*announcements.Announcement]("announcement", svc.AnnouncementStatus, toAnnouncementResponse).
			WithBulkAction(svc.BulkAction),
		distributionStatus: common.NewStatusHandler[*announcements.Distribution]("distribution", svc.DistributionStatus, toDistributionResponse),
		logger:             log,
	}
}

// Register mounts the admin routes: /categories, /announcements, /comments,
// /distributions, /attachments and /templates.
func (h *Handler) Register(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	h.categories.Register(rg.Group("/categories"), read, write)

	list := rg.Group("/announcements")
	h.announcementStatus.Register(list, write)
	h.announcements.Register(list, read, write)
	list.GET("/:id/acknowledgments", common.Chain(read, h.ListAcknowledgments)...)

	comments := rg.Group("/comments")
	comments.GET("", common.Chain(read, h.ListComments)...)
	comments.POST("/approve", common.Chain(write, h.ApproveComments)...)
	comments.PUT("/:id", common.Chain(write, h.EditComment)...)
	comments.DELETE("/:id", common.Chain(write, h.DeleteComment)...)

	dist := rg.Group("/distributions")
	h.distributionStatus.Register(dist, write)
	h.distributions.Register(dist, read, write)
	dist.POST("/:id/dispatch", common.Chain(write, h.Dispatch)...)

	h.attachments.Register(rg.Group("/attachments"), read, write)

	templates := rg.Group("/templates")
	h.templates.Register(templates, read, write)
	templates.POST("/:id/render", common.Chain(read, h.RenderTemplate)...)
}

// RenderTemplate handles POST /templates/:id/render
func (h *Handler) RenderTemplate(c *gin.Context) {
	id, ok := common.ParseID(c, "announcement template")
	if !ok {
		return
	}
	var req RenderRequest
	if !common.BindJSON(c, &req) {
		return
	}
	rendered, err := h.service.RenderTemplate(c.Request.Context(), id, req.Values)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	missing := rendered.Missing
	if missing == nil {
		missing = []string{}
	}
	utils.SuccessResponse(c, http.StatusOK, "", RenderResponse{Content: rendered.Content, Missing: missing})
}

func announcementFilter(c *gin.Context) announcements.AnnouncementFilter {
	return announcements.AnnouncementFilter{
		BaseFilter: utils.ParseBaseFilter(c),
		Status:     c.Query("status"),
		CategoryID: mapper.Deref(utils.QueryUint(c, "category_id")),
		Priority:   c.Query("priority"),
		Audience:   c.Query("target_audience"),
		Featured:   utils.QueryBool(c, "is_featured"),
		Search:     c.Query("search"),
	}
}

func pageFilter(c *gin.Context) query.PageFilter {
	return utils.ParseBaseFilter(c).PageFilter
}

// ListAcknowledgments handles GET /announcements/:id/acknowledgments
func (h *Handler) ListAcknowledgments(c *gin.Context) {
	id, ok := common.ParseID(c, "announcement")
	if !ok {
		return
	}
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListAcknowledgments(c.Request.Context(), id, pageFilter(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toAcknowledgmentResponse), total, p.Page, p.PageSize)
}

// ListComments handles GET /comments
func (h *Handler) ListComments(c *gin.Context) {
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListComments(c.Request.Context(), announcements.CommentFilter{
		BaseFilter:     utils.ParseBaseFilter(c),
		AnnouncementID: mapper.Deref(utils.QueryUint(c, "announcement_id")),
		ApprovedOnly:   mapper.Deref(utils.QueryBool(c, "approved_only")),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toCommentResponse), total, p.Page, p.PageSize)
}

// ApproveComments handles POST /comments/approve
func (h *Handler) ApproveComments(c *gin.Context) {
	var req ApproveCommentsRequest
	if !common.BindJSON(c, &req) {
		return
	}
	result, err := h.service.ApproveComments(c.Request.Context(), req.IDs, *req.Approved)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Comments updated", result)
}

// EditComment handles PUT /comments/:id
func (h *Handler) EditComment(c *gin.Context) {
	id, ok := common.ParseID(c, "comment")
	if !ok {
		return
	}
	var req CommentRequest
	if !common.BindJSON(c, &req) {
		return
	}
	comment, err := h.service.EditComment(c.Request.Context(), id, req.Content)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toCommentResponse(comment))
}

// DeleteComment handles DELETE /comments/:id
func (h *Handler) DeleteComment(c *gin.Context) {
	id, ok := common.ParseID(c, "comment")
	if !ok {
		return
	}
	if err := h.service.DeleteComment(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Dispatch handles POST /distributions/:id/dispatch
func (h *Handler) Dispatch(c *gin.Context) {
	id, ok := common.ParseID(c, "distribution")
	if !ok {
		return
	}
	var req DispatchRequest
	if !common.BindJSON(c, &req) {
		return
	}
	d, err := h.service.Dispatch(c.Request.Context(), id, req.Recipients, common.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Distribution dispatched", toDistributionResponse(d))
}
