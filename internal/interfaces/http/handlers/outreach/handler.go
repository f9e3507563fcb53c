// Package outreach serves partners, events and the media library. The
// listings are public; edits go through the admin API.
package outreach

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "campus/internal/application/outreach"
	"campus/internal/domain/outreach"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

type Handler struct {
	service    *app.Service
	partners   *common.RecordHandler[*outreach.Partner, outreach.PartnerDetails, outreach.PartnerFilter, PartnerRequest]
	affiliates *common.RecordHandler[*outreach.Affiliate, outreach.AffiliateDetails, outreach.AffiliateFilter, AffiliateRequest]
	events     *common.RecordHandler[*outreach.Event, outreach.EventDetails, outreach.EventFilter, EventRequest]
	media      *common.RecordHandler[*outreach.MediaFile, outreach.MediaDetails, outreach.MediaFilter, MediaRequest]
	logger     logger.Interface
}

func NewHandler(svc *app.Service, log logger.Interface) *Handler {
	return &Handler{
		service: svc,
		partners: common.NewRecordHandler[*outreach.Partner, outreach.PartnerDetails, outreach.PartnerFilter, PartnerRequest](
			"partner", svc.Partners,
			common.Mapper[*outreach.Partner, outreach.PartnerDetails, PartnerRequest]{
				ToDetails: partnerDetails, FromDetails: partnerRequest, ToResponse: toPartnerResponse,
			},
			partnerFilter, log),
		affiliates: common.NewRecordHandler[*outreach.Affiliate, outreach.AffiliateDetails, outreach.AffiliateFilter, AffiliateRequest](
			"affiliate", svc.Affiliates,
			common.Mapper[*outreach.Affiliate, outreach.AffiliateDetails, AffiliateRequest]{
				ToDetails: affiliateDetails, FromDetails: affiliateRequest, ToResponse: toAffiliateResponse,
			},
			func(c *gin.Context) outreach.AffiliateFilter {
				return outreach.AffiliateFilter{
					BaseFilter: utils.ParseBaseFilter(c),
					PartnerID:  mapper.Deref(utils.QueryUint(c, "partner_id")),
					Search:     c.Query("search"),
				}
			}, log),
		events: common.NewRecordHandler[*outreach.Event, outreach.EventDetails, outreach.EventFilter, EventRequest](
			"event", svc.Events,
			common.Mapper[*outreach.Event, outreach.EventDetails, EventRequest]{
				ToDetails: eventDetails, FromDetails: eventRequest, ToResponse: toEventResponse,
			},
			eventFilter, log),
		media: common.NewRecordHandler[*outreach.MediaFile, outreach.MediaDetails, outreach.MediaFilter, MediaRequest](
			"media file", svc.Media,
			common.Mapper[*outreach.MediaFile, outreach.MediaDetails, MediaRequest]{
				ToDetails: mediaDetails, FromDetails: mediaRequest, ToResponse: toMediaResponse,
			},
			mediaFilter, log),
		logger: log,
	}
}

// Register mounts /partners, /affiliates, /events and /media.
func (h *Handler) Register(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	h.partners.Register(rg.Group("/partners"), read, write)
	h.affiliates.Register(rg.Group("/affiliates"), read, write)
	h.events.Register(rg.Group("/events"), read, write)
	h.media.Register(rg.Group("/media"), read, write)
}

// RegisterPublic mounts the reading routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/partners", h.ListPartners)
	rg.GET("/partners/:slug", h.GetPartner)
	rg.GET("/events", h.ListEvents)
	rg.GET("/media", h.media.List)
}

func partnerFilter(c *gin.Context) outreach.PartnerFilter {
	return outreach.PartnerFilter{
		BaseFilter: utils.ParseBaseFilter(c),
		ActiveOnly: mapper.Deref(utils.QueryBool(c, "active_only")),
		Search:     c.Query("search"),
	}
}

func eventFilter(c *gin.Context) outreach.EventFilter {
	return outreach.EventFilter{
		BaseFilter: utils.ParseBaseFilter(c),
		Search:     c.Query("search"),
	}
}

func mediaFilter(c *gin.Context) outreach.MediaFilter {
	return outreach.MediaFilter{
		BaseFilter: utils.ParseBaseFilter(c),
		FileType:   c.Query("file_type"),
		Search:     c.Query("search"),
	}
}

// ListPartners handles GET /public/partners
func (h *Handler) ListPartners(c *gin.Context) {
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListActivePartners(c.Request.Context(), partnerFilter(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toPartnerResponse), total, p.Page, p.PageSize)
}

// GetPartner handles GET /public/partners/:slug
func (h *Handler) GetPartner(c *gin.Context) {
	partner, affiliates, err := h.service.GetActivePartner(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", PartnerDetailResponse{
		PartnerResponse: partnerView(partner),
		Affiliates:      mapper.MapSlice(affiliates, toAffiliateResponse),
	})
}

// ListEvents handles GET /public/events; finished events are left out.
func (h *Handler) ListEvents(c *gin.Context) {
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListUpcomingEvents(c.Request.Context(), eventFilter(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toEventResponse), total, p.Page, p.PageSize)
}
