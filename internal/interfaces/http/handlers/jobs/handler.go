// Package jobs serves vacancy administration and the public careers pages.
package jobs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "campus/internal/application/jobs"
	"campus/internal/domain/jobs"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

type Handler struct {
	service      *app.Service
	postings     *common.RecordHandler[*jobs.JobPosting, jobs.PostingDetails, jobs.PostingFilter, PostingRequest]
	applications *common.RecordHandler[*jobs.JobApplication, jobs.ApplicationDetails, jobs.ApplicationFilter, ApplicationRequest]
	status       *common.StatusHandler[*jobs.JobApplication]
	logger       logger.Interface
}

func NewHandler(svc *app.Service, log logger.Interface) *Handler {
	return &Handler{
		service: svc,
		postings: common.NewRecordHandler[*jobs.JobPosting, jobs.PostingDetails, jobs.PostingFilter, PostingRequest](
			"job posting", svc.Postings,
			common.Mapper[*jobs.JobPosting, jobs.PostingDetails, PostingRequest]{
				ToDetails: postingDetails, FromDetails: postingRequest, ToResponse: toPostingResponse,
			},
			postingFilter, log),
		applications: common.NewRecordHandler[*jobs.JobApplication, jobs.ApplicationDetails, jobs.ApplicationFilter, ApplicationRequest](
			"job application", svc.Applications,
			common.Mapper[*jobs.JobApplication, jobs.ApplicationDetails, ApplicationRequest]{
				ToDetails: applicationDetails, FromDetails: applicationRequest, ToResponse: toApplicationResponse,
			},
			func(c *gin.Context) jobs.ApplicationFilter {
				return jobs.ApplicationFilter{
					BaseFilter: utils.ParseBaseFilter(c),
					JobID:      mapper.Deref(utils.QueryUint(c, "job_id")),
					Status:     c.Query("status"),
					Search:     c.Query("search"),
				}
			}, log),
		status: common.NewStatusHandler[*jobs.JobApplication]("job application", svc.ApplicationStatus, toApplicationResponse),
		logger: log,
	}
}

// Register mounts /postings and /applications.
func (h *Handler) Register(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	postings := rg.Group("/postings")
	h.postings.Register(postings, read, write)
	postings.GET("/:id/applications", common.Chain(read, h.ListApplicationsForJob)...)

	applications := rg.Group("/applications")
	h.status.Register(applications, write)
	h.applications.Register(applications, read, write)
}

// RegisterPublic mounts the careers pages. submit guards the application
// submission route, e.g. with a rate limit.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup, submit gin.HandlerFunc) {
	rg.GET("", h.ListOpen)
	rg.GET("/slug/:slug", h.GetOpen)
	rg.POST("/:id/apply", common.Chain(submit, h.Apply)...)
}

func postingFilter(c *gin.Context) jobs.PostingFilter {
	return jobs.PostingFilter{
		BaseFilter: utils.ParseBaseFilter(c),
		JobType:    c.Query("job_type"),
		Department: c.Query("department"),
		ActiveOnly: mapper.Deref(utils.QueryBool(c, "active_only")),
	}
}

// ListApplicationsForJob handles GET /postings/:id/applications
func (h *Handler) ListApplicationsForJob(c *gin.Context) {
	id, ok := common.ParseID(c, "job posting")
	if !ok {
		return
	}
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListApplicationsForJob(c.Request.Context(), id, utils.ParseBaseFilter(c).PageFilter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toApplicationResponse), total, p.Page, p.PageSize)
}

// ListOpen handles GET /jobs
func (h *Handler) ListOpen(c *gin.Context) {
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListOpen(c.Request.Context(), postingFilter(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toPostingResponse), total, p.Page, p.PageSize)
}

// GetOpen handles GET /jobs/slug/:slug
func (h *Handler) GetOpen(c *gin.Context) {
	posting, err := h.service.GetOpenBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toPostingResponse(posting))
}

// Apply handles POST /jobs/:id/apply
func (h *Handler) Apply(c *gin.Context) {
	id, ok := common.ParseID(c, "job posting")
	if !ok {
		return
	}
	var req ApplyRequest
	if !common.BindJSON(c, &req) {
		return
	}
	application, err := h.service.Apply(c.Request.Context(), id, jobs.ApplicationDetails{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		ResumePath:  req.ResumePath,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toApplicationResponse(application), "Application submitted")
}
