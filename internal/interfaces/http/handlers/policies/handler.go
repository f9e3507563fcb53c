// Package policies serves institutional policies and strategic plans.
package policies

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	app "campus/internal/application/policies"
	"campus/internal/domain/policies"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

type Handler struct {
	service  *app.Service
	policies *common.RecordHandler[*policies.Policy, policies.PolicyDetails, policies.PolicyFilter, PolicyRequest]
	plans    *common.RecordHandler[*policies.StrategicPlan, policies.PlanDetails, policies.PlanFilter, PlanRequest]
	logger   logger.Interface
}

func NewHandler(svc *app.Service, log logger.Interface) *Handler {
	return &Handler{
		service: svc,
		policies: common.NewRecordHandler[*policies.Policy, policies.PolicyDetails, policies.PolicyFilter, PolicyRequest](
			"policy", svc.Policies,
			common.Mapper[*policies.Policy, policies.PolicyDetails, PolicyRequest]{
				ToDetails: policyDetails, FromDetails: policyRequest, ToResponse: toPolicyResponse,
			},
			policyFilter, log),
		plans: common.NewRecordHandler[*policies.StrategicPlan, policies.PlanDetails, policies.PlanFilter, PlanRequest](
			"strategic plan", svc.Plans,
			common.Mapper[*policies.StrategicPlan, policies.PlanDetails, PlanRequest]{
				ToDetails: planDetails, FromDetails: planRequest, ToResponse: toPlanResponse,
			},
			planFilter, log),
		logger: log,
	}
}

// Register mounts /policies and /strategic-plans.
func (h *Handler) Register(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	h.policies.Register(rg.Group("/policies"), read, write)
	h.plans.Register(rg.Group("/strategic-plans"), read, write)
}

// RegisterPublic mounts the active-only reading routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/policies", h.ListActivePolicies)
	rg.GET("/policies/:slug", h.GetActivePolicy)
	rg.GET("/strategic-plans", h.ListActivePlans)
}

func policyFilter(c *gin.Context) policies.PolicyFilter {
	return policies.PolicyFilter{
		BaseFilter: utils.ParseBaseFilter(c),
		Category:   c.Query("category"),
		ActiveOnly: mapper.Deref(utils.QueryBool(c, "active_only")),
		Search:     c.Query("search"),
	}
}

func planFilter(c *gin.Context) policies.PlanFilter {
	year, _ := strconv.Atoi(c.Query("year"))
	return policies.PlanFilter{
		BaseFilter: utils.ParseBaseFilter(c),
		Year:       year,
		ActiveOnly: mapper.Deref(utils.QueryBool(c, "active_only")),
	}
}

// ListActivePolicies handles GET /public/policies
func (h *Handler) ListActivePolicies(c *gin.Context) {
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListActivePolicies(c.Request.Context(), policyFilter(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toPolicyResponse), total, p.Page, p.PageSize)
}

// GetActivePolicy handles GET /public/policies/:slug
func (h *Handler) GetActivePolicy(c *gin.Context) {
	policy, err := h.service.GetActivePolicy(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toPolicyResponse(policy))
}

// ListActivePlans handles GET /public/strategic-plans
func (h *Handler) ListActivePlans(c *gin.Context) {
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListActivePlans(c.Request.Context(), planFilter(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toPlanResponse), total, p.Page, p.PageSize)
}
