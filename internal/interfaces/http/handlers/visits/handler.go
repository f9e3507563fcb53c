// Package visits serves department visit requests.
package visits

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "campus/internal/application/visits"
	"campus/internal/domain/visits"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

type Handler struct {
	service *app.Service
	status  *common.StatusHandler[*visits.VisitRequest]
	logger  logger.Interface
}

func NewHandler(svc *app.Service, log logger.Interface) *Handler {
	return &Handler{
		service: svc,
		status:  common.NewStatusHandler[*visits.VisitRequest]("visit request", svc.Status, toVisitResponse),
		logger:  log,
	}
}

// Register mounts the routes every signed-in user reaches. Scope rules are
// enforced by the service.
func (h *Handler) Register(rg *gin.RouterGroup) {
	departments := rg.Group("/departments")
	departments.GET("", h.ListDepartments)
	departments.GET("/:id", h.GetDepartment)

	requests := rg.Group("/requests")
	requests.GET("", h.List)
	requests.POST("", h.Create)
	requests.GET("/:id", h.Get)
	requests.PUT("/:id", h.Update)
	requests.PATCH("/:id", h.Update)
	requests.DELETE("/:id", h.Delete)
	requests.POST("/:id/respond", h.Respond)
}

// RegisterAdmin mounts department management and the bulk status routes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	departments := rg.Group("/departments")
	departments.GET("", common.Chain(read, h.ListDepartments)...)
	departments.POST("", common.Chain(write, h.CreateDepartment)...)
	departments.GET("/:id", common.Chain(read, h.GetDepartment)...)
	departments.PUT("/:id", common.Chain(write, h.RenameDepartment)...)
	departments.DELETE("/:id", common.Chain(write, h.DeleteDepartment)...)

	requests := rg.Group("/requests")
	requests.GET("", common.Chain(read, h.List)...)
	h.status.Register(requests, write)
}

// ListDepartments handles GET /departments
func (h *Handler) ListDepartments(c *gin.Context) {
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListDepartments(c.Request.Context(), utils.ParseBaseFilter(c).PageFilter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toDepartmentResponse), total, p.Page, p.PageSize)
}

// GetDepartment handles GET /departments/:id
func (h *Handler) GetDepartment(c *gin.Context) {
	id, ok := common.ParseID(c, "department")
	if !ok {
		return
	}
	dept, err := h.service.GetDepartment(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toDepartmentResponse(dept))
}

// CreateDepartment handles POST /departments
func (h *Handler) CreateDepartment(c *gin.Context) {
	var req DepartmentRequest
	if !common.BindJSON(c, &req) {
		return
	}
	dept, err := h.service.CreateDepartment(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toDepartmentResponse(dept), "Department created")
}

// RenameDepartment handles PUT /departments/:id
func (h *Handler) RenameDepartment(c *gin.Context) {
	id, ok := common.ParseID(c, "department")
	if !ok {
		return
	}
	var req DepartmentRequest
	if !common.BindJSON(c, &req) {
		return
	}
	dept, err := h.service.RenameDepartment(c.Request.Context(), id, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Department updated", toDepartmentResponse(dept))
}

// DeleteDepartment handles DELETE /departments/:id
func (h *Handler) DeleteDepartment(c *gin.Context) {
	id, ok := common.ParseID(c, "department")
	if !ok {
		return
	}
	if err := h.service.DeleteDepartment(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// List handles GET /requests
func (h *Handler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	filter := visits.RequestFilter{
		BaseFilter:   utils.ParseBaseFilter(c),
		DepartmentID: mapper.Deref(utils.QueryUint(c, "department_id")),
		Status:       c.Query("status"),
	}
	items, total, err := h.service.List(c.Request.Context(), common.CallerFrom(c), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toVisitResponse), total, p.Page, p.PageSize)
}

// Create handles POST /requests
func (h *Handler) Create(c *gin.Context) {
	var req CreateVisitRequest
	if !common.BindJSON(c, &req) {
		return
	}
	visit, err := h.service.Create(c.Request.Context(), common.CallerFrom(c), app.CreateRequest{
		RequesterID:  req.RequesterID,
		DepartmentID: req.DepartmentID,
		Reason:       req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toVisitResponse(visit), "Visit request created")
}

// Get handles GET /requests/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := common.ParseID(c, "visit request")
	if !ok {
		return
	}
	visit, err := h.service.Get(c.Request.Context(), common.CallerFrom(c), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toVisitResponse(visit))
}

// Update handles PUT and PATCH /requests/:id. Empty fields keep their value.
func (h *Handler) Update(c *gin.Context) {
	id, ok := common.ParseID(c, "visit request")
	if !ok {
		return
	}
	var req UpdateVisitRequest
	if !common.BindJSON(c, &req) {
		return
	}
	visit, err := h.service.Update(c.Request.Context(), common.CallerFrom(c), id, req.DepartmentID, req.Reason)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Visit request updated", toVisitResponse(visit))
}

// Delete handles DELETE /requests/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := common.ParseID(c, "visit request")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), common.CallerFrom(c), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Respond handles POST /requests/:id/respond
func (h *Handler) Respond(c *gin.Context) {
	id, ok := common.ParseID(c, "visit request")
	if !ok {
		return
	}
	var req RespondRequest
	if !common.BindJSON(c, &req) {
		return
	}
	visit, err := h.service.Respond(c.Request.Context(), common.CallerFrom(c), id, req.Status, req.Note)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Response recorded", toVisitResponse(visit))
}
