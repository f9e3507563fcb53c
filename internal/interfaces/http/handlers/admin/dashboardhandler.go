// Package admin serves the administrative index and change history.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus/internal/application/admin/usecases"
	"campus/internal/domain/statushistory"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

// AdminDashboardHandler handles the admin dashboard and history endpoints.
type AdminDashboardHandler struct {
	dashboardUC *usecases.GetAdminDashboardUseCase
	historyUC   *usecases.ListStatusHistoryUseCase
	logger      logger.Interface
}

func NewAdminDashboardHandler(
	dashboardUC *usecases.GetAdminDashboardUseCase,
	historyUC *usecases.ListStatusHistoryUseCase,
	log logger.Interface,
) *AdminDashboardHandler {
	return &AdminDashboardHandler{
		dashboardUC: dashboardUC,
		historyUC:   historyUC,
		logger:      log,
	}
}

// GetDashboard handles GET /admin/dashboard
func (h *AdminDashboardHandler) GetDashboard(c *gin.Context) {
	resp, err := h.dashboardUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get admin dashboard", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Admin dashboard retrieved successfully", resp)
}

// ListHistory handles GET /admin/history
func (h *AdminDashboardHandler) ListHistory(c *gin.Context) {
	p := utils.ParsePagination(c)
	filter := statushistory.Filter{
		PageFilter: utils.ParseBaseFilter(c).PageFilter,
		EntityType: c.Query("entity_type"),
		EntityID:   mapper.Deref(utils.QueryUint(c, "entity_id")),
	}
	items, total, err := h.historyUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}
