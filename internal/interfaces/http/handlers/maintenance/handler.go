// Package maintenance serves teams, technicians, requests, work orders and
// completion reports.
package maintenance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "campus/internal/application/maintenance"
	"campus/internal/domain/maintenance"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/biztime"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

type Handler struct {
	service         *app.Service
	teams           *common.RecordHandler[*maintenance.MaintenanceTeam, maintenance.TeamDetails, maintenance.TeamFilter, TeamRequest]
	technicians     *common.RecordHandler[*maintenance.Technician, maintenance.TechnicianDetails, maintenance.TechnicianFilter, TechnicianRequest]
	requests        *common.RecordHandler[*maintenance.MaintenanceRequest, maintenance.RequestDetails, maintenance.RequestFilter, RequestRequest]
	workOrders      *common.RecordHandler[*maintenance.WorkOrder, maintenance.WorkOrderDetails, maintenance.WorkOrderFilter, WorkOrderRequest]
	schedules       *common.RecordHandler[*maintenance.MaintenanceSchedule, maintenance.ScheduleDetails, maintenance.ScheduleFilter, ScheduleRequest]
	signatures      *common.RecordHandler[*maintenance.MaintenanceSignature, maintenance.SignatureDetails, maintenance.SignatureFilter, SignatureRequest]
	history         *common.RecordHandler[*maintenance.MaintenanceHistory, maintenance.HistoryDetails, maintenance.HistoryFilter, HistoryRequest]
	metrics         *common.RecordHandler[*maintenance.MaintenanceMetrics, maintenance.MetricsDetails, maintenance.MetricsFilter, MetricsRequest]
	requestStatus   *common.StatusHandler[*maintenance.MaintenanceRequest]
	workOrderStatus *common.StatusHandler[*maintenance.WorkOrder]
	logger          logger.Interface
}

func NewHandler(svc *app.Service, log logger.Interface) *Handler {
	return &Handler{
		service: svc,
		teams: common.NewRecordHandler[*maintenance.MaintenanceTeam, maintenance.TeamDetails, maintenance.TeamFilter, TeamRequest](
			"maintenance team", svc.Teams,
			common.Mapper[*maintenance.MaintenanceTeam, maintenance.TeamDetails, TeamRequest]{
				ToDetails: teamDetails, FromDetails: teamRequest, ToResponse: toTeamResponse,
			},
			func(c *gin.Context) maintenance.TeamFilter {
				return maintenance.TeamFilter{
					BaseFilter: utils.ParseBaseFilter(c),
					ActiveOnly: mapper.Deref(utils.QueryBool(c, "active_only")),
				}
			}, log),
		technicians: common.NewRecordHandler[*maintenance.Technician, maintenance.TechnicianDetails, maintenance.TechnicianFilter, TechnicianRequest](
			"technician", svc.Technicians,
			common.Mapper[*maintenance.Technician, maintenance.TechnicianDetails, TechnicianRequest]{
				ToDetails: technicianDetails, FromDetails: technicianRequest, ToResponse: toTechnicianResponse,
			},
			func(c *gin.Context) maintenance.TechnicianFilter {
				return maintenance.TechnicianFilter{
					BaseFilter:     utils.ParseBaseFilter(c),
					TeamID:         mapper.Deref(utils.QueryUint(c, "team_id")),
					Specialization: c.Query("specialization"),
					ActiveOnly:     mapper.Deref(utils.QueryBool(c, "active_only")),
				}
			}, log),
		requests: common.NewRecordHandler[*maintenance.MaintenanceRequest, maintenance.RequestDetails, maintenance.RequestFilter, RequestRequest](
			"maintenance request", svc.Requests,
			common.Mapper[*maintenance.MaintenanceRequest, maintenance.RequestDetails, RequestRequest]{
				ToDetails: requestDetails, FromDetails: requestRequest, ToResponse: toRequestResponse,
			},
			requestFilter, log),
		workOrders: common.NewRecordHandler[*maintenance.WorkOrder, maintenance.WorkOrderDetails, maintenance.WorkOrderFilter, WorkOrderRequest](
			"work order", svc.WorkOrders,
			common.Mapper[*maintenance.WorkOrder, maintenance.WorkOrderDetails, WorkOrderRequest]{
				ToDetails: workOrderDetails, FromDetails: workOrderRequest, ToResponse: toWorkOrderResponse,
			},
			func(c *gin.Context) maintenance.WorkOrderFilter {
				return maintenance.WorkOrderFilter{
					BaseFilter:   utils.ParseBaseFilter(c),
					Status:       c.Query("status"),
					TechnicianID: mapper.Deref(utils.QueryUint(c, "technician_id")),
				}
			}, log),
		schedules: common.NewRecordHandler[*maintenance.MaintenanceSchedule, maintenance.ScheduleDetails, maintenance.ScheduleFilter, ScheduleRequest](
			"maintenance schedule", svc.Schedules,
			common.Mapper[*maintenance.MaintenanceSchedule, maintenance.ScheduleDetails, ScheduleRequest]{
				ToDetails: scheduleDetails, FromDetails: scheduleRequest, ToResponse: toScheduleResponse,
			},
			scheduleFilter, log),
		signatures: common.NewRecordHandler[*maintenance.MaintenanceSignature, maintenance.SignatureDetails, maintenance.SignatureFilter, SignatureRequest](
			"maintenance signature", svc.Signatures,
			common.Mapper[*maintenance.MaintenanceSignature, maintenance.SignatureDetails, SignatureRequest]{
				ToDetails: signatureDetails, FromDetails: signatureRequest, ToResponse: toSignatureResponse,
			},
			func(c *gin.Context) maintenance.SignatureFilter {
				return maintenance.SignatureFilter{
					BaseFilter:  utils.ParseBaseFilter(c),
					WorkOrderID: mapper.Deref(utils.QueryUint(c, "work_order_id")),
				}
			}, log),
		history: common.NewRecordHandler[*maintenance.MaintenanceHistory, maintenance.HistoryDetails, maintenance.HistoryFilter, HistoryRequest](
			"maintenance history", svc.History,
			common.Mapper[*maintenance.MaintenanceHistory, maintenance.HistoryDetails, HistoryRequest]{
				ToDetails: historyDetails, FromDetails: historyRequest, ToResponse: toHistoryResponse,
			},
			func(c *gin.Context) maintenance.HistoryFilter {
				return maintenance.HistoryFilter{
					BaseFilter:   utils.ParseBaseFilter(c),
					AssetID:      mapper.Deref(utils.QueryUint(c, "asset_id")),
					TechnicianID: mapper.Deref(utils.QueryUint(c, "technician_id")),
				}
			}, log),
		metrics: common.NewRecordHandler[*maintenance.MaintenanceMetrics, maintenance.MetricsDetails, maintenance.MetricsFilter, MetricsRequest](
			"maintenance metrics", svc.Metrics,
			common.Mapper[*maintenance.MaintenanceMetrics, maintenance.MetricsDetails, MetricsRequest]{
				ToDetails: metricsDetails, FromDetails: metricsRequest, ToResponse: toMetricsResponse,
			},
			func(c *gin.Context) maintenance.MetricsFilter {
				return maintenance.MetricsFilter{
					BaseFilter: utils.ParseBaseFilter(c),
					Year:       int(mapper.Deref(utils.QueryUint(c, "year"))),
				}
			}, log),
		requestStatus: common.NewStatusHandler[*maintenance.MaintenanceRequest]("maintenance request", svc.RequestStatus, toRequestResponse).
			WithBulkAction(svc.BulkRequestAction),
		workOrderStatus: common.NewStatusHandler[*maintenance.WorkOrder]("work order", svc.WorkOrderStatus, toWorkOrderResponse),
		logger:          log,
	}
}

// Register mounts /teams, /technicians, /requests, /work-orders,
// /schedules, /signatures, /history and /metrics.
func (h *Handler) Register(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	h.teams.Register(rg.Group("/teams"), read, write)
	h.technicians.Register(rg.Group("/technicians"), read, write)

	requests := rg.Group("/requests")
	h.requestStatus.Register(requests, write)
	h.requests.Register(requests, read, write)
	requests.POST("/:id/assign", common.Chain(write, h.AssignTechnician)...)

	orders := rg.Group("/work-orders")
	h.workOrderStatus.Register(orders, write)
	h.workOrders.Register(orders, read, write)
	orders.GET("/:id/completion", common.Chain(read, h.GetCompletion)...)
	orders.POST("/:id/completion", common.Chain(write, h.RecordCompletion)...)
	orders.PUT("/:id/completion", common.Chain(write, h.UpdateCompletion)...)

	schedules := rg.Group("/schedules")
	h.schedules.Register(schedules, read, write)
	schedules.POST("/:id/performed", common.Chain(write, h.MarkPerformed)...)

	h.signatures.Register(rg.Group("/signatures"), read, write)
	h.history.Register(rg.Group("/history"), read, write)
	h.metrics.Register(rg.Group("/metrics"), read, write)
}

func scheduleFilter(c *gin.Context) maintenance.ScheduleFilter {
	f := maintenance.ScheduleFilter{
		BaseFilter: utils.ParseBaseFilter(c),
		AssetID:    mapper.Deref(utils.QueryUint(c, "asset_id")),
		TeamID:     mapper.Deref(utils.QueryUint(c, "team_id")),
		ActiveOnly: mapper.Deref(utils.QueryBool(c, "active_only")),
	}
	if mapper.Deref(utils.QueryBool(c, "overdue")) {
		today := biztime.Today()
		f.DueBy = &today
	}
	return f
}

// MarkPerformed handles POST /schedules/:id/performed. An empty body means
// it was done today.
func (h *Handler) MarkPerformed(c *gin.Context) {
	id, ok := common.ParseID(c, "maintenance schedule")
	if !ok {
		return
	}
	var req PerformedRequest
	if c.Request.ContentLength > 0 && !common.BindJSON(c, &req) {
		return
	}
	day := biztime.Today()
	if req.PerformedOn != "" {
		parsed, err := utils.ParseDateField("performed_on", req.PerformedOn)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		day = parsed
	}
	schedule, err := h.service.MarkSchedulePerformed(c.Request.Context(), id, day)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Schedule updated", toScheduleResponse(schedule))
}

func requestFilter(c *gin.Context) maintenance.RequestFilter {
	return maintenance.RequestFilter{
		BaseFilter:   utils.ParseBaseFilter(c),
		Status:       c.Query("status"),
		Priority:     c.Query("priority"),
		AssetID:      mapper.Deref(utils.QueryUint(c, "asset_id")),
		AssignedToID: mapper.Deref(utils.QueryUint(c, "assigned_to_id")),
		RequesterID:  mapper.Deref(utils.QueryUint(c, "requester_id")),
		Search:       c.Query("search"),
	}
}

// AssignTechnician handles POST /requests/:id/assign
func (h *Handler) AssignTechnician(c *gin.Context) {
	id, ok := common.ParseID(c, "maintenance request")
	if !ok {
		return
	}
	var req AssignRequest
	if !common.BindJSON(c, &req) {
		return
	}
	r, err := h.service.AssignTechnician(c.Request.Context(), id, req.TechnicianID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Technician assigned", toRequestResponse(r))
}

// RecordCompletion handles POST /work-orders/:id/completion
func (h *Handler) RecordCompletion(c *gin.Context) {
	id, ok := common.ParseID(c, "work order")
	if !ok {
		return
	}
	var req CompletionRequest
	if !common.BindJSON(c, &req) {
		return
	}
	completion, err := h.service.RecordCompletion(c.Request.Context(), completionDetails(id, req), common.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toCompletionResponse(completion), "Work order completed")
}

// GetCompletion handles GET /work-orders/:id/completion
func (h *Handler) GetCompletion(c *gin.Context) {
	id, ok := common.ParseID(c, "work order")
	if !ok {
		return
	}
	completion, err := h.service.GetCompletion(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toCompletionResponse(completion))
}

// UpdateCompletion handles PUT /work-orders/:id/completion
func (h *Handler) UpdateCompletion(c *gin.Context) {
	id, ok := common.ParseID(c, "work order")
	if !ok {
		return
	}
	var req CompletionRequest
	if !common.BindJSON(c, &req) {
		return
	}
	completion, err := h.service.UpdateCompletion(c.Request.Context(), id, completionDetails(id, req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toCompletionResponse(completion))
}
