package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"campus/internal/domain/maintenance"
	"campus/internal/infrastructure/persistence/mappers"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

var (
	teamSortColumns       = map[string]bool{"id": true, "name": true}
	technicianSortColumns = map[string]bool{"id": true, "specialization": true, "created_at": true}
	requestSortColumns    = map[string]bool{
		"id": true, "request_id": true, "priority": true, "status": true,
		"target_completion_date": true, "created_at": true,
	}
	workOrderSortColumns = map[string]bool{"id": true, "work_order_id": true, "status": true, "scheduled_date": true}
	scheduleSortColumns  = map[string]bool{"id": true, "next_due_date": true, "title": true, "frequency": true}
	signatureSortColumns = map[string]bool{"id": true, "signed_at": true, "signature_type": true}
	historySortColumns   = map[string]bool{"id": true, "maintenance_date": true}
	metricsSortColumns   = map[string]bool{"month": true}
)

type MaintenanceTeamRepository struct {
	*table[*maintenance.MaintenanceTeam, models.MaintenanceTeamModel]
}

var _ maintenance.MaintenanceTeamRepository = (*MaintenanceTeamRepository)(nil)

func NewMaintenanceTeamRepository(gdb *gorm.DB, logger logger.Interface) *MaintenanceTeamRepository {
	return &MaintenanceTeamRepository{&table[*maintenance.MaintenanceTeam, models.MaintenanceTeamModel]{
		db:       gdb,
		logger:   logger,
		label:    "maintenance team",
		toModel:  mappers.TeamToModel,
		toDomain: mappers.TeamToDomain,
		modelID:  func(m *models.MaintenanceTeamModel) uint { return m.ID },
		onDelete: teamRules(),
	}}
}

func (r *MaintenanceTeamRepository) List(ctx context.Context, filter maintenance.TeamFilter) ([]*maintenance.MaintenanceTeam, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(teamSortColumns, "name ASC"),
		db.WhereIf(filter.ActiveOnly, "is_active = ?", true),
	)
}

type TechnicianRepository struct {
	*table[*maintenance.Technician, models.TechnicianModel]
}

var _ maintenance.TechnicianRepository = (*TechnicianRepository)(nil)

func NewTechnicianRepository(gdb *gorm.DB, logger logger.Interface) *TechnicianRepository {
	return &TechnicianRepository{&table[*maintenance.Technician, models.TechnicianModel]{
		db:       gdb,
		logger:   logger,
		label:    "technician",
		toModel:  mappers.TechnicianToModel,
		toDomain: mappers.TechnicianToDomain,
		modelID:  func(m *models.TechnicianModel) uint { return m.ID },
		onDelete: technicianRules(),
	}}
}

func (r *TechnicianRepository) List(ctx context.Context, filter maintenance.TechnicianFilter) ([]*maintenance.Technician, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(technicianSortColumns, "id ASC"),
		db.WhereIf(filter.TeamID != 0, "team_id = ?", filter.TeamID),
		db.WhereIf(filter.Specialization != "", "specialization = ?", filter.Specialization),
		db.WhereIf(filter.ActiveOnly, "is_active = ?", true),
	)
}

// MaintenanceRequestRepository orders requests newest first by default.
type MaintenanceRequestRepository struct {
	*table[*maintenance.MaintenanceRequest, models.MaintenanceRequestModel]
}

var _ maintenance.MaintenanceRequestRepository = (*MaintenanceRequestRepository)(nil)

func NewMaintenanceRequestRepository(gdb *gorm.DB, logger logger.Interface) *MaintenanceRequestRepository {
	return &MaintenanceRequestRepository{&table[*maintenance.MaintenanceRequest, models.MaintenanceRequestModel]{
		db:       gdb,
		logger:   logger,
		label:    "maintenance request",
		toModel:  mappers.RequestToModel,
		toDomain: mappers.RequestToDomain,
		modelID:  func(m *models.MaintenanceRequestModel) uint { return m.ID },
		unique:   []string{"request_id"},
		onDelete: maintenanceRequestRules(),
	}}
}

func (r *MaintenanceRequestRepository) List(ctx context.Context, filter maintenance.RequestFilter) ([]*maintenance.MaintenanceRequest, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(requestSortColumns, "created_at DESC"),
		db.WhereIf(filter.Status != "", "status = ?", filter.Status),
		db.WhereIf(filter.Priority != "", "priority = ?", filter.Priority),
		db.WhereIf(filter.AssetID != 0, "asset_id = ?", filter.AssetID),
		db.WhereIf(filter.AssignedToID != 0, "assigned_to_id = ?", filter.AssignedToID),
		db.WhereIf(filter.RequesterID != 0, "requester_id = ?", filter.RequesterID),
		search(filter.Search, "request_id", "title"),
	)
}

type WorkOrderRepository struct {
	*table[*maintenance.WorkOrder, models.WorkOrderModel]
}

var _ maintenance.WorkOrderRepository = (*WorkOrderRepository)(nil)

func NewWorkOrderRepository(gdb *gorm.DB, logger logger.Interface) *WorkOrderRepository {
	return &WorkOrderRepository{&table[*maintenance.WorkOrder, models.WorkOrderModel]{
		db:       gdb,
		logger:   logger,
		label:    "work order",
		toModel:  mappers.WorkOrderToModel,
		toDomain: mappers.WorkOrderToDomain,
		modelID:  func(m *models.WorkOrderModel) uint { return m.ID },
		unique:   []string{"maintenance_request_id", "work_order_id"},
		onDelete: workOrderRules(),
	}}
}

func (r *WorkOrderRepository) List(ctx context.Context, filter maintenance.WorkOrderFilter) ([]*maintenance.WorkOrder, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(workOrderSortColumns, "created_at DESC"),
		db.WhereIf(filter.Status != "", "status = ?", filter.Status),
		db.WhereIf(filter.TechnicianID != 0, "technician_id = ?", filter.TechnicianID),
	)
}

func (r *WorkOrderRepository) GetByRequestID(ctx context.Context, requestID uint) (*maintenance.WorkOrder, error) {
	return r.first(ctx, "maintenance_request_id = ?", requestID)
}

type CompletionRepository struct {
	*table[*maintenance.WorkOrderCompletion, models.WorkOrderCompletionModel]
}

var _ maintenance.CompletionRepository = (*CompletionRepository)(nil)

func NewCompletionRepository(gdb *gorm.DB, logger logger.Interface) *CompletionRepository {
	return &CompletionRepository{&table[*maintenance.WorkOrderCompletion, models.WorkOrderCompletionModel]{
		db:       gdb,
		logger:   logger,
		label:    "work order completion",
		toModel:  mappers.CompletionToModel,
		toDomain: mappers.CompletionToDomain,
		modelID:  func(m *models.WorkOrderCompletionModel) uint { return m.ID },
		unique:   []string{"work_order_id"},
	}}
}

func (r *CompletionRepository) GetByWorkOrderID(ctx context.Context, workOrderID uint) (*maintenance.WorkOrderCompletion, error) {
	return r.first(ctx, "work_order_id = ?", workOrderID)
}

type MaintenanceScheduleRepository struct {
	*table[*maintenance.MaintenanceSchedule, models.MaintenanceScheduleModel]
}

var _ maintenance.MaintenanceScheduleRepository = (*MaintenanceScheduleRepository)(nil)

func NewMaintenanceScheduleRepository(gdb *gorm.DB, logger logger.Interface) *MaintenanceScheduleRepository {
	return &MaintenanceScheduleRepository{&table[*maintenance.MaintenanceSchedule, models.MaintenanceScheduleModel]{
		db:       gdb,
		logger:   logger,
		label:    "maintenance schedule",
		toModel:  mappers.ScheduleToModel,
		toDomain: mappers.ScheduleToDomain,
		modelID:  func(m *models.MaintenanceScheduleModel) uint { return m.ID },
	}}
}

func (r *MaintenanceScheduleRepository) List(ctx context.Context, filter maintenance.ScheduleFilter) ([]*maintenance.MaintenanceSchedule, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(scheduleSortColumns, "next_due_date ASC"),
		db.WhereIf(filter.AssetID != 0, "asset_id = ?", filter.AssetID),
		db.WhereIf(filter.TeamID != 0, "assigned_team_id = ?", filter.TeamID),
		db.WhereIf(filter.ActiveOnly || filter.DueBy != nil, "is_active = ?", true),
		db.WhereIf(filter.DueBy != nil, "next_due_date <= ?", filter.DueBy),
	)
}

// SignatureRepository keeps one signature per type on a work order.
type SignatureRepository struct {
	*table[*maintenance.MaintenanceSignature, models.SignatureModel]
}

var _ maintenance.SignatureRepository = (*SignatureRepository)(nil)

func NewSignatureRepository(gdb *gorm.DB, logger logger.Interface) *SignatureRepository {
	return &SignatureRepository{&table[*maintenance.MaintenanceSignature, models.SignatureModel]{
		db:       gdb,
		logger:   logger,
		label:    "maintenance signature",
		toModel:  mappers.SignatureToModel,
		toDomain: mappers.SignatureToDomain,
		modelID:  func(m *models.SignatureModel) uint { return m.ID },
		unique:   []string{"signature_type"},
	}}
}

func (r *SignatureRepository) List(ctx context.Context, filter maintenance.SignatureFilter) ([]*maintenance.MaintenanceSignature, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(signatureSortColumns, "signed_at ASC"),
		db.WhereIf(filter.WorkOrderID != 0, "work_order_id = ?", filter.WorkOrderID),
	)
}

func (r *SignatureRepository) ExistsForWorkOrder(ctx context.Context, workOrderID uint, signatureType string) (bool, error) {
	return r.exists(ctx, "work_order_id = ? AND signature_type = ?", workOrderID, signatureType)
}

type HistoryRepository struct {
	*table[*maintenance.MaintenanceHistory, models.MaintenanceHistoryModel]
}

var _ maintenance.HistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository(gdb *gorm.DB, logger logger.Interface) *HistoryRepository {
	return &HistoryRepository{&table[*maintenance.MaintenanceHistory, models.MaintenanceHistoryModel]{
		db:       gdb,
		logger:   logger,
		label:    "maintenance history",
		toModel:  mappers.HistoryToModel,
		toDomain: mappers.HistoryToDomain,
		modelID:  func(m *models.MaintenanceHistoryModel) uint { return m.ID },
	}}
}

func (r *HistoryRepository) List(ctx context.Context, filter maintenance.HistoryFilter) ([]*maintenance.MaintenanceHistory, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(historySortColumns, "maintenance_date DESC"),
		db.WhereIf(filter.AssetID != 0, "asset_id = ?", filter.AssetID),
		db.WhereIf(filter.TechnicianID != 0, "technician_id = ?", filter.TechnicianID),
	)
}

type MetricsRepository struct {
	*table[*maintenance.MaintenanceMetrics, models.MaintenanceMetricsModel]
}

var _ maintenance.MetricsRepository = (*MetricsRepository)(nil)

func NewMetricsRepository(gdb *gorm.DB, logger logger.Interface) *MetricsRepository {
	return &MetricsRepository{&table[*maintenance.MaintenanceMetrics, models.MaintenanceMetricsModel]{
		db:       gdb,
		logger:   logger,
		label:    "maintenance metrics",
		toModel:  mappers.MetricsToModel,
		toDomain: mappers.MetricsToDomain,
		modelID:  func(m *models.MaintenanceMetricsModel) uint { return m.ID },
		unique:   []string{"month"},
	}}
}

func (r *MetricsRepository) List(ctx context.Context, filter maintenance.MetricsFilter) ([]*maintenance.MaintenanceMetrics, int64, error) {
	from := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(metricsSortColumns, "month DESC"),
		db.WhereIf(filter.Year != 0, "month >= ? AND month < ?", from, from.AddDate(1, 0, 0)),
	)
}

func (r *MetricsRepository) GetByMonth(ctx context.Context, month time.Time) (*maintenance.MaintenanceMetrics, error) {
	return r.first(ctx, "month = ?", month)
}
