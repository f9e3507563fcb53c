package maintenance

import (
	"context"
	"time"

	"campus/internal/domain/shared"
	"campus/internal/shared/query"
)

type TeamFilter struct {
	query.BaseFilter
	ActiveOnly bool
}

type TechnicianFilter struct {
	query.BaseFilter
	TeamID         uint
	Specialization string
	ActiveOnly     bool
}

type RequestFilter struct {
	query.BaseFilter
	Status       string
	Priority     string
	AssetID      uint
	AssignedToID uint
	RequesterID  uint
	Search       string
}

type ScheduleFilter struct {
	query.BaseFilter
	AssetID    uint
	TeamID     uint
	ActiveOnly bool
	// DueBy keeps active schedules due on or before the date.
	DueBy *time.Time
}

type SignatureFilter struct {
	query.BaseFilter
	WorkOrderID uint
}

type HistoryFilter struct {
	query.BaseFilter
	AssetID      uint
	TechnicianID uint
}

type MetricsFilter struct {
	query.BaseFilter
	Year int
}

type WorkOrderFilter struct {
	query.BaseFilter
	Status       string
	TechnicianID uint
}

// MaintenanceTeamRepository deletes clear technician.team_id and
// schedule.assigned_team_id.
type MaintenanceTeamRepository interface {
	shared.CRUD[*MaintenanceTeam]
	List(ctx context.Context, filter TeamFilter) ([]*MaintenanceTeam, int64, error)
}

// TechnicianRepository deletes clear the technician on requests, work
// orders and history entries.
type TechnicianRepository interface {
	shared.CRUD[*Technician]
	List(ctx context.Context, filter TechnicianFilter) ([]*Technician, int64, error)
}

// MaintenanceRequestRepository deletes cascade to the work order and its
// completion.
type MaintenanceRequestRepository interface {
	shared.CRUD[*MaintenanceRequest]
	List(ctx context.Context, filter RequestFilter) ([]*MaintenanceRequest, int64, error)
}

// WorkOrderRepository deletes cascade to the completion and signatures and
// clear history.work_order_id.
type WorkOrderRepository interface {
	shared.CRUD[*WorkOrder]
	List(ctx context.Context, filter WorkOrderFilter) ([]*WorkOrder, int64, error)
	GetByRequestID(ctx context.Context, requestID uint) (*WorkOrder, error)
}

type CompletionRepository interface {
	shared.CRUD[*WorkOrderCompletion]
	GetByWorkOrderID(ctx context.Context, workOrderID uint) (*WorkOrderCompletion, error)
}

// MaintenanceScheduleRepository lists the soonest due date first.
type MaintenanceScheduleRepository interface {
	shared.CRUD[*MaintenanceSchedule]
	List(ctx context.Context, filter ScheduleFilter) ([]*MaintenanceSchedule, int64, error)
}

type SignatureRepository interface {
	shared.CRUD[*MaintenanceSignature]
	List(ctx context.Context, filter SignatureFilter) ([]*MaintenanceSignature, int64, error)
	ExistsForWorkOrder(ctx context.Context, workOrderID uint, signatureType string) (bool, error)
}

// HistoryRepository lists the latest maintenance date first.
type HistoryRepository interface {
	shared.CRUD[*MaintenanceHistory]
	List(ctx context.Context, filter HistoryFilter) ([]*MaintenanceHistory, int64, error)
}

// MetricsRepository lists the latest month first.
type MetricsRepository interface {
	shared.CRUD[*MaintenanceMetrics]
	List(ctx context.Context, filter MetricsFilter) ([]*MaintenanceMetrics, int64, error)
	GetByMonth(ctx context.Context, month time.Time) (*MaintenanceMetrics, error)
}
