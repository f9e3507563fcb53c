package maintenance

import (
	"fmt"
	"strings"
	"time"

	vo "campus/internal/domain/maintenance/valueobjects"
	"campus/internal/domain/shared"
	"campus/internal/shared/constants"
)

type WorkOrderDetails struct {
	MaintenanceRequestID uint
	TechnicianID         *uint
	SupervisorID         *uint
	ScheduledDate        *time.Time
	ScheduledStart       string
	ScheduledEnd         string
	ActualStart          *time.Time
	ActualEnd            *time.Time
	WorkDescription      string
	MaterialsRequired    string
	EstimatedCostCents   *int64
	ActualCostCents      *int64
	Currency             string
}

func (w WorkOrderDetails) normalize() (WorkOrderDetails, error) {
	if w.MaintenanceRequestID == 0 {
		return w, shared.NewFieldError("maintenance_request_id", "maintenance_request_id is required")
	}
	if err := shared.Required("work_description", w.WorkDescription); err != nil {
		return w, err
	}
	for field, value := range map[string]string{"scheduled_start": w.ScheduledStart, "scheduled_end": w.ScheduledEnd} {
		if value == "" {
			continue
		}
		if _, err := time.Parse(constants.TimeLayout, value); err != nil {
			return w, shared.NewFieldError(field, "%s must be a time in HH:MM format", field)
		}
	}
	if w.ActualStart != nil && w.ActualEnd != nil && w.ActualEnd.Before(*w.ActualStart) {
		return w, shared.NewFieldError("actual_end", "actual_end must not be before actual_start")
	}
	if w.Currency == "" {
		w.Currency = "USD"
	}
	w.Currency = strings.ToUpper(w.Currency)
	return w, nil
}

// WorkOrder schedules the work for exactly one maintenance request.
type WorkOrder struct {
	shared.Base
	workOrderID string
	details     WorkOrderDetails
	status      vo.WorkOrderStatus
}

func NewWorkOrder(workOrderID string, details WorkOrderDetails) (*WorkOrder, error) {
	if workOrderID == "" {
		return nil, fmt.Errorf("work order ID is required")
	}
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &WorkOrder{
		Base:        shared.NewBase(),
		workOrderID: workOrderID,
		details:     d,
		status:      vo.WorkOrderPending,
	}, nil
}

func ReconstructWorkOrder(id uint, workOrderID string, details WorkOrderDetails, status vo.WorkOrderStatus, createdAt, updatedAt time.Time) (*WorkOrder, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid work order status: %s", status)
	}
	return &WorkOrder{
		Base:        shared.ReconstructBase(id, createdAt, updatedAt),
		workOrderID: workOrderID,
		details:     details,
		status:      status,
	}, nil
}

func (w *WorkOrder) WorkOrderID() string        { return w.workOrderID }
func (w *WorkOrder) Details() WorkOrderDetails  { return w.details }
func (w *WorkOrder) Status() vo.WorkOrderStatus { return w.status }

// Update replaces the editable fields. The linked request cannot change.
func (w *WorkOrder) Update(details WorkOrderDetails) error {
	details.MaintenanceRequestID = w.details.MaintenanceRequestID
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	w.details = normalized
	w.Touch()
	return nil
}

func (w *WorkOrder) ChangeStatus(status vo.WorkOrderStatus) error {
	if !status.IsValid() {
		return shared.NewFieldError("status", "invalid work order status: %s", status)
	}
	w.status = status
	w.Touch()
	return nil
}

// Complete marks the order done and stamps actual_end when it is empty.
func (w *WorkOrder) Complete() {
	w.status = vo.WorkOrderCompleted
	now := w.Touch()
	if w.details.ActualEnd == nil {
		w.details.ActualEnd = &now
	}
}

type CompletionDetails struct {
	WorkOrderID         uint
	WorkPerformed       string
	MaterialsUsed       string
	PartsReplaced       string
	HoursWorked         float64
	LaborCostCents      *int64
	PartsCostCents      int64
	AssetConditionAfter vo.ConditionAfter
	Notes               string
	FollowUpNeeded      bool
	FollowUpNotes       string
}

func (c CompletionDetails) validate() error {
	if c.WorkOrderID == 0 {
		return shared.NewFieldError("work_order_id", "work_order_id is required")
	}
	if err := shared.Required("work_performed", c.WorkPerformed); err != nil {
		return err
	}
	if c.HoursWorked < 0.1 {
		return shared.NewFieldError("hours_worked", "hours_worked must be at least 0.1")
	}
	if c.PartsCostCents < 0 || (c.LaborCostCents != nil && *c.LaborCostCents < 0) {
		return shared.NewFieldError("labor_cost_cents", "costs must not be negative")
	}
	if c.AssetConditionAfter != "" && !c.AssetConditionAfter.IsValid() {
		return shared.NewFieldError("asset_condition_after", "invalid asset condition: %s", c.AssetConditionAfter)
	}
	return nil
}

// WorkOrderCompletion is the technician's report closing a work order.
type WorkOrderCompletion struct {
	shared.Base
	details        CompletionDetails
	totalCostCents *int64
	completedBy    *uint
}

func NewWorkOrderCompletion(details CompletionDetails, completedBy *uint) (*WorkOrderCompletion, error) {
	if err := details.validate(); err != nil {
		return nil, err
	}
	c := &WorkOrderCompletion{Base: shared.NewBase(), details: details, completedBy: completedBy}
	c.recalculate()
	return c, nil
}

func ReconstructWorkOrderCompletion(id uint, details CompletionDetails, totalCostCents *int64, completedBy *uint, completedAt, updatedAt time.Time) *WorkOrderCompletion {
	return &WorkOrderCompletion{
		Base:           shared.ReconstructBase(id, completedAt, updatedAt),
		details:        details,
		totalCostCents: totalCostCents,
		completedBy:    completedBy,
	}
}

func (c *WorkOrderCompletion) Details() CompletionDetails { return c.details }
func (c *WorkOrderCompletion) TotalCostCents() *int64     { return c.totalCostCents }
func (c *WorkOrderCompletion) CompletedBy() *uint         { return c.completedBy }
func (c *WorkOrderCompletion) CompletedAt() time.Time     { return c.CreatedAt() }

func (c *WorkOrderCompletion) Update(details CompletionDetails) error {
	details.WorkOrderID = c.details.WorkOrderID
	if err := details.validate(); err != nil {
		return err
	}
	c.details = details
	c.recalculate()
	c.Touch()
	return nil
}

// recalculate keeps total = labor + parts whenever labor is known.
func (c *WorkOrderCompletion) recalculate() {
	if c.details.LaborCostCents == nil {
		return
	}
	total := *c.details.LaborCostCents + c.details.PartsCostCents
	c.totalCostCents = &total
}
