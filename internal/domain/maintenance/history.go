package maintenance

import (
	"strings"
	"time"

	"campus/internal/domain/shared"
)

type HistoryDetails struct {
	AssetID         uint
	WorkOrderID     *uint
	MaintenanceDate time.Time
	WorkDescription string
	TechnicianID    *uint
	Supervisor      string
	CostCents       *int64
	DurationHours   *float64
	SparePartsUsed  string
	ConditionBefore string
	ConditionAfter  string
	Notes           string
}

func (h HistoryDetails) normalize() (HistoryDetails, error) {
	h.WorkDescription = strings.TrimSpace(h.WorkDescription)
	if h.AssetID == 0 {
		return h, shared.NewFieldError("asset_id", "asset_id is required")
	}
	if h.MaintenanceDate.IsZero() {
		return h, shared.NewFieldError("maintenance_date", "maintenance_date is required")
	}
	if err := shared.FirstError(
		shared.Required("work_description", h.WorkDescription),
		shared.MaxLength("supervisor", h.Supervisor, 255),
		shared.MaxLength("asset_condition_before", h.ConditionBefore, 50),
		shared.MaxLength("asset_condition_after", h.ConditionAfter, 50),
	); err != nil {
		return h, err
	}
	if h.CostCents != nil && *h.CostCents < 0 {
		return h, shared.NewFieldError("cost_cents", "cost_cents must not be negative")
	}
	if h.DurationHours != nil && *h.DurationHours < 0 {
		return h, shared.NewFieldError("duration_hours", "duration_hours must not be negative")
	}
	return h, nil
}

// MaintenanceHistory is the service log of an asset. Entries survive the
// deletion of the work order or technician they mention.
type MaintenanceHistory struct {
	shared.Base
	details HistoryDetails
}

func NewMaintenanceHistory(details HistoryDetails) (*MaintenanceHistory, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &MaintenanceHistory{Base: shared.NewBase(), details: d}, nil
}

func ReconstructMaintenanceHistory(id uint, details HistoryDetails, createdAt, updatedAt time.Time) *MaintenanceHistory {
	return &MaintenanceHistory{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (h *MaintenanceHistory) Details() HistoryDetails {
	return h.details
}

func (h *MaintenanceHistory) Update(details HistoryDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	h.details = normalized
	h.Touch()
	return nil
}

// HistoryFromCompletion builds the log entry written when a work order is
// closed out.
func HistoryFromCompletion(assetID uint, order *WorkOrder, completion *WorkOrderCompletion, day time.Time) HistoryDetails {
	workOrderID := order.ID()
	c := completion.Details()
	hours := c.HoursWorked
	return HistoryDetails{
		AssetID:         assetID,
		WorkOrderID:     &workOrderID,
		MaintenanceDate: day,
		WorkDescription: c.WorkPerformed,
		TechnicianID:    order.Details().TechnicianID,
		CostCents:       completion.TotalCostCents(),
		DurationHours:   &hours,
		SparePartsUsed:  c.MaterialsUsed,
		ConditionAfter:  c.AssetConditionAfter.String(),
		Notes:           c.Notes,
	}
}
