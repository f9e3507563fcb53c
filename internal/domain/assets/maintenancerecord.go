package assets

import (
	"fmt"
	"strings"
	"time"

	vo "campus/internal/domain/assets/valueobjects"
	"campus/internal/domain/shared"
)

type RecordDetails struct {
	AssetID       uint
	Title         string
	Description   string
	ScheduledDate time.Time
	CostCents     *int64
	Currency      string
	AssignedToID  *uint
	Notes         string
}

func (r RecordDetails) normalize() (RecordDetails, error) {
	r.Title = strings.TrimSpace(r.Title)
	if r.AssetID == 0 {
		return r, shared.NewFieldError("asset_id", "asset_id is required")
	}
	if err := shared.FirstError(
		shared.Required("title", r.Title),
		shared.MaxLength("title", r.Title, 255),
		shared.Required("description", r.Description),
	); err != nil {
		return r, err
	}
	if r.ScheduledDate.IsZero() {
		return r, shared.NewFieldError("scheduled_date", "scheduled_date is required")
	}
	if r.CostCents != nil && *r.CostCents < 0 {
		return r, shared.NewFieldError("cost_cents", "cost_cents must not be negative")
	}
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	r.Currency = strings.ToUpper(r.Currency)
	if len(r.Currency) != 3 {
		return r, shared.NewFieldError("currency", "currency must be a three letter code")
	}
	return r, nil
}

// MaintenanceRecord is planned upkeep logged directly on an asset, outside
// the request and work order flow. Completing it stamps the completion date.
type MaintenanceRecord struct {
	shared.Base
	details        RecordDetails
	status         vo.RecordStatus
	completionDate *time.Time
	createdBy      *uint
}

func NewMaintenanceRecord(details RecordDetails, createdBy *uint) (*MaintenanceRecord, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &MaintenanceRecord{
		Base:      shared.NewBase(),
		details:   d,
		status:    vo.RecordScheduled,
		createdBy: createdBy,
	}, nil
}

func ReconstructMaintenanceRecord(id uint, details RecordDetails, status vo.RecordStatus, completionDate *time.Time, createdBy *uint, createdAt, updatedAt time.Time) (*MaintenanceRecord, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid maintenance record status: %s", status)
	}
	return &MaintenanceRecord{
		Base:           shared.ReconstructBase(id, createdAt, updatedAt),
		details:        details,
		status:         status,
		completionDate: completionDate,
		createdBy:      createdBy,
	}, nil
}

func (r *MaintenanceRecord) Details() RecordDetails     { return r.details }
func (r *MaintenanceRecord) Status() vo.RecordStatus    { return r.status }
func (r *MaintenanceRecord) CompletionDate() *time.Time { return r.completionDate }
func (r *MaintenanceRecord) CreatedBy() *uint           { return r.createdBy }

func (r *MaintenanceRecord) Update(details RecordDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	r.details = normalized
	r.Touch()
	return nil
}

// ChangeStatus moves the record. Completion keeps the first completion
// date; reopening clears it.
func (r *MaintenanceRecord) ChangeStatus(status vo.RecordStatus, today time.Time) error {
	if !status.IsValid() {
		return shared.NewFieldError("status", "invalid maintenance record status: %s", status)
	}
	switch status {
	case vo.RecordCompleted:
		if r.completionDate == nil {
			day := today
			r.completionDate = &day
		}
	case vo.RecordScheduled, vo.RecordInProgress:
		r.completionDate = nil
	}
	r.status = status
	r.Touch()
	return nil
}
