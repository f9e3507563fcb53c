package maintenance

import (
	"strings"
	"time"

	vo "campus/internal/domain/maintenance/valueobjects"
	"campus/internal/domain/shared"
)

// Schedule states derived from the due date.
const (
	ScheduleInactive  = "inactive"
	ScheduleOverdue   = "overdue"
	ScheduleScheduled = "scheduled"
)

type ScheduleDetails struct {
	AssetID                uint
	Title                  string
	Description            string
	Frequency              vo.Frequency
	LastPerformed          *time.Time
	NextDueDate            time.Time
	AssignedTeamID         *uint
	EstimatedDurationHours float64
	EstimatedCostCents     *int64
	IsActive               bool
	Notes                  string
}

func (s ScheduleDetails) normalize() (ScheduleDetails, error) {
	s.Title = strings.TrimSpace(s.Title)
	if s.AssetID == 0 {
		return s, shared.NewFieldError("asset_id", "asset_id is required")
	}
	if err := shared.FirstError(
		shared.Required("title", s.Title),
		shared.MaxLength("title", s.Title, 255),
		shared.Required("description", s.Description),
	); err != nil {
		return s, err
	}
	if !s.Frequency.IsValid() {
		return s, shared.NewFieldError("frequency", "invalid frequency: %s", s.Frequency)
	}
	if s.NextDueDate.IsZero() {
		return s, shared.NewFieldError("next_due_date", "next_due_date is required")
	}
	if s.EstimatedDurationHours < 0 {
		return s, shared.NewFieldError("estimated_duration_hours", "estimated_duration_hours must not be negative")
	}
	if s.EstimatedCostCents != nil && *s.EstimatedCostCents < 0 {
		return s, shared.NewFieldError("estimated_cost_cents", "estimated_cost_cents must not be negative")
	}
	return s, nil
}

// MaintenanceSchedule is recurring preventive maintenance for an asset.
// Deleting the team it is assigned to leaves it unassigned.
type MaintenanceSchedule struct {
	shared.Base
	details ScheduleDetails
}

func NewMaintenanceSchedule(details ScheduleDetails) (*MaintenanceSchedule, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &MaintenanceSchedule{Base: shared.NewBase(), details: d}, nil
}

func ReconstructMaintenanceSchedule(id uint, details ScheduleDetails, createdAt, updatedAt time.Time) *MaintenanceSchedule {
	return &MaintenanceSchedule{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (s *MaintenanceSchedule) Details() ScheduleDetails {
	return s.details
}

func (s *MaintenanceSchedule) Update(details ScheduleDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	s.details = normalized
	s.Touch()
	return nil
}

// State is inactive for a paused schedule, overdue once the due date is
// today or earlier, and scheduled otherwise.
func (s *MaintenanceSchedule) State(today time.Time) string {
	switch {
	case !s.details.IsActive:
		return ScheduleInactive
	case !s.details.NextDueDate.After(today):
		return ScheduleOverdue
	default:
		return ScheduleScheduled
	}
}

// MarkPerformed records the service date and rolls the due date forward by
// one period. as_needed schedules keep their due date.
func (s *MaintenanceSchedule) MarkPerformed(day time.Time) error {
	if day.IsZero() {
		return shared.NewFieldError("performed_on", "performed_on is required")
	}
	s.details.LastPerformed = &day
	if next, ok := s.details.Frequency.Next(day); ok {
		s.details.NextDueDate = next
	}
	s.Touch()
	return nil
}
