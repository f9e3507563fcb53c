package maintenance

import (
	"time"

	"campus/internal/domain/shared"
)

type MetricsDetails struct {
	Month                 time.Time
	TotalRequests         int
	CompletedRequests     int
	AverageCompletionDays *float64
	EmergencyRequests     int
	ScheduledCompleted    int
	TotalCostCents        int64
	TotalLaborHours       float64
	DowntimeHours         float64
	AvailabilityPercent   *float64
	RepeatIssues          int
}

// MonthStart truncates t to the first day of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func (m MetricsDetails) normalize() (MetricsDetails, error) {
	if m.Month.IsZero() {
		return m, shared.NewFieldError("month", "month is required")
	}
	m.Month = MonthStart(m.Month)
	counts := []struct {
		field string
		value int
	}{
		{"total_requests", m.TotalRequests},
		{"completed_requests", m.CompletedRequests},
		{"emergency_requests", m.EmergencyRequests},
		{"scheduled_maintenance_completed", m.ScheduledCompleted},
		{"repeat_maintenance_issues", m.RepeatIssues},
	}
	for _, c := range counts {
		if c.value < 0 {
			return m, shared.NewFieldError(c.field, "%s must not be negative", c.field)
		}
	}
	if m.CompletedRequests > m.TotalRequests {
		return m, shared.NewFieldError("completed_requests", "completed_requests must not exceed total_requests")
	}
	if m.TotalCostCents < 0 || m.TotalLaborHours < 0 || m.DowntimeHours < 0 {
		return m, shared.NewFieldError("total_maintenance_cost_cents", "totals must not be negative")
	}
	if m.AverageCompletionDays != nil && *m.AverageCompletionDays < 0 {
		return m, shared.NewFieldError("average_completion_time_days", "average_completion_time_days must not be negative")
	}
	if p := m.AvailabilityPercent; p != nil && (*p < 0 || *p > 100) {
		return m, shared.NewFieldError("asset_availability_percent", "asset_availability_percent must be between 0 and 100")
	}
	return m, nil
}

// MaintenanceMetrics is the monthly maintenance KPI row. There is one per
// calendar month.
type MaintenanceMetrics struct {
	shared.Base
	details MetricsDetails
}

func NewMaintenanceMetrics(details MetricsDetails) (*MaintenanceMetrics, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &MaintenanceMetrics{Base: shared.NewBase(), details: d}, nil
}

func ReconstructMaintenanceMetrics(id uint, details MetricsDetails, createdAt, updatedAt time.Time) *MaintenanceMetrics {
	return &MaintenanceMetrics{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (m *MaintenanceMetrics) Details() MetricsDetails {
	return m.details
}

func (m *MaintenanceMetrics) Update(details MetricsDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	m.details = normalized
	m.Touch()
	return nil
}

// CompletionRate is completed over total requests as a percentage, zero for
// a month without requests.
func (m *MaintenanceMetrics) CompletionRate() float64 {
	if m.details.TotalRequests == 0 {
		return 0
	}
	return float64(m.details.CompletedRequests) / float64(m.details.TotalRequests) * 100
}
