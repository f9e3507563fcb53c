package maintenance

import (
	"time"

	"campus/internal/domain/maintenance"
	vo "campus/internal/domain/maintenance/valueobjects"
	"campus/internal/shared/biztime"
	"campus/internal/shared/utils"
)

type TeamRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
	HeadID      *uint  `json:"head_id"`
	Phone       string `json:"phone" binding:"max=30"`
	Email       string `json:"email" binding:"omitempty,email"`
	IsActive    *bool  `json:"is_active"`
}

type TeamResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HeadID      *uint     `json:"head_id"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func teamDetails(r TeamRequest) (maintenance.TeamDetails, error) {
	return maintenance.TeamDetails{
		Name:        r.Name,
		Description: r.Description,
		HeadID:      r.HeadID,
		Phone:       r.Phone,
		Email:       r.Email,
		IsActive:    r.IsActive == nil || *r.IsActive,
	}, nil
}

func teamRequest(d maintenance.TeamDetails) TeamRequest {
	active := d.IsActive
	return TeamRequest{Name: d.Name, Description: d.Description, HeadID: d.HeadID, Phone: d.Phone, Email: d.Email, IsActive: &active}
}

func toTeamResponse(t *maintenance.MaintenanceTeam) any {
	d := t.Details()
	return TeamResponse{
		ID:          t.ID(),
		Name:        d.Name,
		Description: d.Description,
		HeadID:      d.HeadID,
		Phone:       d.Phone,
		Email:       d.Email,
		IsActive:    d.IsActive,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

type TechnicianRequest struct {
	UserID         uint    `json:"user_id" binding:"required"`
	TeamID         *uint   `json:"team_id"`
	Specialization string  `json:"specialization" binding:"omitempty,oneof=electrical plumbing hvac it mechanical civil general laboratory other"`
	LicenseNumber  string  `json:"license_number" binding:"max=100"`
	LicenseExpiry  *string `json:"license_expiry"`
	Phone          string  `json:"phone" binding:"max=30"`
	IsActive       *bool   `json:"is_active"`
}

type TechnicianResponse struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	TeamID         *uint     `json:"team_id"`
	Specialization string    `json:"specialization"`
	LicenseNumber  string    `json:"license_number"`
	LicenseExpiry  *string   `json:"license_expiry"`
	LicenseStatus  string    `json:"license_status"`
	Phone          string    `json:"phone"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func technicianDetails(r TechnicianRequest) (maintenance.TechnicianDetails, error) {
	expiry, err := utils.ParseOptionalDateField("license_expiry", r.LicenseExpiry)
	if err != nil {
		return maintenance.TechnicianDetails{}, err
	}
	return maintenance.TechnicianDetails{
		UserID:         r.UserID,
		TeamID:         r.TeamID,
		Specialization: vo.Specialization(r.Specialization),
		LicenseNumber:  r.LicenseNumber,
		LicenseExpiry:  expiry,
		Phone:          r.Phone,
		IsActive:       r.IsActive == nil || *r.IsActive,
	}, nil
}

func technicianRequest(d maintenance.TechnicianDetails) TechnicianRequest {
	active := d.IsActive
	return TechnicianRequest{
		UserID:         d.UserID,
		TeamID:         d.TeamID,
		Specialization: string(d.Specialization),
		LicenseNumber:  d.LicenseNumber,
		LicenseExpiry:  utils.FormatOptionalDate(d.LicenseExpiry),
		Phone:          d.Phone,
		IsActive:       &active,
	}
}

func toTechnicianResponse(t *maintenance.Technician) any {
	d := t.Details()
	return TechnicianResponse{
		ID:             t.ID(),
		UserID:         d.UserID,
		TeamID:         d.TeamID,
		Specialization: string(d.Specialization),
		LicenseNumber:  d.LicenseNumber,
		LicenseExpiry:  utils.FormatOptionalDate(d.LicenseExpiry),
		LicenseStatus:  t.LicenseStatus(biztime.StartOfDayUTC(biztime.NowUTC())),
		Phone:          d.Phone,
		IsActive:       d.IsActive,
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

type RequestRequest struct {
	AssetID              *uint   `json:"asset_id"`
	LocationDescription  string  `json:"location_description" binding:"max=255"`
	Title                string  `json:"title" binding:"required,max=200"`
	Description          string  `json:"description" binding:"required"`
	Priority             string  `json:"priority" binding:"omitempty,oneof=urgent high medium low"`
	TargetCompletionDate *string `json:"target_completion_date"`
	Notes                string  `json:"notes"`
}

type RequestResponse struct {
	ID                   uint       `json:"id"`
	RequestID            string     `json:"request_id"`
	RequesterID          *uint      `json:"requester_id"`
	AssetID              *uint      `json:"asset_id"`
	LocationDescription  string     `json:"location_description"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Priority             string     `json:"priority"`
	Status               string     `json:"status"`
	TargetCompletionDate *string    `json:"target_completion_date"`
	IsOverdue            bool       `json:"is_overdue"`
	AssignedToID         *uint      `json:"assigned_to_id"`
	AssignedDate         *time.Time `json:"assigned_date"`
	CompletedAt          *time.Time `json:"completed_at"`
	Notes                string     `json:"notes"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func requestDetails(r RequestRequest) (maintenance.RequestDetails, error) {
	target, err := utils.ParseOptionalDateField("target_completion_date", r.TargetCompletionDate)
	if err != nil {
		return maintenance.RequestDetails{}, err
	}
	return maintenance.RequestDetails{
		AssetID:              r.AssetID,
		LocationDescription:  r.LocationDescription,
		Title:                r.Title,
		Description:          r.Description,
		Priority:             vo.Priority(r.Priority),
		TargetCompletionDate: target,
		Notes:                r.Notes,
	}, nil
}

func requestRequest(d maintenance.RequestDetails) RequestRequest {
	return RequestRequest{
		AssetID:              d.AssetID,
		LocationDescription:  d.LocationDescription,
		Title:                d.Title,
		Description:          d.Description,
		Priority:             string(d.Priority),
		TargetCompletionDate: utils.FormatOptionalDate(d.TargetCompletionDate),
		Notes:                d.Notes,
	}
}

func toRequestResponse(r *maintenance.MaintenanceRequest) any {
	d := r.Details()
	return RequestResponse{
		ID:                   r.ID(),
		RequestID:            r.RequestID(),
		RequesterID:          r.RequesterID(),
		AssetID:              d.AssetID,
		LocationDescription:  d.LocationDescription,
		Title:                d.Title,
		Description:          d.Description,
		Priority:             string(d.Priority),
		Status:               r.Status().String(),
		TargetCompletionDate: utils.FormatOptionalDate(d.TargetCompletionDate),
		IsOverdue:            r.IsOverdue(biztime.StartOfDayUTC(biztime.NowUTC())),
		AssignedToID:         r.AssignedToID(),
		AssignedDate:         r.AssignedDate(),
		CompletedAt:          r.CompletedAt(),
		Notes:                d.Notes,
		CreatedAt:            r.CreatedAt(),
		UpdatedAt:            r.UpdatedAt(),
	}
}

type AssignRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

type WorkOrderRequest struct {
	MaintenanceRequestID uint       `json:"maintenance_request_id" binding:"required"`
	TechnicianID         *uint      `json:"technician_id"`
	SupervisorID         *uint      `json:"supervisor_id"`
	ScheduledDate        *string    `json:"scheduled_date"`
	ScheduledStart       string     `json:"scheduled_start"`
	ScheduledEnd         string     `json:"scheduled_end"`
	ActualStart          *time.Time `json:"actual_start"`
	ActualEnd            *time.Time `json:"actual_end"`
	WorkDescription      string     `json:"work_description" binding:"required"`
	MaterialsRequired    string     `json:"materials_required"`
	EstimatedCostCents   *int64     `json:"estimated_cost_cents" binding:"omitempty,gte=0"`
	ActualCostCents      *int64     `json:"actual_cost_cents" binding:"omitempty,gte=0"`
	Currency             string     `json:"currency" binding:"omitempty,len=3"`
}

type WorkOrderResponse struct {
	ID                   uint       `json:"id"`
	WorkOrderID          string     `json:"work_order_id"`
	MaintenanceRequestID uint       `json:"maintenance_request_id"`
	TechnicianID         *uint      `json:"technician_id"`
	SupervisorID         *uint      `json:"supervisor_id"`
	Status               string     `json:"status"`
	ScheduledDate        *string    `json:"scheduled_date"`
	ScheduledStart       string     `json:"scheduled_start"`
	ScheduledEnd         string     `json:"scheduled_end"`
	ActualStart          *time.Time `json:"actual_start"`
	ActualEnd            *time.Time `json:"actual_end"`
	WorkDescription      string     `json:"work_description"`
	MaterialsRequired    string     `json:"materials_required"`
	EstimatedCostCents   *int64     `json:"estimated_cost_cents"`
	ActualCostCents      *int64     `json:"actual_cost_cents"`
	Currency             string     `json:"currency"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func workOrderDetails(r WorkOrderRequest) (maintenance.WorkOrderDetails, error) {
	scheduled, err := utils.ParseOptionalDateField("scheduled_date", r.ScheduledDate)
	if err != nil {
		return maintenance.WorkOrderDetails{}, err
	}
	return maintenance.WorkOrderDetails{
		MaintenanceRequestID: r.MaintenanceRequestID,
		TechnicianID:         r.TechnicianID,
		SupervisorID:         r.SupervisorID,
		ScheduledDate:        scheduled,
		ScheduledStart:       r.ScheduledStart,
		ScheduledEnd:         r.ScheduledEnd,
		ActualStart:          r.ActualStart,
		ActualEnd:            r.ActualEnd,
		WorkDescription:      r.WorkDescription,
		MaterialsRequired:    r.MaterialsRequired,
		EstimatedCostCents:   r.EstimatedCostCents,
		ActualCostCents:      r.ActualCostCents,
		Currency:             r.Currency,
	}, nil
}

func workOrderRequest(d maintenance.WorkOrderDetails) WorkOrderRequest {
	return WorkOrderRequest{
		MaintenanceRequestID: d.MaintenanceRequestID,
		TechnicianID:         d.TechnicianID,
		SupervisorID:         d.SupervisorID,
		ScheduledDate:        utils.FormatOptionalDate(d.ScheduledDate),
		ScheduledStart:       d.ScheduledStart,
		ScheduledEnd:         d.ScheduledEnd,
		ActualStart:          d.ActualStart,
		ActualEnd:            d.ActualEnd,
		WorkDescription:      d.WorkDescription,
		MaterialsRequired:    d.MaterialsRequired,
		EstimatedCostCents:   d.EstimatedCostCents,
		ActualCostCents:      d.ActualCostCents,
		Currency:             d.Currency,
	}
}

func toWorkOrderResponse(w *maintenance.WorkOrder) any {
	d := w.Details()
	return WorkOrderResponse{
		ID:                   w.ID(),
		WorkOrderID:          w.WorkOrderID(),
		MaintenanceRequestID: d.MaintenanceRequestID,
		TechnicianID:         d.TechnicianID,
		SupervisorID:         d.SupervisorID,
		Status:               w.Status().String(),
		ScheduledDate:        utils.FormatOptionalDate(d.ScheduledDate),
		ScheduledStart:       d.ScheduledStart,
		ScheduledEnd:         d.ScheduledEnd,
		ActualStart:          d.ActualStart,
		ActualEnd:            d.ActualEnd,
		WorkDescription:      d.WorkDescription,
		MaterialsRequired:    d.MaterialsRequired,
		EstimatedCostCents:   d.EstimatedCostCents,
		ActualCostCents:      d.ActualCostCents,
		Currency:             d.Currency,
		CreatedAt:            w.CreatedAt(),
		UpdatedAt:            w.UpdatedAt(),
	}
}

type CompletionRequest struct {
	WorkPerformed       string  `json:"work_performed" binding:"required"`
	MaterialsUsed       string  `json:"materials_used"`
	PartsReplaced       string  `json:"parts_replaced"`
	HoursWorked         float64 `json:"hours_worked" binding:"required,gte=0.1"`
	LaborCostCents      *int64  `json:"labor_cost_cents" binding:"omitempty,gte=0"`
	PartsCostCents      int64   `json:"parts_cost_cents" binding:"gte=0"`
	AssetConditionAfter string  `json:"asset_condition_after" binding:"omitempty,oneof=excellent good fair poor needs_replacement"`
	Notes               string  `json:"notes"`
	FollowUpNeeded      bool    `json:"follow_up_needed"`
	FollowUpNotes       string  `json:"follow_up_notes"`
}

type CompletionResponse struct {
	ID                  uint      `json:"id"`
	WorkOrderID         uint      `json:"work_order_id"`
	WorkPerformed       string    `json:"work_performed"`
	MaterialsUsed       string    `json:"materials_used"`
	PartsReplaced       string    `json:"parts_replaced"`
	HoursWorked         float64   `json:"hours_worked"`
	LaborCostCents      *int64    `json:"labor_cost_cents"`
	PartsCostCents      int64     `json:"parts_cost_cents"`
	TotalCostCents      *int64    `json:"total_cost_cents"`
	AssetConditionAfter string    `json:"asset_condition_after"`
	Notes               string    `json:"notes"`
	FollowUpNeeded      bool      `json:"follow_up_needed"`
	FollowUpNotes       string    `json:"follow_up_notes"`
	CompletedBy         *uint     `json:"completed_by"`
	CompletedAt         time.Time `json:"completed_at"`
}

func completionDetails(workOrderID uint, r CompletionRequest) maintenance.CompletionDetails {
	return maintenance.CompletionDetails{
		WorkOrderID:         workOrderID,
		WorkPerformed:       r.WorkPerformed,
		MaterialsUsed:       r.MaterialsUsed,
		PartsReplaced:       r.PartsReplaced,
		HoursWorked:         r.HoursWorked,
		LaborCostCents:      r.LaborCostCents,
		PartsCostCents:      r.PartsCostCents,
		AssetConditionAfter: vo.ConditionAfter(r.AssetConditionAfter),
		Notes:               r.Notes,
		FollowUpNeeded:      r.FollowUpNeeded,
		FollowUpNotes:       r.FollowUpNotes,
	}
}

func toCompletionResponse(c *maintenance.WorkOrderCompletion) CompletionResponse {
	d := c.Details()
	return CompletionResponse{
		ID:                  c.ID(),
		WorkOrderID:         d.WorkOrderID,
		WorkPerformed:       d.WorkPerformed,
		MaterialsUsed:       d.MaterialsUsed,
		PartsReplaced:       d.PartsReplaced,
		HoursWorked:         d.HoursWorked,
		LaborCostCents:      d.LaborCostCents,
		PartsCostCents:      d.PartsCostCents,
		TotalCostCents:      c.TotalCostCents(),
		AssetConditionAfter: string(d.AssetConditionAfter),
		Notes:               d.Notes,
		FollowUpNeeded:      d.FollowUpNeeded,
		FollowUpNotes:       d.FollowUpNotes,
		CompletedBy:         c.CompletedBy(),
		CompletedAt:         c.CompletedAt(),
	}
}

type ScheduleRequest struct {
	AssetID                uint     `json:"asset_id" binding:"required"`
	Title                  string   `json:"title" binding:"required,max=255"`
	Description            string   `json:"description" binding:"required"`
	Frequency              string   `json:"frequency" binding:"required,oneof=daily weekly monthly quarterly semi-annual annual bi-annual as_needed"`
	LastPerformed          *string  `json:"last_performed"`
	NextDueDate            string   `json:"next_due_date"`
	AssignedTeamID         *uint    `json:"assigned_team_id"`
	EstimatedDurationHours *float64 `json:"estimated_duration_hours" binding:"omitempty,gte=0"`
	EstimatedCostCents     *int64   `json:"estimated_cost_cents" binding:"omitempty,gte=0"`
	IsActive               *bool    `json:"is_active"`
	Notes                  string   `json:"notes"`
}

type ScheduleResponse struct {
	ID                     uint      `json:"id"`
	AssetID                uint      `json:"asset_id"`
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	Frequency              string    `json:"frequency"`
	LastPerformed          *string   `json:"last_performed"`
	NextDueDate            string    `json:"next_due_date"`
	State                  string    `json:"state"`
	AssignedTeamID         *uint     `json:"assigned_team_id"`
	EstimatedDurationHours float64   `json:"estimated_duration_hours"`
	EstimatedCostCents     *int64    `json:"estimated_cost_cents"`
	IsActive               bool      `json:"is_active"`
	Notes                  string    `json:"notes"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type PerformedRequest struct {
	PerformedOn string `json:"performed_on"`
}

func scheduleDetails(r ScheduleRequest) (maintenance.ScheduleDetails, error) {
	last, err := utils.ParseOptionalDateField("last_performed", r.LastPerformed)
	if err != nil {
		return maintenance.ScheduleDetails{}, err
	}
	due, err := utils.ParseDateField("next_due_date", r.NextDueDate)
	if err != nil {
		return maintenance.ScheduleDetails{}, err
	}
	hours := 1.0
	if r.EstimatedDurationHours != nil {
		hours = *r.EstimatedDurationHours
	}
	return maintenance.ScheduleDetails{
		AssetID:                r.AssetID,
		Title:                  r.Title,
		Description:            r.Description,
		Frequency:              vo.Frequency(r.Frequency),
		LastPerformed:          last,
		NextDueDate:            due,
		AssignedTeamID:         r.AssignedTeamID,
		EstimatedDurationHours: hours,
		EstimatedCostCents:     r.EstimatedCostCents,
		IsActive:               r.IsActive == nil || *r.IsActive,
		Notes:                  r.Notes,
	}, nil
}

func scheduleRequest(d maintenance.ScheduleDetails) ScheduleRequest {
	hours, active := d.EstimatedDurationHours, d.IsActive
	return ScheduleRequest{
		AssetID:                d.AssetID,
		Title:                  d.Title,
		Description:            d.Description,
		Frequency:              d.Frequency.String(),
		LastPerformed:          utils.FormatOptionalDate(d.LastPerformed),
		NextDueDate:            biztime.FormatDate(d.NextDueDate),
		AssignedTeamID:         d.AssignedTeamID,
		EstimatedDurationHours: &hours,
		EstimatedCostCents:     d.EstimatedCostCents,
		IsActive:               &active,
		Notes:                  d.Notes,
	}
}

func toScheduleResponse(s *maintenance.MaintenanceSchedule) any {
	d := s.Details()
	return ScheduleResponse{
		ID:                     s.ID(),
		AssetID:                d.AssetID,
		Title:                  d.Title,
		Description:            d.Description,
		Frequency:              d.Frequency.String(),
		LastPerformed:          utils.FormatOptionalDate(d.LastPerformed),
		NextDueDate:            biztime.FormatDate(d.NextDueDate),
		State:                  s.State(biztime.Today()),
		AssignedTeamID:         d.AssignedTeamID,
		EstimatedDurationHours: d.EstimatedDurationHours,
		EstimatedCostCents:     d.EstimatedCostCents,
		IsActive:               d.IsActive,
		Notes:                  d.Notes,
		CreatedAt:              s.CreatedAt(),
		UpdatedAt:              s.UpdatedAt(),
	}
}

type SignatureRequest struct {
	WorkOrderID   uint   `json:"work_order_id" binding:"required"`
	SignatureType string `json:"signature_type" binding:"required"`
	SignerID      *uint  `json:"signer_id"`
	SignatureData string `json:"signature_data" binding:"required"`
	IPAddress     string `json:"ip_address" binding:"omitempty,ip"`
	DeviceInfo    string `json:"device_info" binding:"max=255"`
	Comments      string `json:"comments"`
}

// SignatureResponse leaves out the signature image itself.
type SignatureResponse struct {
	ID            uint      `json:"id"`
	WorkOrderID   uint      `json:"work_order_id"`
	SignatureType string    `json:"signature_type"`
	SignerID      *uint     `json:"signer_id"`
	SignedAt      time.Time `json:"signed_at"`
	IPAddress     string    `json:"ip_address"`
	DeviceInfo    string    `json:"device_info"`
	Comments      string    `json:"comments"`
	IsValid       bool      `json:"is_valid"`
}

func signatureDetails(r SignatureRequest) (maintenance.SignatureDetails, error) {
	return maintenance.SignatureDetails{
		WorkOrderID:   r.WorkOrderID,
		SignatureType: vo.SignatureType(r.SignatureType),
		SignerID:      r.SignerID,
		SignatureData: r.SignatureData,
		IPAddress:     r.IPAddress,
		DeviceInfo:    r.DeviceInfo,
		Comments:      r.Comments,
	}, nil
}

func signatureRequest(d maintenance.SignatureDetails) SignatureRequest {
	return SignatureRequest{
		WorkOrderID:   d.WorkOrderID,
		SignatureType: d.SignatureType.String(),
		SignerID:      d.SignerID,
		SignatureData: d.SignatureData,
		IPAddress:     d.IPAddress,
		DeviceInfo:    d.DeviceInfo,
		Comments:      d.Comments,
	}
}

func toSignatureResponse(s *maintenance.MaintenanceSignature) any {
	d := s.Details()
	return SignatureResponse{
		ID:            s.ID(),
		WorkOrderID:   d.WorkOrderID,
		SignatureType: d.SignatureType.String(),
		SignerID:      d.SignerID,
		SignedAt:      s.SignedAt(),
		IPAddress:     d.IPAddress,
		DeviceInfo:    d.DeviceInfo,
		Comments:      d.Comments,
		IsValid:       s.IsValid(),
	}
}

type HistoryRequest struct {
	AssetID         uint     `json:"asset_id" binding:"required"`
	WorkOrderID     *uint    `json:"work_order_id"`
	MaintenanceDate string   `json:"maintenance_date"`
	WorkDescription string   `json:"work_description" binding:"required"`
	TechnicianID    *uint    `json:"technician_id"`
	Supervisor      string   `json:"supervisor" binding:"max=255"`
	CostCents       *int64   `json:"cost_cents" binding:"omitempty,gte=0"`
	DurationHours   *float64 `json:"duration_hours" binding:"omitempty,gte=0"`
	SparePartsUsed  string   `json:"spare_parts_used"`
	ConditionBefore string   `json:"condition_before" binding:"max=50"`
	ConditionAfter  string   `json:"condition_after" binding:"max=50"`
	Notes           string   `json:"notes"`
}

type HistoryResponse struct {
	ID              uint      `json:"id"`
	AssetID         uint      `json:"asset_id"`
	WorkOrderID     *uint     `json:"work_order_id"`
	MaintenanceDate string    `json:"maintenance_date"`
	WorkDescription string    `json:"work_description"`
	TechnicianID    *uint     `json:"technician_id"`
	Supervisor      string    `json:"supervisor"`
	CostCents       *int64    `json:"cost_cents"`
	DurationHours   *float64  `json:"duration_hours"`
	SparePartsUsed  string    `json:"spare_parts_used"`
	ConditionBefore string    `json:"condition_before"`
	ConditionAfter  string    `json:"condition_after"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

func historyDetails(r HistoryRequest) (maintenance.HistoryDetails, error) {
	day, err := utils.ParseDateField("maintenance_date", r.MaintenanceDate)
	if err != nil {
		return maintenance.HistoryDetails{}, err
	}
	return maintenance.HistoryDetails{
		AssetID:         r.AssetID,
		WorkOrderID:     r.WorkOrderID,
		MaintenanceDate: day,
		WorkDescription: r.WorkDescription,
		TechnicianID:    r.TechnicianID,
		Supervisor:      r.Supervisor,
		CostCents:       r.CostCents,
		DurationHours:   r.DurationHours,
		SparePartsUsed:  r.SparePartsUsed,
		ConditionBefore: r.ConditionBefore,
		ConditionAfter:  r.ConditionAfter,
		Notes:           r.Notes,
	}, nil
}

func historyRequest(d maintenance.HistoryDetails) HistoryRequest {
	return HistoryRequest{
		AssetID:         d.AssetID,
		WorkOrderID:     d.WorkOrderID,
		MaintenanceDate: biztime.FormatDate(d.MaintenanceDate),
		WorkDescription: d.WorkDescription,
		TechnicianID:    d.TechnicianID,
		Supervisor:      d.Supervisor,
		CostCents:       d.CostCents,
		DurationHours:   d.DurationHours,
		SparePartsUsed:  d.SparePartsUsed,
		ConditionBefore: d.ConditionBefore,
		ConditionAfter:  d.ConditionAfter,
		Notes:           d.Notes,
	}
}

func toHistoryResponse(h *maintenance.MaintenanceHistory) any {
	d := h.Details()
	return HistoryResponse{
		ID:              h.ID(),
		AssetID:         d.AssetID,
		WorkOrderID:     d.WorkOrderID,
		MaintenanceDate: biztime.FormatDate(d.MaintenanceDate),
		WorkDescription: d.WorkDescription,
		TechnicianID:    d.TechnicianID,
		Supervisor:      d.Supervisor,
		CostCents:       d.CostCents,
		DurationHours:   d.DurationHours,
		SparePartsUsed:  d.SparePartsUsed,
		ConditionBefore: d.ConditionBefore,
		ConditionAfter:  d.ConditionAfter,
		Notes:           d.Notes,
		CreatedAt:       h.CreatedAt(),
	}
}

// MetricsRequest takes any day of the month it reports on.
type MetricsRequest struct {
	Month                 string   `json:"month"`
	TotalRequests         int      `json:"total_requests" binding:"gte=0"`
	CompletedRequests     int      `json:"completed_requests" binding:"gte=0"`
	AverageCompletionDays *float64 `json:"average_completion_time_days"`
	EmergencyRequests     int      `json:"emergency_requests" binding:"gte=0"`
	ScheduledCompleted    int      `json:"scheduled_maintenance_completed" binding:"gte=0"`
	TotalCostCents        int64    `json:"total_maintenance_cost_cents" binding:"gte=0"`
	TotalLaborHours       float64  `json:"total_labor_hours" binding:"gte=0"`
	DowntimeHours         float64  `json:"asset_downtime_hours" binding:"gte=0"`
	AvailabilityPercent   *float64 `json:"asset_availability_percent"`
	RepeatIssues          int      `json:"repeat_maintenance_issues" binding:"gte=0"`
}

type MetricsResponse struct {
	ID                    uint     `json:"id"`
	Month                 string   `json:"month"`
	TotalRequests         int      `json:"total_requests"`
	CompletedRequests     int      `json:"completed_requests"`
	CompletionRate        float64  `json:"completion_rate"`
	AverageCompletionDays *float64 `json:"average_completion_time_days"`
	EmergencyRequests     int      `json:"emergency_requests"`
	ScheduledCompleted    int      `json:"scheduled_maintenance_completed"`
	TotalCostCents        int64    `json:"total_maintenance_cost_cents"`
	TotalLaborHours       float64  `json:"total_labor_hours"`
	DowntimeHours         float64  `json:"asset_downtime_hours"`
	AvailabilityPercent   *float64 `json:"asset_availability_percent"`
	RepeatIssues          int      `json:"repeat_maintenance_issues"`
}

func metricsDetails(r MetricsRequest) (maintenance.MetricsDetails, error) {
	month, err := utils.ParseDateField("month", r.Month)
	if err != nil {
		return maintenance.MetricsDetails{}, err
	}
	return maintenance.MetricsDetails{
		Month:                 month,
		TotalRequests:         r.TotalRequests,
		CompletedRequests:     r.CompletedRequests,
		AverageCompletionDays: r.AverageCompletionDays,
		EmergencyRequests:     r.EmergencyRequests,
		ScheduledCompleted:    r.ScheduledCompleted,
		TotalCostCents:        r.TotalCostCents,
		TotalLaborHours:       r.TotalLaborHours,
		DowntimeHours:         r.DowntimeHours,
		AvailabilityPercent:   r.AvailabilityPercent,
		RepeatIssues:          r.RepeatIssues,
	}, nil
}

func metricsRequest(d maintenance.MetricsDetails) MetricsRequest {
	return MetricsRequest{
		Month:                 biztime.FormatDate(d.Month),
		TotalRequests:         d.TotalRequests,
		CompletedRequests:     d.CompletedRequests,
		AverageCompletionDays: d.AverageCompletionDays,
		EmergencyRequests:     d.EmergencyRequests,
		ScheduledCompleted:    d.ScheduledCompleted,
		TotalCostCents:        d.TotalCostCents,
		TotalLaborHours:       d.TotalLaborHours,
		DowntimeHours:         d.DowntimeHours,
		AvailabilityPercent:   d.AvailabilityPercent,
		RepeatIssues:          d.RepeatIssues,
	}
}

func toMetricsResponse(m *maintenance.MaintenanceMetrics) any {
	d := m.Details()
	return MetricsResponse{
		ID:                    m.ID(),
		Month:                 d.Month.Format("2006-01"),
		TotalRequests:         d.TotalRequests,
		CompletedRequests:     d.CompletedRequests,
		CompletionRate:        m.CompletionRate(),
		AverageCompletionDays: d.AverageCompletionDays,
		EmergencyRequests:     d.EmergencyRequests,
		ScheduledCompleted:    d.ScheduledCompleted,
		TotalCostCents:        d.TotalCostCents,
		TotalLaborHours:       d.TotalLaborHours,
		DowntimeHours:         d.DowntimeHours,
		AvailabilityPercent:   d.AvailabilityPercent,
		RepeatIssues:          d.RepeatIssues,
	}
}
