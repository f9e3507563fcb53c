package mappers

import (
	"campus/internal/domain/maintenance"
	vo "campus/internal/domain/maintenance/valueobjects"
	"campus/internal/infrastructure/persistence/models"
)

func TeamToModel(t *maintenance.MaintenanceTeam) *models.MaintenanceTeamModel {
	det := t.Details()
	return &models.MaintenanceTeamModel{
		ID:          t.ID(),
		Name:        det.Name,
		Description: det.Description,
		HeadID:      det.HeadID,
		Phone:       det.Phone,
		Email:       det.Email,
		IsActive:    det.IsActive,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func TeamToDomain(m *models.MaintenanceTeamModel) (*maintenance.MaintenanceTeam, error) {
	return maintenance.ReconstructMaintenanceTeam(m.ID, maintenance.TeamDetails{
		Name:        m.Name,
		Description: m.Description,
		HeadID:      m.HeadID,
		Phone:       m.Phone,
		Email:       m.Email,
		IsActive:    m.IsActive,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func TechnicianToModel(t *maintenance.Technician) *models.TechnicianModel {
	det := t.Details()
	return &models.TechnicianModel{
		ID:             t.ID(),
		UserID:         det.UserID,
		TeamID:         det.TeamID,
		Specialization: det.Specialization.String(),
		LicenseNumber:  det.LicenseNumber,
		LicenseExpiry:  det.LicenseExpiry,
		Phone:          det.Phone,
		IsActive:       det.IsActive,
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func TechnicianToDomain(m *models.TechnicianModel) (*maintenance.Technician, error) {
	return maintenance.ReconstructTechnician(m.ID, maintenance.TechnicianDetails{
		UserID:         m.UserID,
		TeamID:         m.TeamID,
		Specialization: vo.Specialization(m.Specialization),
		LicenseNumber:  m.LicenseNumber,
		LicenseExpiry:  m.LicenseExpiry,
		Phone:          m.Phone,
		IsActive:       m.IsActive,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func RequestToModel(r *maintenance.MaintenanceRequest) *models.MaintenanceRequestModel {
	det := r.Details()
	return &models.MaintenanceRequestModel{
		ID:                   r.ID(),
		RequestID:            r.RequestID(),
		RequesterID:          r.RequesterID(),
		AssetID:              det.AssetID,
		LocationDescription:  det.LocationDescription,
		Title:                det.Title,
		Description:          det.Description,
		Priority:             det.Priority.String(),
		Status:               r.Status().String(),
		TargetCompletionDate: det.TargetCompletionDate,
		AssignedToID:         r.AssignedToID(),
		AssignedDate:         r.AssignedDate(),
		CompletedAt:          r.CompletedAt(),
		Notes:                det.Notes,
		CreatedAt:            r.CreatedAt(),
		UpdatedAt:            r.UpdatedAt(),
	}
}

func RequestToDomain(m *models.MaintenanceRequestModel) (*maintenance.MaintenanceRequest, error) {
	return maintenance.ReconstructMaintenanceRequest(
		m.ID,
		m.RequestID,
		m.RequesterID,
		maintenance.RequestDetails{
			AssetID:              m.AssetID,
			LocationDescription:  m.LocationDescription,
			Title:                m.Title,
			Description:          m.Description,
			Priority:             vo.Priority(m.Priority),
			TargetCompletionDate: m.TargetCompletionDate,
			Notes:                m.Notes,
		},
		vo.RequestStatus(m.Status),
		m.AssignedToID,
		m.AssignedDate,
		m.CompletedAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func WorkOrderToModel(w *maintenance.WorkOrder) *models.WorkOrderModel {
	det := w.Details()
	return &models.WorkOrderModel{
		ID:                   w.ID(),
		WorkOrderID:          w.WorkOrderID(),
		MaintenanceRequestID: det.MaintenanceRequestID,
		TechnicianID:         det.TechnicianID,
		SupervisorID:         det.SupervisorID,
		ScheduledDate:        det.ScheduledDate,
		ScheduledStart:       det.ScheduledStart,
		ScheduledEnd:         det.ScheduledEnd,
		ActualStart:          det.ActualStart,
		ActualEnd:            det.ActualEnd,
		WorkDescription:      det.WorkDescription,
		MaterialsRequired:    det.MaterialsRequired,
		EstimatedCostCents:   det.EstimatedCostCents,
		ActualCostCents:      det.ActualCostCents,
		Currency:             det.Currency,
		Status:               w.Status().String(),
		CreatedAt:            w.CreatedAt(),
		UpdatedAt:            w.UpdatedAt(),
	}
}

func WorkOrderToDomain(m *models.WorkOrderModel) (*maintenance.WorkOrder, error) {
	return maintenance.ReconstructWorkOrder(m.ID, m.WorkOrderID, maintenance.WorkOrderDetails{
		MaintenanceRequestID: m.MaintenanceRequestID,
		TechnicianID:         m.TechnicianID,
		SupervisorID:         m.SupervisorID,
		ScheduledDate:        m.ScheduledDate,
		ScheduledStart:       m.ScheduledStart,
		ScheduledEnd:         m.ScheduledEnd,
		ActualStart:          m.ActualStart,
		ActualEnd:            m.ActualEnd,
		WorkDescription:      m.WorkDescription,
		MaterialsRequired:    m.MaterialsRequired,
		EstimatedCostCents:   m.EstimatedCostCents,
		ActualCostCents:      m.ActualCostCents,
		Currency:             m.Currency,
	}, vo.WorkOrderStatus(m.Status), m.CreatedAt, m.UpdatedAt)
}

func CompletionToModel(c *maintenance.WorkOrderCompletion) *models.WorkOrderCompletionModel {
	det := c.Details()
	return &models.WorkOrderCompletionModel{
		ID:                  c.ID(),
		WorkOrderID:         det.WorkOrderID,
		WorkPerformed:       det.WorkPerformed,
		MaterialsUsed:       det.MaterialsUsed,
		PartsReplaced:       det.PartsReplaced,
		HoursWorked:         det.HoursWorked,
		LaborCostCents:      det.LaborCostCents,
		PartsCostCents:      det.PartsCostCents,
		TotalCostCents:      c.TotalCostCents(),
		AssetConditionAfter: det.AssetConditionAfter.String(),
		Notes:               det.Notes,
		FollowUpNeeded:      det.FollowUpNeeded,
		FollowUpNotes:       det.FollowUpNotes,
		CompletedByID:       c.CompletedBy(),
		CompletedAt:         c.CompletedAt(),
		UpdatedAt:           c.UpdatedAt(),
	}
}

func CompletionToDomain(m *models.WorkOrderCompletionModel) (*maintenance.WorkOrderCompletion, error) {
	return maintenance.ReconstructWorkOrderCompletion(m.ID, maintenance.CompletionDetails{
		WorkOrderID:         m.WorkOrderID,
		WorkPerformed:       m.WorkPerformed,
		MaterialsUsed:       m.MaterialsUsed,
		PartsReplaced:       m.PartsReplaced,
		HoursWorked:         m.HoursWorked,
		LaborCostCents:      m.LaborCostCents,
		PartsCostCents:      m.PartsCostCents,
		AssetConditionAfter: vo.ConditionAfter(m.AssetConditionAfter),
		Notes:               m.Notes,
		FollowUpNeeded:      m.FollowUpNeeded,
		FollowUpNotes:       m.FollowUpNotes,
	}, m.TotalCostCents, m.CompletedByID, m.CompletedAt, m.UpdatedAt), nil
}

func ScheduleToModel(s *maintenance.MaintenanceSchedule) *models.MaintenanceScheduleModel {
	det := s.Details()
	return &models.MaintenanceScheduleModel{
		ID:                     s.ID(),
		AssetID:                det.AssetID,
		Title:                  det.Title,
		Description:            det.Description,
		Frequency:              det.Frequency.String(),
		LastPerformed:          det.LastPerformed,
		NextDueDate:            det.NextDueDate,
		AssignedTeamID:         det.AssignedTeamID,
		EstimatedDurationHours: det.EstimatedDurationHours,
		EstimatedCostCents:     det.EstimatedCostCents,
		IsActive:               det.IsActive,
		Notes:                  det.Notes,
		CreatedAt:              s.CreatedAt(),
		UpdatedAt:              s.UpdatedAt(),
	}
}

func ScheduleToDomain(m *models.MaintenanceScheduleModel) (*maintenance.MaintenanceSchedule, error) {
	return maintenance.ReconstructMaintenanceSchedule(m.ID, maintenance.ScheduleDetails{
		AssetID:                m.AssetID,
		Title:                  m.Title,
		Description:            m.Description,
		Frequency:              vo.Frequency(m.Frequency),
		LastPerformed:          m.LastPerformed,
		NextDueDate:            m.NextDueDate,
		AssignedTeamID:         m.AssignedTeamID,
		EstimatedDurationHours: m.EstimatedDurationHours,
		EstimatedCostCents:     m.EstimatedCostCents,
		IsActive:               m.IsActive,
		Notes:                  m.Notes,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func SignatureToModel(s *maintenance.MaintenanceSignature) *models.SignatureModel {
	det := s.Details()
	return &models.SignatureModel{
		ID:            s.ID(),
		WorkOrderID:   det.WorkOrderID,
		SignatureType: det.SignatureType.String(),
		SignerID:      det.SignerID,
		SignatureData: det.SignatureData,
		SignedAt:      s.SignedAt(),
		IPAddress:     det.IPAddress,
		DeviceInfo:    det.DeviceInfo,
		Comments:      det.Comments,
		IsValid:       s.IsValid(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}

func SignatureToDomain(m *models.SignatureModel) (*maintenance.MaintenanceSignature, error) {
	return maintenance.ReconstructMaintenanceSignature(m.ID, maintenance.SignatureDetails{
		WorkOrderID:   m.WorkOrderID,
		SignatureType: vo.SignatureType(m.SignatureType),
		SignerID:      m.SignerID,
		SignatureData: m.SignatureData,
		IPAddress:     m.IPAddress,
		DeviceInfo:    m.DeviceInfo,
		Comments:      m.Comments,
	}, m.SignedAt, m.IsValid, m.CreatedAt, m.UpdatedAt), nil
}

func HistoryToModel(h *maintenance.MaintenanceHistory) *models.MaintenanceHistoryModel {
	det := h.Details()
	return &models.MaintenanceHistoryModel{
		ID:              h.ID(),
		AssetID:         det.AssetID,
		WorkOrderID:     det.WorkOrderID,
		MaintenanceDate: det.MaintenanceDate,
		WorkDescription: det.WorkDescription,
		TechnicianID:    det.TechnicianID,
		Supervisor:      det.Supervisor,
		CostCents:       det.CostCents,
		DurationHours:   det.DurationHours,
		SparePartsUsed:  det.SparePartsUsed,
		ConditionBefore: det.ConditionBefore,
		ConditionAfter:  det.ConditionAfter,
		Notes:           det.Notes,
		CreatedAt:       h.CreatedAt(),
		UpdatedAt:       h.UpdatedAt(),
	}
}

func HistoryToDomain(m *models.MaintenanceHistoryModel) (*maintenance.MaintenanceHistory, error) {
	return maintenance.ReconstructMaintenanceHistory(m.ID, maintenance.HistoryDetails{
		AssetID:         m.AssetID,
		WorkOrderID:     m.WorkOrderID,
		MaintenanceDate: m.MaintenanceDate,
		WorkDescription: m.WorkDescription,
		TechnicianID:    m.TechnicianID,
		Supervisor:      m.Supervisor,
		CostCents:       m.CostCents,
		DurationHours:   m.DurationHours,
		SparePartsUsed:  m.SparePartsUsed,
		ConditionBefore: m.ConditionBefore,
		ConditionAfter:  m.ConditionAfter,
		Notes:           m.Notes,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func MetricsToModel(mt *maintenance.MaintenanceMetrics) *models.MaintenanceMetricsModel {
	det := mt.Details()
	return &models.MaintenanceMetricsModel{
		ID:                    mt.ID(),
		Month:                 det.Month,
		TotalRequests:         det.TotalRequests,
		CompletedRequests:     det.CompletedRequests,
		AverageCompletionDays: det.AverageCompletionDays,
		EmergencyRequests:     det.EmergencyRequests,
		ScheduledCompleted:    det.ScheduledCompleted,
		TotalCostCents:        det.TotalCostCents,
		TotalLaborHours:       det.TotalLaborHours,
		DowntimeHours:         det.DowntimeHours,
		AvailabilityPercent:   det.AvailabilityPercent,
		RepeatIssues:          det.RepeatIssues,
		CreatedAt:             mt.CreatedAt(),
		UpdatedAt:             mt.UpdatedAt(),
	}
}

func MetricsToDomain(m *models.MaintenanceMetricsModel) (*maintenance.MaintenanceMetrics, error) {
	return maintenance.ReconstructMaintenanceMetrics(m.ID, maintenance.MetricsDetails{
		Month:                 m.Month,
		TotalRequests:         m.TotalRequests,
		CompletedRequests:     m.CompletedRequests,
		AverageCompletionDays: m.AverageCompletionDays,
		EmergencyRequests:     m.EmergencyRequests,
		ScheduledCompleted:    m.ScheduledCompleted,
		TotalCostCents:        m.TotalCostCents,
		TotalLaborHours:       m.TotalLaborHours,
		DowntimeHours:         m.DowntimeHours,
		AvailabilityPercent:   m.AvailabilityPercent,
		RepeatIssues:          m.RepeatIssues,
	}, m.CreatedAt, m.UpdatedAt), nil
}
