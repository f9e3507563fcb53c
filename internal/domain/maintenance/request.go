package maintenance

import (
	"fmt"
	"strings"
	"time"

	vo "campus/internal/domain/maintenance/valueobjects"
	"campus/internal/domain/shared"
)

type RequestDetails struct {
	AssetID              *uint
	LocationDescription  string
	Title                string
	Description          string
	Priority             vo.Priority
	TargetCompletionDate *time.Time
	Notes                string
}

func (r RequestDetails) normalize() (RequestDetails, error) {
	r.Title = strings.TrimSpace(r.Title)
	if err := shared.FirstError(
		shared.Required("title", r.Title),
		shared.MaxLength("title", r.Title, 200),
		shared.Required("description", r.Description),
		shared.MaxLength("location_description", r.LocationDescription, 255),
	); err != nil {
		return r, err
	}
	if r.Priority == "" {
		r.Priority = vo.PriorityMedium
	}
	if !r.Priority.IsValid() {
		return r, shared.NewFieldError("priority", "invalid priority: %s", r.Priority)
	}
	return r, nil
}

// MaintenanceRequest is a reported fault. Its reference number is assigned
// once on creation and never changes.
type MaintenanceRequest struct {
	shared.Base
	requestID    string
	requesterID  *uint
	details      RequestDetails
	status       vo.RequestStatus
	assignedToID *uint
	assignedDate *time.Time
	completedAt  *time.Time
}

func NewMaintenanceRequest(requestID string, requesterID *uint, details RequestDetails) (*MaintenanceRequest, error) {
	if requestID == "" {
		return nil, fmt.Errorf("request ID is required")
	}
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &MaintenanceRequest{
		Base:        shared.NewBase(),
		requestID:   requestID,
		requesterID: requesterID,
		details:     d,
		status:      vo.RequestStatusDraft,
	}, nil
}

func ReconstructMaintenanceRequest(
	id uint,
	requestID string,
	requesterID *uint,
	details RequestDetails,
	status vo.RequestStatus,
	assignedToID *uint,
	assignedDate, completedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*MaintenanceRequest, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid maintenance request status: %s", status)
	}
	return &MaintenanceRequest{
		Base:         shared.ReconstructBase(id, createdAt, updatedAt),
		requestID:    requestID,
		requesterID:  requesterID,
		details:      details,
		status:       status,
		assignedToID: assignedToID,
		assignedDate: assignedDate,
		completedAt:  completedAt,
	}, nil
}

func (r *MaintenanceRequest) RequestID() string        { return r.requestID }
func (r *MaintenanceRequest) RequesterID() *uint       { return r.requesterID }
func (r *MaintenanceRequest) Details() RequestDetails  { return r.details }
func (r *MaintenanceRequest) Status() vo.RequestStatus { return r.status }
func (r *MaintenanceRequest) AssignedToID() *uint      { return r.assignedToID }
func (r *MaintenanceRequest) AssignedDate() *time.Time { return r.assignedDate }
func (r *MaintenanceRequest) CompletedAt() *time.Time  { return r.completedAt }

func (r *MaintenanceRequest) Update(details RequestDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	r.details = normalized
	r.Touch()
	return nil
}

// ChangeStatus assigns any valid status. Reaching completed stamps
// completed_at.
func (r *MaintenanceRequest) ChangeStatus(status vo.RequestStatus) error {
	if !status.IsValid() {
		return shared.NewFieldError("status", "invalid maintenance request status: %s", status)
	}
	r.status = status
	now := r.Touch()
	if status == vo.RequestStatusCompleted {
		r.completedAt = &now
	}
	return nil
}

// Assign hands the request to a technician and records when.
func (r *MaintenanceRequest) Assign(technicianID uint) error {
	if technicianID == 0 {
		return shared.NewFieldError("technician_id", "technician_id is required")
	}
	now := r.Touch()
	r.assignedToID = &technicianID
	r.assignedDate = &now
	return nil
}

// Unassign clears the technician, as happens when the technician is removed.
func (r *MaintenanceRequest) Unassign() {
	r.assignedToID = nil
	r.Touch()
}

// IsOverdue is true when an open request is past its target date.
func (r *MaintenanceRequest) IsOverdue(today time.Time) bool {
	if r.details.TargetCompletionDate == nil {
		return false
	}
	if r.status == vo.RequestStatusCompleted || r.status == vo.RequestStatusCancelled {
		return false
	}
	return r.details.TargetCompletionDate.Before(today)
}
