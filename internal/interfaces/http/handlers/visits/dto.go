package visits

import (
	"time"

	"campus/internal/domain/visits"
)

type DepartmentRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type DepartmentResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toDepartmentResponse(d *visits.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID(), Name: d.Name()}
}

// CreateVisitRequest is the body of POST /visits/requests. requester_id is
// honoured only for staff filing on someone's behalf.
type CreateVisitRequest struct {
	RequesterID  uint   `json:"requester_id"`
	DepartmentID uint   `json:"department_id" binding:"required"`
	Reason       string `json:"reason"`
}

type UpdateVisitRequest struct {
	DepartmentID uint   `json:"department_id"`
	Reason       string `json:"reason"`
}

type RespondRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type VisitResponse struct {
	ID                 uint       `json:"id"`
	RequesterID        uint       `json:"requester_id"`
	DepartmentID       uint       `json:"department_id"`
	Reason             string     `json:"reason"`
	CreatedBySecretary *uint      `json:"created_by_secretary"`
	Status             string     `json:"status"`
	HeadNote           string     `json:"head_note"`
	RespondedBy        *uint      `json:"responded_by"`
	RespondedAt        *time.Time `json:"responded_at"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toVisitResponse(v *visits.VisitRequest) any {
	return VisitResponse{
		ID:                 v.ID(),
		RequesterID:        v.RequesterID(),
		DepartmentID:       v.DepartmentID(),
		Reason:             v.Reason(),
		CreatedBySecretary: v.CreatedBySecretary(),
		Status:             v.Status().String(),
		HeadNote:           v.HeadNote(),
		RespondedBy:        v.RespondedBy(),
		RespondedAt:        v.RespondedAt(),
		CreatedAt:          v.CreatedAt(),
	}
}
