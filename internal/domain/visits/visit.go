// Package visits models visit requests addressed to departments and the
// head's response to them.
package visits

import (
	"fmt"
	"strings"
	"time"

	vo "campus/internal/domain/visits/valueobjects"
	"campus/internal/domain/shared"
	"campus/internal/shared/biztime"
)

// ReasonRequiredMessage is returned when a visit request has no reason.
const ReasonRequiredMessage = "A reason is required for visit requests."

type Department struct {
	shared.Base
	name string
}

func NewDepartment(name string) (*Department, error) {
	name = strings.TrimSpace(name)
	if err := shared.FirstError(shared.Required("name", name), shared.MaxLength("name", name, 200)); err != nil {
		return nil, err
	}
	return &Department{Base: shared.NewBase(), name: name}, nil
}

func ReconstructDepartment(id uint, name string) *Department {
	return &Department{Base: shared.ReconstructBase(id, time.Time{}, time.Time{}), name: name}
}

func (d *Department) Name() string {
	return d.name
}

func (d *Department) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := shared.FirstError(shared.Required("name", name), shared.MaxLength("name", name, 200)); err != nil {
		return err
	}
	d.name = name
	return nil
}

type VisitRequest struct {
	shared.Base
	requesterID        uint
	departmentID       uint
	reason             string
	createdBySecretary *uint
	status             vo.VisitStatus
	headNote           string
	respondedBy        *uint
	respondedAt        *time.Time
}

// NewVisitRequest files a request for requesterID. createdBySecretary is set
// when a staff member files on someone else's behalf.
func NewVisitRequest(requesterID, departmentID uint, reason string, createdBySecretary *uint) (*VisitRequest, error) {
	if requesterID == 0 {
		return nil, shared.NewFieldError("requester_id", "requester_id is required")
	}
	if departmentID == 0 {
		return nil, shared.NewFieldError("department_id", "department_id is required")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, shared.NewFieldError("reason", ReasonRequiredMessage)
	}
	return &VisitRequest{
		Base:               shared.NewBase(),
		requesterID:        requesterID,
		departmentID:       departmentID,
		reason:             reason,
		createdBySecretary: createdBySecretary,
		status:             vo.VisitPending,
	}, nil
}

func ReconstructVisitRequest(
	id, requesterID, departmentID uint,
	reason string,
	createdBySecretary *uint,
	status vo.VisitStatus,
	headNote string,
	respondedBy *uint,
	respondedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*VisitRequest, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid visit status: %s", status)
	}
	return &VisitRequest{
		Base:               shared.ReconstructBase(id, createdAt, updatedAt),
		requesterID:        requesterID,
		departmentID:       departmentID,
		reason:             reason,
		createdBySecretary: createdBySecretary,
		status:             status,
		headNote:           headNote,
		respondedBy:        respondedBy,
		respondedAt:        respondedAt,
	}, nil
}

func (v *VisitRequest) RequesterID() uint         { return v.requesterID }
func (v *VisitRequest) DepartmentID() uint        { return v.departmentID }
func (v *VisitRequest) Reason() string            { return v.reason }
func (v *VisitRequest) CreatedBySecretary() *uint { return v.createdBySecretary }
func (v *VisitRequest) Status() vo.VisitStatus    { return v.status }
func (v *VisitRequest) HeadNote() string          { return v.headNote }
func (v *VisitRequest) RespondedBy() *uint        { return v.respondedBy }
func (v *VisitRequest) RespondedAt() *time.Time   { return v.respondedAt }

// Edit changes the department and reason. An empty reason keeps the
// current one.
func (v *VisitRequest) Edit(departmentID uint, reason string) error {
	if departmentID != 0 {
		v.departmentID = departmentID
	}
	if strings.TrimSpace(reason) != "" {
		v.reason = reason
	}
	v.Touch()
	return nil
}

// Respond records the head's decision: status, note, who and when.
func (v *VisitRequest) Respond(status vo.VisitStatus, note string, responderID uint) error {
	if !status.IsValid() {
		return shared.NewFieldError("status", "Invalid status")
	}
	now := biztime.NowUTC()
	v.status = status
	v.headNote = note
	v.respondedBy = &responderID
	v.respondedAt = &now
	v.Touch()
	return nil
}

// VisibleTo reports whether a caller may see the request: staff see every
// request, other users only their own.
func (v *VisitRequest) VisibleTo(userID uint, isStaff bool) bool {
	return isStaff || v.requesterID == userID
}
