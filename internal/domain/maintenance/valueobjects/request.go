package valueobjects

import "fmt"

type RequestStatus string

const (
	RequestStatusDraft        RequestStatus = "draft"
	RequestStatusSubmitted    RequestStatus = "submitted"
	RequestStatusAcknowledged RequestStatus = "acknowledged"
	RequestStatusScheduled    RequestStatus = "scheduled"
	RequestStatusInProgress   RequestStatus = "in_progress"
	RequestStatusCompleted    RequestStatus = "completed"
	RequestStatusOnHold       RequestStatus = "on_hold"
	RequestStatusCancelled    RequestStatus = "cancelled"
)

var validRequestStatuses = map[RequestStatus]bool{
	RequestStatusDraft:        true,
	RequestStatusSubmitted:    true,
	RequestStatusAcknowledged: true,
	RequestStatusScheduled:    true,
	RequestStatusInProgress:   true,
	RequestStatusCompleted:    true,
	RequestStatusOnHold:       true,
	RequestStatusCancelled:    true,
}

func (r RequestStatus) String() string {
	return string(r)
}

func (r RequestStatus) IsValid() bool {
	return validRequestStatuses[r]
}

func NewRequestStatus(s string) (RequestStatus, error) {
	v := RequestStatus(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid maintenance request status: %s", s)
	}
	return v, nil
}

// IsValidRequestStatus is the predicate used by the status lifecycle.
func IsValidRequestStatus(s string) bool {
	return RequestStatus(s).IsValid()
}

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var validPriorities = map[Priority]bool{
	PriorityUrgent: true,
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func NewPriority(s string) (Priority, error) {
	v := Priority(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return v, nil
}
