package valueobjects

import "fmt"

type WorkOrderStatus string

const (
	WorkOrderPending    WorkOrderStatus = "pending"
	WorkOrderScheduled  WorkOrderStatus = "scheduled"
	WorkOrderInProgress WorkOrderStatus = "in_progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderOnHold     WorkOrderStatus = "on_hold"
	WorkOrderCancelled  WorkOrderStatus = "cancelled"
)

var validWorkOrderStatuses = map[WorkOrderStatus]bool{
	WorkOrderPending:    true,
	WorkOrderScheduled:  true,
	WorkOrderInProgress: true,
	WorkOrderCompleted:  true,
	WorkOrderOnHold:     true,
	WorkOrderCancelled:  true,
}

func (w WorkOrderStatus) String() string {
	return string(w)
}

func (w WorkOrderStatus) IsValid() bool {
	return validWorkOrderStatuses[w]
}

func NewWorkOrderStatus(s string) (WorkOrderStatus, error) {
	v := WorkOrderStatus(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid work order status: %s", s)
	}
	return v, nil
}

// IsValidWorkOrderStatus is the predicate used by the status lifecycle.
func IsValidWorkOrderStatus(s string) bool {
	return WorkOrderStatus(s).IsValid()
}

type ConditionAfter string

const (
	ConditionAfterExcellent        ConditionAfter = "excellent"
	ConditionAfterGood             ConditionAfter = "good"
	ConditionAfterFair             ConditionAfter = "fair"
	ConditionAfterPoor             ConditionAfter = "poor"
	ConditionAfterNeedsReplacement ConditionAfter = "needs_replacement"
)

var validConditionAfters = map[ConditionAfter]bool{
	ConditionAfterExcellent:        true,
	ConditionAfterGood:             true,
	ConditionAfterFair:             true,
	ConditionAfterPoor:             true,
	ConditionAfterNeedsReplacement: true,
}

func (c ConditionAfter) String() string {
	return string(c)
}

func (c ConditionAfter) IsValid() bool {
	return validConditionAfters[c]
}

func NewConditionAfter(s string) (ConditionAfter, error) {
	v := ConditionAfter(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid asset condition: %s", s)
	}
	return v, nil
}
