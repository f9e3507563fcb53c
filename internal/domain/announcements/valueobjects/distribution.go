package valueobjects

import "fmt"

type DistributionStatus string

const (
	DistributionPending DistributionStatus = "pending"
	DistributionSent    DistributionStatus = "sent"
	DistributionFailed  DistributionStatus = "failed"
)

var validDistributionStatuses = map[DistributionStatus]bool{
	DistributionPending: true,
	DistributionSent:    true,
	DistributionFailed:  true,
}

func (d DistributionStatus) String() string {
	return string(d)
}

func (d DistributionStatus) IsValid() bool {
	return validDistributionStatuses[d]
}

func NewDistributionStatus(s string) (DistributionStatus, error) {
	v := DistributionStatus(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid distribution status: %s", s)
	}
	return v, nil
}

// IsValidDistributionStatus is the predicate used by the status lifecycle.
func IsValidDistributionStatus(s string) bool {
	return DistributionStatus(s).IsValid()
}

type Method string

const (
	MethodEmail     Method = "email"
	MethodSMS       Method = "sms"
	MethodPush      Method = "push"
	MethodDashboard Method = "dashboard"
	MethodAll       Method = "all"
)

var validMethods = map[Method]bool{
	MethodEmail:     true,
	MethodSMS:       true,
	MethodPush:      true,
	MethodDashboard: true,
	MethodAll:       true,
}

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	return validMethods[m]
}

func NewMethod(s string) (Method, error) {
	v := Method(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid distribution method: %s", s)
	}
	return v, nil
}
