package valueobjects

import "fmt"

// VisitStatus values are upper case, unlike the other enumerations.
type VisitStatus string

const (
	VisitPending     VisitStatus = "PENDING"
	VisitRequestInfo VisitStatus = "REQUEST_INFO"
	VisitApproved    VisitStatus = "APPROVED"
	VisitRejected    VisitStatus = "REJECTED"
)

var validVisitStatuses = map[VisitStatus]bool{
	VisitPending:     true,
	VisitRequestInfo: true,
	VisitApproved:    true,
	VisitRejected:    true,
}

func (v VisitStatus) String() string {
	return string(v)
}

func (v VisitStatus) IsValid() bool {
	return validVisitStatuses[v]
}

func NewVisitStatus(s string) (VisitStatus, error) {
	v := VisitStatus(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid visit status: %s", s)
	}
	return v, nil
}

// IsValidVisitStatus is the predicate used by the status lifecycle.
func IsValidVisitStatus(s string) bool {
	return VisitStatus(s).IsValid()
}
