package valueobjects

import "fmt"

// RecordStatus tracks a planned maintenance job logged against an asset.
type RecordStatus string

const (
	RecordScheduled  RecordStatus = "scheduled"
	RecordInProgress RecordStatus = "in_progress"
	RecordCompleted  RecordStatus = "completed"
	RecordCancelled  RecordStatus = "cancelled"
)

var validRecordStatuses = map[RecordStatus]bool{
	RecordScheduled:  true,
	RecordInProgress: true,
	RecordCompleted:  true,
	RecordCancelled:  true,
}

func (r RecordStatus) String() string {
	return string(r)
}

func (r RecordStatus) IsValid() bool {
	return validRecordStatuses[r]
}

func NewRecordStatus(s string) (RecordStatus, error) {
	v := RecordStatus(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid maintenance record status: %s", s)
	}
	return v, nil
}

func IsValidRecordStatus(s string) bool {
	return RecordStatus(s).IsValid()
}
