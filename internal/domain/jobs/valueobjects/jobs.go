package valueobjects

import "fmt"

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeTemporary  JobType = "temporary"
	JobTypeInternship JobType = "internship"
)

var validJobTypes = map[JobType]bool{
	JobTypeFullTime:   true,
	JobTypePartTime:   true,
	JobTypeContract:   true,
	JobTypeTemporary:  true,
	JobTypeInternship: true,
}

func (j JobType) String() string {
	return string(j)
}

func (j JobType) IsValid() bool {
	return validJobTypes[j]
}

func NewJobType(s string) (JobType, error) {
	v := JobType(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid job type: %s", s)
	}
	return v, nil
}

type ApplicationStatus string

const (
	ApplicationSubmitted   ApplicationStatus = "submitted"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationOffered     ApplicationStatus = "offered"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationWithdrawn   ApplicationStatus = "withdrawn"
)

var validApplicationStatuses = map[ApplicationStatus]bool{
	ApplicationSubmitted:   true,
	ApplicationUnderReview: true,
	ApplicationShortlisted: true,
	ApplicationInterviewed: true,
	ApplicationOffered:     true,
	ApplicationRejected:    true,
	ApplicationWithdrawn:   true,
}

func (a ApplicationStatus) String() string {
	return string(a)
}

func (a ApplicationStatus) IsValid() bool {
	return validApplicationStatuses[a]
}

func NewApplicationStatus(s string) (ApplicationStatus, error) {
	v := ApplicationStatus(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid application status: %s", s)
	}
	return v, nil
}

// IsValidApplicationStatus is the predicate used by the status lifecycle.
func IsValidApplicationStatus(s string) bool {
	return ApplicationStatus(s).IsValid()
}
