package valueobjects

import "fmt"

type ApplicantStatus string

const (
	ApplicantStatusDraft       ApplicantStatus = "draft"
	ApplicantStatusSubmitted   ApplicantStatus = "submitted"
	ApplicantStatusUnderReview ApplicantStatus = "under_review"
	ApplicantStatusShortlisted ApplicantStatus = "shortlisted"
	ApplicantStatusAccepted    ApplicantStatus = "accepted"
	ApplicantStatusRejected    ApplicantStatus = "rejected"
	ApplicantStatusEnrolled    ApplicantStatus = "enrolled"
)

var validApplicantStatuses = map[ApplicantStatus]bool{
	ApplicantStatusDraft:       true,
	ApplicantStatusSubmitted:   true,
	ApplicantStatusUnderReview: true,
	ApplicantStatusShortlisted: true,
	ApplicantStatusAccepted:    true,
	ApplicantStatusRejected:    true,
	ApplicantStatusEnrolled:    true,
}

func (s ApplicantStatus) String() string {
	return string(s)
}

func (s ApplicantStatus) IsValid() bool {
	return validApplicantStatuses[s]
}

func NewApplicantStatus(s string) (ApplicantStatus, error) {
	status := ApplicantStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid applicant status: %s", s)
	}
	return status, nil
}

// IsValidApplicantStatus is the predicate used by the status lifecycle.
func IsValidApplicantStatus(s string) bool {
	return ApplicantStatus(s).IsValid()
}
