package valueobjects

import "fmt"

type PolicyCategory string

const (
	CategoryAcademic       PolicyCategory = "academic"
	CategoryHR             PolicyCategory = "hr"
	CategoryFinance        PolicyCategory = "finance"
	CategoryGovernance     PolicyCategory = "governance"
	CategoryStudentAffairs PolicyCategory = "student_affairs"
	CategoryHealthSafety   PolicyCategory = "health_safety"
	CategoryIT             PolicyCategory = "it"
	CategoryOther          PolicyCategory = "other"
)

var validPolicyCategories = map[PolicyCategory]bool{
	CategoryAcademic:       true,
	CategoryHR:             true,
	CategoryFinance:        true,
	CategoryGovernance:     true,
	CategoryStudentAffairs: true,
	CategoryHealthSafety:   true,
	CategoryIT:             true,
	CategoryOther:          true,
}

func (p PolicyCategory) String() string {
	return string(p)
}

func (p PolicyCategory) IsValid() bool {
	return validPolicyCategories[p]
}

func NewPolicyCategory(s string) (PolicyCategory, error) {
	v := PolicyCategory(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid policy category: %s", s)
	}
	return v, nil
}
