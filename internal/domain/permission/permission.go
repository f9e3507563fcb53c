// Package permission names the resources and actions guarded by the
// role policies.
package permission

import "fmt"

type Resource string

const (
	ResourceUsers         Resource = "users"
	ResourceAcademics     Resource = "academics"
	ResourceAdmissions    Resource = "admissions"
	ResourceAssets        Resource = "assets"
	ResourceMaintenance   Resource = "maintenance"
	ResourceAnnouncements Resource = "announcements"
	ResourceJobs          Resource = "jobs"
	ResourcePolicies      Resource = "policies"
	ResourceStaff         Resource = "staff"
	ResourceVisits        Resource = "visits"
	ResourceNews          Resource = "news"
	ResourceOutreach      Resource = "outreach"
	ResourceDashboard     Resource = "dashboard"
	ResourceHistory       Resource = "history"
)

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// Policy grants one action on one resource to a role.
type Policy struct {
	Role     string
	Resource Resource
	Action   Action
}

func (p Policy) String() string {
	return fmt.Sprintf("%s:%s:%s", p.Role, p.Resource, p.Action)
}

// RecordResources are the resources staff maintain day to day.
func RecordResources() []Resource {
	return []Resource{
		ResourceAcademics,
		ResourceAdmissions,
		ResourceAssets,
		ResourceMaintenance,
		ResourceAnnouncements,
		ResourceJobs,
		ResourcePolicies,
		ResourceStaff,
		ResourceVisits,
		ResourceNews,
		ResourceOutreach,
	}
}
