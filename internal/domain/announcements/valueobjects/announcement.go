package valueobjects

import "fmt"

type AnnouncementStatus string

const (
	StatusDraft     AnnouncementStatus = "draft"
	StatusScheduled AnnouncementStatus = "scheduled"
	StatusPublished AnnouncementStatus = "published"
	StatusExpired   AnnouncementStatus = "expired"
	StatusArchived  AnnouncementStatus = "archived"
)

var validAnnouncementStatuses = map[AnnouncementStatus]bool{
	StatusDraft:     true,
	StatusScheduled: true,
	StatusPublished: true,
	StatusExpired:   true,
	StatusArchived:  true,
}

func (a AnnouncementStatus) String() string {
	return string(a)
}

func (a AnnouncementStatus) IsValid() bool {
	return validAnnouncementStatuses[a]
}

func NewAnnouncementStatus(s string) (AnnouncementStatus, error) {
	v := AnnouncementStatus(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid announcement status: %s", s)
	}
	return v, nil
}

// IsValidAnnouncementStatus is the predicate used by the status lifecycle.
func IsValidAnnouncementStatus(s string) bool {
	return AnnouncementStatus(s).IsValid()
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityNormal: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
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

type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceStudents Audience = "students"
	AudienceFaculty  Audience = "faculty"
	AudienceStaff    Audience = "staff"
	AudienceAlumni   Audience = "alumni"
	AudiencePublic   Audience = "public"
)

var validAudiences = map[Audience]bool{
	AudienceAll:      true,
	AudienceStudents: true,
	AudienceFaculty:  true,
	AudienceStaff:    true,
	AudienceAlumni:   true,
	AudiencePublic:   true,
}

func (a Audience) String() string {
	return string(a)
}

func (a Audience) IsValid() bool {
	return validAudiences[a]
}

func NewAudience(s string) (Audience, error) {
	v := Audience(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid target audience: %s", s)
	}
	return v, nil
}
