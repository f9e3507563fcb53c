package dto

import "time"

// AdminDashboardResponse is the admin landing page snapshot.
type AdminDashboardResponse struct {
	// Modules maps a module key (e.g. "applicants") to its per-status counts.
	Modules             map[string]map[string]int64 `json:"modules"`
	ItemsNeedingReorder int64                       `json:"items_needing_reorder"`
	GeneratedAt         time.Time                   `json:"generated_at"`
}

type StatusChangeResponse struct {
	ID         uint      `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ChangedBy  uint      `json:"changed_by"`
	Note       string    `json:"note,omitempty"`
	ChangedAt  time.Time `json:"changed_at"`
}
