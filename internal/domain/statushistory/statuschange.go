// Package statushistory records every administrative status change.
package statushistory

import (
	"context"
	"fmt"
	"time"

	"campus/internal/shared/biztime"
	"campus/internal/shared/query"
)

// StatusChange is an append-only audit row.
type StatusChange struct {
	id         uint
	entityType string
	entityID   uint
	oldStatus  string
	newStatus  string
	changedBy  uint
	note       string
	changedAt  time.Time
}

// NewStatusChange records old -> new for one record. changedBy is zero for
// changes made outside an HTTP request, e.g. from the CLI.
func NewStatusChange(entityType string, entityID uint, oldStatus, newStatus string, changedBy uint, note string) (*StatusChange, error) {
	if entityType == "" {
		return nil, fmt.Errorf("entity type is required")
	}
	if entityID == 0 {
		return nil, fmt.Errorf("entity ID is required")
	}
	if newStatus == "" {
		return nil, fmt.Errorf("new status is required")
	}
	return &StatusChange{
		entityType: entityType,
		entityID:   entityID,
		oldStatus:  oldStatus,
		newStatus:  newStatus,
		changedBy:  changedBy,
		note:       note,
		changedAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructStatusChange(id uint, entityType string, entityID uint, oldStatus, newStatus string, changedBy uint, note string, changedAt time.Time) *StatusChange {
	return &StatusChange{
		id:         id,
		entityType: entityType,
		entityID:   entityID,
		oldStatus:  oldStatus,
		newStatus:  newStatus,
		changedBy:  changedBy,
		note:       note,
		changedAt:  changedAt,
	}
}

func (s *StatusChange) ID() uint             { return s.id }
func (s *StatusChange) EntityType() string   { return s.entityType }
func (s *StatusChange) EntityID() uint       { return s.entityID }
func (s *StatusChange) OldStatus() string    { return s.oldStatus }
func (s *StatusChange) NewStatus() string    { return s.newStatus }
func (s *StatusChange) ChangedBy() uint      { return s.changedBy }
func (s *StatusChange) Note() string         { return s.note }
func (s *StatusChange) ChangedAt() time.Time { return s.changedAt }

func (s *StatusChange) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("status change ID is already set")
	}
	s.id = id
	return nil
}

type Filter struct {
	query.PageFilter
	EntityType string
	EntityID   uint
}

type Repository interface {
	Create(ctx context.Context, change *StatusChange) error
	List(ctx context.Context, filter Filter) ([]*StatusChange, int64, error)
}
