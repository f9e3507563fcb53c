// Package shared holds the pieces every campus aggregate is built from.
package shared

import (
	"fmt"
	"time"

	"campus/internal/shared/biztime"
)

// Base carries identity and audit timestamps. Aggregates embed it.
type Base struct {
	id        uint
	createdAt time.Time
	updatedAt time.Time
}

// NewBase stamps a record that has not been persisted yet.
func NewBase() Base {
	now := biztime.NowUTC()
	return Base{createdAt: now, updatedAt: now}
}

// ReconstructBase rebuilds identity from storage.
func ReconstructBase(id uint, createdAt, updatedAt time.Time) Base {
	return Base{id: id, createdAt: createdAt, updatedAt: updatedAt}
}

func (b *Base) ID() uint {
	return b.id
}

// SetID assigns the database ID once, after insert.
func (b *Base) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("record ID cannot be zero")
	}
	b.id = id
	return nil
}

func (b *Base) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Base) UpdatedAt() time.Time {
	return b.updatedAt
}

// Touch moves the last-modified timestamp to now.
func (b *Base) Touch() time.Time {
	now := biztime.NowUTC()
	if !now.After(b.updatedAt) {
		// keep updated_at strictly increasing when the clock has not advanced
		now = b.updatedAt.Add(time.Microsecond)
	}
	b.updatedAt = now
	return now
}
