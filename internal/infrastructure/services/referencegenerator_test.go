package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"campus/internal/shared/biztime"
)

func TestReferenceGenerator_Next(t *testing.T) {
	restore := biztime.SetClock(func() time.Time { return time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC) })
	defer restore()

	g := &ReferenceGenerator{newID: func() uuid.UUID {
		return uuid.MustParse("a1b2c3d4-0000-4000-8000-000000000000")
	}}
	assert.Equal(t, "MR-20260114-A1B2C3", g.Next("MR"))
	assert.Equal(t, "WO-20260114-A1B2C3", g.Next("WO"))
}

func TestReferenceGenerator_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^MR-\d{8}-[0-9A-F]{6}$`)
	g := NewReferenceGenerator()
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		ref := g.Next("MR")
		assert.Regexp(t, pattern, ref)
		seen[ref] = true
	}
	assert.Greater(t, len(seen), 1)
}
