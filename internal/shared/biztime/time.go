// Package biztime keeps every stored timestamp in UTC and resolves calendar
// dates (deadlines, license expiry, "today") in the configured campus timezone.
package biztime

import (
	"fmt"
	"sync"
	"time"

	"campus/internal/shared/constants"
)

// DefaultTimezone is used when the server config leaves timezone empty.
const DefaultTimezone = "UTC"

var (
	bizLocation *time.Location
	locMu       sync.RWMutex

	clockMu sync.RWMutex
	clock   = time.Now
)

// Init sets the campus timezone. It may be called again, e.g. from tests.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	locMu.Lock()
	bizLocation = loc
	locMu.Unlock()
	return nil
}

// Location returns the campus timezone, UTC when Init was never called.
func Location() *time.Location {
	locMu.RLock()
	defer locMu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// SetClock replaces the time source and returns a function restoring it.
func SetClock(now func() time.Time) (restore func()) {
	clockMu.Lock()
	prev := clock
	clock = now
	clockMu.Unlock()
	return func() {
		clockMu.Lock()
		clock = prev
		clockMu.Unlock()
	}
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock().UTC()
}

// Today returns midnight of the current campus date, expressed in UTC.
func Today() time.Time {
	return StartOfDayUTC(NowUTC())
}

// StartOfDayUTC returns the campus-local midnight of t, converted to UTC.
func StartOfDayUTC(t time.Time) time.Time {
	local := t.In(Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location()).UTC()
}

// ParseDate parses YYYY-MM-DD as a campus-local date at midnight, in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateLayout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}

// FormatDate renders t as a campus-local YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(constants.DateLayout)
}
