package biztime

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday_UsesCampusTimezone(t *testing.T) {
	require.NoError(t, Init("Africa/Lagos")) // UTC+1, no DST
	defer func() { _ = Init("UTC") }()

	restore := SetClock(func() time.Time {
		return time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC)
	})
	defer restore()

	// 23:30 UTC is already 00:30 on the 10th in Lagos
	assert.Equal(t, time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC), Today())
	assert.Equal(t, "2025-03-10", FormatDate(NowUTC()))
}

func TestParseDate(t *testing.T) {
	require.NoError(t, Init(""))

	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}
