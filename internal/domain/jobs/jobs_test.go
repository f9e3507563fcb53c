package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "campus/internal/domain/jobs/valueobjects"
	"campus/internal/domain/shared"
)

var today = time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

func newPosting(t *testing.T, deadline time.Time, active bool) *JobPosting {
	t.Helper()
	p, err := NewJobPosting(PostingDetails{Title: "Lecturer in Physics", Description: "Teach", Deadline: deadline, IsActive: active}, today)
	require.NoError(t, err)
	require.NoError(t, p.SetID(3))
	return p
}

func TestJobPosting_IsOpen(t *testing.T) {
	assert.True(t, newPosting(t, today, true).IsOpen(today))
	assert.False(t, newPosting(t, today.AddDate(0, 0, -1), true).IsOpen(today))
	assert.False(t, newPosting(t, today.AddDate(0, 1, 0), false).IsOpen(today))
}

func TestJobPosting_Defaults(t *testing.T) {
	p := newPosting(t, today, true)
	assert.Equal(t, "lecturer-in-physics", p.Details().Slug)
	assert.Equal(t, vo.JobTypeFullTime, p.Details().JobType)
	assert.Equal(t, today, p.Details().PostedDate)
}

func TestJobPosting_SalaryRange(t *testing.T) {
	lo, hi := int64(500000), int64(400000)
	_, err := NewJobPosting(PostingDetails{Title: "x", Description: "y", Deadline: today, SalaryMinCents: &lo, SalaryMaxCents: &hi}, today)
	fe, ok := shared.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "salary_max_cents", fe.Field)
}

func TestSubmitApplication(t *testing.T) {
	details := ApplicationDetails{FirstName: "Musa", LastName: "Bangura", Email: "Musa@X.com"}

	app, err := SubmitApplication(newPosting(t, today, true), details, today)
	require.NoError(t, err)
	assert.Equal(t, uint(3), app.Details().JobID)
	assert.Equal(t, "musa@x.com", app.Details().Email)
	assert.Equal(t, vo.ApplicationSubmitted, app.Status())

	_, err = SubmitApplication(newPosting(t, today.AddDate(0, 0, -1), true), details, today)
	assert.Error(t, err)
}
