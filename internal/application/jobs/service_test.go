package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/common/lifecycle"
	"campus/internal/application/testutil"
	"campus/internal/domain/jobs"
	vo "campus/internal/domain/jobs/valueobjects"
	"campus/internal/shared/biztime"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type mockPostingRepository struct {
	*testutil.MemoryRepository[*jobs.JobPosting, jobs.PostingFilter]
}

func (m *mockPostingRepository) GetBySlug(_ context.Context, slug string) (*jobs.JobPosting, error) {
	for _, p := range m.All() {
		if p.Details().Slug == slug {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("job posting not found")
}

type mockApplicationRepository struct {
	*testutil.MemoryRepository[*jobs.JobApplication, jobs.ApplicationFilter]
}

func (m *mockApplicationRepository) ExistsForJob(_ context.Context, jobID uint, email string, excludeID uint) (bool, error) {
	for _, a := range m.All() {
		if a.Details().JobID == jobID && a.Details().Email == email && a.ID() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fixture struct {
	svc          *Service
	postings     *mockPostingRepository
	applications *mockApplicationRepository
	history      *testutil.MemoryHistory
}

func newFixture() *fixture {
	f := &fixture{
		postings:     &mockPostingRepository{testutil.NewMemoryRepository[*jobs.JobPosting, jobs.PostingFilter]()},
		applications: &mockApplicationRepository{testutil.NewMemoryRepository[*jobs.JobApplication, jobs.ApplicationFilter]()},
		history:      &testutil.MemoryHistory{},
	}
	log := logger.NewNopLogger()
	f.svc = NewService(f.postings, f.applications, &testutil.Tx{}, lifecycle.NewJournal(f.history, nil, log), log)
	return f
}

func (f *fixture) posting(t *testing.T, title string, deadline time.Time, active bool) *jobs.JobPosting {
	t.Helper()
	p, err := f.svc.Postings.Create(context.Background(), jobs.PostingDetails{
		Title:       title,
		Description: "Teach first-year calculus",
		Deadline:    deadline,
		IsActive:    active,
	}, 1)
	require.NoError(t, err)
	return p
}

func candidate(email string) jobs.ApplicationDetails {
	return jobs.ApplicationDetails{FirstName: "Lena", LastName: "Park", Email: email}
}

func TestCreatePosting_SlugAndDefaults(t *testing.T) {
	f := newFixture()
	next := biztime.Today().AddDate(0, 1, 0)

	a := f.posting(t, "Lecturer in Mathematics", next, true)
	b := f.posting(t, "Lecturer in Mathematics", next, true)

	assert.Equal(t, "lecturer-in-mathematics", a.Details().Slug)
	assert.Equal(t, "lecturer-in-mathematics-2", b.Details().Slug)
	assert.Equal(t, vo.JobTypeFullTime, a.Details().JobType)
	assert.False(t, a.Details().PostedDate.IsZero())

	// Re-saving keeps a posting's own slug.
	updated, err := f.svc.Postings.Update(context.Background(), b.ID(), b.Details())
	require.NoError(t, err)
	assert.Equal(t, "lecturer-in-mathematics-2", updated.Details().Slug)
}

func TestApply_OnlyWhileOpen(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	open := f.posting(t, "Registrar", biztime.Today(), true)
	expired := f.posting(t, "Librarian", biztime.Today().AddDate(0, 0, -1), true)
	inactive := f.posting(t, "Bursar", biztime.Today().AddDate(0, 1, 0), false)

	app, err := f.svc.Apply(ctx, open.ID(), candidate("LENA@example.com"))
	require.NoError(t, err)
	assert.Equal(t, vo.ApplicationSubmitted, app.Status())
	assert.Equal(t, "lena@example.com", app.Details().Email)
	assert.Equal(t, open.ID(), app.Details().JobID)

	for _, p := range []*jobs.JobPosting{expired, inactive} {
		_, err = f.svc.Apply(ctx, p.ID(), candidate("lena@example.com"))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}
	assert.Equal(t, 1, f.applications.Len())

	_, err = f.svc.Apply(ctx, 404, candidate("lena@example.com"))
	assert.True(t, errors.IsNotFoundError(err))
}

func TestApply_OncePerEmail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.posting(t, "Registrar", biztime.Today().AddDate(0, 0, 7), true)
	other := f.posting(t, "Dean", biztime.Today().AddDate(0, 0, 7), true)

	_, err := f.svc.Apply(ctx, p.ID(), candidate("lena@example.com"))
	require.NoError(t, err)

	_, err = f.svc.Apply(ctx, p.ID(), candidate(" Lena@Example.com"))
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "email")

	_, err = f.svc.Apply(ctx, other.ID(), candidate("lena@example.com"))
	assert.NoError(t, err)
}

func TestGetOpenBySlug(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	open := f.posting(t, "Porter", biztime.Today().AddDate(0, 0, 2), true)
	closed := f.posting(t, "Gardener", biztime.Today().AddDate(0, 0, -2), true)

	got, err := f.svc.GetOpenBySlug(ctx, open.Details().Slug)
	require.NoError(t, err)
	assert.Equal(t, open.ID(), got.ID())

	_, err = f.svc.GetOpenBySlug(ctx, closed.Details().Slug)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestApplicationStatus_Bulk(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.posting(t, "Registrar", biztime.Today().AddDate(0, 0, 7), true)
	a, err := f.svc.Apply(ctx, p.ID(), candidate("a@example.com"))
	require.NoError(t, err)
	b, err := f.svc.Apply(ctx, p.ID(), candidate("b@example.com"))
	require.NoError(t, err)

	result, err := f.svc.ApplicationStatus.ExecuteBulk(ctx, lifecycle.BulkCommand{
		IDs: []uint{a.ID(), b.ID()}, Status: "shortlisted", ActorID: 2,
	})
	require.NoError(t, err)
	assert.Len(t, result.Updated, 2)
	assert.Equal(t, vo.ApplicationShortlisted, b.Status())
	assert.Len(t, f.history.Changes, 2)

	_, err = f.svc.ApplicationStatus.ExecuteBulk(ctx, lifecycle.BulkCommand{IDs: []uint{a.ID()}, Status: "hired"})
	require.Error(t, err)
	assert.Equal(t, lifecycle.InvalidStatusMessage, errors.GetAppError(err).Fields["status"])
}
