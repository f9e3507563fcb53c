package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/common/lifecycle"
	app "campus/internal/application/jobs"
	apptest "campus/internal/application/testutil"
	"campus/internal/domain/jobs"
	"campus/internal/interfaces/http/handlers/testutil"
	"campus/internal/shared/biztime"
	"campus/internal/shared/errors"
)

type memoryPostings struct {
	*apptest.MemoryRepository[*jobs.JobPosting, jobs.PostingFilter]
}

func (m *memoryPostings) GetBySlug(_ context.Context, slug string) (*jobs.JobPosting, error) {
	for _, p := range m.All() {
		if p.Details().Slug == slug {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("job posting not found")
}

type memoryApplications struct {
	*apptest.MemoryRepository[*jobs.JobApplication, jobs.ApplicationFilter]
}

func (m *memoryApplications) ExistsForJob(_ context.Context, jobID uint, email string, excludeID uint) (bool, error) {
	for _, a := range m.All() {
		if a.Details().JobID == jobID && a.Details().Email == email && a.ID() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fixture struct {
	handler      *Handler
	svc          *app.Service
	applications *memoryApplications
}

func newFixture() *fixture {
	log := testutil.NewMockLogger()
	postings := &memoryPostings{apptest.NewMemoryRepository[*jobs.JobPosting, jobs.PostingFilter]()}
	applications := &memoryApplications{apptest.NewMemoryRepository[*jobs.JobApplication, jobs.ApplicationFilter]()}
	svc := app.NewService(postings, applications, &apptest.Tx{}, lifecycle.NewJournal(&apptest.MemoryHistory{}, nil, log), log)
	return &fixture{handler: NewHandler(svc, log), svc: svc, applications: applications}
}

func (f *fixture) posting(t *testing.T, title string, deadline time.Time, active bool) *jobs.JobPosting {
	t.Helper()
	p, err := f.svc.Postings.Create(context.Background(), jobs.PostingDetails{
		Title:       title,
		Description: "Run the campus library",
		Deadline:    deadline,
		IsActive:    active,
	}, 1)
	require.NoError(t, err)
	return p
}

func (f *fixture) apply(postingID uint, body any) (int, testutil.APIResponse) {
	c, w := testutil.NewTestContext(http.MethodPost, "/api/public/jobs/"+strconv.FormatUint(uint64(postingID), 10)+"/apply", body)
	testutil.SetURLParam(c, "id", strconv.FormatUint(uint64(postingID), 10))
	f.handler.Apply(c)

	var resp testutil.APIResponse
	_ = testutil.ParseResponse(w, &resp)
	return w.Code, resp
}

var lena = map[string]any{
	"first_name": "Lena",
	"last_name":  "Park",
	"email":      "lena@example.com",
}

func TestApply(t *testing.T) {
	t.Run("open posting", func(t *testing.T) {
		f := newFixture()
		open := f.posting(t, "Librarian", biztime.Today().AddDate(0, 0, 7), true)

		code, resp := f.apply(open.ID(), lena)

		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, "Application submitted", resp.Message)
		var got ApplicationResponse
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		assert.Equal(t, open.ID(), got.JobID)
		assert.Equal(t, "submitted", got.Status)
		assert.Equal(t, 1, f.applications.Len())
	})

	t.Run("deadline passed", func(t *testing.T) {
		f := newFixture()
		closed := f.posting(t, "Archivist", biztime.Today().AddDate(0, 0, -1), true)

		code, resp := f.apply(closed.ID(), lena)

		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "this job posting is closed for applications", resp.Error.Message)
		assert.Equal(t, 0, f.applications.Len())
	})

	t.Run("inactive posting", func(t *testing.T) {
		f := newFixture()
		inactive := f.posting(t, "Bursar", biztime.Today().AddDate(0, 1, 0), false)

		code, resp := f.apply(inactive.ID(), lena)

		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "this job posting is closed for applications", resp.Error.Message)
		assert.Equal(t, 0, f.applications.Len())
	})

	t.Run("unknown posting", func(t *testing.T) {
		f := newFixture()
		code, _ := f.apply(404, lena)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture()
		open := f.posting(t, "Porter", biztime.Today().AddDate(0, 0, 7), true)

		code, resp := f.apply(open.ID(), map[string]any{"first_name": "Lena"})

		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Fields, "last_name")
		assert.Contains(t, resp.Error.Fields, "email")
	})

	t.Run("bad id", func(t *testing.T) {
		f := newFixture()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/public/jobs/abc/apply", lena)
		testutil.SetURLParam(c, "id", "abc")
		f.handler.Apply(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
