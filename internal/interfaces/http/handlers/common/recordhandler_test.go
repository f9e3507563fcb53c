package common

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/common/lifecycle"
	"campus/internal/interfaces/http/handlers/testutil"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type noteDetails struct {
	Title string
	Body  string
}

type note struct {
	id      uint
	details noteDetails
	status  string
}

func (n *note) ID() uint             { return n.id }
func (n *note) Details() noteDetails { return n.details }
func (n *note) Update(d noteDetails) error {
	if d.Title == "" {
		return errors.NewFieldValidationError("title", "title is required")
	}
	n.details = d
	return nil
}

type noteRequest struct {
	Title string `json:"title" binding:"required,max=20"`
	Body  string `json:"body"`
}

type noteResponse struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Status string `json:"status"`
}

type noteFilter struct {
	Search string
}

type fakeNotes struct {
	notes      map[uint]*note
	next       uint
	lastFilter noteFilter
	lastActor  uint
}

func newFakeNotes(seed ...*note) *fakeNotes {
	f := &fakeNotes{notes: map[uint]*note{}, next: 1}
	for _, n := range seed {
		f.notes[n.id] = n
		if n.id >= f.next {
			f.next = n.id + 1
		}
	}
	return f
}

func (f *fakeNotes) Create(_ context.Context, d noteDetails, actorID uint) (*note, error) {
	f.lastActor = actorID
	n := &note{id: f.next, details: d, status: "draft"}
	f.notes[n.id] = n
	f.next++
	return n, nil
}

func (f *fakeNotes) Get(_ context.Context, id uint) (*note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, errors.NewNotFoundError("note not found")
	}
	return n, nil
}

func (f *fakeNotes) Update(ctx context.Context, id uint, d noteDetails) (*note, error) {
	n, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := n.Update(d); err != nil {
		return nil, err
	}
	return n, nil
}

func (f *fakeNotes) Delete(ctx context.Context, id uint) error {
	if _, err := f.Get(ctx, id); err != nil {
		return err
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeNotes) List(_ context.Context, filter noteFilter) ([]*note, int64, error) {
	f.lastFilter = filter
	out := make([]*note, 0, len(f.notes))
	for id := uint(1); id < f.next; id++ {
		if n, ok := f.notes[id]; ok {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeNotes) Execute(ctx context.Context, cmd lifecycle.ChangeStatusCommand) (*note, error) {
	if cmd.Status != "draft" && cmd.Status != "published" {
		return nil, errors.NewFieldValidationError("status", lifecycle.InvalidStatusMessage)
	}
	n, err := f.Get(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	n.status = cmd.Status
	f.lastActor = cmd.ActorID
	return n, nil
}

func (f *fakeNotes) ExecuteBulk(_ context.Context, cmd lifecycle.BulkCommand) (*lifecycle.BulkResult, error) {
	result := &lifecycle.BulkResult{Updated: []uint{}, Missing: []uint{}}
	for _, id := range cmd.IDs {
		n, ok := f.notes[id]
		if !ok {
			result.Missing = append(result.Missing, id)
			continue
		}
		n.status = cmd.Status
		result.Updated = append(result.Updated, id)
	}
	return result, nil
}

func toNoteResponse(n *note) any {
	return noteResponse{ID: n.id, Title: n.details.Title, Body: n.details.Body, Status: n.status}
}

var noteMapper = Mapper[*note, noteDetails, noteRequest]{
	ToDetails:   func(r noteRequest) (noteDetails, error) { return noteDetails(r), nil },
	FromDetails: func(d noteDetails) noteRequest { return noteRequest(d) },
	ToResponse:  toNoteResponse,
}

func newNoteRouter(svc *fakeNotes, guard gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		testutil.SetAuthContext(c, 7, "staff")
	})
	h := NewRecordHandler[*note, noteDetails, noteFilter, noteRequest]("note", svc, noteMapper,
		func(c *gin.Context) noteFilter { return noteFilter{Search: c.Query("search")} },
		logger.NewNopLogger())
	rg := r.Group("/notes")
	h.Register(rg, nil, guard)
	NewStatusHandler[*note]("note", svc, toNoteResponse).
		WithActions(lifecycle.MarkActions("draft", "published")).
		Register(rg, guard)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeNote(t *testing.T, w *httptest.ResponseRecorder) noteResponse {
	t.Helper()
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)
	var n noteResponse
	require.NoError(t, json.Unmarshal(resp.Data, &n))
	return n
}

func TestRecordHandler_CreateAndGet(t *testing.T) {
	svc := newFakeNotes()
	r := newNoteRouter(svc, nil)

	w := do(r, http.MethodPost, "/notes", `{"title":"Exam timetable","body":"draft"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeNote(t, w)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, uint(7), svc.lastActor)

	w = do(r, http.MethodGet, "/notes/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Exam timetable", decodeNote(t, w).Title)
}

func TestRecordHandler_CreateValidation(t *testing.T) {
	r := newNoteRouter(newFakeNotes(), nil)

	w := do(r, http.MethodPost, "/notes", `{"body":"no title"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Fields, "title")
}

func TestRecordHandler_GetErrors(t *testing.T) {
	r := newNoteRouter(newFakeNotes(), nil)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/notes/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/notes/0", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/notes/99", "").Code)
}

func TestRecordHandler_PatchKeepsAbsentFields(t *testing.T) {
	svc := newFakeNotes(&note{id: 3, details: noteDetails{Title: "Library hours", Body: "9 to 5"}, status: "draft"})
	r := newNoteRouter(svc, nil)

	w := do(r, http.MethodPatch, "/notes/3", `{"body":"8 to 6"}`)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeNote(t, w)
	assert.Equal(t, "Library hours", got.Title)
	assert.Equal(t, "8 to 6", got.Body)
}

func TestRecordHandler_PutReplacesFields(t *testing.T) {
	svc := newFakeNotes(&note{id: 3, details: noteDetails{Title: "Library hours", Body: "9 to 5"}})
	r := newNoteRouter(svc, nil)

	w := do(r, http.MethodPut, "/notes/3", `{"title":"Opening hours"}`)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeNote(t, w)
	assert.Equal(t, "Opening hours", got.Title)
	assert.Empty(t, got.Body)
}

func TestRecordHandler_ListAndDelete(t *testing.T) {
	svc := newFakeNotes(
		&note{id: 1, details: noteDetails{Title: "a"}},
		&note{id: 2, details: noteDetails{Title: "b"}},
	)
	r := newNoteRouter(svc, nil)

	w := do(r, http.MethodGet, "/notes?search=term&page=1&page_size=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "term", svc.lastFilter.Search)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(2), list.Total)
	assert.Equal(t, 1, list.TotalPages)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/notes/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/notes/1", "").Code)
}

func TestRecordHandler_WriteGuard(t *testing.T) {
	deny := func(c *gin.Context) {
		c.AbortWithStatus(http.StatusForbidden)
	}
	svc := newFakeNotes(&note{id: 1, details: noteDetails{Title: "a"}})
	r := newNoteRouter(svc, deny)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/notes/1", "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/notes", `{"title":"x"}`).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodDelete, "/notes/1", "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPatch, "/notes/1/status", `{"status":"published"}`).Code)
	assert.Len(t, svc.notes, 1)
}

func TestStatusHandler_ChangeStatus(t *testing.T) {
	svc := newFakeNotes(&note{id: 1, details: noteDetails{Title: "a"}, status: "draft"})
	r := newNoteRouter(svc, nil)

	w := do(r, http.MethodPatch, "/notes/1/status", `{"status":"published","note":"ok"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "published", decodeNote(t, w).Status)
	assert.Equal(t, uint(7), svc.lastActor)

	w = do(r, http.MethodPatch, "/notes/1/status", `{"status":"archived"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, lifecycle.InvalidStatusMessage, resp.Error.Message)
}

func TestStatusHandler_BulkStatus(t *testing.T) {
	svc := newFakeNotes(
		&note{id: 1, status: "draft"},
		&note{id: 2, status: "draft"},
	)
	r := newNoteRouter(svc, nil)

	w := do(r, http.MethodPost, "/notes/bulk-status", `{"ids":[1,2,9],"status":"published"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var result lifecycle.BulkResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, []uint{1, 2}, result.Updated)
	assert.Equal(t, []uint{9}, result.Missing)
	assert.Equal(t, "published", svc.notes[2].status)
}

func TestStatusHandler_BulkAction(t *testing.T) {
	svc := newFakeNotes(&note{id: 1, status: "published"})
	r := newNoteRouter(svc, nil)

	w := do(r, http.MethodPost, "/notes/bulk-status", `{"ids":[1],"action":"mark_draft"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "draft", svc.notes[1].status)

	w = do(r, http.MethodPost, "/notes/bulk-status", `{"ids":[1],"action":"shred"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/notes/bulk-status", `{"ids":[1]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/notes/bulk-status", `{"ids":[],"status":"draft"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
