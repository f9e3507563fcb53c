package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/domain/statushistory"
	apperrors "campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type ticketLike struct {
	id        uint
	status    string
	note      string
	updatedAt time.Time
}

func (t *ticketLike) ID() uint { return t.id }

type memStore struct {
	rows      map[uint]*ticketLike
	updates   int
	updateErr error
}

func (s *memStore) GetByID(_ context.Context, id uint) (*ticketLike, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("record not found")
	}
	return row, nil
}

func (s *memStore) Update(_ context.Context, e *ticketLike) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates++
	s.rows[e.id] = e
	return nil
}

type memHistory struct {
	changes []*statushistory.StatusChange
}

func (h *memHistory) Create(_ context.Context, c *statushistory.StatusChange) error {
	h.changes = append(h.changes, c)
	return nil
}

func (h *memHistory) List(context.Context, statushistory.Filter) ([]*statushistory.StatusChange, int64, error) {
	return h.changes, int64(len(h.changes)), nil
}

type passthroughTx struct{ calls int }

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type countingRecorder struct{ seen map[string]int }

func (r *countingRecorder) RecordStatusChange(entityType, status string) {
	r.seen[entityType+":"+status]++
}

var validStatuses = map[string]bool{"open": true, "closed": true, "archived": true}

func newFixture() (*ChangeStatusUseCase[*ticketLike], *memStore, *memHistory, *countingRecorder) {
	store := &memStore{rows: map[uint]*ticketLike{
		1: {id: 1, status: "closed"},
		2: {id: 2, status: "open"},
	}}
	history := &memHistory{}
	recorder := &countingRecorder{seen: map[string]int{}}
	spec := Spec[*ticketLike]{
		EntityType: "ticket",
		Valid:      func(s string) bool { return validStatuses[s] },
		Current:    func(e *ticketLike) string { return e.status },
		Apply: func(e *ticketLike, status, note string, _ uint) error {
			e.status = status
			e.note = note
			e.updatedAt = time.Now()
			return nil
		},
	}
	uc := NewChangeStatusUseCase(spec, store, &passthroughTx{}, NewJournal(history, recorder, logger.NewNopLogger()), logger.NewNopLogger())
	return uc, store, history, recorder
}

func TestExecute_AnyValidStatusFromAnyStatus(t *testing.T) {
	uc, store, history, recorder := newFixture()

	// closed -> open is allowed; there is no transition table
	got, err := uc.Execute(context.Background(), ChangeStatusCommand{ID: 1, Status: "open", Note: "reopened", ActorID: 9})
	require.NoError(t, err)

	assert.Equal(t, "open", got.status)
	assert.Equal(t, "reopened", got.note)
	assert.False(t, got.updatedAt.IsZero())
	assert.Equal(t, 1, store.updates)

	require.Len(t, history.changes, 1)
	assert.Equal(t, "closed", history.changes[0].OldStatus())
	assert.Equal(t, "open", history.changes[0].NewStatus())
	assert.Equal(t, uint(9), history.changes[0].ChangedBy())
	assert.Equal(t, 1, recorder.seen["ticket:open"])
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		cmd      ChangeStatusCommand
		wantType apperrors.ErrorType
		wantMsg  string
	}{
		{"invalid status", ChangeStatusCommand{ID: 1, Status: "bogus"}, apperrors.ErrorTypeValidation, InvalidStatusMessage},
		{"missing id", ChangeStatusCommand{Status: "open"}, apperrors.ErrorTypeValidation, "id is required"},
		{"unknown record", ChangeStatusCommand{ID: 99, Status: "open"}, apperrors.ErrorTypeNotFound, "record not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, store, history, _ := newFixture()

			_, err := uc.Execute(context.Background(), tt.cmd)

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantType, appErr.Type)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Zero(t, store.updates)
			assert.Empty(t, history.changes)
		})
	}
}

func TestExecute_StorageFailureIsInternal(t *testing.T) {
	uc, store, history, recorder := newFixture()
	store.updateErr = errors.New("disk full")

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{ID: 2, Status: "closed"})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.NotContains(t, appErr.Message, "disk full")
	assert.Empty(t, history.changes)
	assert.Empty(t, recorder.seen)
}

func TestExecuteBulk(t *testing.T) {
	uc, store, history, recorder := newFixture()

	result, err := uc.ExecuteBulk(context.Background(), BulkCommand{IDs: []uint{1, 2, 2, 77}, Status: "archived", ActorID: 3})
	require.NoError(t, err)

	assert.Equal(t, []uint{1, 2}, result.Updated)
	assert.Equal(t, []uint{77}, result.Missing)
	assert.Equal(t, "archived", store.rows[1].status)
	assert.Equal(t, "archived", store.rows[2].status)
	assert.Len(t, history.changes, 2)
	assert.Equal(t, 2, recorder.seen["ticket:archived"])
}

func TestExecuteBulk_Validation(t *testing.T) {
	uc, _, _, _ := newFixture()

	_, err := uc.ExecuteBulk(context.Background(), BulkCommand{IDs: []uint{1}, Status: "nope"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.ExecuteBulk(context.Background(), BulkCommand{IDs: nil, Status: "open"})
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "ids")
}
