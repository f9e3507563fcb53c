package crud

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/domain/shared"
	apperrors "campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type noteDetails struct {
	Title string
}

type note struct {
	shared.Base
	details noteDetails
	author  uint
}

func newNote(d noteDetails, actorID uint) (*note, error) {
	if err := shared.Required("title", d.Title); err != nil {
		return nil, err
	}
	return &note{Base: shared.NewBase(), details: d, author: actorID}, nil
}

func (n *note) Details() noteDetails { return n.details }

func (n *note) Update(d noteDetails) error {
	if err := shared.Required("title", d.Title); err != nil {
		return err
	}
	n.details = d
	n.Touch()
	return nil
}

type noteFilter struct{}

type mockNoteRepository struct {
	rows      map[uint]*note
	nextID    uint
	createErr error
}

func newMockNoteRepository() *mockNoteRepository {
	return &mockNoteRepository{rows: map[uint]*note{}, nextID: 1}
}

func (m *mockNoteRepository) Create(_ context.Context, n *note) error {
	if m.createErr != nil {
		return m.createErr
	}
	if err := n.SetID(m.nextID); err != nil {
		return err
	}
	m.rows[m.nextID] = n
	m.nextID++
	return nil
}

func (m *mockNoteRepository) GetByID(_ context.Context, id uint) (*note, error) {
	n, ok := m.rows[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("note not found")
	}
	return n, nil
}

func (m *mockNoteRepository) Update(_ context.Context, n *note) error {
	m.rows[n.ID()] = n
	return nil
}

func (m *mockNoteRepository) Delete(_ context.Context, id uint) error {
	if _, ok := m.rows[id]; !ok {
		return apperrors.NewNotFoundError("note not found")
	}
	delete(m.rows, id)
	return nil
}

func (m *mockNoteRepository) List(context.Context, noteFilter) ([]*note, int64, error) {
	out := make([]*note, 0, len(m.rows))
	for _, n := range m.rows {
		out = append(out, n)
	}
	return out, int64(len(out)), nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newNoteService(repo *mockNoteRepository) *Service[*note, noteDetails, noteFilter] {
	return NewService[*note, noteDetails, noteFilter]("note", repo, newNote, passthroughTx{}, logger.NewNopLogger())
}

func TestService_Create(t *testing.T) {
	repo := newMockNoteRepository()
	svc := newNoteService(repo)

	created, err := svc.Create(context.Background(), noteDetails{Title: "hello"}, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID())
	assert.Equal(t, uint(7), created.author)
}

func TestService_Create_MissingFieldPersistsNothing(t *testing.T) {
	repo := newMockNoteRepository()
	svc := newNoteService(repo)

	_, err := svc.Create(context.Background(), noteDetails{}, 0)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Fields, "title")
	assert.Empty(t, repo.rows)
}

func TestService_Create_HidesStorageErrors(t *testing.T) {
	repo := newMockNoteRepository()
	repo.createErr = errors.New("connection reset")
	svc := newNoteService(repo)

	_, err := svc.Create(context.Background(), noteDetails{Title: "x"}, 0)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.NotContains(t, appErr.Message, "connection reset")
}

func TestService_PrepareRunsOnCreateAndUpdate(t *testing.T) {
	repo := newMockNoteRepository()
	var seen []uint
	svc := newNoteService(repo).WithPrepare(func(_ context.Context, id uint, d noteDetails) (noteDetails, error) {
		seen = append(seen, id)
		if d.Title == "taken" {
			return d, shared.NewFieldError("title", "title already exists")
		}
		d.Title += "!"
		return d, nil
	})

	created, err := svc.Create(context.Background(), noteDetails{Title: "a"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "a!", created.Details().Title)

	updated, err := svc.Update(context.Background(), created.ID(), noteDetails{Title: "b"})
	require.NoError(t, err)
	assert.Equal(t, "b!", updated.Details().Title)
	assert.Equal(t, []uint{0, created.ID()}, seen)

	_, err = svc.Update(context.Background(), created.ID(), noteDetails{Title: "taken"})
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, "b!", repo.rows[created.ID()].Details().Title)
}

func TestService_PatchKeepsUntouchedFields(t *testing.T) {
	repo := newMockNoteRepository()
	svc := newNoteService(repo)
	created, err := svc.Create(context.Background(), noteDetails{Title: "keep"}, 0)
	require.NoError(t, err)
	before := created.UpdatedAt()

	patched, err := svc.Patch(context.Background(), created.ID(), func(d noteDetails) noteDetails { return d })
	require.NoError(t, err)
	assert.Equal(t, "keep", patched.Details().Title)
	assert.False(t, patched.UpdatedAt().Before(before))
}

func TestService_NotFound(t *testing.T) {
	svc := newNoteService(newMockNoteRepository())

	_, err := svc.Get(context.Background(), 42)
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = svc.Update(context.Background(), 42, noteDetails{Title: "x"})
	assert.True(t, apperrors.IsNotFoundError(err))

	assert.True(t, apperrors.IsNotFoundError(svc.Delete(context.Background(), 42)))
}
