// Package testutil provides in-memory repositories and transaction doubles
// for application layer tests.
package testutil

import (
	"context"
	"sort"
	"sync"

	"campus/internal/domain/statushistory"
	"campus/internal/shared/errors"
)

type Record interface {
	ID() uint
	SetID(id uint) error
}

// MemoryRepository implements the CRUD + List contract over a map. List
// returns rows by ascending ID unless ListFunc is set.
type MemoryRepository[E Record, F any] struct {
	mu     sync.Mutex
	rows   map[uint]E
	nextID uint

	CreateErr error
	UpdateErr error
	DeleteErr error
	ListFunc  func(filter F, rows []E) ([]E, int64, error)

	Creates int
	Updates int
}

func NewMemoryRepository[E Record, F any]() *MemoryRepository[E, F] {
	return &MemoryRepository[E, F]{rows: make(map[uint]E)}
}

func (m *MemoryRepository[E, F]) Create(_ context.Context, entity E) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := entity.SetID(m.nextID); err != nil {
		return err
	}
	m.rows[entity.ID()] = entity
	m.Creates++
	return nil
}

// Seed stores an entity that already carries an ID.
func (m *MemoryRepository[E, F]) Seed(entity E) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows[entity.ID()] = entity
	if entity.ID() > m.nextID {
		m.nextID = entity.ID()
	}
}

func (m *MemoryRepository[E, F]) GetByID(_ context.Context, id uint) (E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entity, ok := m.rows[id]
	if !ok {
		var zero E
		return zero, errors.NewNotFoundError("record not found")
	}
	return entity, nil
}

func (m *MemoryRepository[E, F]) Update(_ context.Context, entity E) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if _, ok := m.rows[entity.ID()]; !ok {
		return errors.NewNotFoundError("record not found")
	}
	m.rows[entity.ID()] = entity
	m.Updates++
	return nil
}

func (m *MemoryRepository[E, F]) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.rows[id]; !ok {
		return errors.NewNotFoundError("record not found")
	}
	delete(m.rows, id)
	return nil
}

func (m *MemoryRepository[E, F]) List(_ context.Context, filter F) ([]E, int64, error) {
	rows := m.All()
	if m.ListFunc != nil {
		return m.ListFunc(filter, rows)
	}
	return rows, int64(len(rows)), nil
}

// All returns every stored row by ascending ID.
func (m *MemoryRepository[E, F]) All() []E {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]E, 0, len(m.rows))
	for _, e := range m.rows {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (m *MemoryRepository[E, F]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// Tx runs the function directly and counts calls.
type Tx struct {
	Calls int
}

func (t *Tx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}

type MemoryHistory struct {
	mu      sync.Mutex
	Changes []*statushistory.StatusChange
}

func (h *MemoryHistory) Create(_ context.Context, change *statushistory.StatusChange) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := change.SetID(uint(len(h.Changes) + 1)); err != nil {
		return err
	}
	h.Changes = append(h.Changes, change)
	return nil
}

func (h *MemoryHistory) List(_ context.Context, filter statushistory.Filter) ([]*statushistory.StatusChange, int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]*statushistory.StatusChange, 0, len(h.Changes))
	for i := len(h.Changes) - 1; i >= 0; i-- {
		c := h.Changes[i]
		if filter.EntityType != "" && c.EntityType() != filter.EntityType {
			continue
		}
		if filter.EntityID != 0 && c.EntityID() != filter.EntityID {
			continue
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

// Recorder counts committed status changes per "entity:status".
type Recorder struct {
	mu   sync.Mutex
	Seen map[string]int
}

func (r *Recorder) RecordStatusChange(entityType, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Seen == nil {
		r.Seen = make(map[string]int)
	}
	r.Seen[entityType+":"+status]++
}
