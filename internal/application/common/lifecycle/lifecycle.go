// Package lifecycle applies administrative status changes to any record that
// carries an enumerated status. Any valid status may follow any other; every
// change is journaled in the status history within the same transaction.
package lifecycle

import (
	"context"
	"fmt"

	"campus/internal/application/common"
	"campus/internal/domain/statushistory"
	"campus/internal/shared/db"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

// InvalidStatusMessage is the message returned for a status outside the
// record's enumeration.
const InvalidStatusMessage = "Invalid status"

type Entity interface {
	ID() uint
}

// Store is the slice of a repository the lifecycle needs. GetByID returns a
// not-found AppError for a missing record.
type Store[E Entity] interface {
	GetByID(ctx context.Context, id uint) (E, error)
	Update(ctx context.Context, entity E) error
}

// Spec describes how one record type exposes and changes its status.
type Spec[E Entity] struct {
	EntityType string
	Valid      func(status string) bool
	Current    func(entity E) string
	Apply      func(entity E, status, note string, actorID uint) error
}

// Recorder observes committed status changes, e.g. for metrics.
type Recorder interface {
	RecordStatusChange(entityType, status string)
}

type nopRecorder struct{}

func (nopRecorder) RecordStatusChange(string, string) {}

func NopRecorder() Recorder {
	return nopRecorder{}
}

// Journal writes history rows and reports committed changes.
type Journal struct {
	history  statushistory.Repository
	recorder Recorder
	logger   logger.Interface
}

func NewJournal(history statushistory.Repository, recorder Recorder, logger logger.Interface) *Journal {
	if recorder == nil {
		recorder = NopRecorder()
	}
	return &Journal{history: history, recorder: recorder, logger: logger}
}

// Log appends a history row. Call it inside the transaction that changed
// the status.
func (j *Journal) Log(ctx context.Context, entityType string, entityID uint, oldStatus, newStatus string, actorID uint, note string) error {
	change, err := statushistory.NewStatusChange(entityType, entityID, oldStatus, newStatus, actorID, note)
	if err != nil {
		return err
	}
	return j.history.Create(ctx, change)
}

// Committed reports changes after their transaction succeeded.
func (j *Journal) Committed(entityType, newStatus string, count int) {
	for i := 0; i < count; i++ {
		j.recorder.RecordStatusChange(entityType, newStatus)
	}
}

type ChangeStatusCommand struct {
	ID      uint
	Status  string
	Note    string
	ActorID uint
}

type BulkCommand struct {
	IDs     []uint
	Status  string
	Note    string
	ActorID uint
}

// BulkResult lists the records a bulk action changed and the IDs that did
// not resolve to a record.
type BulkResult struct {
	Updated []uint `json:"updated"`
	Missing []uint `json:"missing"`
}

// ChangeStatusUseCase is the explicit command handler behind both the
// single-record status endpoint and the bulk admin actions.
type ChangeStatusUseCase[E Entity] struct {
	spec    Spec[E]
	store   Store[E]
	tx      db.Transactor
	journal *Journal
	logger  logger.Interface
}

func NewChangeStatusUseCase[E Entity](
	spec Spec[E],
	store Store[E],
	tx db.Transactor,
	journal *Journal,
	logger logger.Interface,
) *ChangeStatusUseCase[E] {
	return &ChangeStatusUseCase[E]{
		spec:    spec,
		store:   store,
		tx:      tx,
		journal: journal,
		logger:  logger,
	}
}

func (uc *ChangeStatusUseCase[E]) Execute(ctx context.Context, cmd ChangeStatusCommand) (E, error) {
	var result E
	if cmd.ID == 0 {
		return result, errors.NewFieldValidationError("id", "id is required")
	}
	if !uc.spec.Valid(cmd.Status) {
		return result, errors.NewFieldValidationError("status", InvalidStatusMessage)
	}

	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		entity, err := uc.store.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if err := uc.transition(ctx, entity, cmd.Status, cmd.Note, cmd.ActorID); err != nil {
			return err
		}
		result = entity
		return nil
	})
	if err != nil {
		var zero E
		uc.logger.Warnw("status change failed",
			"entity_type", uc.spec.EntityType,
			"id", cmd.ID,
			"status", cmd.Status,
			"error", err,
		)
		return zero, uc.wrap(err)
	}

	uc.journal.Committed(uc.spec.EntityType, cmd.Status, 1)
	uc.logger.Infow("status changed",
		"entity_type", uc.spec.EntityType,
		"id", cmd.ID,
		"status", cmd.Status,
		"actor_id", cmd.ActorID,
	)
	return result, nil
}

// ExecuteBulk applies one status to every selected record in a single
// transaction. Unknown IDs are reported, not treated as failures.
func (uc *ChangeStatusUseCase[E]) ExecuteBulk(ctx context.Context, cmd BulkCommand) (*BulkResult, error) {
	if !uc.spec.Valid(cmd.Status) {
		return nil, errors.NewFieldValidationError("status", InvalidStatusMessage)
	}

	result, err := uc.Each(ctx, cmd.IDs, func(ctx context.Context, entity E) error {
		return uc.transition(ctx, entity, cmd.Status, cmd.Note, cmd.ActorID)
	})
	if err != nil {
		return nil, err
	}

	uc.journal.Committed(uc.spec.EntityType, cmd.Status, len(result.Updated))
	uc.logger.Infow("bulk status change applied",
		"entity_type", uc.spec.EntityType,
		"status", cmd.Status,
		"updated", len(result.Updated),
		"missing", len(result.Missing),
	)
	return result, nil
}

// Each loads every selected record and runs fn on it inside one transaction.
// It backs bulk actions that are not plain status assignments.
func (uc *ChangeStatusUseCase[E]) Each(ctx context.Context, ids []uint, fn func(ctx context.Context, entity E) error) (*BulkResult, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, errors.NewFieldValidationError("ids", "select at least one record")
	}

	result := &BulkResult{Updated: []uint{}, Missing: []uint{}}
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, id := range ids {
			entity, err := uc.store.GetByID(ctx, id)
			if err != nil {
				if errors.IsNotFoundError(err) {
					result.Missing = append(result.Missing, id)
					continue
				}
				return err
			}
			if err := fn(ctx, entity); err != nil {
				return fmt.Errorf("%s %d: %w", uc.spec.EntityType, id, err)
			}
			result.Updated = append(result.Updated, id)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("bulk action failed", "entity_type", uc.spec.EntityType, "error", err)
		return nil, uc.wrap(err)
	}
	return result, nil
}

// Save persists an entity modified by a bulk action other than a status
// change.
func (uc *ChangeStatusUseCase[E]) Save(ctx context.Context, entity E) error {
	return uc.store.Update(ctx, entity)
}

func (uc *ChangeStatusUseCase[E]) transition(ctx context.Context, entity E, status, note string, actorID uint) error {
	old := uc.spec.Current(entity)
	if err := uc.spec.Apply(entity, status, note, actorID); err != nil {
		return common.DomainError(err)
	}
	if err := uc.store.Update(ctx, entity); err != nil {
		return err
	}
	return uc.journal.Log(ctx, uc.spec.EntityType, entity.ID(), old, status, actorID, note)
}

func (uc *ChangeStatusUseCase[E]) wrap(err error) error {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr
	}
	return errors.NewInternalError(fmt.Sprintf("failed to change %s status", uc.spec.EntityType))
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
