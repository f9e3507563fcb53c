// Package crud is the shared create / read / update / delete use case for
// records whose entity exposes Details and Update.
package crud

import (
	"context"
	"fmt"

	"campus/internal/application/common"
	"campus/internal/domain/shared"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

type Entity[D any] interface {
	ID() uint
	Details() D
	Update(details D) error
}

type Repository[E any, F any] interface {
	shared.CRUD[E]
	List(ctx context.Context, filter F) ([]E, int64, error)
}

// Factory builds a new entity. actorID is the authenticated caller, zero
// when the write does not come from a request.
type Factory[E any, D any] func(details D, actorID uint) (E, error)

// Prepare runs inside the write transaction before details reach the
// entity. id is zero on create.
type Prepare[D any] func(ctx context.Context, id uint, details D) (D, error)

type Service[E Entity[D], D any, F any] struct {
	name    string
	repo    Repository[E, F]
	factory Factory[E, D]
	prepare Prepare[D]
	tx      db.Transactor
	logger  logger.Interface
}

func NewService[E Entity[D], D any, F any](
	name string,
	repo Repository[E, F],
	factory Factory[E, D],
	tx db.Transactor,
	log logger.Interface,
) *Service[E, D, F] {
	return &Service[E, D, F]{
		name:    name,
		repo:    repo,
		factory: factory,
		tx:      tx,
		logger:  log,
	}
}

// WithPrepare installs a hook for uniqueness checks and derived fields.
func (s *Service[E, D, F]) WithPrepare(p Prepare[D]) *Service[E, D, F] {
	s.prepare = p
	return s
}

func (s *Service[E, D, F]) Name() string {
	return s.name
}

func (s *Service[E, D, F]) Create(ctx context.Context, details D, actorID uint) (E, error) {
	var created E
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		d, err := s.runPrepare(ctx, 0, details)
		if err != nil {
			return err
		}
		entity, err := s.factory(d, actorID)
		if err != nil {
			return common.DomainError(err)
		}
		if err := s.repo.Create(ctx, entity); err != nil {
			return common.PersistenceError(err, fmt.Sprintf("failed to create %s", s.name))
		}
		created = entity
		return nil
	})
	if err != nil {
		var zero E
		s.logger.Warnw("create failed", "entity", s.name, "error", err)
		return zero, err
	}

	s.logger.Infow("record created", "entity", s.name, "id", created.ID(), "actor_id", actorID)
	return created, nil
}

func (s *Service[E, D, F]) Get(ctx context.Context, id uint) (E, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var zero E
		return zero, common.PersistenceError(err, fmt.Sprintf("failed to get %s", s.name))
	}
	return entity, nil
}

// Update replaces every editable field.
func (s *Service[E, D, F]) Update(ctx context.Context, id uint, details D) (E, error) {
	return s.Patch(ctx, id, func(D) D { return details })
}

// Patch derives the new details from the stored ones.
func (s *Service[E, D, F]) Patch(ctx context.Context, id uint, change func(current D) D) (E, error) {
	var updated E
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		entity, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		d, err := s.runPrepare(ctx, id, change(entity.Details()))
		if err != nil {
			return err
		}
		if err := entity.Update(d); err != nil {
			return common.DomainError(err)
		}
		if err := s.repo.Update(ctx, entity); err != nil {
			return err
		}
		updated = entity
		return nil
	})
	if err != nil {
		var zero E
		s.logger.Warnw("update failed", "entity", s.name, "id", id, "error", err)
		return zero, common.PersistenceError(err, fmt.Sprintf("failed to update %s", s.name))
	}

	s.logger.Infow("record updated", "entity", s.name, "id", id)
	return updated, nil
}

// Delete applies the repository's deletion policy for dependents.
func (s *Service[E, D, F]) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warnw("delete failed", "entity", s.name, "id", id, "error", err)
		return common.PersistenceError(err, fmt.Sprintf("failed to delete %s", s.name))
	}
	s.logger.Infow("record deleted", "entity", s.name, "id", id)
	return nil
}

func (s *Service[E, D, F]) List(ctx context.Context, filter F) ([]E, int64, error) {
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("list failed", "entity", s.name, "error", err)
		return nil, 0, common.PersistenceError(err, fmt.Sprintf("failed to list %s records", s.name))
	}
	return items, total, nil
}

func (s *Service[E, D, F]) runPrepare(ctx context.Context, id uint, details D) (D, error) {
	if s.prepare == nil {
		return details, nil
	}
	d, err := s.prepare(ctx, id, details)
	if err != nil {
		return d, common.DomainError(err)
	}
	return d, nil
}
