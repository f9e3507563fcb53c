package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campus/internal/shared/db"
	apperrors "campus/internal/shared/errors"
	"campus/internal/shared/logger"
	"campus/internal/shared/query"
)

type entity interface {
	ID() uint
	SetID(id uint) error
}

// table is the gorm plumbing shared by every aggregate repository. E is the
// domain aggregate, M its persistence model.
type table[E entity, M any] struct {
	db       *gorm.DB
	logger   logger.Interface
	label    string
	toModel  func(E) *M
	toDomain func(*M) (E, error)
	modelID  func(*M) uint
	// unique lists the columns with a unique index, used to attribute
	// duplicate-key errors to a field.
	unique []string
	// onDelete runs before the row itself is deleted, inside the same
	// transaction.
	onDelete []rule
}

func (t *table[E, M]) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, t.db)
}

func (t *table[E, M]) notFound() error {
	return apperrors.NewNotFoundError(t.label + " not found")
}

func (t *table[E, M]) Create(ctx context.Context, e E) error {
	model := t.toModel(e)
	if err := t.conn(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return t.writeError("create", err)
	}
	if err := e.SetID(t.modelID(model)); err != nil {
		t.logger.Errorw("failed to set "+t.label+" ID", "error", err)
		return fmt.Errorf("failed to set %s ID: %w", t.label, err)
	}
	return nil
}

func (t *table[E, M]) GetByID(ctx context.Context, id uint) (E, error) {
	return t.first(ctx, "id = ?", id)
}

// Update writes every column of the aggregate, zero values included.
func (t *table[E, M]) Update(ctx context.Context, e E) error {
	model := t.toModel(e)
	result := t.conn(ctx).Model(model).Omit(clause.Associations).Select("*").Updates(model)
	if result.Error != nil {
		return t.writeError("update", result.Error)
	}
	if result.RowsAffected == 0 {
		exists, err := t.exists(ctx, "id = ?", e.ID())
		if err != nil {
			return err
		}
		if !exists {
			return t.notFound()
		}
	}
	return nil
}

// Delete applies the declared delete rules to dependents, then removes the
// row, all in one transaction.
func (t *table[E, M]) Delete(ctx context.Context, id uint) error {
	return t.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(M)).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to load %s: %w", t.label, err)
		}
		if count == 0 {
			return t.notFound()
		}
		if err := applyRules(tx, []uint{id}, t.onDelete); err != nil {
			return err
		}
		if err := tx.Delete(new(M), id).Error; err != nil {
			t.logger.Errorw("failed to delete "+t.label, "id", id, "error", err)
			return fmt.Errorf("failed to delete %s: %w", t.label, err)
		}
		return nil
	})
}

func (t *table[E, M]) first(ctx context.Context, where string, args ...interface{}) (E, error) {
	var zero E
	var model M
	if err := t.conn(ctx).Where(where, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, t.notFound()
		}
		t.logger.Errorw("failed to get "+t.label, "error", err)
		return zero, fmt.Errorf("failed to get %s: %w", t.label, err)
	}
	return t.toDomain(&model)
}

func (t *table[E, M]) exists(ctx context.Context, where string, args ...interface{}) (bool, error) {
	var count int64
	if err := t.conn(ctx).Model(new(M)).Where(where, args...).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s: %w", t.label, err)
	}
	return count > 0, nil
}

// existsExcept reports whether a row other than excludeID has column = value.
func (t *table[E, M]) existsExcept(ctx context.Context, column string, value interface{}, excludeID uint) (bool, error) {
	if excludeID == 0 {
		return t.exists(ctx, column+" = ?", value)
	}
	return t.exists(ctx, column+" = ? AND id <> ?", value, excludeID)
}

// page counts and loads one page of rows matching scopes.
func (t *table[E, M]) page(ctx context.Context, page query.PageFilter, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]E, int64, error) {
	q := t.conn(ctx).Model(new(M)).Scopes(scopes...)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		t.logger.Errorw("failed to count "+t.label, "error", err)
		return nil, 0, fmt.Errorf("failed to count %s: %w", t.label, err)
	}

	var rows []M
	if err := q.Order(order).Scopes(db.Paginate(page)).Find(&rows).Error; err != nil {
		t.logger.Errorw("failed to list "+t.label, "error", err)
		return nil, 0, fmt.Errorf("failed to list %s: %w", t.label, err)
	}

	items, err := t.domainSlice(rows)
	return items, total, err
}

// all loads every matching row without pagination.
func (t *table[E, M]) all(ctx context.Context, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]E, error) {
	var rows []M
	if err := t.conn(ctx).Model(new(M)).Scopes(scopes...).Order(order).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.label, err)
	}
	return t.domainSlice(rows)
}

func (t *table[E, M]) domainSlice(rows []M) ([]E, error) {
	items := make([]E, 0, len(rows))
	for i := range rows {
		e, err := t.toDomain(&rows[i])
		if err != nil {
			t.logger.Errorw("failed to map "+t.label, "error", err)
			return nil, fmt.Errorf("failed to map %s: %w", t.label, err)
		}
		items = append(items, e)
	}
	return items, nil
}

// writeError turns a unique-index violation into a field validation error.
func (t *table[E, M]) writeError(op string, err error) error {
	if apperrors.IsDuplicateError(err) {
		field := t.duplicateField(err.Error())
		return apperrors.NewFieldValidationError(field, fmt.Sprintf("%s with this %s already exists", t.label, field))
	}
	t.logger.Errorw("failed to "+op+" "+t.label, "error", err)
	return fmt.Errorf("failed to %s %s: %w", op, t.label, err)
}

func (t *table[E, M]) duplicateField(msg string) string {
	msg = strings.ToLower(msg)
	for _, column := range t.unique {
		if strings.Contains(msg, column) {
			return column
		}
	}
	if len(t.unique) > 0 {
		return t.unique[0]
	}
	return "id"
}

func search(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" {
			return q
		}
		like := "%" + strings.ToLower(term) + "%"
		conds := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, c := range columns {
			conds[i] = "LOWER(" + c + ") LIKE ?"
			args[i] = like
		}
		return q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

func where(cond string, args ...interface{}) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where(cond, args...)
	}
}
