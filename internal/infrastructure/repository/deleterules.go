package repository

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "campus/internal/shared/errors"
)

// rule enforces one foreign-key delete policy for a set of parent IDs.
type rule func(tx *gorm.DB, ids []uint) error

func applyRules(tx *gorm.DB, ids []uint, rules []rule) error {
	if len(ids) == 0 {
		return nil
	}
	for _, r := range rules {
		if err := r(tx, ids); err != nil {
			return err
		}
	}
	return nil
}

// protect rejects the delete while rows in table reference the parent.
func protect(table, column, dependents string) rule {
	return func(tx *gorm.DB, ids []uint) error {
		var count int64
		if err := tx.Table(table).Where(column+" IN ?", ids).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count %s: %w", dependents, err)
		}
		if count > 0 {
			return apperrors.NewConflictError(
				fmt.Sprintf("cannot delete: %d %s still reference this record", count, dependents),
			)
		}
		return nil
	}
}

// setNull clears the reference column on dependent rows.
func setNull(table, column string) rule {
	return func(tx *gorm.DB, ids []uint) error {
		if err := tx.Table(table).Where(column+" IN ?", ids).Update(column, nil).Error; err != nil {
			return fmt.Errorf("failed to clear %s.%s: %w", table, column, err)
		}
		return nil
	}
}

// cascade deletes dependent rows after applying their own rules.
func cascade(table, column string, nested ...rule) rule {
	return func(tx *gorm.DB, ids []uint) error {
		var childIDs []uint
		if err := tx.Table(table).Where(column+" IN ?", ids).Pluck("id", &childIDs).Error; err != nil {
			return fmt.Errorf("failed to load %s: %w", table, err)
		}
		if len(childIDs) == 0 {
			return nil
		}
		if err := applyRules(tx, childIDs, nested); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM "+table+" WHERE id IN ?", childIDs).Error; err != nil {
			return fmt.Errorf("failed to delete %s: %w", table, err)
		}
		return nil
	}
}
