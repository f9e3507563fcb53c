package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campus/internal/shared/config"
	"campus/internal/shared/logger"
)

// Manager runs the strategy matching the configured database driver.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager uses goose scripts for mysql and postgres and gorm
// AutoMigrate for sqlite.
func NewManager(driver string, log logger.Interface) (*Manager, error) {
	if driver == config.DriverSQLite {
		return NewManagerWithStrategy(NewAutoMigrateStrategy(log), log), nil
	}
	strategy, err := NewGooseStrategy(driver, log)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.Named("migration.manager"),
	}
}

// Migrate brings the schema up to date.
func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Up(ctx, db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}

// Rollback reverts the latest goose version, or drops all tables for
// AutoMigrate.
func (m *Manager) Rollback(ctx context.Context, db *gorm.DB) error {
	m.logger.Warnw("rolling back database migration", "strategy", m.strategy.GetName())
	if err := m.strategy.Down(ctx, db); err != nil {
		return fmt.Errorf("rollback failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

func (m *Manager) Status(ctx context.Context, db *gorm.DB) error {
	return m.strategy.Status(ctx, db)
}

func (m *Manager) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	return m.strategy.Version(ctx, db)
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
