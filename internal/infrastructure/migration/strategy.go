package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/config"
	"campus/internal/shared/logger"
)

//go:embed scripts
var scripts embed.FS

// Strategy applies and inspects the schema for one kind of database.
type Strategy interface {
	Up(ctx context.Context, db *gorm.DB) error
	Down(ctx context.Context, db *gorm.DB) error
	Version(ctx context.Context, db *gorm.DB) (int64, error)
	Status(ctx context.Context, db *gorm.DB) error
	GetName() string
}

// GooseStrategy runs the versioned SQL scripts embedded for a dialect.
type GooseStrategy struct {
	dialect string
	dir     string
	logger  logger.Interface
}

// goose keeps its dialect and filesystem in package state
var gooseMu sync.Mutex

// NewGooseStrategy selects scripts/<driver> for mysql or postgres.
func NewGooseStrategy(driver string, log logger.Interface) (*GooseStrategy, error) {
	var dialect string
	switch driver {
	case config.DriverMySQL:
		dialect = "mysql"
	case config.DriverPostgres:
		dialect = "postgres"
	default:
		return nil, fmt.Errorf("goose migrations are not available for driver %q", driver)
	}
	return &GooseStrategy{
		dialect: dialect,
		dir:     "scripts/" + driver,
		logger:  log.Named("migration.goose"),
	}, nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) Up(ctx context.Context, db *gorm.DB) error {
	return s.run(ctx, db, func(ctx context.Context, sqlDB *sql.DB) error {
		return goose.UpContext(ctx, sqlDB, s.dir)
	})
}

func (s *GooseStrategy) Down(ctx context.Context, db *gorm.DB) error {
	return s.run(ctx, db, func(ctx context.Context, sqlDB *sql.DB) error {
		return goose.DownContext(ctx, sqlDB, s.dir)
	})
}

func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) error {
	return s.run(ctx, db, func(ctx context.Context, sqlDB *sql.DB) error {
		return goose.StatusContext(ctx, sqlDB, s.dir)
	})
}

func (s *GooseStrategy) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	var version int64
	err := s.run(ctx, db, func(ctx context.Context, sqlDB *sql.DB) error {
		v, err := goose.GetDBVersionContext(ctx, sqlDB)
		version = v
		return err
	})
	return version, err
}

func (s *GooseStrategy) run(ctx context.Context, db *gorm.DB, fn func(context.Context, *sql.DB) error) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scripts)
	goose.SetLogger(gooseLogger{s.logger})
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn(ctx, sqlDB)
}

// Create writes an empty sequential SQL migration into dir on disk.
func Create(dir, name string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(nil)
	goose.SetSequential(true)
	defer goose.SetSequential(false)
	return goose.Create(nil, dir, name, "sql")
}

// AutoMigrateStrategy derives the schema from the gorm models. Used for
// sqlite and for throwaway development databases.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.Named("migration.automigrate")}
}

func (s *AutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *AutoMigrateStrategy) Up(ctx context.Context, db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("auto-migrating models", "count", len(all))
	if err := db.WithContext(ctx).AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Down drops every model table in reverse dependency order.
func (s *AutoMigrateStrategy) Down(ctx context.Context, db *gorm.DB) error {
	all := models.All()
	migrator := db.WithContext(ctx).Migrator()
	for i := len(all) - 1; i >= 0; i-- {
		if err := migrator.DropTable(all[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}

func (s *AutoMigrateStrategy) Version(context.Context, *gorm.DB) (int64, error) {
	return 0, nil
}

func (s *AutoMigrateStrategy) Status(ctx context.Context, db *gorm.DB) error {
	migrator := db.WithContext(ctx).Migrator()
	for _, m := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return err
		}
		s.logger.Infow("table", "name", stmt.Schema.Table, "exists", migrator.HasTable(m))
	}
	return nil
}

type gooseLogger struct {
	logger logger.Interface
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Infow(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Errorw(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
