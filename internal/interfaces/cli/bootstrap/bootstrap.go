// Package bootstrap prepares configuration, logging and the database
// connection shared by every command.
package bootstrap

import (
	"fmt"

	"campus/internal/infrastructure/config"
	"campus/internal/infrastructure/database"
	"campus/internal/shared/biztime"
	"campus/internal/shared/constants"
	"campus/internal/shared/logger"
)

// Env is the initialized process environment.
type Env struct {
	Config *config.Config
	Logger logger.Interface
}

// Setup loads the configuration for env, installs the process logger,
// sets the business timezone and opens the database.
func Setup(env string) (*Env, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger, cfg.Server.IsDebug()); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database, log); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Env{Config: cfg, Logger: log}, nil
}

// Close releases the database connection.
func (e *Env) Close() {
	if err := database.Close(); err != nil {
		e.Logger.Warnw("failed to close database", "error", err)
	}
}

// GinMode maps an environment name onto a gin mode.
func GinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
