package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"campus/internal/infrastructure/database"
	"campus/internal/infrastructure/migration"
	"campus/internal/interfaces/cli/bootstrap"
	"campus/internal/shared/constants"
)

var (
	env  string
	name string
	dir  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply them, roll back the latest one, check status and create new scripts.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE:  runDown,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new SQL migration",
		Long:  `Create an empty sequential SQL migration for the given dialect directory.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "./internal/infrastructure/migration/scripts/postgres", "Scripts directory")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func withManager(fn func(e *bootstrap.Env, m *migration.Manager) error) error {
	e, err := bootstrap.Setup(bootstrap.GinMode(env))
	if err != nil {
		return err
	}
	defer e.Close()

	m, err := migration.NewManager(e.Config.Database.Driver, e.Logger)
	if err != nil {
		return err
	}
	return fn(e, m)
}

func runUp(cmd *cobra.Command, args []string) error {
	return withManager(func(e *bootstrap.Env, m *migration.Manager) error {
		e.Logger.Infow("running up migrations", "environment", env)
		return m.Migrate(cmd.Context(), database.Get())
	})
}

func runDown(cmd *cobra.Command, args []string) error {
	return withManager(func(e *bootstrap.Env, m *migration.Manager) error {
		e.Logger.Infow("rolling back latest migration", "environment", env)
		return m.Rollback(cmd.Context(), database.Get())
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withManager(func(e *bootstrap.Env, m *migration.Manager) error {
		current, err := m.Version(cmd.Context(), database.Get())
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nMigration Status:\n")
		fmt.Fprintf(cmd.OutOrStdout(), "  Environment:     %s\n", env)
		fmt.Fprintf(cmd.OutOrStdout(), "  Strategy:        %s\n", m.GetStrategy().GetName())
		fmt.Fprintf(cmd.OutOrStdout(), "  Current Version: %d\n", current)

		return m.Status(cmd.Context(), database.Get())
	})
}

func runCreate(cmd *cobra.Command, args []string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve scripts directory: %w", err)
	}
	if err := migration.Create(abs, name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migration %q created in %s\n", name, abs)
	return nil
}
