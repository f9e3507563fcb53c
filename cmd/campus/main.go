package main

import (
	"os"

	"github.com/spf13/cobra"

	"campus/internal/interfaces/cli/migrate"
	"campus/internal/interfaces/cli/server"
	"campus/internal/interfaces/cli/user"
	"campus/internal/interfaces/cli/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campus",
		Short: "Campus - university administration API",
		Long:  `Campus serves the university back office: academics, admissions, assets, maintenance, announcements, careers, policies, staff, visits and news.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
