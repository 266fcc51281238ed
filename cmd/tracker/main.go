package main

import (
	"os"

	"github.com/spf13/cobra"

	"tracker/internal/interfaces/cli/migrate"
	"tracker/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Tracker - a multi-project issue tracking backend",
		Long:  `Tracker is an issue tracking REST backend with projects, issues, comments and role-based access.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
