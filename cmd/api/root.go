package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule-manager",
		Short: "Schedule manager API",
		Long: `Schedule manager serves user registration, login and authenticated
event management over HTTP, backed by PostgreSQL.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
