package main

import (
	"os"

	"github.com/spf13/cobra"

	"centro/internal/interfaces/cli/migrate"
	"centro/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "centro",
		Short: "Centro - multi-tenant admin console",
		Long:  `Centro is the administrative console for subscription management, billing, and tenant accounts.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
