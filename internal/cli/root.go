// Package cli implements chatterctl, the operator command line for the
// metrics service.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chatterctl",
	Short: "Operate the chatter metrics service",
	Long: `chatterctl runs reports, KPI summaries and ranking jobs against the
metrics database, and applies schema migrations.

Configuration is read from the environment (and an optional .env file),
the same way the API server reads it.`,
	SilenceUsage: true,
}

var outputFormat string

// Execute runs the root command; SIGINT or SIGTERM cancels it.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatTable, "Output format: table or json")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(kpisCmd)
}
