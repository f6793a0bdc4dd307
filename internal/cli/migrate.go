package cli

import (
	"fmt"

	"chatter-metrics-service/internal/platform/postgres"

	"github.com/spf13/cobra"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Apply every pending embedded migration.

Examples:
  chatterctl migrate          # apply pending migrations
  chatterctl migrate --down   # revert the latest migration`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Revert the latest applied migration")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		if migrateDown {
			return postgres.MigrateDown(ctx, app.DB, app.Logger)
		}

		n, err := postgres.MigrateUp(ctx, app.DB, app.Logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d migration(s) applied\n", n)
		return nil
	})
}
