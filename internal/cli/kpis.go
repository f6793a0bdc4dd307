package cli

import (
	"chatter-metrics-service/internal/metrics/core/usecase"

	"github.com/spf13/cobra"
)

var kpisCmd = &cobra.Command{
	Use:   "kpis",
	Short: "Compare headline KPIs with the preceding period",
	Long: `Sum the KPI metrics over a period and the period of equal length before
it, with percentage deltas.

Examples:
  chatterctl kpis --preset last_7_days
  chatterctl kpis --start 2025-11-01 --end 2025-11-30 --metrics sales_amount,sph --team A`,
	Args: cobra.NoArgs,
	RunE: runKPIs,
}

var kpiInput usecase.SummarizeKPIsInput

func init() {
	f := kpisCmd.Flags()
	f.StringSliceVar(&kpiInput.Metrics, "metrics", nil, "Metrics; defaults to sales_amount, sold_count, unlock_count, sph")
	f.StringVar(&kpiInput.Start, "start", "", "Start date (YYYY-MM-DD)")
	f.StringVar(&kpiInput.End, "end", "", "End date (YYYY-MM-DD)")
	f.StringVar(&kpiInput.Preset, "preset", "", "Date preset, e.g. last_30_days")
	f.StringVar(&kpiInput.PreviousStart, "previous-start", "", "Explicit start of the comparison period")
	f.StringVar(&kpiInput.PreviousEnd, "previous-end", "", "Explicit end of the comparison period")
	f.StringVar(&kpiInput.TeamName, "team", "", "Only records of this team")
}

func runKPIs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		summary, err := app.KPIs.Execute(ctx, kpiInput)
		if err != nil {
			return err
		}
		return printKPIs(cmd.OutOrStdout(), outputFormat, summary)
	})
}
