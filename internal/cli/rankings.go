package cli

import (
	"fmt"
	"time"

	"chatter-metrics-service/internal/metrics/core/domain"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Compute and inspect daily leaderboards",
}

var rankingsRecomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recompute persisted daily rankings",
	Long: `Rank every chatter per metric for each date in [--from, --to] and
replace the stored leaderboards. Days are processed concurrently.

Examples:
  chatterctl rankings recompute --from 2025-11-01 --to 2025-11-30
  chatterctl rankings recompute --from 2025-11-30 --metrics sales_amount,sph --workers 2`,
	Args: cobra.NoArgs,
	RunE: runRankingsRecompute,
}

var rankingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a persisted daily leaderboard",
	Args:  cobra.NoArgs,
	RunE:  runRankingsShow,
}

var (
	recomputeFrom    string
	recomputeTo      string
	recomputeMetrics []string
	recomputeWorkers int

	showDate   string
	showMetric string
	showLimit  int
)

func init() {
	rankingsRecomputeCmd.Flags().StringVar(&recomputeFrom, "from", "", "First date (YYYY-MM-DD)")
	rankingsRecomputeCmd.Flags().StringVar(&recomputeTo, "to", "", "Last date (YYYY-MM-DD); defaults to --from")
	rankingsRecomputeCmd.Flags().StringSliceVar(&recomputeMetrics, "metrics", nil, "Metrics to rank; defaults to all contract metrics")
	rankingsRecomputeCmd.Flags().IntVar(&recomputeWorkers, "workers", 4, "Days processed concurrently")
	_ = rankingsRecomputeCmd.MarkFlagRequired("from")

	rankingsShowCmd.Flags().StringVar(&showDate, "date", "", "Date (YYYY-MM-DD)")
	rankingsShowCmd.Flags().StringVar(&showMetric, "metric", string(domain.MetricSalesAmount), "Metric")
	rankingsShowCmd.Flags().IntVar(&showLimit, "limit", 20, "Maximum entries")
	_ = rankingsShowCmd.MarkFlagRequired("date")

	rankingsCmd.AddCommand(rankingsRecomputeCmd)
	rankingsCmd.AddCommand(rankingsShowCmd)
}

// parseDayRange reads --from/--to; an empty to means a single day.
func parseDayRange(from, to string) (domain.DateRange, error) {
	start, err := domain.ParseDate(from)
	if err != nil {
		return domain.DateRange{}, err
	}
	if to == "" {
		return domain.SingleDay(start), nil
	}
	end, err := domain.ParseDate(to)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.NewDateRange(start, end)
}

func runRankingsRecompute(cmd *cobra.Command, args []string) error {
	rng, err := parseDayRange(recomputeFrom, recomputeTo)
	if err != nil {
		return err
	}

	var metrics []domain.MetricKind
	if len(recomputeMetrics) > 0 {
		if metrics, err = domain.ParseMetricKinds(recomputeMetrics); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		days, err := app.Telemetry.Meter().Int64Counter(
			"rankings_recomputed_days_total",
			metric.WithDescription("Days whose leaderboards were recomputed"),
			metric.WithUnit("{day}"),
		)
		if err != nil {
			return err
		}

		started := time.Now()
		results, err := app.Rankings.RecomputeRange(ctx, rng, metrics, recomputeWorkers)
		if err != nil {
			return err
		}
		days.Add(ctx, int64(len(results)), metric.WithAttributes(attribute.String("source", "cli")))

		app.Logger.Info().
			Str("range", rng.String()).
			Int("days", len(results)).
			Dur("took", time.Since(started)).
			Msg("rankings recomputed")

		return printRecompute(cmd.OutOrStdout(), outputFormat, results)
	})
}

func runRankingsShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		entries, err := app.Rankings.Leaderboard(ctx, showDate, showMetric, showLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "no rankings stored for %s on %s\n", showMetric, showDate)
		}
		return printRankings(cmd.OutOrStdout(), outputFormat, entries)
	})
}
