package usecase

import (
	"context"
	"fmt"
	"time"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/engine"
	"chatter-metrics-service/internal/metrics/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLeaderboardLimit = 50
	maxLeaderboardLimit     = 500
	defaultRecomputeWorkers = 4
)

var chatterDimension = []domain.DimensionKind{domain.DimensionChatter}

type RankLiveInput struct {
	Metric string
	Start  string
	End    string
	Preset string
	Limit  int
}

type RankLiveResult struct {
	Metric  domain.MetricKind
	Range   domain.DateRange
	Entries []domain.RankingEntry
}

type RecomputeResult struct {
	Date    time.Time
	Entries map[domain.MetricKind]int
}

type RankingsUseCase struct {
	reader ports.PerformanceReaderPort
	store  ports.RankingStorePort
	log    zerolog.Logger
	now    Clock
}

func NewRankingsUseCase(reader ports.PerformanceReaderPort, store ports.RankingStorePort, log zerolog.Logger) *RankingsUseCase {
	return &RankingsUseCase{
		reader: reader,
		store:  store,
		log:    log.With().Str("component", "rankings").Logger(),
		now:    systemClock,
	}
}

func (uc *RankingsUseCase) WithClock(c Clock) *RankingsUseCase {
	uc.now = c
	return uc
}

// RankLive ranks chatters over an arbitrary range without persisting.
func (uc *RankingsUseCase) RankLive(ctx context.Context, in RankLiveInput) (*RankLiveResult, error) {
	metric, err := domain.ParseMetricKind(in.Metric)
	if err != nil {
		return nil, err
	}
	rng, err := domain.ResolveRange(in.Start, in.End, in.Preset, uc.now())
	if err != nil {
		return nil, err
	}

	entries, err := uc.rank(ctx, rng, []domain.MetricKind{metric})
	if err != nil {
		return nil, err
	}
	return &RankLiveResult{
		Metric:  metric,
		Range:   rng,
		Entries: engine.Top(entries[metric], clampLimit(in.Limit)),
	}, nil
}

// RecomputeDaily rebuilds and persists the leaderboards of date for every
// metric in metrics (all contract metrics when empty).
func (uc *RankingsUseCase) RecomputeDaily(ctx context.Context, date time.Time, metrics []domain.MetricKind) (RecomputeResult, error) {
	if len(metrics) == 0 {
		metrics = domain.ContractMetrics
	}
	if err := domain.ValidateMetrics(metrics); err != nil {
		return RecomputeResult{}, err
	}

	scope := domain.SingleDay(date)
	ranked, err := uc.rank(ctx, scope, metrics)
	if err != nil {
		return RecomputeResult{}, err
	}

	res := RecomputeResult{Date: scope.Start, Entries: make(map[domain.MetricKind]int, len(metrics))}
	for _, m := range metrics {
		if err := uc.store.UpsertRankings(ctx, scope.Start, m, ranked[m]); err != nil {
			return res, fmt.Errorf("persist %s rankings for %s: %w", m, scope.Start.Format(domain.DateLayout), err)
		}
		res.Entries[m] = len(ranked[m])
	}

	uc.log.Info().
		Str("date", scope.Start.Format(domain.DateLayout)).
		Strs("metrics", domain.MetricStrings(metrics)).
		Msg("rankings recomputed")

	return res, nil
}

// RecomputeRange runs RecomputeDaily for every date of rng with at most
// workers days in flight. The first failure cancels the remaining days.
func (uc *RankingsUseCase) RecomputeRange(
	ctx context.Context,
	rng domain.DateRange,
	metrics []domain.MetricKind,
	workers int,
) ([]RecomputeResult, error) {
	if workers <= 0 {
		workers = defaultRecomputeWorkers
	}

	var days []time.Time
	rng.EachDay(func(d time.Time) { days = append(days, d) })
	results := make([]RecomputeResult, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, d := range days {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := uc.RecomputeDaily(gctx, d, metrics)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.log.Error().Err(err).Str("range", rng.String()).Msg("rankings recompute failed")
		return nil, err
	}
	return results, nil
}

// PersistRankings writes already computed entries. Every entry must be
// scoped to a single date; entries are grouped by (date, metric).
func (uc *RankingsUseCase) PersistRankings(ctx context.Context, entries []domain.RankingEntry) error {
	type key struct {
		date   time.Time
		metric domain.MetricKind
	}
	var order []key
	groups := make(map[key][]domain.RankingEntry)

	for _, e := range entries {
		if e.Scope.Days() != 1 {
			return fmt.Errorf("%w: %s", domain.ErrRankingScope, e.Scope)
		}
		k := key{date: e.Date(), metric: e.Metric}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}

	for _, k := range order {
		if err := uc.store.UpsertRankings(ctx, k.date, k.metric, groups[k]); err != nil {
			return err
		}
	}
	return nil
}

// Leaderboard reads persisted rankings of one date and metric.
func (uc *RankingsUseCase) Leaderboard(ctx context.Context, date, metric string, limit int) ([]domain.RankingEntry, error) {
	m, err := domain.ParseMetricKind(metric)
	if err != nil {
		return nil, err
	}
	d, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return uc.store.ListRankings(ctx, d, m, clampLimit(limit))
}

func (uc *RankingsUseCase) rank(
	ctx context.Context,
	rng domain.DateRange,
	metrics []domain.MetricKind,
) (map[domain.MetricKind][]domain.RankingEntry, error) {
	records, err := uc.reader.ListRecords(ctx, ports.RecordFilter{Range: rng})
	if err != nil {
		return nil, err
	}

	rows, err := engine.Aggregate(records, metrics, chatterDimension, rng)
	if err != nil {
		return nil, err
	}

	out := make(map[domain.MetricKind][]domain.RankingEntry, len(metrics))
	for _, m := range metrics {
		entries, err := engine.Rank(rows, m, rng)
		if err != nil {
			return nil, err
		}
		out[m] = entries
	}
	return out, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultLeaderboardLimit
	case limit > maxLeaderboardLimit:
		return maxLeaderboardLimit
	}
	return limit
}
