package ports

import (
	"context"
	"time"

	"chatter-metrics-service/internal/metrics/core/domain"
)

type RankingStorePort interface {
	// UpsertRankings replaces the leaderboard of (date, metric) with entries
	// atomically: rows are upserted by (date, metric, chatter) and chatters
	// missing from entries are removed.
	UpsertRankings(ctx context.Context, date time.Time, metric domain.MetricKind, entries []domain.RankingEntry) error
	ListRankings(ctx context.Context, date time.Time, metric domain.MetricKind, limit int) ([]domain.RankingEntry, error)
}
