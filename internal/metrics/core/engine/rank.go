package engine

import (
	"cmp"
	"fmt"
	"slices"

	"chatter-metrics-service/internal/metrics/core/domain"
)

// Rank orders chatter-keyed rows by metric, highest first, using standard
// competition ranking: tied values share a rank and the next distinct value
// resumes at previous rank + tie size (1,1,3).
//
// Values are normalised with domain.RoundValue before comparison so that a
// recomputation yields exactly the values that were persisted. Rows with a
// nil value get no entry. Within a tie, entries are ordered by chatter id.
func Rank(rows []domain.AggregatedRow, metric domain.MetricKind, scope domain.DateRange) ([]domain.RankingEntry, error) {
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMetric, string(metric))
	}

	entries := make([]domain.RankingEntry, 0, len(rows))
	for _, row := range rows {
		if len(row.Key) != 1 || row.Key[0].Kind != domain.DimensionChatter {
			return nil, domain.ErrRankingInput
		}
		v := row.Value(metric)
		if v == nil {
			continue
		}
		entries = append(entries, domain.RankingEntry{
			Scope:       scope,
			Metric:      metric,
			ChatterID:   row.Key[0].ID,
			ChatterName: row.Key[0].Name,
			Value:       domain.RoundValue(*v),
		})
	}

	slices.SortFunc(entries, func(a, b domain.RankingEntry) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.ChatterID, b.ChatterID)
	})

	for i := range entries {
		if i > 0 && entries[i].Value == entries[i-1].Value {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Top keeps the first limit entries; limit <= 0 keeps everything.
func Top(entries []domain.RankingEntry, limit int) []domain.RankingEntry {
	if limit <= 0 || limit >= len(entries) {
		return entries
	}
	return entries[:limit]
}
