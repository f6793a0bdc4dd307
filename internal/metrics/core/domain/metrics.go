package domain

import "time"

// AggregatedRow is one group produced by the aggregation engine.
type AggregatedRow struct {
	Key     []DimensionValue
	Metrics []MetricKind // same order as Values
	Values  []*float64   // nil: no contributing value in the group
}

// Value returns the value of m, or nil when m was not requested.
func (r AggregatedRow) Value(m MetricKind) *float64 {
	for i, k := range r.Metrics {
		if k == m {
			return r.Values[i]
		}
	}
	return nil
}

// Dimension returns the key component for d.
func (r AggregatedRow) Dimension(d DimensionKind) (DimensionValue, bool) {
	for _, v := range r.Key {
		if v.Kind == d {
			return v, true
		}
	}
	return DimensionValue{}, false
}

// RankingEntry is one chatter's position on a leaderboard.
type RankingEntry struct {
	Scope       DateRange
	Metric      MetricKind
	ChatterID   int64
	ChatterName string
	Rank        int
	Value       float64
}

// Date is the day a persisted entry is keyed by.
func (e RankingEntry) Date() time.Time {
	return e.Scope.Start
}
