// Package engine holds the pure computations behind reports and rankings.
// Nothing here performs I/O; callers load records and persist results.
package engine

import (
	"chatter-metrics-service/internal/metrics/core/domain"
)

// accumulator folds the non-null values of one metric inside one group.
type accumulator struct {
	sum float64
	n   int
}

func (a *accumulator) add(v *float64) {
	if v == nil {
		return
	}
	a.sum += *v
	a.n++
}

func (a accumulator) result(c domain.Combine) *float64 {
	if a.n == 0 {
		return nil
	}
	v := a.sum
	switch c {
	case domain.CombineMean, domain.CombineDurationMean:
		v = a.sum / float64(a.n)
	}
	return &v
}

type group struct {
	key  []domain.DimensionValue
	accs []accumulator
}

// Aggregate groups records by the projected dimensions and combines every
// requested metric with its own rule. Records outside rng are ignored.
//
// Rows come back in first-occurrence order of their key. A metric with no
// contributing value in a group is nil.
func Aggregate(
	records []domain.PerformanceRecord,
	metrics []domain.MetricKind,
	dims []domain.DimensionKind,
	rng domain.DateRange,
) ([]domain.AggregatedRow, error) {
	if err := domain.ValidateMetrics(metrics); err != nil {
		return nil, err
	}
	if err := domain.ValidateDimensions(dims); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var groups []*group

	for _, r := range records {
		if !rng.Contains(r.Date) {
			continue
		}

		key := make([]domain.DimensionValue, len(dims))
		for i, d := range dims {
			key[i] = domain.Project(d, r)
		}
		k := domain.GroupKey(key)

		gi, ok := index[k]
		if !ok {
			gi = len(groups)
			index[k] = gi
			groups = append(groups, &group{key: key, accs: make([]accumulator, len(metrics))})
		}

		g := groups[gi]
		for i, m := range metrics {
			g.accs[i].add(m.Value(r))
		}
	}

	rows := make([]domain.AggregatedRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, domain.AggregatedRow{
			Key:     g.key,
			Metrics: metrics,
			Values:  finish(g.accs, metrics),
		})
	}
	return rows, nil
}

// Totals combines every record in rng into a single set of values, one per
// metric, in the requested order.
func Totals(
	records []domain.PerformanceRecord,
	metrics []domain.MetricKind,
	rng domain.DateRange,
) ([]*float64, error) {
	if err := domain.ValidateMetrics(metrics); err != nil {
		return nil, err
	}

	accs := make([]accumulator, len(metrics))
	for _, r := range records {
		if !rng.Contains(r.Date) {
			continue
		}
		for i, m := range metrics {
			accs[i].add(m.Value(r))
		}
	}
	return finish(accs, metrics), nil
}

func finish(accs []accumulator, metrics []domain.MetricKind) []*float64 {
	out := make([]*float64, len(metrics))
	for i, m := range metrics {
		out[i] = accs[i].result(m.Combine())
	}
	return out
}
