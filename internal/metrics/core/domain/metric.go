package domain

import (
	"fmt"
	"strings"
)

type MetricKind string

const (
	MetricSalesAmount    MetricKind = "sales_amount"
	MetricSoldCount      MetricKind = "sold_count"
	MetricUnlockCount    MetricKind = "unlock_count"
	MetricRetentionCount MetricKind = "retention_count"
	MetricSPH            MetricKind = "sph"
	MetricGoldenRatio    MetricKind = "golden_ratio"
	MetricConversionRate MetricKind = "conversion_rate"

	MetricTotalSales        MetricKind = "total_sales"
	MetricWorkedHours       MetricKind = "worked_hours"
	MetricUnlockRatio       MetricKind = "unlock_ratio"
	MetricAvgResolutionTime MetricKind = "average_resolution_time"
)

// ContractMetrics are the report/ranking tokens exposed to clients.
var ContractMetrics = []MetricKind{
	MetricSalesAmount,
	MetricSoldCount,
	MetricUnlockCount,
	MetricRetentionCount,
	MetricSPH,
	MetricGoldenRatio,
	MetricConversionRate,
}

// Combine says how values of one metric merge inside a group.
type Combine int

const (
	// CombineSum adds the non-null values.
	CombineSum Combine = iota
	// CombineMean averages the non-null values.
	CombineMean
	// CombineDurationMean averages durations expressed in seconds.
	CombineDurationMean
)

type metricPolicy struct {
	combine Combine
	value   func(r PerformanceRecord) *float64
}

// metricPolicies is the single table mapping each metric to its
// derivation and combination rule.
var metricPolicies = map[MetricKind]metricPolicy{
	MetricSalesAmount:    {CombineSum, func(r PerformanceRecord) *float64 { return floatField(r.SalesAmount) }},
	MetricSoldCount:      {CombineSum, func(r PerformanceRecord) *float64 { return countPtr(r.SoldCount) }},
	MetricUnlockCount:    {CombineSum, func(r PerformanceRecord) *float64 { return countPtr(r.UnlockCount) }},
	MetricRetentionCount: {CombineSum, func(r PerformanceRecord) *float64 { return countPtr(r.RetentionCount) }},
	MetricTotalSales:     {CombineSum, TotalSales},
	MetricWorkedHours:    {CombineSum, func(r PerformanceRecord) *float64 { return floatField(r.WorkedHours) }},

	MetricSPH:            {CombineMean, SPH},
	MetricGoldenRatio:    {CombineMean, GoldenRatio},
	MetricConversionRate: {CombineMean, ConversionRate},
	MetricUnlockRatio:    {CombineMean, UnlockRatio},

	MetricAvgResolutionTime: {CombineDurationMean, ResolutionSeconds},
}

func (m MetricKind) Valid() bool {
	_, ok := metricPolicies[m]
	return ok
}

// Combine returns the combination rule of m. Unknown metrics sum.
func (m MetricKind) Combine() Combine {
	return metricPolicies[m].combine
}

// Value extracts (or derives) m from a single record.
func (m MetricKind) Value(r PerformanceRecord) *float64 {
	p, ok := metricPolicies[m]
	if !ok {
		return nil
	}
	return p.value(r)
}

func ParseMetricKind(s string) (MetricKind, error) {
	m := MetricKind(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
	return m, nil
}

// ParseMetricKinds parses a non-empty list of distinct metric tokens.
func ParseMetricKinds(tokens []string) ([]MetricKind, error) {
	if len(tokens) == 0 {
		return nil, ErrNoMetrics
	}
	out := make([]MetricKind, 0, len(tokens))
	seen := make(map[MetricKind]bool, len(tokens))
	for _, t := range tokens {
		m, err := ParseMetricKind(t)
		if err != nil {
			return nil, err
		}
		if seen[m] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMetric, t)
		}
		seen[m] = true
		out = append(out, m)
	}
	return out, nil
}

// ValidateMetrics checks an already typed metric list.
func ValidateMetrics(metrics []MetricKind) error {
	if len(metrics) == 0 {
		return ErrNoMetrics
	}
	seen := make(map[MetricKind]bool, len(metrics))
	for _, m := range metrics {
		if !m.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownMetric, string(m))
		}
		if seen[m] {
			return fmt.Errorf("%w: %q", ErrDuplicateMetric, string(m))
		}
		seen[m] = true
	}
	return nil
}

func MetricStrings(metrics []MetricKind) []string {
	out := make([]string, len(metrics))
	for i, m := range metrics {
		out[i] = string(m)
	}
	return out
}

func floatField(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(*v)
}
