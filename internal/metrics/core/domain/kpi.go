package domain

import "github.com/shopspring/decimal"

// DefaultKPIMetrics are the dashboard headline numbers.
var DefaultKPIMetrics = []MetricKind{
	MetricSalesAmount,
	MetricSoldCount,
	MetricUnlockCount,
	MetricSPH,
}

// KPISummary compares one period with the period before it.
type KPISummary struct {
	Metrics      []MetricKind
	Current      DateRange
	Previous     DateRange
	CurrentVals  map[MetricKind]*float64
	PreviousVals map[MetricKind]*float64
	DeltaPercent map[MetricKind]float64
}

// DeltaPercent is (current-previous)/previous*100 rounded to one decimal.
// A zero or missing previous value, or a missing current one, gives 0.
func DeltaPercent(current, previous *float64) float64 {
	if current == nil || previous == nil || *previous == 0 {
		return 0
	}
	c := decimal.NewFromFloat(*current)
	p := decimal.NewFromFloat(*previous)
	return c.Sub(p).Div(p).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
}

// RoundValue normalises a metric value to the precision rankings are stored with.
func RoundValue(v float64) float64 {
	return decimal.NewFromFloat(v).Round(4).InexactFloat64()
}
