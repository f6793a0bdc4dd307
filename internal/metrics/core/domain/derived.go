package domain

// DerivedMetricSet holds the ratios computed from a single record.
// A nil field means the ratio is undefined for that record (missing or zero
// denominator); it is never coerced to zero.
type DerivedMetricSet struct {
	SPH            *float64
	GoldenRatio    *float64
	ConversionRate *float64
	UnlockRatio    *float64
}

// ComputeDerived derives every ratio of r. It reads nothing but r.
func ComputeDerived(r PerformanceRecord) DerivedMetricSet {
	return DerivedMetricSet{
		SPH:            SPH(r),
		GoldenRatio:    GoldenRatio(r),
		ConversionRate: ConversionRate(r),
		UnlockRatio:    UnlockRatio(r),
	}
}

// SPH is sales per worked hour.
func SPH(r PerformanceRecord) *float64 {
	if r.SPHOverride != nil {
		return ptr(*r.SPHOverride)
	}
	return safeDiv(r.SalesAmount, r.WorkedHours)
}

// ConversionRate is sold / opportunities.
func ConversionRate(r PerformanceRecord) *float64 {
	if r.ConversionRateOverride != nil {
		return ptr(*r.ConversionRateOverride)
	}
	if r.OpportunityCount == nil {
		return nil
	}
	return safeDiv(countOrZero(r.SoldCount), countPtr(r.OpportunityCount))
}

// UnlockRatio is unlocks / sold.
func UnlockRatio(r PerformanceRecord) *float64 {
	if r.UnlockRatioOverride != nil {
		return ptr(*r.UnlockRatioOverride)
	}
	return safeDiv(countOrZero(r.UnlockCount), countPtr(r.SoldCount))
}

// GoldenRatio is retained customers / sold.
func GoldenRatio(r PerformanceRecord) *float64 {
	if r.GoldenRatioOverride != nil {
		return ptr(*r.GoldenRatioOverride)
	}
	return safeDiv(countOrZero(r.RetentionCount), countPtr(r.SoldCount))
}

// TotalSales falls back to the sales amount when no total was recorded.
func TotalSales(r PerformanceRecord) *float64 {
	if r.TotalSales != nil {
		return ptr(*r.TotalSales)
	}
	if r.SalesAmount != nil {
		return ptr(*r.SalesAmount)
	}
	return nil
}

// ResolutionSeconds is the average resolution time in seconds.
func ResolutionSeconds(r PerformanceRecord) *float64 {
	if r.AvgResolutionTime == nil {
		return nil
	}
	return ptr(r.AvgResolutionTime.Seconds())
}

func safeDiv(n, d *float64) *float64 {
	if n == nil || d == nil || *d == 0 {
		return nil
	}
	return ptr(*n / *d)
}

func countPtr(v *int64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(float64(*v))
}

func countOrZero(v *int64) *float64 {
	if v == nil {
		return ptr(0)
	}
	return ptr(float64(*v))
}

func ptr(v float64) *float64 { return &v }
