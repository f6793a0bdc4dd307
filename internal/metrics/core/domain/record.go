package domain

import "time"

// PerformanceRecord is one chatter's raw performance for one date, as read
// from storage. Pointer fields are nil when the value was never recorded.
type PerformanceRecord struct {
	ChatterID   int64
	ChatterName string
	TeamID      *int64
	TeamName    *string
	Date        time.Time

	SalesAmount      *float64
	SoldCount        *int64
	RetentionCount   *int64
	UnlockCount      *int64
	OpportunityCount *int64
	TotalSales       *float64
	WorkedHours      *float64

	AvgResolutionTime *time.Duration

	// Stored overrides win over the derived values.
	SPHOverride            *float64
	GoldenRatioOverride    *float64
	ConversionRateOverride *float64
	UnlockRatioOverride    *float64
}
