package ports

import (
	"context"

	"chatter-metrics-service/internal/metrics/core/domain"
)

// RecordFilter narrows the records loaded for a computation.
type RecordFilter struct {
	Range      domain.DateRange
	ChatterIDs []int64 // empty: every chatter
	TeamName   string  // empty: every team
}

type PerformanceReaderPort interface {
	ListRecords(ctx context.Context, f RecordFilter) ([]domain.PerformanceRecord, error)
}
