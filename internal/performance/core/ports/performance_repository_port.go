package ports

import (
	"context"

	"chatter-metrics-service/internal/performance/core/domain"
)

type PerformanceRepositoryPort interface {
	// UpsertPerformance writes p by (chatter, date) and reports whether a new row was created.
	UpsertPerformance(ctx context.Context, p *domain.DailyPerformance) (bool, error)
}
