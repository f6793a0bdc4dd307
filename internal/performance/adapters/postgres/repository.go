package postgres

import (
	"context"
	"errors"

	"chatter-metrics-service/internal/performance/core/domain"
	"chatter-metrics-service/internal/performance/core/ports"
)

type PerformanceRepository struct {
	db DB
}

func NewPerformanceRepository(db DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

var _ ports.PerformanceRepositoryPort = (*PerformanceRepository)(nil)

// xmax is 0 only on a freshly inserted tuple.
const upsertPerformanceSQL = `
INSERT INTO performance_daily (
    chatter_id,
    team_id,
    shift_date,
    sales_amount,
    sold_count,
    retention_count,
    unlock_count,
    opportunity_count,
    total_sales,
    worked_hours,
    art_interval,
    sph,
    golden_ratio,
    conversion_rate,
    unlock_ratio
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
    $11::float8 * INTERVAL '1 second',
    $12, $13, $14, $15
)
ON CONFLICT (chatter_id, shift_date) DO UPDATE SET
    team_id           = EXCLUDED.team_id,
    sales_amount      = EXCLUDED.sales_amount,
    sold_count        = EXCLUDED.sold_count,
    retention_count   = EXCLUDED.retention_count,
    unlock_count      = EXCLUDED.unlock_count,
    opportunity_count = EXCLUDED.opportunity_count,
    total_sales       = EXCLUDED.total_sales,
    worked_hours      = EXCLUDED.worked_hours,
    art_interval      = EXCLUDED.art_interval,
    sph               = EXCLUDED.sph,
    golden_ratio      = EXCLUDED.golden_ratio,
    conversion_rate   = EXCLUDED.conversion_rate,
    unlock_ratio      = EXCLUDED.unlock_ratio,
    updated_at        = now()
RETURNING (xmax = 0);
`

func (r *PerformanceRepository) UpsertPerformance(ctx context.Context, p *domain.DailyPerformance) (bool, error) {
	var artSecs any
	if p.AvgResolutionTime != nil {
		artSecs = p.AvgResolutionTime.Seconds()
	}

	rows, err := r.db.QueryContext(ctx, upsertPerformanceSQL,
		p.ChatterID,
		nullable(p.TeamID),
		p.Date,
		nullable(p.SalesAmount),
		nullable(p.SoldCount),
		nullable(p.RetentionCount),
		nullable(p.UnlockCount),
		nullable(p.OpportunityCount),
		nullable(p.TotalSales),
		nullable(p.WorkedHours),
		artSecs,
		nullable(p.SPH),
		nullable(p.GoldenRatio),
		nullable(p.ConversionRate),
		nullable(p.UnlockRatio),
	)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return false, err
		}
		return false, errors.New("upsert returned no row")
	}

	var inserted bool
	if err := rows.Scan(&inserted); err != nil {
		return false, err
	}

	return inserted, rows.Err()
}

func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
