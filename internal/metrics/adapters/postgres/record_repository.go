package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/ports"

	"github.com/lib/pq"
)

type RecordRepository struct {
	db DB
}

func NewRecordRepository(db DB) *RecordRepository {
	return &RecordRepository{db: db}
}

var _ ports.PerformanceReaderPort = (*RecordRepository)(nil)

// worked_hours falls back to the chatter's shifts of the same day.
const listRecordsSQL = `
SELECT
    pd.chatter_id,
    c.name,
    t.id,
    t.name,
    pd.shift_date,
    pd.sales_amount::float8,
    pd.sold_count,
    pd.retention_count,
    pd.unlock_count,
    pd.opportunity_count,
    pd.total_sales::float8,
    COALESCE(pd.worked_hours::float8, sh.hours),
    EXTRACT(EPOCH FROM pd.art_interval)::float8,
    pd.sph::float8,
    pd.golden_ratio::float8,
    pd.conversion_rate::float8,
    pd.unlock_ratio::float8
FROM performance_daily pd
JOIN chatters c ON c.id = pd.chatter_id
LEFT JOIN teams t ON t.id = COALESCE(pd.team_id, c.team_id)
LEFT JOIN LATERAL (
    SELECT SUM(s.actual_hours)::float8 AS hours
    FROM shifts s
    WHERE s.chatter_id = pd.chatter_id AND s.shift_date = pd.shift_date
) sh ON TRUE
WHERE `

func (r *RecordRepository) ListRecords(ctx context.Context, f ports.RecordFilter) ([]domain.PerformanceRecord, error) {
	where := []string{"pd.shift_date BETWEEN $1 AND $2"}
	args := []any{f.Range.Start, f.Range.End}

	if len(f.ChatterIDs) > 0 {
		args = append(args, pq.Array(f.ChatterIDs))
		where = append(where, fmt.Sprintf("pd.chatter_id = ANY($%d)", len(args)))
	}
	if f.TeamName != "" {
		args = append(args, f.TeamName)
		where = append(where, fmt.Sprintf("t.name = $%d", len(args)))
	}

	query := listRecordsSQL + strings.Join(where, " AND ") + "\nORDER BY pd.shift_date, pd.chatter_id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PerformanceRecord
	for rows.Next() {
		var (
			rec                                       domain.PerformanceRecord
			teamID                                    sql.NullInt64
			teamName                                  sql.NullString
			sales, total, hours, art                  sql.NullFloat64
			sph, golden, conversion, unlock           sql.NullFloat64
			sold, retention, unlockCount, opportunity sql.NullInt64
		)
		if err := rows.Scan(
			&rec.ChatterID,
			&rec.ChatterName,
			&teamID,
			&teamName,
			&rec.Date,
			&sales,
			&sold,
			&retention,
			&unlockCount,
			&opportunity,
			&total,
			&hours,
			&art,
			&sph,
			&golden,
			&conversion,
			&unlock,
		); err != nil {
			return nil, err
		}

		rec.Date = domain.Day(rec.Date)
		rec.TeamID = nullInt(teamID)
		if teamName.Valid {
			rec.TeamName = &teamName.String
		}
		rec.SalesAmount = nullFloat(sales)
		rec.SoldCount = nullInt(sold)
		rec.RetentionCount = nullInt(retention)
		rec.UnlockCount = nullInt(unlockCount)
		rec.OpportunityCount = nullInt(opportunity)
		rec.TotalSales = nullFloat(total)
		rec.WorkedHours = nullFloat(hours)
		if art.Valid {
			d := time.Duration(art.Float64 * float64(time.Second))
			rec.AvgResolutionTime = &d
		}
		rec.SPHOverride = nullFloat(sph)
		rec.GoldenRatioOverride = nullFloat(golden)
		rec.ConversionRateOverride = nullFloat(conversion)
		rec.UnlockRatioOverride = nullFloat(unlock)

		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
