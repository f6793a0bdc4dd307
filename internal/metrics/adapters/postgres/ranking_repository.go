package postgres

import (
	"context"
	"time"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/ports"

	"github.com/lib/pq"
)

type RankingRepository struct {
	db DB
}

func NewRankingRepository(db DB) *RankingRepository {
	return &RankingRepository{db: db}
}

var _ ports.RankingStorePort = (*RankingRepository)(nil)

// One statement: concurrent recomputations of the same (date, metric)
// serialize on the unique key and the last writer wins.
const upsertRankingsSQL = `
WITH incoming AS (
    SELECT *
    FROM unnest($3::bigint[], $4::int[], $5::float8[]) AS x(chatter_id, rank, value)
), purged AS (
    DELETE FROM rankings_daily r
    WHERE r.shift_date = $1
      AND r.metric = $2
      AND NOT EXISTS (SELECT 1 FROM incoming i WHERE i.chatter_id = r.chatter_id)
)
INSERT INTO rankings_daily (shift_date, metric, chatter_id, rank, value, computed_at)
SELECT $1, $2, chatter_id, rank, value, NOW()
FROM incoming
ON CONFLICT (shift_date, metric, chatter_id) DO UPDATE
SET rank = EXCLUDED.rank,
    value = EXCLUDED.value,
    computed_at = EXCLUDED.computed_at;
`

const listRankingsSQL = `
SELECT
    r.chatter_id,
    c.name,
    r.rank,
    r.value::float8
FROM rankings_daily r
JOIN chatters c ON c.id = r.chatter_id
WHERE r.shift_date = $1 AND r.metric = $2
ORDER BY r.rank, r.chatter_id
LIMIT $3`

func (r *RankingRepository) UpsertRankings(ctx context.Context, date time.Time, metric domain.MetricKind, entries []domain.RankingEntry) error {
	ids := make([]int64, len(entries))
	ranks := make([]int64, len(entries))
	values := make([]float64, len(entries))
	for i, e := range entries {
		ids[i] = e.ChatterID
		ranks[i] = int64(e.Rank)
		values[i] = e.Value
	}

	_, err := r.db.Exec(ctx, upsertRankingsSQL,
		domain.Day(date),
		string(metric),
		pq.Array(ids),
		pq.Array(ranks),
		pq.Array(values),
	)
	return err
}

func (r *RankingRepository) ListRankings(ctx context.Context, date time.Time, metric domain.MetricKind, limit int) ([]domain.RankingEntry, error) {
	day := domain.Day(date)
	rows, err := r.db.QueryContext(ctx, listRankingsSQL, day, string(metric), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RankingEntry
	for rows.Next() {
		var (
			e    domain.RankingEntry
			rank int64
		)
		if err := rows.Scan(&e.ChatterID, &e.ChatterName, &rank, &e.Value); err != nil {
			return nil, err
		}
		e.Rank = int(rank)
		e.Scope = domain.SingleDay(day)
		e.Metric = metric
		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
