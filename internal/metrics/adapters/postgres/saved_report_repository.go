package postgres

import (
	"context"
	"encoding/json"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/ports"

	"github.com/google/uuid"
)

type SavedReportRepository struct {
	db DB
}

func NewSavedReportRepository(db DB) *SavedReportRepository {
	return &SavedReportRepository{db: db}
}

var _ ports.SavedReportPort = (*SavedReportRepository)(nil)

const insertSavedReportSQL = `
INSERT INTO saved_reports (
    id,
    owner_id,
    name,
    description,
    config_json,
    is_public,
    created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7
);
`

const selectSavedReportSQL = `
SELECT id::text, owner_id, name, description, config_json, is_public, created_at
FROM saved_reports
`

func (r *SavedReportRepository) CreateSavedReport(ctx context.Context, s domain.SavedReport) error {
	cfg, err := json.Marshal(s.Config)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, insertSavedReportSQL,
		s.ID.String(),
		s.OwnerID,
		s.Name,
		s.Description,
		cfg,
		s.Public,
		s.CreatedAt,
	)
	return err
}

func (r *SavedReportRepository) ListSavedReports(ctx context.Context, viewerID string) ([]domain.SavedReport, error) {
	return r.query(ctx, selectSavedReportSQL+"WHERE is_public OR owner_id = $1\nORDER BY created_at DESC, id", viewerID)
}

func (r *SavedReportRepository) GetSavedReport(ctx context.Context, id uuid.UUID) (domain.SavedReport, error) {
	out, err := r.query(ctx, selectSavedReportSQL+"WHERE id = $1", id.String())
	if err != nil {
		return domain.SavedReport{}, err
	}
	if len(out) == 0 {
		return domain.SavedReport{}, ports.ErrSavedReportNotFound
	}
	return out[0], nil
}

func (r *SavedReportRepository) DeleteSavedReport(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, "DELETE FROM saved_reports WHERE id = $1", id.String())
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrSavedReportNotFound
	}
	return nil
}

func (r *SavedReportRepository) query(ctx context.Context, query string, args ...any) ([]domain.SavedReport, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SavedReport
	for rows.Next() {
		var (
			s   domain.SavedReport
			id  string
			cfg []byte
		)
		if err := rows.Scan(&id, &s.OwnerID, &s.Name, &s.Description, &cfg, &s.Public, &s.CreatedAt); err != nil {
			return nil, err
		}
		if s.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(cfg, &s.Config); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
