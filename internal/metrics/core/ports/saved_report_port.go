package ports

import (
	"context"
	"errors"

	"chatter-metrics-service/internal/metrics/core/domain"

	"github.com/google/uuid"
)

// ErrSavedReportNotFound is returned by stores when no row matches an id.
var ErrSavedReportNotFound = errors.New("saved report not found")

type SavedReportPort interface {
	CreateSavedReport(ctx context.Context, r domain.SavedReport) error
	// ListSavedReports returns public reports and those owned by viewerID, newest first.
	ListSavedReports(ctx context.Context, viewerID string) ([]domain.SavedReport, error)
	GetSavedReport(ctx context.Context, id uuid.UUID) (domain.SavedReport, error)
	DeleteSavedReport(ctx context.Context, id uuid.UUID) error
}
