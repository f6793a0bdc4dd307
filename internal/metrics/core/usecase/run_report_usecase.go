package usecase

import (
	"context"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/engine"
	"chatter-metrics-service/internal/metrics/core/ports"
)

type RunReportResult struct {
	Spec domain.ReportSpec
	Rows []domain.ReportRow
}

type RunReportUseCase struct {
	reader ports.PerformanceReaderPort
	now    Clock
}

func NewRunReportUseCase(reader ports.PerformanceReaderPort) *RunReportUseCase {
	return &RunReportUseCase{reader: reader, now: systemClock}
}

func (uc *RunReportUseCase) WithClock(c Clock) *RunReportUseCase {
	uc.now = c
	return uc
}

// Execute validates cfg, loads the records of its range and returns the
// aggregated rows sorted by grouping key.
func (uc *RunReportUseCase) Execute(ctx context.Context, cfg domain.ReportConfig) (*RunReportResult, error) {
	spec, err := cfg.Resolve(uc.now())
	if err != nil {
		return nil, err
	}

	filter := ports.RecordFilter{Range: spec.Range, TeamName: spec.Filters.Team}
	if spec.Filters.ChatterID > 0 {
		filter.ChatterIDs = []int64{spec.Filters.ChatterID}
	}

	records, err := uc.reader.ListRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	agg, err := engine.Aggregate(records, spec.Metrics, spec.Dimensions, spec.Range)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ReportRow, 0, len(agg))
	for _, r := range agg {
		rows = append(rows, domain.NewReportRow(r))
	}
	domain.SortReportRows(rows)

	return &RunReportResult{Spec: spec, Rows: rows}, nil
}
