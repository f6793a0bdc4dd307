package usecase

import (
	"context"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/engine"
	"chatter-metrics-service/internal/metrics/core/ports"
)

type SummarizeKPIsInput struct {
	Metrics []string // empty: domain.DefaultKPIMetrics

	Start  string
	End    string
	Preset string

	// Optional; defaults to the equal-length period right before the current one.
	PreviousStart string
	PreviousEnd   string

	TeamName string
}

type SummarizeKPIsUseCase struct {
	reader ports.PerformanceReaderPort
	now    Clock
}

func NewSummarizeKPIsUseCase(reader ports.PerformanceReaderPort) *SummarizeKPIsUseCase {
	return &SummarizeKPIsUseCase{reader: reader, now: systemClock}
}

func (uc *SummarizeKPIsUseCase) WithClock(c Clock) *SummarizeKPIsUseCase {
	uc.now = c
	return uc
}

func (uc *SummarizeKPIsUseCase) Execute(ctx context.Context, in SummarizeKPIsInput) (*domain.KPISummary, error) {
	metrics := domain.DefaultKPIMetrics
	if len(in.Metrics) > 0 {
		var err error
		if metrics, err = domain.ParseMetricKinds(in.Metrics); err != nil {
			return nil, err
		}
	}

	today := uc.now()
	current, err := domain.ResolveRange(in.Start, in.End, in.Preset, today)
	if err != nil {
		return nil, err
	}

	previous := current.Previous()
	if in.PreviousStart != "" || in.PreviousEnd != "" {
		if previous, err = domain.ResolveRange(in.PreviousStart, in.PreviousEnd, "", today); err != nil {
			return nil, err
		}
	}

	return uc.Summarize(ctx, metrics, current, previous, in.TeamName)
}

// Summarize computes totals over both periods and the delta per metric.
func (uc *SummarizeKPIsUseCase) Summarize(
	ctx context.Context,
	metrics []domain.MetricKind,
	current, previous domain.DateRange,
	teamName string,
) (*domain.KPISummary, error) {
	if err := domain.ValidateMetrics(metrics); err != nil {
		return nil, err
	}

	span := current
	if previous.Start.Before(span.Start) {
		span.Start = previous.Start
	}
	if previous.End.After(span.End) {
		span.End = previous.End
	}

	records, err := uc.reader.ListRecords(ctx, ports.RecordFilter{Range: span, TeamName: teamName})
	if err != nil {
		return nil, err
	}

	cur, err := engine.Totals(records, metrics, current)
	if err != nil {
		return nil, err
	}
	prev, err := engine.Totals(records, metrics, previous)
	if err != nil {
		return nil, err
	}

	out := &domain.KPISummary{
		Metrics:      metrics,
		Current:      current,
		Previous:     previous,
		CurrentVals:  make(map[domain.MetricKind]*float64, len(metrics)),
		PreviousVals: make(map[domain.MetricKind]*float64, len(metrics)),
		DeltaPercent: make(map[domain.MetricKind]float64, len(metrics)),
	}
	for i, m := range metrics {
		out.CurrentVals[m] = cur[i]
		out.PreviousVals[m] = prev[i]
		out.DeltaPercent[m] = domain.DeltaPercent(cur[i], prev[i])
	}
	return out, nil
}
