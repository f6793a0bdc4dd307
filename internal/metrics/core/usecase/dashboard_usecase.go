package usecase

import (
	"context"
	"slices"
	"strings"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/engine"
	"chatter-metrics-service/internal/metrics/core/ports"
)

var dashboardMetrics = []domain.MetricKind{
	domain.MetricTotalSales,
	domain.MetricWorkedHours,
	domain.MetricSPH,
	domain.MetricGoldenRatio,
	domain.MetricUnlockRatio,
	domain.MetricAvgResolutionTime,
}

type DashboardInput struct {
	Start    string
	End      string
	Preset   string
	TeamName string

	// nil: the thresholds the use case was built with.
	Thresholds *domain.Thresholds
}

type DashboardSummary struct {
	Range      domain.DateRange
	Thresholds domain.Thresholds
	TotalSales float64
	Counts     map[domain.Classification]int
	Chatters   []domain.ChatterSnapshot
}

type DashboardUseCase struct {
	reader     ports.PerformanceReaderPort
	thresholds domain.Thresholds
	now        Clock
}

func NewDashboardUseCase(reader ports.PerformanceReaderPort, thresholds domain.Thresholds) *DashboardUseCase {
	return &DashboardUseCase{reader: reader, thresholds: thresholds, now: systemClock}
}

func (uc *DashboardUseCase) WithClock(c Clock) *DashboardUseCase {
	uc.now = c
	return uc
}

// Execute builds one snapshot per chatter with data in the range, ranked by
// total sales and classified by SPH.
func (uc *DashboardUseCase) Execute(ctx context.Context, in DashboardInput) (*DashboardSummary, error) {
	th := uc.thresholds
	if in.Thresholds != nil {
		th = *in.Thresholds
	}
	if err := th.Validate(); err != nil {
		return nil, err
	}

	rng, err := domain.ResolveRange(in.Start, in.End, in.Preset, uc.now())
	if err != nil {
		return nil, err
	}

	records, err := uc.reader.ListRecords(ctx, ports.RecordFilter{Range: rng, TeamName: strings.TrimSpace(in.TeamName)})
	if err != nil {
		return nil, err
	}

	rows, err := engine.Aggregate(records, dashboardMetrics, chatterDimension, rng)
	if err != nil {
		return nil, err
	}
	ranks, err := engine.Rank(rows, domain.MetricTotalSales, rng)
	if err != nil {
		return nil, err
	}

	rankOf := make(map[int64]int, len(ranks))
	for _, e := range ranks {
		rankOf[e.ChatterID] = e.Rank
	}
	teamOf := latestTeams(records)

	out := &DashboardSummary{
		Range:      rng,
		Thresholds: th,
		Counts:     make(map[domain.Classification]int, 4),
		Chatters:   make([]domain.ChatterSnapshot, 0, len(rows)),
	}

	for _, r := range rows {
		c := r.Key[0]
		snap := domain.ChatterSnapshot{
			ChatterID:      c.ID,
			ChatterName:    c.Name,
			Team:           teamOf[c.ID],
			Start:          rng.Start,
			End:            rng.End,
			TotalSales:     r.Value(domain.MetricTotalSales),
			WorkedHours:    r.Value(domain.MetricWorkedHours),
			SPH:            r.Value(domain.MetricSPH),
			GoldenRatio:    r.Value(domain.MetricGoldenRatio),
			UnlockRatio:    r.Value(domain.MetricUnlockRatio),
			ResolutionSecs: r.Value(domain.MetricAvgResolutionTime),
			Rank:           rankOf[c.ID],
		}
		snap.Class = domain.Classify(snap.SPH, th)
		out.Counts[snap.Class]++
		if snap.TotalSales != nil {
			out.TotalSales += *snap.TotalSales
		}
		out.Chatters = append(out.Chatters, snap)
	}

	slices.SortStableFunc(out.Chatters, func(a, b domain.ChatterSnapshot) int {
		switch {
		case a.Rank == 0 && b.Rank != 0:
			return 1
		case a.Rank != 0 && b.Rank == 0:
			return -1
		case a.Rank != b.Rank:
			return a.Rank - b.Rank
		}
		return strings.Compare(a.ChatterName, b.ChatterName)
	})

	return out, nil
}

// latestTeams maps each chatter to the team on their most recent record.
func latestTeams(records []domain.PerformanceRecord) map[int64]*string {
	out := make(map[int64]*string)
	seen := make(map[int64]domain.PerformanceRecord)
	for _, r := range records {
		prev, ok := seen[r.ChatterID]
		if ok && prev.Date.After(r.Date) {
			continue
		}
		seen[r.ChatterID] = r
		out[r.ChatterID] = r.TeamName
	}
	return out
}
