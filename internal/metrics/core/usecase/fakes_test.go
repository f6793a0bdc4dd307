package usecase_test

import (
	"context"
	"sync"
	"time"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/ports"

	"github.com/google/uuid"
)

func f(v float64) *float64 { return &v }
func n(v int64) *int64     { return &v }
func s(v string) *string   { return &v }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// fakeReader implements ports.PerformanceReaderPort.
type fakeReader struct {
	ListFn     func(ctx context.Context, flt ports.RecordFilter) ([]domain.PerformanceRecord, error)
	records    []domain.PerformanceRecord
	mu         sync.Mutex
	lastFilter ports.RecordFilter
	calls      int
}

func (f *fakeReader) ListRecords(ctx context.Context, flt ports.RecordFilter) ([]domain.PerformanceRecord, error) {
	f.mu.Lock()
	f.calls++
	f.lastFilter = flt
	f.mu.Unlock()
	if f.ListFn != nil {
		return f.ListFn(ctx, flt)
	}
	var out []domain.PerformanceRecord
	for _, r := range f.records {
		if flt.Range.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}

type upsertCall struct {
	date    time.Time
	metric  domain.MetricKind
	entries []domain.RankingEntry
}

// fakeRankingStore implements ports.RankingStorePort.
type fakeRankingStore struct {
	UpsertFn func(ctx context.Context, date time.Time, metric domain.MetricKind, entries []domain.RankingEntry) error
	ListFn   func(ctx context.Context, date time.Time, metric domain.MetricKind, limit int) ([]domain.RankingEntry, error)

	mu      sync.Mutex
	upserts []upsertCall
}

func (f *fakeRankingStore) UpsertRankings(ctx context.Context, date time.Time, metric domain.MetricKind, entries []domain.RankingEntry) error {
	f.mu.Lock()
	f.upserts = append(f.upserts, upsertCall{date: date, metric: metric, entries: entries})
	f.mu.Unlock()
	if f.UpsertFn != nil {
		return f.UpsertFn(ctx, date, metric, entries)
	}
	return nil
}

func (f *fakeRankingStore) ListRankings(ctx context.Context, date time.Time, metric domain.MetricKind, limit int) ([]domain.RankingEntry, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, date, metric, limit)
	}
	return nil, nil
}

// fakeSavedStore implements ports.SavedReportPort in memory.
type fakeSavedStore struct {
	reports map[uuid.UUID]domain.SavedReport
	deleted []uuid.UUID
	err     error
}

func newFakeSavedStore() *fakeSavedStore {
	return &fakeSavedStore{reports: map[uuid.UUID]domain.SavedReport{}}
}

func (f *fakeSavedStore) CreateSavedReport(ctx context.Context, r domain.SavedReport) error {
	if f.err != nil {
		return f.err
	}
	f.reports[r.ID] = r
	return nil
}

func (f *fakeSavedStore) ListSavedReports(ctx context.Context, viewerID string) ([]domain.SavedReport, error) {
	var out []domain.SavedReport
	for _, r := range f.reports {
		if r.VisibleTo(viewerID) {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeSavedStore) GetSavedReport(ctx context.Context, id uuid.UUID) (domain.SavedReport, error) {
	r, ok := f.reports[id]
	if !ok {
		return domain.SavedReport{}, ports.ErrSavedReportNotFound
	}
	return r, nil
}

func (f *fakeSavedStore) DeleteSavedReport(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	delete(f.reports, id)
	return nil
}

// novemberRecords: team A sold 100 and 50, team B sold 30.
func novemberRecords() []domain.PerformanceRecord {
	return []domain.PerformanceRecord{
		{ChatterID: 1, ChatterName: "amy", TeamName: s("A"), Date: day(2025, 11, 5), SalesAmount: f(100), WorkedHours: f(4)},
		{ChatterID: 2, ChatterName: "bea", TeamName: s("A"), Date: day(2025, 11, 10), SalesAmount: f(50), WorkedHours: f(1)},
		{ChatterID: 3, ChatterName: "cal", TeamName: s("B"), Date: day(2025, 11, 15), SalesAmount: f(30), WorkedHours: f(0)},
	}
}
