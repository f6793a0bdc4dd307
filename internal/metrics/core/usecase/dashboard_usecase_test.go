package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/usecase"
)

var defaultThresholds = domain.Thresholds{ExcellentMin: 100, ReviewMax: 40}

func TestDashboard_Execute(t *testing.T) {
	art := 3*time.Minute + 42*time.Second
	records := []domain.PerformanceRecord{
		{ChatterID: 1, ChatterName: "amy", TeamName: s("A"), Date: day(2025, 11, 29), SalesAmount: f(300), WorkedHours: f(2), AvgResolutionTime: &art},
		{ChatterID: 1, ChatterName: "amy", TeamName: s("B"), Date: day(2025, 11, 30), SalesAmount: f(100), WorkedHours: f(2)},
		{ChatterID: 2, ChatterName: "bea", Date: day(2025, 11, 30), SalesAmount: f(60), WorkedHours: f(1)},
		{ChatterID: 3, ChatterName: "cal", Date: day(2025, 11, 30), SalesAmount: f(30), WorkedHours: f(1)},
		{ChatterID: 4, ChatterName: "dee", Date: day(2025, 11, 30)},
	}
	uc := usecase.NewDashboardUseCase(&fakeReader{records: records}, defaultThresholds).
		WithClock(fixedClock(day(2025, 11, 30)))

	res, err := uc.Execute(context.Background(), usecase.DashboardInput{Preset: "last_7_days"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Chatters) != 4 {
		t.Fatalf("expected 4 chatters, got %d", len(res.Chatters))
	}
	if res.TotalSales != 490 {
		t.Fatalf("expected total 490, got %v", res.TotalSales)
	}

	amy := res.Chatters[0]
	if amy.ChatterID != 1 || amy.Rank != 1 {
		t.Fatalf("expected amy ranked first, got %+v", amy)
	}
	if *amy.SPH != 100 || amy.Class != domain.ClassExcellent {
		t.Fatalf("expected amy sph 100 excellent, got %v %s", *amy.SPH, amy.Class)
	}
	if amy.Team == nil || *amy.Team != "B" {
		t.Fatalf("expected latest team B, got %v", amy.Team)
	}
	if *amy.ResolutionSecs != 222 {
		t.Fatalf("expected 222s resolution, got %v", *amy.ResolutionSecs)
	}

	if res.Chatters[1].Class != domain.ClassStandard || res.Chatters[2].Class != domain.ClassNeedsReview {
		t.Fatalf("unexpected classes %s %s", res.Chatters[1].Class, res.Chatters[2].Class)
	}
	dee := res.Chatters[3]
	if dee.Rank != 0 || dee.Class != domain.ClassUnrated {
		t.Fatalf("expected dee unranked and unrated, got %+v", dee)
	}
	if res.Counts[domain.ClassUnrated] != 1 || res.Counts[domain.ClassExcellent] != 1 {
		t.Fatalf("unexpected counts %v", res.Counts)
	}
}

func TestDashboard_ExplicitThresholds(t *testing.T) {
	records := []domain.PerformanceRecord{
		{ChatterID: 1, ChatterName: "amy", Date: day(2025, 11, 30), SalesAmount: f(60), WorkedHours: f(1)},
	}
	uc := usecase.NewDashboardUseCase(&fakeReader{records: records}, defaultThresholds)

	res, err := uc.Execute(context.Background(), usecase.DashboardInput{
		Start: "2025-11-30", End: "2025-11-30",
		Thresholds: &domain.Thresholds{ExcellentMin: 50, ReviewMax: 10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Chatters[0].Class != domain.ClassExcellent {
		t.Fatalf("expected excellent with lowered cutoff, got %s", res.Chatters[0].Class)
	}

	_, err = uc.Execute(context.Background(), usecase.DashboardInput{
		Start: "2025-11-30", End: "2025-11-30",
		Thresholds: &domain.Thresholds{ExcellentMin: 10, ReviewMax: 50},
	})
	if !errors.Is(err, domain.ErrInvalidThresholds) {
		t.Fatalf("expected ErrInvalidThresholds, got %v", err)
	}
}
