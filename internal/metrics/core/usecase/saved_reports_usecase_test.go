package usecase_test

import (
	"context"
	"errors"
	"testing"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/usecase"

	"github.com/google/uuid"
)

func teamReport() domain.ReportConfig {
	return domain.ReportConfig{
		Metrics:    []string{"sales_amount"},
		Dimensions: []string{"team"},
		Start:      "2025-11-01",
		End:        "2025-11-30",
	}
}

func newSavedReports(store *fakeSavedStore) *usecase.SavedReportsUseCase {
	runner := usecase.NewRunReportUseCase(&fakeReader{records: novemberRecords()})
	return usecase.NewSavedReportsUseCase(store, runner).WithClock(fixedClock(day(2025, 12, 1)))
}

// ------------------------------------------------------------
// CREATE
// ------------------------------------------------------------

func TestSavedReports_Create(t *testing.T) {
	store := newFakeSavedStore()
	uc := newSavedReports(store)

	r, err := uc.Create(context.Background(), usecase.CreateSavedReportInput{
		OwnerID: "u1", Name: "  Team sales ", Config: teamReport(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID == uuid.Nil || r.Name != "Team sales" || r.OwnerID != "u1" {
		t.Fatalf("unexpected report: %+v", r)
	}
	if !r.CreatedAt.Equal(day(2025, 12, 1)) {
		t.Fatalf("expected created_at from clock, got %v", r.CreatedAt)
	}
	if _, ok := store.reports[r.ID]; !ok {
		t.Fatalf("expected report to be stored")
	}
}

func TestSavedReports_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   usecase.CreateSavedReportInput
		want error
	}{
		{"no owner", usecase.CreateSavedReportInput{Name: "x", Config: teamReport()}, usecase.ErrMissingOwner},
		{"no name", usecase.CreateSavedReportInput{OwnerID: "u1", Config: teamReport()}, usecase.ErrInvalidSavedReport},
		{"bad config", usecase.CreateSavedReportInput{OwnerID: "u1", Name: "x", Config: domain.ReportConfig{Metrics: []string{"sph"}}}, domain.ErrNoDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeSavedStore()
			_, err := newSavedReports(store).Create(context.Background(), tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(store.reports) != 0 {
				t.Fatalf("expected nothing stored")
			}
		})
	}
}

// ------------------------------------------------------------
// VISIBILITY
// ------------------------------------------------------------

func TestSavedReports_GetHidesPrivateReports(t *testing.T) {
	store := newFakeSavedStore()
	uc := newSavedReports(store)
	r, _ := uc.Create(context.Background(), usecase.CreateSavedReportInput{OwnerID: "u1", Name: "mine", Config: teamReport()})

	if _, err := uc.Get(context.Background(), r.ID, "u1"); err != nil {
		t.Fatalf("owner should see the report: %v", err)
	}
	if _, err := uc.Get(context.Background(), r.ID, "u2"); !errors.Is(err, usecase.ErrSavedReportNotFound) {
		t.Fatalf("expected ErrSavedReportNotFound, got %v", err)
	}
	if _, err := uc.Get(context.Background(), uuid.New(), "u1"); !errors.Is(err, usecase.ErrSavedReportNotFound) {
		t.Fatalf("expected ErrSavedReportNotFound for unknown id, got %v", err)
	}
}

func TestSavedReports_DeleteOwnerOnly(t *testing.T) {
	store := newFakeSavedStore()
	uc := newSavedReports(store)
	r, _ := uc.Create(context.Background(), usecase.CreateSavedReportInput{OwnerID: "u1", Name: "shared", Config: teamReport(), Public: true})

	if err := uc.Delete(context.Background(), r.ID, "u2"); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := uc.Delete(context.Background(), r.ID, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != r.ID {
		t.Fatalf("expected report to be deleted, got %v", store.deleted)
	}
}

// ------------------------------------------------------------
// RUN
// ------------------------------------------------------------

func TestSavedReports_Run(t *testing.T) {
	store := newFakeSavedStore()
	uc := newSavedReports(store)
	r, _ := uc.Create(context.Background(), usecase.CreateSavedReportInput{OwnerID: "u1", Name: "teams", Config: teamReport(), Public: true})

	res, err := uc.Run(context.Background(), r.ID, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
}
