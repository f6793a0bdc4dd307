package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chatter-metrics-service/internal/performance/core/domain"
	"chatter-metrics-service/internal/performance/core/ports"
)

var (
	ErrInvalidRecord = errors.New("invalid performance record")
	ErrFutureDate    = errors.New("date cannot be in the future")
)

type UpsertPerformanceUseCase struct {
	repo ports.PerformanceRepositoryPort
	now  func() time.Time
}

func NewUpsertPerformanceUseCase(repo ports.PerformanceRepositoryPort) *UpsertPerformanceUseCase {
	return &UpsertPerformanceUseCase{repo: repo, now: time.Now}
}

func (uc *UpsertPerformanceUseCase) WithClock(now func() time.Time) *UpsertPerformanceUseCase {
	uc.now = now
	return uc
}

type UpsertPerformanceInput struct {
	ChatterID int64
	TeamID    *int64
	Date      string

	SalesAmount      *float64
	SoldCount        *int64
	RetentionCount   *int64
	UnlockCount      *int64
	OpportunityCount *int64
	TotalSales       *float64
	WorkedHours      *float64

	AvgResolutionTime string

	SPH            *float64
	GoldenRatio    *float64
	ConversionRate *float64
	UnlockRatio    *float64
}

// Execute upserts one record and reports whether it was created (true) or
// replaced an existing (chatter, date) row (false).
func (uc *UpsertPerformanceUseCase) Execute(ctx context.Context, in UpsertPerformanceInput) (bool, error) {
	p, err := uc.build(in)
	if err != nil {
		return false, err
	}

	created, err := uc.repo.UpsertPerformance(ctx, p)
	if err != nil {
		return false, err
	}

	return created, nil
}

type BulkUpsertPerformanceInput struct {
	Records []UpsertPerformanceInput
}

type BulkUpsertPerformanceResult struct {
	Created int
	Updated int
}

// BulkUpsert validates every record before writing any of them.
func (uc *UpsertPerformanceUseCase) BulkUpsert(ctx context.Context, in BulkUpsertPerformanceInput) (BulkUpsertPerformanceResult, error) {
	var res BulkUpsertPerformanceResult

	records := make([]*domain.DailyPerformance, len(in.Records))
	for i, r := range in.Records {
		p, err := uc.build(r)
		if err != nil {
			return res, fmt.Errorf("record %d: %w", i, err)
		}
		records[i] = p
	}

	for _, p := range records {
		created, err := uc.repo.UpsertPerformance(ctx, p)
		if err != nil {
			return res, err
		}

		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	return res, nil
}

func (uc *UpsertPerformanceUseCase) build(in UpsertPerformanceInput) (*domain.DailyPerformance, error) {
	if in.ChatterID <= 0 {
		return nil, fmt.Errorf("%w: chatter_id must be positive", ErrInvalidRecord)
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(in.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidRecord)
	}
	y, m, d := uc.now().UTC().Date()
	if date.After(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return nil, ErrFutureDate
	}

	for name, v := range map[string]*int64{
		"sold_count":        in.SoldCount,
		"retention_count":   in.RetentionCount,
		"unlock_count":      in.UnlockCount,
		"opportunity_count": in.OpportunityCount,
	} {
		if v != nil && *v < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", ErrInvalidRecord, name)
		}
	}
	for name, v := range map[string]*float64{
		"sales_amount":    in.SalesAmount,
		"total_sales":     in.TotalSales,
		"worked_hours":    in.WorkedHours,
		"sph":             in.SPH,
		"golden_ratio":    in.GoldenRatio,
		"conversion_rate": in.ConversionRate,
		"unlock_ratio":    in.UnlockRatio,
	} {
		if v != nil && *v < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", ErrInvalidRecord, name)
		}
	}
	if in.WorkedHours != nil && *in.WorkedHours > 24 {
		return nil, fmt.Errorf("%w: worked_hours must not exceed 24", ErrInvalidRecord)
	}

	p := &domain.DailyPerformance{
		ChatterID:        in.ChatterID,
		TeamID:           in.TeamID,
		Date:             date,
		SalesAmount:      in.SalesAmount,
		SoldCount:        in.SoldCount,
		RetentionCount:   in.RetentionCount,
		UnlockCount:      in.UnlockCount,
		OpportunityCount: in.OpportunityCount,
		TotalSales:       in.TotalSales,
		WorkedHours:      in.WorkedHours,
		SPH:              in.SPH,
		GoldenRatio:      in.GoldenRatio,
		ConversionRate:   in.ConversionRate,
		UnlockRatio:      in.UnlockRatio,
	}

	if strings.TrimSpace(in.AvgResolutionTime) != "" {
		art, err := domain.ParseResolutionTime(in.AvgResolutionTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		p.AvgResolutionTime = &art
	}

	p.DefaultOpportunities()
	return p, nil
}
