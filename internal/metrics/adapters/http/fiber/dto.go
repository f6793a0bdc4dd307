package fiber

import (
	"time"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"validation error: unknown metric: \"revenue\""`
}

type DateRangeResponse struct {
	Start string `json:"start" example:"2025-11-01"`
	End   string `json:"end" example:"2025-11-30"`
}

func newDateRange(r domain.DateRange) DateRangeResponse {
	return DateRangeResponse{Start: r.Start.Format(domain.DateLayout), End: r.End.Format(domain.DateLayout)}
}

// RunReportRequest represents an ad-hoc report
// @Description Report specification: metrics grouped by dimensions over a date range or preset
type RunReportRequest struct {
	Metrics    []string              `json:"metrics" example:"sales_amount,sph"`
	Dimensions []string              `json:"dimensions" example:"date,team"`
	Start      string                `json:"start,omitempty" example:"2025-11-01"`
	End        string                `json:"end,omitempty" example:"2025-11-30"`
	Preset     string                `json:"preset,omitempty" example:"last_30_days"`
	Filters    *domain.ReportFilters `json:"filters,omitempty"`
}

func (r RunReportRequest) config() domain.ReportConfig {
	return domain.ReportConfig{
		Metrics:    r.Metrics,
		Dimensions: r.Dimensions,
		Start:      r.Start,
		End:        r.End,
		Preset:     r.Preset,
		Filters:    r.Filters,
	}
}

// ReportResponse rows look like {"team": "A", "values": {"sales_amount": 150}}.
type ReportResponse struct {
	Metrics    []string           `json:"metrics"`
	Dimensions []string           `json:"dimensions"`
	Range      DateRangeResponse  `json:"range"`
	Rows       []domain.ReportRow `json:"rows" swaggertype:"array,object"`
}

func newReportResponse(res *usecase.RunReportResult) ReportResponse {
	dims := make([]string, len(res.Spec.Dimensions))
	for i, d := range res.Spec.Dimensions {
		dims[i] = string(d)
	}
	rows := res.Rows
	if rows == nil {
		rows = []domain.ReportRow{}
	}
	return ReportResponse{
		Metrics:    domain.MetricStrings(res.Spec.Metrics),
		Dimensions: dims,
		Range:      newDateRange(res.Spec.Range),
		Rows:       rows,
	}
}

type KPIValueResponse struct {
	Current      *float64 `json:"current"`
	Previous     *float64 `json:"previous"`
	DeltaPercent float64  `json:"delta_percent"`
}

type KPIResponse struct {
	Current  DateRangeResponse           `json:"current"`
	Previous DateRangeResponse           `json:"previous"`
	Metrics  []string                    `json:"metrics"`
	Values   map[string]KPIValueResponse `json:"values"`
}

func newKPIResponse(s *domain.KPISummary) KPIResponse {
	resp := KPIResponse{
		Current:  newDateRange(s.Current),
		Previous: newDateRange(s.Previous),
		Metrics:  domain.MetricStrings(s.Metrics),
		Values:   make(map[string]KPIValueResponse, len(s.Metrics)),
	}
	for _, m := range s.Metrics {
		resp.Values[string(m)] = KPIValueResponse{
			Current:      s.CurrentVals[m],
			Previous:     s.PreviousVals[m],
			DeltaPercent: s.DeltaPercent[m],
		}
	}
	return resp
}

type RankingEntryResponse struct {
	Rank        int     `json:"rank" example:"1"`
	ChatterID   int64   `json:"chatter_id" example:"7"`
	ChatterName string  `json:"chatter_name" example:"amy"`
	Value       float64 `json:"value" example:"150.5"`
}

type RankingsResponse struct {
	Metric  string                 `json:"metric" example:"sales_amount"`
	Range   DateRangeResponse      `json:"range"`
	Entries []RankingEntryResponse `json:"entries"`
}

func newRankingsResponse(metric string, rng domain.DateRange, entries []domain.RankingEntry) RankingsResponse {
	resp := RankingsResponse{
		Metric:  metric,
		Range:   newDateRange(rng),
		Entries: make([]RankingEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, RankingEntryResponse{
			Rank:        e.Rank,
			ChatterID:   e.ChatterID,
			ChatterName: e.ChatterName,
			Value:       e.Value,
		})
	}
	return resp
}

type RecomputeRankingsRequest struct {
	Date    string   `json:"date" validate:"required,isodate" example:"2025-11-30"`
	Metrics []string `json:"metrics,omitempty" validate:"omitempty,dive,required" example:"sales_amount,sph"`
}

type RecomputeRankingsResponse struct {
	Date    string         `json:"date"`
	Entries map[string]int `json:"entries"`
}

type CreateSavedReportRequest struct {
	Name        string           `json:"name" validate:"required,max=120"`
	Description string           `json:"description" validate:"max=1000"`
	Public      bool             `json:"is_public"`
	Config      RunReportRequest `json:"config"`
}

type SavedReportResponse struct {
	ID          string              `json:"id" example:"5b0c3c1e-6f1b-4f0c-9a55-0f7f5a4b9a10"`
	OwnerID     string              `json:"owner_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Public      bool                `json:"is_public"`
	Config      domain.ReportConfig `json:"config"`
	CreatedAt   time.Time           `json:"created_at"`
}

func newSavedReportResponse(r domain.SavedReport) SavedReportResponse {
	return SavedReportResponse{
		ID:          r.ID.String(),
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
		Public:      r.Public,
		Config:      r.Config,
		CreatedAt:   r.CreatedAt,
	}
}

type ChatterSnapshotResponse struct {
	ChatterID            int64    `json:"chatter_id"`
	ChatterName          string   `json:"chatter_name"`
	Team                 *string  `json:"team"`
	Rank                 *int     `json:"rank"`
	TotalSales           *float64 `json:"total_sales"`
	WorkedHours          *float64 `json:"worked_hours"`
	SPH                  *float64 `json:"sph"`
	GoldenRatio          *float64 `json:"golden_ratio"`
	UnlockRatio          *float64 `json:"unlock_ratio"`
	AvgResolutionSeconds *float64 `json:"average_resolution_seconds"`
	AvgResolutionTime    *string  `json:"average_resolution_time" example:"3m 42s"`
	Classification       string   `json:"classification" example:"excellent"`
}

type DashboardResponse struct {
	Range        DateRangeResponse         `json:"range"`
	ExcellentMin float64                   `json:"excellent_min"`
	ReviewMax    float64                   `json:"review_max"`
	TotalSales   float64                   `json:"total_sales"`
	Counts       map[string]int            `json:"counts"`
	Chatters     []ChatterSnapshotResponse `json:"chatters"`
}

func newDashboardResponse(s *usecase.DashboardSummary) DashboardResponse {
	resp := DashboardResponse{
		Range:        newDateRange(s.Range),
		ExcellentMin: s.Thresholds.ExcellentMin,
		ReviewMax:    s.Thresholds.ReviewMax,
		TotalSales:   s.TotalSales,
		Counts:       make(map[string]int, len(s.Counts)),
		Chatters:     make([]ChatterSnapshotResponse, 0, len(s.Chatters)),
	}
	for c, n := range s.Counts {
		resp.Counts[string(c)] = n
	}
	for _, c := range s.Chatters {
		item := ChatterSnapshotResponse{
			ChatterID:            c.ChatterID,
			ChatterName:          c.ChatterName,
			Team:                 c.Team,
			TotalSales:           c.TotalSales,
			WorkedHours:          c.WorkedHours,
			SPH:                  c.SPH,
			GoldenRatio:          c.GoldenRatio,
			UnlockRatio:          c.UnlockRatio,
			AvgResolutionSeconds: c.ResolutionSecs,
			Classification:       string(c.Class),
		}
		if c.Rank > 0 {
			rank := c.Rank
			item.Rank = &rank
		}
		if c.ResolutionSecs != nil {
			txt := domain.FormatDuration(domain.SecondsToDuration(*c.ResolutionSecs))
			item.AvgResolutionTime = &txt
		}
		resp.Chatters = append(resp.Chatters, item)
	}
	return resp
}
