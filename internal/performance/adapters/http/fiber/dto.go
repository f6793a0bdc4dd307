package fiber

// UpsertPerformanceRequest is one chatter's numbers for one date
// @Description Daily performance upsert DTO
type UpsertPerformanceRequest struct {
	ChatterID int64  `json:"chatter_id" validate:"required,gt=0" example:"7"`
	TeamID    *int64 `json:"team_id,omitempty" validate:"omitempty,gt=0"`
	Date      string `json:"date" validate:"required,isodate" example:"2025-11-30"`

	SalesAmount      *float64 `json:"sales_amount,omitempty" validate:"omitempty,gte=0" example:"250.5"`
	SoldCount        *int64   `json:"sold_count,omitempty" validate:"omitempty,gte=0" example:"5"`
	RetentionCount   *int64   `json:"retention_count,omitempty" validate:"omitempty,gte=0"`
	UnlockCount      *int64   `json:"unlock_count,omitempty" validate:"omitempty,gte=0"`
	OpportunityCount *int64   `json:"opportunity_count,omitempty" validate:"omitempty,gte=0"`
	TotalSales       *float64 `json:"total_sales,omitempty" validate:"omitempty,gte=0"`
	WorkedHours      *float64 `json:"worked_hours,omitempty" validate:"omitempty,gte=0,lte=24"`

	AvgResolutionTime string `json:"average_resolution_time,omitempty" example:"3m 42s"`

	SPH            *float64 `json:"sph,omitempty" validate:"omitempty,gte=0"`
	GoldenRatio    *float64 `json:"golden_ratio,omitempty" validate:"omitempty,gte=0"`
	ConversionRate *float64 `json:"conversion_rate,omitempty" validate:"omitempty,gte=0"`
	UnlockRatio    *float64 `json:"unlock_ratio,omitempty" validate:"omitempty,gte=0"`
}

type UpsertPerformanceResponse struct {
	Status string `json:"status" example:"created"`
}

type BulkUpsertPerformanceRequest struct {
	Records []UpsertPerformanceRequest `json:"records" validate:"required,min=1,dive"`
}

type BulkUpsertPerformanceResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_record"`
	Message string `json:"message,omitempty" example:"chatter_id must be positive"`
}
