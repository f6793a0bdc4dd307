package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RunReportUseCase interface {
	Execute(ctx context.Context, cfg domain.ReportConfig) (*usecase.RunReportResult, error)
}

type ReportHandler struct {
	uc RunReportUseCase
}

func NewReportHandler(uc RunReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetReport godoc
// @Summary Run an ad-hoc report
// @Description Aggregates metrics grouped by dimensions over an explicit range or a preset
// @Tags Reports
// @Produce json
// @Param metrics query string true "Comma separated metrics: sales_amount, sold_count, unlock_count, retention_count, sph, golden_ratio, conversion_rate"
// @Param dimensions query string true "Comma separated dimensions: date, team, chatter"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param preset query string false "last_7_days | last_30_days | last_3_months | last_6_months | last_1_year"
// @Param team query string false "Team name filter"
// @Param chatter_id query int false "Chatter filter"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports [get]
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	req := RunReportRequest{
		Metrics:    splitList(c.Query("metrics")),
		Dimensions: splitList(c.Query("dimensions")),
		Start:      c.Query("start"),
		End:        c.Query("end"),
		Preset:     c.Query("preset"),
	}

	team := c.Query("team")
	var chatterID int64
	if raw := c.Query("chatter_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return badRequest(c, "invalid_chatter_id", errors.New("chatter_id must be a positive integer"))
		}
		chatterID = id
	}
	if team != "" || chatterID > 0 {
		req.Filters = &domain.ReportFilters{Team: team, ChatterID: chatterID}
	}

	return h.run(c, req)
}

// RunReport godoc
// @Summary Run an ad-hoc report from a JSON specification
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body RunReportRequest true "Report specification"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/run [post]
func (h *ReportHandler) RunReport(c *fiber.Ctx) error {
	var req RunReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_json", nil)
	}
	return h.run(c, req)
}

func (h *ReportHandler) run(c *fiber.Ctx, req RunReportRequest) error {
	res, err := h.uc.Execute(c.UserContext(), req.config())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(newReportResponse(res))
}
