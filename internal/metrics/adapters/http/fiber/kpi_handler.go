package fiber

import (
	"context"
	"net/http"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type SummarizeKPIsUseCase interface {
	Execute(ctx context.Context, in usecase.SummarizeKPIsInput) (*domain.KPISummary, error)
}

type KPIHandler struct {
	uc SummarizeKPIsUseCase
}

func NewKPIHandler(uc SummarizeKPIsUseCase) *KPIHandler {
	return &KPIHandler{uc: uc}
}

// GetKPIs godoc
// @Summary Headline KPIs with period-over-period deltas
// @Description Totals for the current period and the preceding period of equal length
// @Tags KPIs
// @Produce json
// @Param metrics query string false "Comma separated metrics (default sales_amount,sold_count,unlock_count,sph)"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param preset query string false "Preset token"
// @Param previous_start query string false "Explicit previous period start"
// @Param previous_end query string false "Explicit previous period end"
// @Param team query string false "Team name filter"
// @Success 200 {object} KPIResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /kpis [get]
func (h *KPIHandler) GetKPIs(c *fiber.Ctx) error {
	in := usecase.SummarizeKPIsInput{
		Metrics:       splitList(c.Query("metrics")),
		Start:         c.Query("start"),
		End:           c.Query("end"),
		Preset:        c.Query("preset"),
		PreviousStart: c.Query("previous_start"),
		PreviousEnd:   c.Query("previous_end"),
		TeamName:      c.Query("team"),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(newKPIResponse(res))
}
