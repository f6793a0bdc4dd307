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

type DashboardUseCase interface {
	Execute(ctx context.Context, in usecase.DashboardInput) (*usecase.DashboardSummary, error)
}

type DashboardHandler struct {
	uc DashboardUseCase
}

func NewDashboardHandler(uc DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary Per-chatter dashboard snapshot
// @Description Sales, hours, ratios, resolution time, rank by total sales and SPH classification
// @Tags Dashboard
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param preset query string false "Preset token"
// @Param team query string false "Team name filter"
// @Param excellent_min query number false "SPH at or above which a chatter is excellent"
// @Param review_max query number false "SPH at or below which a chatter needs review"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	in := usecase.DashboardInput{
		Start:    c.Query("start"),
		End:      c.Query("end"),
		Preset:   c.Query("preset"),
		TeamName: c.Query("team"),
	}

	excellent, review := c.Query("excellent_min"), c.Query("review_max")
	if excellent != "" || review != "" {
		if excellent == "" || review == "" {
			return badRequest(c, "invalid_thresholds", errors.New("excellent_min and review_max go together"))
		}
		ex, err1 := strconv.ParseFloat(excellent, 64)
		rv, err2 := strconv.ParseFloat(review, 64)
		if err1 != nil || err2 != nil {
			return badRequest(c, "invalid_thresholds", errors.New("thresholds must be numbers"))
		}
		in.Thresholds = &domain.Thresholds{ExcellentMin: ex, ReviewMax: rv}
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(newDashboardResponse(res))
}
