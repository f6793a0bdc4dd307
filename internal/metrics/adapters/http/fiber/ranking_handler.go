package fiber

import (
	"context"
	"net/http"
	"time"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type RankingsUseCase interface {
	RankLive(ctx context.Context, in usecase.RankLiveInput) (*usecase.RankLiveResult, error)
	RecomputeDaily(ctx context.Context, date time.Time, metrics []domain.MetricKind) (usecase.RecomputeResult, error)
	Leaderboard(ctx context.Context, date, metric string, limit int) ([]domain.RankingEntry, error)
}

type RankingHandler struct {
	uc       RankingsUseCase
	validate *validator.Validate
}

func NewRankingHandler(uc RankingsUseCase, validate *validator.Validate) *RankingHandler {
	return &RankingHandler{uc: uc, validate: validate}
}

// GetRankings godoc
// @Summary Live leaderboard
// @Description Ranks chatters by a metric over a range (competition ranking, ties share a rank)
// @Tags Rankings
// @Produce json
// @Param metric query string true "Metric token"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param preset query string false "Preset token"
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {object} RankingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rankings [get]
func (h *RankingHandler) GetRankings(c *fiber.Ctx) error {
	in := usecase.RankLiveInput{
		Metric: c.Query("metric"),
		Start:  c.Query("start"),
		End:    c.Query("end"),
		Preset: c.Query("preset"),
		Limit:  c.QueryInt("limit", 0),
	}

	res, err := h.uc.RankLive(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(newRankingsResponse(string(res.Metric), res.Range, res.Entries))
}

// GetDailyLeaderboard godoc
// @Summary Persisted daily leaderboard
// @Tags Rankings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param metric query string true "Metric token"
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {object} RankingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rankings/daily [get]
func (h *RankingHandler) GetDailyLeaderboard(c *fiber.Ctx) error {
	date, metric := c.Query("date"), c.Query("metric")

	entries, err := h.uc.Leaderboard(c.UserContext(), date, metric, c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}

	d, _ := domain.ParseDate(date)
	return c.Status(http.StatusOK).JSON(newRankingsResponse(metric, domain.SingleDay(d), entries))
}

// RecomputeRankings godoc
// @Summary Recompute and persist the leaderboards of one date
// @Tags Rankings
// @Accept json
// @Produce json
// @Param request body RecomputeRankingsRequest true "Date and optional metrics"
// @Success 200 {object} RecomputeRankingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rankings/recompute [post]
func (h *RankingHandler) RecomputeRankings(c *fiber.Ctx) error {
	var req RecomputeRankingsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_json", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, "invalid_request", err)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return writeError(c, err)
	}
	var metrics []domain.MetricKind
	if len(req.Metrics) > 0 {
		if metrics, err = domain.ParseMetricKinds(req.Metrics); err != nil {
			return writeError(c, err)
		}
	}

	res, err := h.uc.RecomputeDaily(c.UserContext(), date, metrics)
	if err != nil {
		return writeError(c, err)
	}

	resp := RecomputeRankingsResponse{
		Date:    res.Date.Format(domain.DateLayout),
		Entries: make(map[string]int, len(res.Entries)),
	}
	for m, n := range res.Entries {
		resp.Entries[string(m)] = n
	}
	return c.Status(http.StatusOK).JSON(resp)
}
