package fiber

import (
	"context"
	"errors"
	"net/http"

	"chatter-metrics-service/internal/performance/core/usecase"
	"chatter-metrics-service/internal/platform/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type UpsertPerformanceUseCase interface {
	Execute(ctx context.Context, in usecase.UpsertPerformanceInput) (bool, error)
	BulkUpsert(ctx context.Context, in usecase.BulkUpsertPerformanceInput) (usecase.BulkUpsertPerformanceResult, error)
}

type PerformanceHandler struct {
	upsertUC UpsertPerformanceUseCase
	validate *validator.Validate
}

func NewPerformanceHandler(upsertUC UpsertPerformanceUseCase, validate *validator.Validate) *PerformanceHandler {
	return &PerformanceHandler{upsertUC: upsertUC, validate: validate}
}

// UpsertPerformance godoc
// @Summary Upsert daily performance
// @Description Writes one chatter's numbers for one date, replacing any existing row
// @Tags Performance
// @Accept json
// @Produce json
// @Param request body UpsertPerformanceRequest true "Performance payload"
// @Success 201 {object} UpsertPerformanceResponse
// @Success 200 {object} UpsertPerformanceResponse "Existing row updated"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /performance [post]
func (h *PerformanceHandler) UpsertPerformance(c *fiber.Ctx) error {
	var req UpsertPerformanceRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_record",
			Message: validation.Message(err),
		})
	}

	created, err := h.upsertUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return writeError(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(UpsertPerformanceResponse{Status: "updated"})
	}
	return c.Status(http.StatusCreated).JSON(UpsertPerformanceResponse{Status: "created"})
}

// BulkUpsertPerformance godoc
// @Summary Bulk upsert daily performance
// @Description Validates every record first, then upserts them one by one
// @Tags Performance
// @Accept json
// @Produce json
// @Param request body BulkUpsertPerformanceRequest true "Bulk performance payload"
// @Success 201 {object} BulkUpsertPerformanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /performance/bulk [post]
func (h *PerformanceHandler) BulkUpsertPerformance(c *fiber.Ctx) error {
	var req BulkUpsertPerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	if len(req.Records) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "records_list_required"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_record",
			Message: validation.Message(err),
		})
	}

	inputs := make([]usecase.UpsertPerformanceInput, len(req.Records))
	for i, r := range req.Records {
		inputs[i] = toInput(r)
	}

	result, err := h.upsertUC.BulkUpsert(c.UserContext(), usecase.BulkUpsertPerformanceInput{Records: inputs})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkUpsertPerformanceResponse{
		Created: result.Created,
		Updated: result.Updated,
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecord),
		errors.Is(err, usecase.ErrFutureDate):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_record",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toInput(r UpsertPerformanceRequest) usecase.UpsertPerformanceInput {
	return usecase.UpsertPerformanceInput{
		ChatterID:         r.ChatterID,
		TeamID:            r.TeamID,
		Date:              r.Date,
		SalesAmount:       r.SalesAmount,
		SoldCount:         r.SoldCount,
		RetentionCount:    r.RetentionCount,
		UnlockCount:       r.UnlockCount,
		OpportunityCount:  r.OpportunityCount,
		TotalSales:        r.TotalSales,
		WorkedHours:       r.WorkedHours,
		AvgResolutionTime: r.AvgResolutionTime,
		SPH:               r.SPH,
		GoldenRatio:       r.GoldenRatio,
		ConversionRate:    r.ConversionRate,
		UnlockRatio:       r.UnlockRatio,
	}
}
