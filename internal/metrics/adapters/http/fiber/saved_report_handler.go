package fiber

import (
	"context"
	"net/http"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SavedReportsUseCase interface {
	Create(ctx context.Context, in usecase.CreateSavedReportInput) (domain.SavedReport, error)
	List(ctx context.Context, viewerID string) ([]domain.SavedReport, error)
	Get(ctx context.Context, id uuid.UUID, viewerID string) (domain.SavedReport, error)
	Delete(ctx context.Context, id uuid.UUID, viewerID string) error
	Run(ctx context.Context, id uuid.UUID, viewerID string) (*usecase.RunReportResult, error)
}

type SavedReportHandler struct {
	uc       SavedReportsUseCase
	validate *validator.Validate
}

func NewSavedReportHandler(uc SavedReportsUseCase, validate *validator.Validate) *SavedReportHandler {
	return &SavedReportHandler{uc: uc, validate: validate}
}

// CreateSavedReport godoc
// @Summary Save a report configuration
// @Tags Saved reports
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param request body CreateSavedReportRequest true "Saved report"
// @Success 201 {object} SavedReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/saved [post]
func (h *SavedReportHandler) CreateSavedReport(c *fiber.Ctx) error {
	var req CreateSavedReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_json", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, "invalid_request", err)
	}

	r, err := h.uc.Create(c.UserContext(), usecase.CreateSavedReportInput{
		OwnerID:     c.Get(UserIDHeader),
		Name:        req.Name,
		Description: req.Description,
		Config:      req.Config.config(),
		Public:      req.Public,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(newSavedReportResponse(r))
}

// ListSavedReports godoc
// @Summary List saved reports visible to the caller
// @Tags Saved reports
// @Produce json
// @Param X-User-ID header string false "Caller id"
// @Success 200 {array} SavedReportResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/saved [get]
func (h *SavedReportHandler) ListSavedReports(c *fiber.Ctx) error {
	reports, err := h.uc.List(c.UserContext(), c.Get(UserIDHeader))
	if err != nil {
		return writeError(c, err)
	}
	resp := make([]SavedReportResponse, 0, len(reports))
	for _, r := range reports {
		resp = append(resp, newSavedReportResponse(r))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetSavedReport godoc
// @Summary Get a saved report
// @Tags Saved reports
// @Produce json
// @Param id path string true "Report id"
// @Param X-User-ID header string false "Caller id"
// @Success 200 {object} SavedReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/saved/{id} [get]
func (h *SavedReportHandler) GetSavedReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid_id", nil)
	}
	r, err := h.uc.Get(c.UserContext(), id, c.Get(UserIDHeader))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(newSavedReportResponse(r))
}

// DeleteSavedReport godoc
// @Summary Delete a saved report (owner only)
// @Tags Saved reports
// @Param id path string true "Report id"
// @Param X-User-ID header string true "Caller id"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/saved/{id} [delete]
func (h *SavedReportHandler) DeleteSavedReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid_id", nil)
	}
	if err := h.uc.Delete(c.UserContext(), id, c.Get(UserIDHeader)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// RunSavedReport godoc
// @Summary Replay a saved report
// @Tags Saved reports
// @Produce json
// @Param id path string true "Report id"
// @Param X-User-ID header string false "Caller id"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/saved/{id}/run [post]
func (h *SavedReportHandler) RunSavedReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid_id", nil)
	}
	res, err := h.uc.Run(c.UserContext(), id, c.Get(UserIDHeader))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(newReportResponse(res))
}
