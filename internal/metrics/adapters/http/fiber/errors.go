package fiber

import (
	"errors"
	"net/http"
	"strings"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/usecase"
	"chatter-metrics-service/internal/platform/validation"

	"github.com/gofiber/fiber/v2"
)

// UserIDHeader carries the caller identity set by the authenticating proxy.
const UserIDHeader = "X-User-ID"

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, usecase.ErrInvalidSavedReport):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrMissingOwner):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrForbidden):
		return c.Status(http.StatusForbidden).JSON(ErrorResponse{
			Error:   "forbidden",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrSavedReportNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func badRequest(c *fiber.Ctx, code string, err error) error {
	resp := ErrorResponse{Error: code}
	if err != nil {
		resp.Message = validation.Message(err)
	}
	return c.Status(http.StatusBadRequest).JSON(resp)
}

// splitList reads comma separated (or repeated) query values.
func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
