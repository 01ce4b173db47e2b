package v1

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/littleroamers/roamers/internal/controller/restapi/v1/response"
	"github.com/littleroamers/roamers/pkg/types/errs"
)

func errorResponse(ctx *fiber.Ctx, code int, msg string) error {
	return ctx.Status(code).JSON(response.Error{Error: msg})
}

// uploadErrorResponse maps pipeline errors onto HTTP statuses. User
// mistakes are 4xx; only store failures surface as 500.
func uploadErrorResponse(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errs.ErrTooLarge):
		return errorResponse(ctx, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, errs.ErrUnsupportedFormat):
		return errorResponse(ctx, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, errs.ErrNotAnImage), errors.Is(err, errs.ErrInvalidDimensions):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrHeicConversionFailed), errors.Is(err, errs.ErrOptimizationFailed):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}
}
