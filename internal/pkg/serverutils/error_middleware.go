package serverutils

import (
	"errors"

	"event-planner-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts domain errors bubbling out of handlers
// into JSON responses with the right status code.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		switch {
		case apperrors.IsNotFound(err):
			status = fiber.StatusNotFound
		case apperrors.IsValidation(err):
			status = fiber.StatusUnprocessableEntity
		case apperrors.IsExternalService(err):
			status = fiber.StatusBadGateway
		case errors.Is(err, apperrors.ErrUnauthorized):
			status = fiber.StatusUnauthorized
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
}
