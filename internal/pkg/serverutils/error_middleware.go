package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"notes-api-be/internal/pkg/apperror"
	"notes-api-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware is the single place service errors become HTTP
// statuses: InvalidArgument -> 400, NotFound -> 404, everything else -> 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		switch apperror.KindOf(err) {
		case apperror.KindInvalidArgument:
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
		case apperror.KindNotFound:
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, err.Error()))
		default:
			if log != nil {
				log.Error("http", "unhandled request error", map[string]interface{}{
					"path":   ctx.Path(),
					"method": ctx.Method(),
					"error":  err.Error(),
				})
			}
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
		}
	}
}
