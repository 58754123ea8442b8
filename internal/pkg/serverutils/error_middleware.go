package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrIdentityRequired is returned by services for operations that demand an
// authenticated user. It maps to 401, everything else unexpected maps to 500.
var ErrIdentityRequired = errors.New("authenticated identity required")

// ErrorHandlerMiddleware converts errors escaping controllers into JSON
// envelopes. Services are expected to swallow recoverable faults themselves;
// whatever reaches this point is either a fiber error with a status or a
// genuine server fault.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if errors.Is(err, ErrIdentityRequired) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, err.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
