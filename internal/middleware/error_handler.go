package middleware

import (
	"errors"
	"log"
	"time"

	"blogsite/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// timestampLayout matches the second-precision local timestamps in the error
// bodies, e.g. "2024-01-24T10:30:00".
const timestampLayout = "2006-01-02T15:04:05"

// ErrorHandler is the process-wide Fiber error handler. Every error returned
// by a handler, whatever endpoint raised it, is rendered as one of the fixed
// JSON shapes. Internal detail is logged server-side and never sent to the
// caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	timestamp := time.Now().Format(timestampLayout)

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperrors.KindValidation:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"timestamp": timestamp,
				"status":    fiber.StatusBadRequest,
				"error":     appErr.Title,
				"errors":    appErr.Fields,
			})
		case apperrors.KindConflict:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"timestamp": timestamp,
				"status":    fiber.StatusConflict,
				"error":     appErr.Title,
				"message":   appErr.Message,
			})
		case apperrors.KindNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"timestamp": timestamp,
				"status":    fiber.StatusNotFound,
				"error":     appErr.Title,
				"message":   appErr.Message,
			})
		}
	}

	// Errors raised by Fiber itself: unknown route, unsupported method, body
	// limits. These keep their status code and status text.
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"timestamp": timestamp,
			"status":    fiberErr.Code,
			"error":     utils.StatusMessage(fiberErr.Code),
			"message":   fiberErr.Message,
		})
	}

	log.Printf("Unexpected error handling %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"timestamp": timestamp,
		"status":    fiber.StatusInternalServerError,
		"error":     "Internal Server Error",
		"message":   "An unexpected error occurred. Please try again later.",
	})
}
