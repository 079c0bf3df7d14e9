package server

import (
	"errors"
	"strings"

	"pantrypal/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Error codes surfaced to clients (lower_snake_case).
const (
	ErrorCodeNotFound            = "not_found"
	ErrorCodeInternalServerError = "internal_server_error"
)

const (
	messageNotFound = "The requested resource was not found"
	messageInternal = "An unexpected error occurred"
)

var codeReplacer = strings.NewReplacer(" ", "_", "-", "_", "'", "")

// ErrorResponse maps any error returned by a handler to a status code and a JSON body.
// A *fiber.Error keeps its status; anything else is a 500. Server faults never
// expose the underlying error to the client.
func ErrorResponse(err error, path string) (int, fiber.Map) {
	internal := fiber.Map{
		"error":   ErrorCodeInternalServerError,
		"message": messageInternal,
	}

	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return fiber.StatusInternalServerError, internal
	}
	if fe.Code >= fiber.StatusInternalServerError {
		return fe.Code, internal
	}

	if fe.Code == fiber.StatusNotFound {
		return fiber.StatusNotFound, fiber.Map{
			"error":   ErrorCodeNotFound,
			"message": messageNotFound,
			"path":    path,
		}
	}

	return fe.Code, fiber.Map{
		"error":   errorCode(fe.Code),
		"message": fe.Message,
	}
}

func errorCode(status int) string {
	text := utils.StatusMessage(status)
	if text == "" {
		return "error"
	}
	return codeReplacer.Replace(strings.ToLower(text))
}

// ErrorHandler returns the Fiber error handler that renders ErrorResponse.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := ErrorResponse(err, c.Path())
		if status >= fiber.StatusInternalServerError {
			logger.WithRayID(log, c).Error("Unhandled request error",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return c.Status(status).JSON(body)
	}
}
