package middleware

import (
	"errors"
	"net/http"

	"gyaandeepika/utils/apierr"
	"gyaandeepika/utils/logger"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
	})
}

// ErrorJSON writes the uniform failure body.
func ErrorJSON(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed!",
		"errors":  errors,
	})
}

// ErrorResponse renders a service error. Server-side causes are logged, never sent.
func ErrorResponse(c *fiber.Ctx, err error) error {
	ae, ok := apierr.As(err)
	if !ok {
		ae = apierr.Internal(err)
	}

	if ae.Status >= http.StatusInternalServerError {
		logger.Log.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"status", ae.Status,
			"code", ae.Code,
			"error", err,
		)
		msg := "Something went wrong!"
		if ae.Status == http.StatusBadGateway {
			msg = "AI service is unavailable, please try again later!"
		}
		return c.Status(ae.Status).JSON(fiber.Map{
			"success": false,
			"error":   msg,
			"code":    ae.Code,
		})
	}

	body := fiber.Map{
		"success": false,
		"error":   ae.Error(),
		"code":    ae.Code,
	}
	if len(ae.Fields) > 0 {
		body["errors"] = ae.Fields
	}
	return c.Status(ae.Status).JSON(body)
}

// FiberErrorHandler catches anything a handler returned instead of writing.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ErrorJSON(c, fe.Code, fe.Message)
	}
	return ErrorResponse(c, err)
}
