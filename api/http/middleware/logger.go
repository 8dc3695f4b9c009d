package middleware

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestIDKey matches the default ContextKey of fiber's requestid middleware.
const RequestIDKey = "requestid"

// RequestLogger logs one line per request with its status and duration.
func RequestLogger(log *slog.Logger) fiber.Handler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if id, ok := c.Locals(RequestIDKey).(string); ok && id != "" {
			attrs = append(attrs, "request_id", id)
		}
		switch {
		case status >= 500:
			log.Error("request failed with server error", attrs...)
		case status >= 400:
			log.Warn("request failed with client error", attrs...)
		default:
			log.Info("request completed", attrs...)
		}
		return err
	}
}
