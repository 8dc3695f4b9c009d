package presenter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/interview/pkg/interview"
	"github.com/artem13815/interview/pkg/resume"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// StatusOf maps domain errors onto HTTP status codes.
func StatusOf(err error) int {
	var (
		validation *interview.ValidationError
		parse      *resume.ParseFailure
	)
	switch {
	case errors.Is(err, resume.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &parse):
		return http.StatusUnprocessableEntity
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, interview.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, interview.ErrSessionActive),
		errors.Is(err, interview.ErrNoSession),
		errors.Is(err, interview.ErrStaleQuestion),
		errors.Is(err, interview.ErrInvalidStatus),
		errors.Is(err, interview.ErrSessionPaused),
		errors.Is(err, interview.ErrBusy),
		errors.Is(err, interview.ErrNotReady),
		errors.Is(err, interview.ErrDiscarded):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromError renders err with the status from StatusOf. Internal errors are
// logged and hidden behind fallback.
func FromError(c *fiber.Ctx, err error, fallback string) error {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.Default().Error(fallback, "error", err, "path", c.Path(), "request_id", c.Locals("requestid"))
		return Error(c, status, fallback)
	}
	var validation *interview.ValidationError
	if errors.As(err, &validation) {
		return JSON(c, status, ErrorResponse{Message: validation.Error(), Field: validation.Field})
	}
	return Error(c, status, err.Error())
}
