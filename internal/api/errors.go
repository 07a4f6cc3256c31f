package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/evgeniy-krivenko/color-notes/internal/entity"
	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/color-notes/pkg/response"
)

// ErrorHandler is the only place errors are turned into status codes.
// Unexpected errors are logged and answered without detail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		validationErr *entity.ValidationError
		ruleErr       *entity.DomainRuleError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.Is(err, entity.ErrUnauthorized):
		return reply(c, fiber.StatusUnauthorized, response.CodeUnauthorized, "Unauthorized access", nil)

	case errors.As(err, &validationErr):
		return reply(c, fiber.StatusBadRequest, response.CodeValidation, "Validation failed", validationErr.Violations)

	case errors.Is(err, entity.ErrNoteNotFound):
		return reply(c, fiber.StatusNotFound, response.CodeNotFound, "Note not found", nil)

	case errors.As(err, &ruleErr):
		return reply(c, fiber.StatusBadRequest, response.CodeDomainRule, ruleErr.Message, nil)

	case errors.As(err, &fiberErr):
		return reply(c, fiberErr.Code, codeForStatus(fiberErr.Code), fiberErr.Message, nil)
	}

	slogx.Error(c.UserContext(), "unexpected error",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slogx.Err(err),
	)

	return reply(c, fiber.StatusInternalServerError, response.CodeInternal, "Internal server error", nil)
}

func reply(c *fiber.Ctx, status int, code, message string, details any) error {
	return c.Status(status).JSON(response.Failure(code, message, details))
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return response.CodeNotFound
	case fiber.StatusTooManyRequests:
		return response.CodeRateLimited
	case fiber.StatusRequestEntityTooLarge, fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return response.CodeValidation
	}

	if status >= fiber.StatusInternalServerError {
		return response.CodeInternal
	}

	return response.CodeRequest
}
