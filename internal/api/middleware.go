package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/evgeniy-krivenko/color-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger assigns a request id, stores it in the user context and
// writes one access log record per request. Chain errors are rendered here
// so the logged status is the one sent to the client.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Set(requestIDHeader, requestID)
		c.SetUserContext(ctxtr.WithRequestID(c.UserContext(), requestID))

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		attrs := []slog.Attr{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("ip", c.IP()),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			slogx.Error(c.UserContext(), "server error", attrs...)
		case status >= fiber.StatusBadRequest:
			slogx.Warn(c.UserContext(), "client error", attrs...)
		default:
			slogx.Info(c.UserContext(), "request completed", attrs...)
		}

		return nil
	}
}
