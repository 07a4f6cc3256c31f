package ctxtr

import (
	"context"
	"log/slog"
)

type logHandler struct {
	slog.Handler
}

// LogHandler stamps request id and caller ids from the record context.
func LogHandler(h slog.Handler) slog.Handler {
	return &logHandler{Handler: h}
}

func (h *logHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestID(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}

	if c, err := CallerFrom(ctx); err == nil {
		r.AddAttrs(slog.Int64("account_id", c.AccountID), slog.Int64("user_id", c.UserID))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &logHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	return &logHandler{Handler: h.Handler.WithGroup(name)}
}
