package ctxtr

import (
	"context"
	"errors"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

var ErrCallerNotFound = errors.New("caller not found")

// Caller is the identity an operation is authorized for.
type Caller struct {
	AccountID int64
	UserID    int64
}

func (c Caller) Valid() bool {
	return c.AccountID > 0 && c.UserID > 0
}

func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

func CallerFrom(ctx context.Context) (Caller, error) {
	c, ok := ctx.Value(callerKey).(Caller)
	if !ok {
		return Caller{}, ErrCallerNotFound
	}

	return c, nil
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
