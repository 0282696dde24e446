// Package context carries request-scoped values between the HTTP layer and
// the services: the request id, a logger tagged with it and the caller's user id.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a request id is read from and echoed in.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echo.Context keys.
const (
	echoKeyRequestID = "request_id"
	echoKeyUserID    = "user_id"
)

// GetRequestID returns the id assigned by the request id middleware, or an
// empty string outside of it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

// SetRequestID stores the request id on echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// WithRequestID returns ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom returns the request id carried by ctx.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is GetLogger falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetUserID stores the authenticated user id on echo.Context.
func SetUserID(c echo.Context, userID int64) {
	c.Set(echoKeyUserID, userID)
}

// GetUserID returns the authenticated user id. The bool is false on routes
// that did not pass authentication.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(echoKeyUserID).(int64)

	return userID, ok && userID > 0
}
