// Package context carries per-request values between echo handlers and the
// use cases they call.
package context

import (
	"context"
	"log/slog"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type key string

const (
	keyRequestID key = "request_id"
	keyLogger    key = "logger"
	keyIdentity  key = "identity"

	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id assigned by the request id middleware. Requests
// that bypassed it get a fresh id so error bodies always carry one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLogger returns the request logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// SetIdentity records the admin resolved by the auth middleware.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(keyIdentity), identity)
}

// GetIdentity returns nil on public routes.
func GetIdentity(c echo.Context) *entity.Identity {
	identity, _ := c.Get(string(keyIdentity)).(*entity.Identity)

	return identity
}
