package middleware

import (
	"context"
	"log/slog"
	"time"

	"portfolio/config"
	deliverycontext "portfolio/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// quietPaths are probe endpoints left out of the access log.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// LoggerMiddleware writes one access log line per request when debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle renders handler errors itself through the echo error handler, so the
// status it logs is the status the client received.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		if _, quiet := quietPaths[c.Request().URL.Path]; m.debug && !quiet {
			m.logRequest(c, time.Since(start), err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	status := c.Response().Status

	attrs := make([]slog.Attr, 0, 9)
	attrs = append(attrs,
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	)
	if identity := deliverycontext.GetIdentity(c); identity != nil {
		attrs = append(attrs, slog.String("user_id", identity.ID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(context.Background(), level, "Request served", attrs...)
}
