package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
)

// RequestRecorder counts served requests.
type RequestRecorder interface {
	RequestServed(ctx context.Context, method, route string, status int)
}

// MetricsMiddleware counts every response by route template and status.
// It must wrap LoggerMiddleware so the response is already committed.
type MetricsMiddleware struct {
	recorder RequestRecorder
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(recorder RequestRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.recorder.RequestServed(c.Request().Context(), c.Request().Method, route, c.Response().Status)

		return nil
	}
}
