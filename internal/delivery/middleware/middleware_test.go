package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio/config"
	deliverycontext "portfolio/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type servedRequest struct {
	method, route string
	status        int
}

type fakeRecorder struct {
	served []servedRequest
}

func (r *fakeRecorder) RequestServed(_ context.Context, method, route string, status int) {
	r.served = append(r.served, servedRequest{method: method, route: route, status: status})
}

func debugConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	return cfg
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	m := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	var fromCtx string
	handler := m.Process(func(c echo.Context) error {
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("propagates client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, "client-id", fromCtx)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
		assert.NotEmpty(t, fromCtx)
		assert.Equal(t, fromCtx, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		for _, bad := range []string{"has space", strings.Repeat("x", 65), "line\nbreak"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, bad)
			rec := httptest.NewRecorder()

			require.NoError(t, handler(e.NewContext(req, rec)))
			assert.NotEqual(t, bad, fromCtx)
			assert.Len(t, fromCtx, 36)
		}
	})
}

func TestLoggerMiddleware_LogsRenderedStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	m := NewLoggerMiddleware(logger, debugConfig())

	e := echo.New()
	e.GET("/missing", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "gone")
	}, m.Handle)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "status=404")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "route=/missing")
}

func TestLoggerMiddleware_SkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), debugConfig())

	e := echo.New()
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, m.Handle)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, buf.String())
}

func TestMetricsMiddleware_RecordsRouteTemplate(t *testing.T) {
	recorder := &fakeRecorder{}
	m := NewMetricsMiddleware(recorder)

	e := echo.New()
	e.Use(m.Handle)
	e.GET("/projects/:slug", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("slug"))
	})
	e.GET("/fail", func(echo.Context) error {
		return echo.ErrBadRequest
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/projects/iot-hub", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	require.Len(t, recorder.served, 2)
	assert.Equal(t, servedRequest{method: http.MethodGet, route: "/projects/:slug", status: http.StatusOK}, recorder.served[0])
	assert.Equal(t, http.StatusBadRequest, recorder.served[1].status)
}
