package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}

func TestMetrics_ExposesCounters(t *testing.T) {
	m, err := NewWithRegistry(prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.provider.Shutdown(context.Background()) })

	ctx := context.Background()
	m.ProjectViewed(ctx, "iot-hub")
	m.ProjectViewed(ctx, "iot-hub")
	m.ContactReceived(ctx)
	m.ChatAnswered(ctx, true)
	m.RequestServed(ctx, http.MethodGet, "/api/projects", http.StatusOK)

	body := scrape(t, m)
	assert.Contains(t, body, "portfolio_project_views_total")
	assert.Contains(t, body, `slug="iot-hub"`)
	assert.Contains(t, body, "portfolio_contact_messages_total")
	assert.Contains(t, body, `cached="true"`)
	assert.Contains(t, body, `route="/api/projects"`)
}

func TestMetrics_DisabledIsNoop(t *testing.T) {
	m, err := newMetrics(noopMeter(), nil, nil)
	require.NoError(t, err)

	assert.Nil(t, m.Handler())
	assert.NotPanics(t, func() {
		m.ProjectViewed(context.Background(), "x")
		m.ChatAnswered(context.Background(), false)
	})
}

func noopMeter() metric.Meter {
	return noop.NewMeterProvider().Meter(meterName)
}
