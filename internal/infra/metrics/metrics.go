package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"portfolio/config"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
)

const meterName = "portfolio"

// Metrics records site activity through an OpenTelemetry meter exported in
// Prometheus format.
type Metrics struct {
	provider *sdkmetric.MeterProvider
	handler  http.Handler

	requests     metric.Int64Counter
	projectViews metric.Int64Counter
	contacts     metric.Int64Counter
	chatAnswers  metric.Int64Counter
}

// Params holds dependencies for Metrics, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New builds the meter provider. When metrics are disabled every counter is a
// no-op and Handler returns nil.
func New(params Params) (*Metrics, error) {
	cfg := params.Config.Metrics
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Metrics disabled")

		return newMetrics(noop.NewMeterProvider().Meter(meterName), nil, nil)
	}

	m, err := NewWithRegistry(prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(m.provider.Shutdown(ctx))
		},
	})

	return m, nil
}

// NewWithRegistry exports into registry and serves it from Handler.
func NewWithRegistry(registry *prometheus.Registry) (*Metrics, error) {
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create prometheus exporter")
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return newMetrics(provider.Meter(meterName), provider, handler)
}

func newMetrics(meter metric.Meter, provider *sdkmetric.MeterProvider, handler http.Handler) (*Metrics, error) {
	m := &Metrics{provider: provider, handler: handler}

	var err error
	if m.requests, err = meter.Int64Counter("http.server.requests",
		metric.WithDescription("HTTP requests served")); err != nil {
		return nil, errors.WithStack(err)
	}
	if m.projectViews, err = meter.Int64Counter("portfolio.project.views",
		metric.WithDescription("Project detail pages viewed")); err != nil {
		return nil, errors.WithStack(err)
	}
	if m.contacts, err = meter.Int64Counter("portfolio.contact.messages",
		metric.WithDescription("Contact messages received")); err != nil {
		return nil, errors.WithStack(err)
	}
	if m.chatAnswers, err = meter.Int64Counter("portfolio.chat.answers",
		metric.WithDescription("AI chat answers returned")); err != nil {
		return nil, errors.WithStack(err)
	}

	return m, nil
}

// Handler serves the Prometheus exposition, nil when metrics are disabled.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// RequestServed counts one HTTP response.
func (m *Metrics) RequestServed(ctx context.Context, method, route string, status int) {
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.String("status", strconv.Itoa(status)),
	))
}

func (m *Metrics) ProjectViewed(ctx context.Context, slug string) {
	m.projectViews.Add(ctx, 1, metric.WithAttributes(attribute.String("slug", slug)))
}

func (m *Metrics) ContactReceived(ctx context.Context) {
	m.contacts.Add(ctx, 1)
}

func (m *Metrics) ChatAnswered(ctx context.Context, cached bool) {
	m.chatAnswers.Add(ctx, 1, metric.WithAttributes(attribute.Bool("cached", cached)))
}
