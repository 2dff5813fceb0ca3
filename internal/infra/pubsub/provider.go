// Package pubsub delivers domain events to Google Cloud Pub/Sub, to a local
// push endpoint during development, or nowhere.
package pubsub

import (
	"context"
	"log/slog"

	"portfolio/config"
	"portfolio/internal/domain/lifecycle"
	"portfolio/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderNoop   = "noop"
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the backend named by pubsub.provider and closes it
// when the application stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	publisher, err := newPublisher(ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}

	switch cfg.Provider {
	case "", ProviderNoop:
		logger.Info("Event publishing disabled")

		return noopPublisher{logger: logger}, nil
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Pushing events to local endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.TopicID, logger), nil
	case ProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

type noopPublisher struct {
	logger *slog.Logger
}

func (p noopPublisher) Publish(_ context.Context, event *service.DomainEvent) error {
	p.logger.Debug("Event dropped", slog.String("type", event.Type), slog.String("event_id", event.EventID))

	return nil
}

func (noopPublisher) Close() error { return nil }

// eventAttributes flattens the routing fields next to the event's own
// attributes so subscribers can filter without decoding the payload.
func eventAttributes(event *service.DomainEvent) map[string]string {
	attributes := make(map[string]string, len(event.Attributes)+3)
	for k, v := range event.Attributes {
		attributes[k] = v
	}
	attributes["event_id"] = event.EventID
	attributes["type"] = event.Type
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
