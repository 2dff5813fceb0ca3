package notification

import (
	"context"
	"log/slog"

	"portfolio/config"
	"portfolio/internal/domain/lifecycle"
	"portfolio/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// DefaultContactTopic is the FCM topic admin devices subscribe to.
const DefaultContactTopic = "portfolio-admin"

type firebaseService struct {
	client *messaging.Client
	topic  string
}

type noopNotificationService struct {
	logger *slog.Logger
}

// NewNotificationService returns the FCM sender when firebase is enabled and a
// logging no-op otherwise.
func NewNotificationService(cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	fb := cfg.Firebase
	if fb == nil || !fb.Enabled {
		logger.Info("Firebase not enabled, admin notifications disabled")

		return &noopNotificationService{logger: logger}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return NewFirebaseService(ctx, fb)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	topic := cfg.ContactTopic
	if topic == "" {
		topic = DefaultContactTopic
	}

	return &firebaseService{
		client: client,
		topic:  topic,
	}, nil
}

// NotifyAdmins sends a topic message to every subscribed admin device.
func (s *firebaseService) NotifyAdmins(ctx context.Context, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

func (s *noopNotificationService) NotifyAdmins(_ context.Context, title, _ string, _ map[string]string) error {
	s.logger.Debug("[NoopNotification] skipping admin notification", slog.String("title", title))

	return nil
}
