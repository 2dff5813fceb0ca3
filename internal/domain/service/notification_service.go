package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// NotifyAdmins pushes a message to every device subscribed to the admin topic.
	NotifyAdmins(ctx context.Context, title, body string, data map[string]string) error
}
