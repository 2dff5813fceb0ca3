package service

import "context"

// ActivityRecorder counts site activity for the metrics endpoint.
type ActivityRecorder interface {
	ProjectViewed(ctx context.Context, slug string)
	ContactReceived(ctx context.Context)
	ChatAnswered(ctx context.Context, cached bool)
}
