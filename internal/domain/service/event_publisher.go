package service

import (
	"context"
	"time"
)

// Event types published by the API.
const (
	EventContactReceived = "contact.received"
	EventProjectViewed   = "project.viewed"
)

// DomainEvent is a fire-and-forget notification about something that happened
// on the site, consumed by downstream workers.
type DomainEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventID    string            `json:"event_id"`
	Type       string            `json:"type"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event for async processing
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
