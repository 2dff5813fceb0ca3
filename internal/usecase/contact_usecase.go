package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// ContactInput is a public contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactUsecase stores contact messages and alerts the admin.
type ContactUsecase interface {
	// Submit persists the message, then publishes an event and notifies the
	// admin devices. Only the persistence step can fail the call.
	Submit(ctx context.Context, input *ContactInput) (*entity.ContactMessage, error)

	List(ctx context.Context) ([]*entity.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*entity.ContactMessage, error)
}
