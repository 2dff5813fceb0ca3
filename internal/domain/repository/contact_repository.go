package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContactMessageNotFound is returned when no message matches the lookup.
var ErrContactMessageNotFound = errors.New("contact message not found")

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	// List returns every message, newest first.
	List(ctx context.Context) ([]*entity.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
}
