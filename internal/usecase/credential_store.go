package usecase

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
)

// CredentialStore owns the admin credential records: lookup, creation with a
// hashed password, and password verification.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create hashes password and persists a new record. It fails with
	// domainerrors.ErrUserAlreadyExists when the username or email is taken.
	Create(ctx context.Context, username, email, password string) (*entity.User, error)

	// VerifyPassword compares password against the stored hash. A nil user is
	// checked against a dummy hash so both failure paths cost the same.
	VerifyPassword(user *entity.User, password string) bool
}
