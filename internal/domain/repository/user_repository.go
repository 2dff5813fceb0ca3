// Package repository declares the storage contracts use cases are written
// against. Implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository stores admin credentials. Username and email uniqueness is
// enforced by the storage; Create reports a violation as
// domainerrors.ErrUserAlreadyExists.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail expects an already normalized address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByUsernameOrEmail reports whether either identifier is taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	Create(ctx context.Context, user *entity.User) error
}
