// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create the admin account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for the admin to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by register and login: the public identity plus a
// freshly issued session token.
type AuthOutput struct {
	Identity entity.Identity
	Token    string
}

// AuthUsecase defines the registration, login and token resolution flow.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// ResolveIdentity verifies token and loads its subject. It returns the
	// token error (service.ErrInvalidToken, service.ErrExpiredToken) or
	// domainerrors.ErrUserNotFound unchanged; callers decide how to present them.
	ResolveIdentity(ctx context.Context, token string) (*entity.Identity, error)
}
