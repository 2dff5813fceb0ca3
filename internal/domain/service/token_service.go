package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned for malformed tokens, bad signatures and unexpected algorithms.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned for correctly signed tokens past their expiry.
	ErrExpiredToken = errors.New("token has expired")
)

// TokenService issues and verifies signed, time-limited bearer tokens.
// Tokens carry only the subject identifier; nothing is stored server-side.
type TokenService interface {
	// Issue creates a token for subjectID expiring after TTL.
	Issue(subjectID uuid.UUID) (string, error)

	// Verify returns the embedded subject, or ErrInvalidToken / ErrExpiredToken.
	Verify(token string) (uuid.UUID, error)

	// TTL returns the fixed validity window of issued tokens.
	TTL() time.Duration
}
