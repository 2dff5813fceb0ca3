// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const ephemeralSecretBytes = 32

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte           // Key for signing and verifying tokens.
	ttl    time.Duration    // Validity window of issued tokens.
	now    func() time.Time // Clock, swapped in tests.
}

// NewJWTService is the constructor for jwtService.
// Without a configured secret a random one is generated, so tokens do not
// survive a restart; Config.Validate only allows that outside production.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	secret := []byte(cfg.SecretKey.Token)
	if len(secret) == 0 {
		buf := make([]byte, ephemeralSecretBytes)
		if _, err := rand.Read(buf); err != nil {
			return nil, errors.Wrap(err, "generate ephemeral token secret")
		}
		secret = []byte(hex.EncodeToString(buf))
		logger.Warn("secretKey.token is empty, using an ephemeral signing secret")
	}

	return newJWTService(secret, cfg.Auth.TokenTTL, time.Now), nil
}

func newJWTService(secret []byte, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: secret,
		ttl:    ttl,
		now:    now,
	}
}

// Issue creates a signed token for subjectID.
func (s *jwtService) Issue(subjectID uuid.UUID) (string, error) {
	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify checks the signature first and the expiry second; nothing from an
// unverified token is returned.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, service.ErrExpiredToken
		}

		return uuid.Nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(service.ErrInvalidToken, "subject is not a valid id")
	}

	return subjectID, nil
}

// TTL returns the fixed validity window of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
