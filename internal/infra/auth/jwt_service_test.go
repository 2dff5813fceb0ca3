package auth

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_token_secret_key_very_long_for_testing"

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestJWTService(clock *fakeClock) *jwtService {
	return newJWTService([]byte(testSecret), 30*24*time.Hour, clock.Now)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(clock)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	// Still valid one second before expiry.
	clock.t = clock.t.Add(30*24*time.Hour - time.Second)
	got, err = svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(clock)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	clock.t = clock.t.Add(30 * 24 * time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrExpiredToken)

	clock.t = clock.t.Add(time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrExpiredToken)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	clock := &fakeClock{t: time.Now().Truncate(time.Second)}
	svc := newTestJWTService(clock)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flipping the high bit of each base64url digit always changes the decoded bytes.
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	sig := []byte(parts[2])
	for i := range sig {
		flipped := make([]byte, len(sig))
		copy(flipped, sig)
		idx := strings.IndexByte(alphabet, flipped[i])
		require.GreaterOrEqual(t, idx, 0)
		flipped[i] = alphabet[idx^32]
		tampered := parts[0] + "." + parts[1] + "." + string(flipped)

		_, err := svc.Verify(tampered)
		assert.ErrorIs(t, err, service.ErrInvalidToken, "signature position %d", i)
	}
}

func TestJWTService_TamperedExpiredTokenIsInvalidNotExpired(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(clock)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	clock.t = clock.t.Add(365 * 24 * time.Hour)
	_, err = svc.Verify(token + "x")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	clock := &fakeClock{t: time.Now().Truncate(time.Second)}
	issuer := newJWTService([]byte("another-secret"), time.Hour, clock.Now)
	verifier := newTestJWTService(clock)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	clock := &fakeClock{t: time.Now().Truncate(time.Second)}
	svc := newTestJWTService(clock)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_MissingExpiryOrBadSubject(t *testing.T) {
	clock := &fakeClock{t: time.Now().Truncate(time.Second)}
	svc := newTestJWTService(clock)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Verify(noExp)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	badSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Verify(badSub)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Garbage(t *testing.T) {
	svc := newTestJWTService(&fakeClock{t: time.Now()})

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken, token)
	}
}

func TestNewJWTService_EphemeralSecret(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewJWTService(cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.TTL())

	userID := uuid.New()
	token, err := svc.Issue(userID)
	require.NoError(t, err)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
