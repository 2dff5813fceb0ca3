package impl

import (
	"io"
	"log/slog"
	"testing"

	domainerrors "portfolio/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// requireAppError asserts err carries target's code and the given message.
func requireAppError(t *testing.T, err error, target error, message string) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, errors.Is(err, target), "expected %v, got %v", target, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, message, appErr.Message())
}
