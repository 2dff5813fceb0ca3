package errors

import (
	"net/http"
	"testing"

	"portfolio/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithMessageKeepsIdentity(t *testing.T) {
	err := ErrDuplicateResource.WithMessagef("Project with slug '%s' already exists.", "demo")

	assert.True(t, errors.Is(err, ErrDuplicateResource))
	assert.False(t, errors.Is(err, ErrUserAlreadyExists))
	assert.Equal(t, "Project with slug 'demo' already exists.", err.Message())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestBaseError_WrapMessageUnwrapsToAppError(t *testing.T) {
	wrapped := ErrUserAlreadyExists.WrapMessage("email already exists")

	appErr, ok := errors.AsType[AppError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeDuplicateUser, appErr.ErrorCode())
	assert.Equal(t, "User already exists", appErr.Message())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to list projects")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to list projects", err.Details())
}
