package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/config"
	"portfolio/internal/delivery/api/response"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"
	mockUsecase "portfolio/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig(env string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env

	return cfg
}

func serve(e *echo.Echo, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New(), Username: "admin", Email: "a@x.com"}

	setup := func(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		m := NewAuthMiddleware(authUC)

		e := echo.New()
		e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.DiscardHandler), newTestConfig(config.EnvProduction)).HandleHTTPError
		e.GET("/admin", func(c echo.Context) error {
			return c.JSON(http.StatusOK, deliverycontext.GetIdentity(c))
		}, m.Authenticate)

		return e, authUC
	}

	rejected := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic YWRtaW46c2VjcmV0"},
		{name: "empty bearer", header: "Bearer   "},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := setup(t)

			rec := serve(e, tc.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message":"Not authorized"`)
		})
	}

	failures := []struct {
		name string
		err  error
	}{
		{name: "invalid token", err: service.ErrInvalidToken},
		{name: "expired token", err: service.ErrExpiredToken},
		{name: "deleted subject", err: errors.Wrap(domainerrors.ErrUserNotFound, "gone")},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			e, authUC := setup(t)
			authUC.EXPECT().ResolveIdentity(mock.Anything, "tok").Return(nil, tc.err).Once()

			rec := serve(e, "Bearer tok")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Not authorized", body.Message)
			assert.Equal(t, domainerrors.CodeUnauthenticated, body.Code)
		})
	}

	t.Run("storage failure is not masked as 401", func(t *testing.T) {
		e, authUC := setup(t)
		authUC.EXPECT().ResolveIdentity(mock.Anything, "tok").
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find user")).Once()

		rec := serve(e, "Bearer tok")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("attaches identity", func(t *testing.T) {
		e, authUC := setup(t)
		authUC.EXPECT().ResolveIdentity(mock.Anything, "tok").Return(identity, nil).Once()

		rec := serve(e, "bearer tok")

		require.Equal(t, http.StatusOK, rec.Code)
		var got entity.Identity
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, *identity, got)
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	render := func(env string, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
		m := NewErrorMiddleware(slog.New(slog.DiscardHandler), newTestConfig(env))
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		deliverycontext.SetRequestID(c, "req-1")

		m.HandleHTTPError(err, c)

		var body response.ErrorResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &body)

		return rec, body
	}

	t.Run("app error outside production carries stack", func(t *testing.T) {
		rec, body := render(config.EnvDevelopment, errors.WithStack(domainerrors.ErrNotFound.WithMessage("Blog post not found")))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Blog post not found", body.Message)
		assert.Equal(t, domainerrors.CodeNotFound, body.Code)
		assert.Equal(t, "req-1", body.RequestID)
		assert.Contains(t, body.Stack, "Blog post not found")
	})

	t.Run("production hides stack", func(t *testing.T) {
		rec, body := render(config.EnvProduction, errors.WithStack(domainerrors.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, body.Stack)
		assert.NotContains(t, rec.Body.String(), "stack")
	})

	t.Run("echo error keeps status", func(t *testing.T) {
		rec, body := render(config.EnvProduction, echo.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found", body.Message)
	})

	t.Run("unknown error is a generic 500", func(t *testing.T) {
		rec, body := render(config.EnvProduction, errors.New("pq: relation does not exist"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", body.Message)
		assert.NotContains(t, rec.Body.String(), "relation")
	})
}
