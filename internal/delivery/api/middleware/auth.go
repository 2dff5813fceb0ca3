package middleware

import (
	"strings"

	deliverycontext "portfolio/internal/delivery/context"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "Bearer"

// AuthMiddleware guards admin routes with a bearer token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the bearer token into an identity and attaches it to
// the request. Every token or subject failure becomes the same 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		identity, err := m.authUC.ResolveIdentity(c.Request().Context(), token)
		if err != nil {
			if isAuthFailure(err) {
				return errors.WithStack(domainerrors.ErrUnauthenticated)
			}

			return errors.Wrap(err, "resolve identity")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func isAuthFailure(err error) bool {
	return errors.Is(err, service.ErrInvalidToken) ||
		errors.Is(err, service.ErrExpiredToken) ||
		errors.Is(err, domainerrors.ErrUserNotFound)
}
