package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/delivery/api/response"
	deliverycontext "portfolio/internal/delivery/context"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/errors"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login and the current identity.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /auth/register. Presence is checked by
// the use case so the error message stays the same for every missing field.
type RegisterRequest struct {
	Username string `json:"username" validate:"max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"max=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Token    string    `json:"token"`
	Message  string    `json:"message,omitempty"`
}

func newAuthResponse(output *usecase.AuthOutput, message string) *AuthResponse {
	return &AuthResponse{
		ID:       output.Identity.ID,
		Username: output.Identity.Username,
		Email:    output.Identity.Email,
		Token:    output.Token,
		Message:  message,
	}
}

// Register creates the admin account and returns its first token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(output, ""))
}

// Login exchanges credentials for a token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output, "Login successful"))
}

// Me returns the identity attached by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return response.Success(c, http.StatusOK, identity)
}
