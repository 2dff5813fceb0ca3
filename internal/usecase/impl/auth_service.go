// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	credentials  usecase.CredentialStore
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Credentials  usecase.CredentialStore
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		credentials:  params.Credentials,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the admin account. Registration is open: whoever calls it
// first gets a fully privileged account.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Please provide username, email and password.")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	user, err := srv.credentials.Create(ctx, input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Warn("Registration rejected, user exists", slog.String("username", input.Username))
		}

		return nil, err
	}

	output, err := srv.issue(user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registration completed", slog.Any("userID", user.ID))

	return output, nil
}

// Login checks the credentials. Unknown emails and wrong passwords produce the
// same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.credentials.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.credentials.VerifyPassword(user, input.Password) {
		srv.log(ctx).Warn("Login failed")

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	output, err := srv.issue(user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login successful", slog.Any("userID", user.ID))

	return output, nil
}

func (srv *authService) ResolveIdentity(ctx context.Context, token string) (*entity.Identity, error) {
	subjectID, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := srv.credentials.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, subjectID.String())
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	identity := user.Identity()

	return &identity, nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{
		Identity: user.Identity(),
		Token:    token,
	}, nil
}
