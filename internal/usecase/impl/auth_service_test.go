package impl

import (
	"context"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	mockSvc "portfolio/internal/mocks/service"
	mockUsecase "portfolio/internal/mocks/usecase"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	credentials  *mockUsecase.MockCredentialStore
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	credentials := mockUsecase.NewMockCredentialStore(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		Credentials:  credentials,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		credentials:  credentials,
		tokenService: tokenService,
	}
}

func newAdmin() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "admin",
		Email:        "a@x.com",
		PasswordHash: "hashed",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and issues token", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newAdmin()

		fx.credentials.EXPECT().Create(ctx, "admin", "a@x.com", "secret123").Return(user, nil)
		fx.tokenService.EXPECT().Issue(user.ID).Return("token-T", nil)

		out, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "admin", Email: "a@x.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "token-T", out.Token)
		assert.Equal(t, entity.Identity{ID: user.ID, Username: "admin", Email: "a@x.com"}, out.Identity)
	})

	t.Run("missing fields", func(t *testing.T) {
		inputs := []*usecase.RegisterInput{
			{Email: "a@x.com", Password: "secret123"},
			{Username: "admin", Password: "secret123"},
			{Username: "admin", Email: "a@x.com"},
			{Username: "  ", Email: "a@x.com", Password: "secret123"},
		}

		for _, input := range inputs {
			fx := createTestAuthService(t)

			_, err := fx.service.Register(ctx, input)
			requireAppError(t, err, domainerrors.ErrValidationFailed, "Please provide username, email and password.")
		}
	})

	t.Run("duplicate user issues no token", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.credentials.EXPECT().Create(ctx, "admin", "a@x.com", "secret123").
			Return(nil, errors.WithStack(domainerrors.ErrUserAlreadyExists))

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "admin", Email: "a@x.com", Password: "secret123"})
		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newAdmin()

		fx.credentials.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
		fx.credentials.EXPECT().VerifyPassword(user, "secret123").Return(true)
		fx.tokenService.EXPECT().Issue(user.ID).Return("token-T", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "token-T", out.Token)
		assert.Equal(t, "admin", out.Identity.Username)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newAdmin()

		fx.credentials.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
		fx.credentials.EXPECT().VerifyPassword(user, "wrong").Return(false)
		fx.credentials.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)
		fx.credentials.EXPECT().VerifyPassword((*entity.User)(nil), "wrong").Return(false)

		_, wrongPassword := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})
		_, unknownEmail := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@x.com", Password: "wrong"})

		requireAppError(t, wrongPassword, domainerrors.ErrInvalidCredentials, "Invalid email or password")
		requireAppError(t, unknownEmail, domainerrors.ErrInvalidCredentials, "Invalid email or password")
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})

	t.Run("storage failure is not reported as bad credentials", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.credentials.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, errors.New("connection refused"))

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret123"})
		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves subject", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newAdmin()

		fx.tokenService.EXPECT().Verify("token-T").Return(user.ID, nil)
		fx.credentials.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		identity, err := fx.service.ResolveIdentity(ctx, "token-T")
		require.NoError(t, err)
		assert.Equal(t, user.Identity(), *identity)
	})

	t.Run("token errors pass through", func(t *testing.T) {
		for _, tokenErr := range []error{service.ErrInvalidToken, service.ErrExpiredToken} {
			fx := createTestAuthService(t)

			fx.tokenService.EXPECT().Verify("bad").Return(uuid.Nil, tokenErr)

			_, err := fx.service.ResolveIdentity(ctx, "bad")
			assert.ErrorIs(t, err, tokenErr)
		}
	})

	t.Run("deleted subject", func(t *testing.T) {
		fx := createTestAuthService(t)
		id := uuid.New()

		fx.tokenService.EXPECT().Verify("token-T").Return(id, nil)
		fx.credentials.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ResolveIdentity(ctx, "token-T")
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}
