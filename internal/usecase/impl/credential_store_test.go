package impl

import (
	"context"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	mockRepo "portfolio/internal/mocks/repository"
	mockSvc "portfolio/internal/mocks/service"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCredentialStore(t *testing.T) (usecase.CredentialStore, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return NewCredentialStore(CredentialStoreParams{UserRepo: userRepo, Hasher: hasher}), userRepo, hasher
}

func TestCredentialStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and hashes", func(t *testing.T) {
		store, userRepo, hasher := createTestCredentialStore(t)

		userRepo.EXPECT().ExistsByUsernameOrEmail(ctx, "admin", "a@x.com").Return(false, nil)
		hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "admin" && u.Email == "a@x.com" && u.PasswordHash == "hashed"
		})).RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = uuid.New()

			return nil
		})

		user, err := store.Create(ctx, " admin ", " A@X.com ", "secret123")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "hashed", user.PasswordHash)
	})

	t.Run("existing identifier", func(t *testing.T) {
		store, userRepo, _ := createTestCredentialStore(t)

		userRepo.EXPECT().ExistsByUsernameOrEmail(ctx, "admin", "a@x.com").Return(true, nil)

		_, err := store.Create(ctx, "admin", "a@x.com", "secret123")
		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})

	t.Run("unique index wins a race", func(t *testing.T) {
		store, userRepo, hasher := createTestCredentialStore(t)

		userRepo.EXPECT().ExistsByUsernameOrEmail(ctx, "admin", "a@x.com").Return(false, nil)
		hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		userRepo.EXPECT().Create(ctx, mock.Anything).
			Return(domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists"))

		_, err := store.Create(ctx, "admin", "a@x.com", "secret123")
		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})

	t.Run("hash failure", func(t *testing.T) {
		store, userRepo, hasher := createTestCredentialStore(t)

		userRepo.EXPECT().ExistsByUsernameOrEmail(ctx, "admin", "a@x.com").Return(false, nil)
		hasher.EXPECT().Hash("secret123").Return("", errors.New("entropy"))

		_, err := store.Create(ctx, "admin", "a@x.com", "secret123")
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	})
}

func TestCredentialStore_FindByEmailNormalizes(t *testing.T) {
	store, userRepo, _ := createTestCredentialStore(t)
	user := &entity.User{ID: uuid.New(), Email: "a@x.com"}

	userRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(user, nil)

	got, err := store.FindByEmail(context.Background(), "  A@x.COM")
	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestCredentialStore_VerifyPassword(t *testing.T) {
	t.Run("known user", func(t *testing.T) {
		store, _, hasher := createTestCredentialStore(t)

		hasher.EXPECT().Check("secret123", "hashed").Return(true)

		assert.True(t, store.VerifyPassword(&entity.User{PasswordHash: "hashed"}, "secret123"))
	})

	t.Run("unknown user still compares once against a dummy hash", func(t *testing.T) {
		store, _, hasher := createTestCredentialStore(t)

		hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
		hasher.EXPECT().Check("secret123", "dummy-hash").Return(true).Twice()

		assert.False(t, store.VerifyPassword(nil, "secret123"))
		assert.False(t, store.VerifyPassword(nil, "secret123"))
	})
}
