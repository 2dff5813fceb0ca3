package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"portfolio/internal/client/api"
	"portfolio/internal/domain/entity"
	"portfolio/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifierFunc adapts a function to Verifier.
type verifierFunc func(ctx context.Context, token string) (*entity.Identity, error)

func (f verifierFunc) Me(ctx context.Context, token string) (*entity.Identity, error) {
	return f(ctx, token)
}

var admin = &entity.Identity{ID: uuid.New(), Username: "admin", Email: "a@x.com"}

func acceptAll(_ context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, api.ErrUnauthenticated
	}

	return admin, nil
}

func TestStore_InitialStateIsLoading(t *testing.T) {
	s := NewStore(NewMemoryStorage(""), verifierFunc(acceptAll))

	assert.Equal(t, StatusLoading, s.Status())
}

func TestStore_Bootstrap(t *testing.T) {
	ctx := context.Background()

	t.Run("no token settles unauthenticated without a network call", func(t *testing.T) {
		s := NewStore(NewMemoryStorage(""), verifierFunc(func(context.Context, string) (*entity.Identity, error) {
			t.Fatal("verifier must not be called")

			return nil, nil
		}))

		require.NoError(t, s.Bootstrap(ctx))
		assert.Equal(t, State{}, s.State())
	})

	t.Run("accepted token authenticates with user", func(t *testing.T) {
		s := NewStore(NewMemoryStorage("T"), verifierFunc(acceptAll))

		require.NoError(t, s.Bootstrap(ctx))

		st := s.State()
		assert.True(t, st.IsAuthenticated)
		assert.False(t, st.IsLoading)
		assert.Equal(t, "T", st.Token)
		assert.Equal(t, admin, st.User)
	})

	t.Run("rejected token is cleared", func(t *testing.T) {
		storage := NewMemoryStorage("expired")
		s := NewStore(storage, verifierFunc(func(context.Context, string) (*entity.Identity, error) {
			return nil, api.ErrUnauthenticated
		}))

		require.NoError(t, s.Bootstrap(ctx))

		assert.Equal(t, StatusUnauthenticated, s.Status())
		assert.Nil(t, s.State().User)
		token, _ := storage.Load()
		assert.Empty(t, token)
	})

	t.Run("transient failure keeps the token", func(t *testing.T) {
		storage := NewMemoryStorage("T")
		s := NewStore(storage, verifierFunc(func(context.Context, string) (*entity.Identity, error) {
			return nil, errors.Join(api.ErrTransient, errors.New("timeout"))
		}))

		err := s.Bootstrap(ctx)

		require.Error(t, err)
		assert.True(t, errors.Is(err, api.ErrTransient))
		assert.Equal(t, StatusUnauthenticated, s.Status())
		token, _ := storage.Load()
		assert.Equal(t, "T", token)
	})

	t.Run("loading is visible while verification is in flight", func(t *testing.T) {
		var seen []Status
		s := NewStore(NewMemoryStorage("T"), verifierFunc(acceptAll))
		s.Subscribe(func(st State) { seen = append(seen, st.Status()) })

		require.NoError(t, s.Bootstrap(ctx))

		assert.Equal(t, []Status{StatusLoading, StatusAuthenticated}, seen)
	})
}

func TestStore_StaleBootstrapIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	storage := NewMemoryStorage("old")
	s := NewStore(storage, verifierFunc(func(context.Context, string) (*entity.Identity, error) {
		close(started)
		<-release

		return nil, api.ErrUnauthenticated
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Bootstrap(context.Background())
	}()

	<-started
	require.NoError(t, s.Login("fresh"))
	close(release)
	wg.Wait()

	st := s.State()
	assert.True(t, st.IsAuthenticated)
	assert.Equal(t, "fresh", st.Token)
	token, _ := storage.Load()
	assert.Equal(t, "fresh", token, "late rejection must not clear the newer token")
}

func TestStore_ClosedStoreIgnoresBootstrapResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	s := NewStore(NewMemoryStorage("T"), verifierFunc(func(context.Context, string) (*entity.Identity, error) {
		close(started)
		<-release

		return admin, nil
	}))

	notified := 0
	s.Subscribe(func(State) { notified++ })

	done := make(chan error)
	go func() { done <- s.Bootstrap(context.Background()) }()

	<-started
	s.Close()
	close(release)

	require.NoError(t, <-done)
	assert.Equal(t, 1, notified, "only the loading transition before Close")
	assert.False(t, s.State().IsAuthenticated)
}

func TestStore_LoginLogout(t *testing.T) {
	storage := NewMemoryStorage("")
	s := NewStore(storage, verifierFunc(acceptAll))

	require.NoError(t, s.Login("T"))
	st := s.State()
	assert.Equal(t, State{Token: "T", IsAuthenticated: true}, st)
	assert.Nil(t, st.User, "login does not fetch the identity")
	token, _ := storage.Load()
	assert.Equal(t, "T", token)

	require.NoError(t, s.Logout())
	assert.Equal(t, State{}, s.State())
	token, _ = storage.Load()
	assert.Empty(t, token)

	assert.Error(t, s.Login(""))
}

func TestStore_LoginThenReload(t *testing.T) {
	storage := NewMemoryStorage("")
	first := NewStore(storage, verifierFunc(acceptAll))
	require.NoError(t, first.Login("T"))
	first.Close()

	reloaded := NewStore(storage, verifierFunc(acceptAll))
	require.NoError(t, reloaded.Bootstrap(context.Background()))

	assert.Equal(t, StatusAuthenticated, reloaded.Status())
	assert.Equal(t, admin, reloaded.State().User)
}

func TestStore_Guard(t *testing.T) {
	ctx := context.Background()

	t.Run("401 logs out and redirects", func(t *testing.T) {
		var redirected []string
		storage := NewMemoryStorage("")
		s := NewStore(storage, verifierFunc(acceptAll),
			WithLoginPath("/login"),
			WithRedirect(func(path string) { redirected = append(redirected, path) }),
		)
		require.NoError(t, s.Login("T"))

		var gotToken string
		err := s.Guard(ctx, func(_ context.Context, token string) error {
			gotToken = token

			return api.ErrUnauthenticated
		})

		assert.ErrorIs(t, err, api.ErrUnauthenticated)
		assert.Equal(t, "T", gotToken)
		assert.Equal(t, []string{"/login"}, redirected)
		assert.Equal(t, StatusUnauthenticated, s.Status())
		token, _ := storage.Load()
		assert.Empty(t, token)
	})

	t.Run("other failures keep the session", func(t *testing.T) {
		redirected := false
		s := NewStore(NewMemoryStorage(""), verifierFunc(acceptAll), WithRedirect(func(string) { redirected = true }))
		require.NoError(t, s.Login("T"))

		err := s.Guard(ctx, func(context.Context, string) error {
			return &api.Error{Status: 404, Message: "Project not found"}
		})

		assert.Error(t, err)
		assert.False(t, redirected)
		assert.Equal(t, StatusAuthenticated, s.Status())
	})
}

func TestStore_Unsubscribe(t *testing.T) {
	s := NewStore(NewMemoryStorage(""), verifierFunc(acceptAll))
	calls := 0
	cancel := s.Subscribe(func(State) { calls++ })

	require.NoError(t, s.Login("T"))
	cancel()
	require.NoError(t, s.Logout())

	assert.Equal(t, 1, calls)
}

func TestStore_StateIsACopy(t *testing.T) {
	s := NewStore(NewMemoryStorage("T"), verifierFunc(acceptAll))
	require.NoError(t, s.Bootstrap(context.Background()))

	st := s.State()
	st.User.Username = "mutated"

	assert.Equal(t, "admin", s.State().User.Username)
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	storage := NewFileStorage(path)

	token, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, storage.Save("T"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err = storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "T", token)

	require.NoError(t, storage.Clear())
	require.NoError(t, storage.Clear(), "clearing twice is fine")
	token, err = storage.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
