// Package session holds the admin client's authentication state: the persisted
// token plus the in-memory status derived from it.
package session

import (
	"context"
	"log/slog"
	"sync"

	"portfolio/internal/client/api"
	"portfolio/internal/domain/entity"
	"portfolio/internal/errors"
)

// DefaultLoginPath is where an expired session is sent.
const DefaultLoginPath = "/admin/login"

// Status is the coarse view of State used by the route gate.
type Status int

const (
	StatusLoading Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session.
type State struct {
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	User            *entity.Identity // Absent until a bootstrap resolves it
}

// Status derives the route gate input from s.
func (s State) Status() Status {
	switch {
	case s.IsLoading:
		return StatusLoading
	case s.IsAuthenticated:
		return StatusAuthenticated
	default:
		return StatusUnauthenticated
	}
}

// Verifier resolves a token to its identity over the wire. *api.Client implements it.
type Verifier interface {
	Me(ctx context.Context, token string) (*entity.Identity, error)
}

// Store owns the session state. All transitions are serialised; listeners run
// after the lock is released, in subscription order.
type Store struct {
	storage    TokenStorage
	verifier   Verifier
	logger     *slog.Logger
	loginPath  string
	onRedirect func(path string)

	mu         sync.Mutex
	state      State
	generation uint64
	closed     bool
	listeners  []listener
	nextID     int
}

type listener struct {
	id int
	fn func(State)
}

// Option customises a Store.
type Option func(*Store)

// WithLogger sets the logger for transition failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithLoginPath sets the path passed to the redirect callback.
func WithLoginPath(path string) Option {
	return func(s *Store) {
		if path != "" {
			s.loginPath = path
		}
	}
}

// WithRedirect registers the navigation callback run after an implicit logout.
func WithRedirect(fn func(path string)) Option {
	return func(s *Store) {
		s.onRedirect = fn
	}
}

// NewStore returns a store in the loading state. Call Bootstrap to settle it.
func NewStore(storage TokenStorage, verifier Verifier, opts ...Option) *Store {
	s := &Store{
		storage:   storage,
		verifier:  verifier,
		logger:    slog.New(slog.DiscardHandler),
		loginPath: DefaultLoginPath,
		state:     State{IsLoading: true},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Status is State().Status().
func (s *Store) Status() Status {
	return s.State().Status()
}

// LoginPath is the entry point unauthenticated users are sent to.
func (s *Store) LoginPath() string {
	return s.loginPath
}

// Subscribe registers fn for every transition and returns its cancel func.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)

				return
			}
		}
	}
}

// Bootstrap validates the persisted token against the server.
//
// A rejected token is cleared. A transient failure leaves the session
// unauthenticated but keeps the token for the next attempt, and is returned.
// A result that arrives after a newer transition or after Close is dropped.
func (s *Store) Bootstrap(ctx context.Context) error {
	token, err := s.storage.Load()
	if err != nil {
		s.transition(State{})

		return errors.Wrap(err, "load session token")
	}

	if token == "" {
		s.transition(State{})

		return nil
	}

	gen, ok := s.transition(State{Token: token, IsLoading: true})
	if !ok {
		return nil
	}

	identity, err := s.verifier.Me(ctx, token)

	switch {
	case err == nil:
		s.transitionIf(gen, State{Token: token, IsAuthenticated: true, User: identity})

		return nil
	case errors.Is(err, api.ErrUnauthenticated):
		if s.transitionIf(gen, State{}) {
			if clearErr := s.storage.Clear(); clearErr != nil {
				s.logger.Warn("Failed to clear rejected session token", slog.Any("error", clearErr))
			}
		}

		return nil
	default:
		if !s.transitionIf(gen, State{}) {
			return nil
		}
		s.logger.Warn("Session bootstrap failed, keeping token", slog.Any("error", err))

		return errors.Wrap(err, "verify session token")
	}
}

// Login persists token and marks the session authenticated. The identity is
// left absent until the next bootstrap.
func (s *Store) Login(token string) error {
	if token == "" {
		return errors.New("empty session token")
	}
	if err := s.storage.Save(token); err != nil {
		return errors.Wrap(err, "persist session token")
	}

	s.transition(State{Token: token, IsAuthenticated: true})

	return nil
}

// Logout clears the persisted token and resets the state. The in-memory state
// is reset even if clearing storage fails.
func (s *Store) Logout() error {
	s.transition(State{})

	return errors.Wrap(s.storage.Clear(), "clear session token")
}

// Guard runs call with the current token. An ErrUnauthenticated result logs
// the session out and redirects to the login path, whatever call it came from.
func (s *Store) Guard(ctx context.Context, call func(ctx context.Context, token string) error) error {
	err := call(ctx, s.State().Token)
	if !errors.Is(err, api.ErrUnauthenticated) {
		return err
	}

	if logoutErr := s.Logout(); logoutErr != nil {
		s.logger.Warn("Failed to clear expired session", slog.Any("error", logoutErr))
	}
	if s.onRedirect != nil {
		s.onRedirect(s.loginPath)
	}

	return err
}

// Close stops notifications and discards in-flight bootstrap results.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.listeners = nil
}

// transition moves to next unconditionally and returns the new generation.
// It reports false once the store is closed.
func (s *Store) transition(next State) (uint64, bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return 0, false
	}
	s.generation++
	gen := s.generation
	s.state = next
	fns, snap := s.subscribers(), s.snapshot()
	s.mu.Unlock()

	notify(fns, snap)

	return gen, true
}

// transitionIf applies next only if no other transition happened since gen.
func (s *Store) transitionIf(gen uint64, next State) bool {
	s.mu.Lock()
	if s.closed || s.generation != gen {
		s.mu.Unlock()

		return false
	}
	s.generation++
	s.state = next
	fns, snap := s.subscribers(), s.snapshot()
	s.mu.Unlock()

	notify(fns, snap)

	return true
}

func (s *Store) snapshot() State {
	st := s.state
	if st.User != nil {
		user := *st.User
		st.User = &user
	}

	return st
}

func (s *Store) subscribers() []func(State) {
	fns := make([]func(State), 0, len(s.listeners))
	for _, l := range s.listeners {
		fns = append(fns, l.fn)
	}

	return fns
}

func notify(fns []func(State), st State) {
	for _, fn := range fns {
		fn(st)
	}
}
