package session

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"portfolio/internal/errors"
)

// TokenStorage persists the session token between runs. It is the only
// client-side state that survives a restart.
type TokenStorage interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStorage keeps the token in a single file readable only by its owner.
type FileStorage struct {
	path string
}

// NewFileStorage stores the token at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// DefaultTokenPath is ~/.config/portfolio/token, or the equivalent per OS.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve user config dir")
	}

	return filepath.Join(dir, "portfolio", "token"), nil
}

func (s *FileStorage) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}

		return "", errors.Wrapf(err, "read token file %s", s.path)
	}

	return strings.TrimSpace(string(data)), nil
}

// Save writes through a temp file and rename so a crash never leaves a torn token.
func (s *FileStorage) Save(token string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrapf(err, "create token dir %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return errors.Wrap(err, "create temp token file")
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()

		return errors.Wrap(err, "chmod temp token file")
	}
	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()

		return errors.Wrap(err, "write temp token file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp token file")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replace token file")
}

func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "remove token file %s", s.path)
	}

	return nil
}

// MemoryStorage keeps the token for the lifetime of the process.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStorage(token string) *MemoryStorage {
	return &MemoryStorage{token: token}
}

func (s *MemoryStorage) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, nil
}

func (s *MemoryStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token

	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""

	return nil
}
