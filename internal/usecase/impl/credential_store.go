package impl

import (
	"context"
	"strings"
	"sync"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown email, so both failure paths pay for a full hash comparison.
const dummyPassword = "portfolio-credential-placeholder"

type credentialStore struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	dummyHash func() string
}

// CredentialStoreParams holds dependencies for CredentialStore, injected by Fx.
type CredentialStoreParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
}

// NewCredentialStore composes the user repository and the password hasher.
func NewCredentialStore(params CredentialStoreParams) usecase.CredentialStore {
	hasher := params.Hasher

	return &credentialStore{
		userRepo: params.UserRepo,
		hasher:   hasher,
		dummyHash: sync.OnceValue(func() string {
			hash, err := hasher.Hash(dummyPassword)
			if err != nil {
				return ""
			}

			return hash
		}),
	}
}

func (s *credentialStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.userRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
}

func (s *credentialStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *credentialStore) Create(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = entity.NormalizeEmail(email)

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing credentials")
	}
	if exists {
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	// The unique indexes on username and email are the real guard; a
	// concurrent registration that passed the check above fails here.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *credentialStore) VerifyPassword(user *entity.User, password string) bool {
	if user == nil {
		s.hasher.Check(password, s.dummyHash())

		return false
	}

	return s.hasher.Check(password, user.PasswordHash)
}
