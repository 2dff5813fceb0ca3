package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when no project matches the lookup.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	// List returns every project, newest first.
	List(ctx context.Context) ([]*entity.Project, error)

	FindBySlug(ctx context.Context, slug string) (*entity.Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// Create and Update report slug or title collisions as domainerrors.ErrDuplicateResource.
	Create(ctx context.Context, project *entity.Project) error
	Update(ctx context.Context, project *entity.Project) error

	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
