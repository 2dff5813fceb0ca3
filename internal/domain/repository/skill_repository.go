package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSkillCategoryNotFound is returned when no skill category matches the lookup.
var ErrSkillCategoryNotFound = errors.New("skill category not found")

// SkillRepository persists skill categories.
type SkillRepository interface {
	// List returns every category ordered by name.
	List(ctx context.Context) ([]*entity.SkillCategory, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SkillCategory, error)
	FindByCategory(ctx context.Context, category string) (*entity.SkillCategory, error)
	Create(ctx context.Context, category *entity.SkillCategory) error
	Update(ctx context.Context, category *entity.SkillCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}
