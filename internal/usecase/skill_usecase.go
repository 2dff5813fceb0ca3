package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// SkillCategoryInput carries a create or full-replace request.
type SkillCategoryInput struct {
	Category string
	Skills   []string
}

// SkillUsecase manages skill categories. IDs arrive as raw path values and
// are validated here.
type SkillUsecase interface {
	List(ctx context.Context) ([]*entity.SkillCategory, error)
	Get(ctx context.Context, id string) (*entity.SkillCategory, error)
	Create(ctx context.Context, input *SkillCategoryInput) (*entity.SkillCategory, error)
	Update(ctx context.Context, id string, input *SkillCategoryInput) (*entity.SkillCategory, error)
	Delete(ctx context.Context, id string) error
}
