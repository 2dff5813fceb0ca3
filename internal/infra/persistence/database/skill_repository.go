package database

import (
	"context"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/errors"
	"portfolio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a GORM-backed SkillRepository.
func NewSkillRepository(db *gorm.DB) repository.SkillRepository {
	return &skillRepository{db: db}
}

func (repo *skillRepository) List(ctx context.Context) ([]*entity.SkillCategory, error) {
	var rows []*model.SkillCategoryModel
	if err := repo.db.WithContext(ctx).Order("category ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list skill categories")
	}

	categories := make([]*entity.SkillCategory, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toSkillDomain(row))
	}

	return categories, nil
}

func (repo *skillRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SkillCategory, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *skillRepository) FindByCategory(ctx context.Context, category string) (*entity.SkillCategory, error) {
	return repo.first(ctx, "category = ?", category)
}

func (repo *skillRepository) first(ctx context.Context, query string, arg any) (*entity.SkillCategory, error) {
	var row model.SkillCategoryModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&row).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSkillCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find skill category")
	}

	return toSkillDomain(&row), nil
}

func (repo *skillRepository) Create(ctx context.Context, category *entity.SkillCategory) error {
	row := fromSkillDomain(category)
	if row.ID == uuid.Nil {
		row.ID = newID()
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateResource.WithMessagef("Skill category '%s' already exists", row.Category)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create skill category")
	}

	category.ID = row.ID
	category.CreatedAt = row.CreatedAt
	category.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *skillRepository) Update(ctx context.Context, category *entity.SkillCategory) error {
	row := fromSkillDomain(category)
	row.UpdatedAt = repo.db.NowFunc()

	result := repo.db.WithContext(ctx).
		Model(&model.SkillCategoryModel{}).
		Where("id = ?", row.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(row)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateResource.WithMessagef("Cannot rename category to '%s', as it already exists.", row.Category)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update skill category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSkillCategoryNotFound
	}

	category.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *skillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SkillCategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete skill category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSkillCategoryNotFound
	}

	return nil
}

func toSkillDomain(data *model.SkillCategoryModel) *entity.SkillCategory {
	skills := data.Skills
	if skills == nil {
		skills = []string{}
	}

	return &entity.SkillCategory{
		ID:        data.ID,
		Category:  data.Category,
		Skills:    skills,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSkillDomain(data *entity.SkillCategory) *model.SkillCategoryModel {
	return &model.SkillCategoryModel{
		ID:       data.ID,
		Category: data.Category,
		Skills:   data.Skills,
	}
}
