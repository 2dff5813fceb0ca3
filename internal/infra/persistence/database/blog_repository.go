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

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a GORM-backed BlogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

func (repo *blogRepository) List(ctx context.Context) ([]*entity.BlogPost, error) {
	var rows []*model.BlogPostModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list blog posts")
	}

	posts := make([]*entity.BlogPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, toBlogDomain(row))
	}

	return posts, nil
}

func (repo *blogRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	var row model.BlogPostModel
	err := repo.db.WithContext(ctx).Where("slug = ?", entity.NormalizeSlug(slug)).First(&row).Error
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrBlogPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog post")
	}

	return toBlogDomain(&row), nil
}

func (repo *blogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	row := fromBlogDomain(post)
	if row.ID == uuid.Nil {
		row.ID = newID()
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateResource.WithMessagef("Blog post with slug '%s' already exists.", row.Slug)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog post")
	}

	post.ID = row.ID
	post.Slug = row.Slug
	post.CreatedAt = row.CreatedAt
	post.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *blogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	row := fromBlogDomain(post)
	row.UpdatedAt = repo.db.NowFunc()

	result := repo.db.WithContext(ctx).
		Model(&model.BlogPostModel{}).
		Where("id = ?", row.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(row)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateResource.WithMessagef("Cannot change slug to '%s', it already exists.", row.Slug)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogPostNotFound
	}

	post.Slug = row.Slug
	post.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BlogPostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogPostNotFound
	}

	return nil
}

func (repo *blogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.BlogPostModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count blog posts")
	}

	return count, nil
}

func toBlogDomain(data *model.BlogPostModel) *entity.BlogPost {
	return &entity.BlogPost{
		ID:              data.ID,
		Title:           data.Title,
		Slug:            data.Slug,
		Category:        data.Category,
		Excerpt:         data.Excerpt,
		MarkdownContent: data.MarkdownContent,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromBlogDomain(data *entity.BlogPost) *model.BlogPostModel {
	return &model.BlogPostModel{
		ID:              data.ID,
		Title:           data.Title,
		Slug:            entity.NormalizeSlug(data.Slug),
		Category:        data.Category,
		Excerpt:         data.Excerpt,
		MarkdownContent: data.MarkdownContent,
	}
}
