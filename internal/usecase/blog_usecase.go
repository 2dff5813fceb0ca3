package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// BlogPostInput carries a create or update request. Empty fields are left
// untouched on update.
type BlogPostInput struct {
	Title           string
	Slug            string
	Category        string
	Excerpt         string
	MarkdownContent string
}

// BlogUsecase manages blog posts.
type BlogUsecase interface {
	List(ctx context.Context) ([]*entity.BlogPost, error)
	Get(ctx context.Context, slug string) (*entity.BlogPost, error)
	Create(ctx context.Context, input *BlogPostInput) (*entity.BlogPost, error)
	Update(ctx context.Context, slug string, input *BlogPostInput) (*entity.BlogPost, error)
	Delete(ctx context.Context, slug string) error
}
