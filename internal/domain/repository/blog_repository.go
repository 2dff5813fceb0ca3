package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBlogPostNotFound is returned when no post matches the lookup.
var ErrBlogPostNotFound = errors.New("blog post not found")

// BlogRepository persists blog posts.
type BlogRepository interface {
	// List returns every post, newest first.
	List(ctx context.Context) ([]*entity.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	Create(ctx context.Context, post *entity.BlogPost) error
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
