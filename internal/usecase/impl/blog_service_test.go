package impl

import (
	"context"
	"strings"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	mockRepo "portfolio/internal/mocks/repository"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBlogService(t *testing.T) (usecase.BlogUsecase, *mockRepo.MockBlogRepository) {
	blogRepo := mockRepo.NewMockBlogRepository(t)

	return NewBlogService(BlogServiceParams{BlogRepo: blogRepo, Logger: newDiscardLogger()}), blogRepo
}

func fullBlogInput() *usecase.BlogPostInput {
	return &usecase.BlogPostInput{
		Title:           "Edge AI",
		Slug:            "Edge-AI",
		Category:        "ML",
		Excerpt:         "Running models on microcontrollers",
		MarkdownContent: "# Edge AI",
	}
}

func TestBlogService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, blogRepo := createTestBlogService(t)

		blogRepo.EXPECT().FindBySlug(ctx, "edge-ai").Return(nil, repository.ErrBlogPostNotFound)
		blogRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.BlogPost) bool {
			return p.Slug == "edge-ai" && p.Title == "Edge AI"
		})).Return(nil)

		post, err := svc.Create(ctx, fullBlogInput())
		require.NoError(t, err)
		assert.Equal(t, "edge-ai", post.Slug)
	})

	t.Run("all fields required", func(t *testing.T) {
		svc, _ := createTestBlogService(t)
		input := fullBlogInput()
		input.Excerpt = ""

		_, err := svc.Create(ctx, input)
		requireAppError(t, err, domainerrors.ErrValidationFailed, "All fields are required for blog post.")
	})

	t.Run("excerpt length", func(t *testing.T) {
		svc, _ := createTestBlogService(t)
		input := fullBlogInput()
		input.Excerpt = strings.Repeat("e", entity.MaxExcerptLength+1)

		_, err := svc.Create(ctx, input)
		requireAppError(t, err, domainerrors.ErrValidationFailed, "Excerpt cannot be more than 200 characters")
	})

	t.Run("duplicate slug", func(t *testing.T) {
		svc, blogRepo := createTestBlogService(t)

		blogRepo.EXPECT().FindBySlug(ctx, "edge-ai").Return(&entity.BlogPost{Slug: "edge-ai"}, nil)

		_, err := svc.Create(ctx, fullBlogInput())
		requireAppError(t, err, domainerrors.ErrDuplicateResource, "Blog post with slug 'edge-ai' already exists.")
	})
}

func TestBlogService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("empty fields are kept", func(t *testing.T) {
		svc, blogRepo := createTestBlogService(t)
		post := &entity.BlogPost{ID: uuid.New(), Title: "Old", Slug: "old", Category: "ML", Excerpt: "e", MarkdownContent: "m"}

		blogRepo.EXPECT().FindBySlug(ctx, "old").Return(post, nil)
		blogRepo.EXPECT().Update(ctx, post).Return(nil)

		updated, err := svc.Update(ctx, "old", &usecase.BlogPostInput{Title: "New"})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Title)
		assert.Equal(t, "old", updated.Slug)
		assert.Equal(t, "m", updated.MarkdownContent)
	})

	t.Run("slug conflict", func(t *testing.T) {
		svc, blogRepo := createTestBlogService(t)

		blogRepo.EXPECT().FindBySlug(ctx, "old").Return(&entity.BlogPost{ID: uuid.New(), Slug: "old"}, nil)
		blogRepo.EXPECT().FindBySlug(ctx, "taken").Return(&entity.BlogPost{ID: uuid.New(), Slug: "taken"}, nil)

		_, err := svc.Update(ctx, "old", &usecase.BlogPostInput{Slug: "taken"})
		requireAppError(t, err, domainerrors.ErrDuplicateResource, "Cannot change slug to 'taken', it already exists.")
	})
}

func TestBlogService_GetAndDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	svc, blogRepo := createTestBlogService(t)

	blogRepo.EXPECT().FindBySlug(ctx, "missing").Return(nil, repository.ErrBlogPostNotFound)

	_, err := svc.Get(ctx, "missing")
	requireAppError(t, err, domainerrors.ErrNotFound, "Blog post not found")

	err = svc.Delete(ctx, "missing")
	requireAppError(t, err, domainerrors.ErrNotFound, "Blog post not found")
}
