package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type blogService struct {
	blogRepo repository.BlogRepository
	logger   *slog.Logger
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	BlogRepo repository.BlogRepository
	Logger   *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		blogRepo: params.BlogRepo,
		logger:   params.Logger,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *blogService) List(ctx context.Context) ([]*entity.BlogPost, error) {
	posts, err := srv.blogRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	return posts, nil
}

func (srv *blogService) Get(ctx context.Context, slug string) (*entity.BlogPost, error) {
	post, err := srv.blogRepo.FindBySlug(ctx, entity.NormalizeSlug(slug))
	if err != nil {
		if errors.Is(err, repository.ErrBlogPostNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Blog post not found")
		}

		return nil, errors.Wrap(err, "failed to find blog post")
	}

	return post, nil
}

func (srv *blogService) Create(ctx context.Context, input *usecase.BlogPostInput) (*entity.BlogPost, error) {
	post := &entity.BlogPost{}
	applyBlogInput(post, input)

	if post.Title == "" || post.Slug == "" || post.Category == "" || post.Excerpt == "" || post.MarkdownContent == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("All fields are required for blog post.")
	}
	if err := validateExcerpt(post.Excerpt); err != nil {
		return nil, err
	}

	_, err := srv.blogRepo.FindBySlug(ctx, post.Slug)
	switch {
	case err == nil:
		return nil, domainerrors.ErrDuplicateResource.WithMessagef("Blog post with slug '%s' already exists.", post.Slug)
	case !errors.Is(err, repository.ErrBlogPostNotFound):
		return nil, errors.Wrap(err, "failed to check blog slug")
	}

	if err := srv.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Blog post created", slog.String("slug", post.Slug))

	return post, nil
}

func (srv *blogService) Update(ctx context.Context, slug string, input *usecase.BlogPostInput) (*entity.BlogPost, error) {
	post, err := srv.Get(ctx, slug)
	if err != nil {
		return nil, err
	}

	newSlug := entity.NormalizeSlug(input.Slug)
	if newSlug != "" && newSlug != post.Slug {
		_, err := srv.blogRepo.FindBySlug(ctx, newSlug)
		switch {
		case err == nil:
			return nil, domainerrors.ErrDuplicateResource.WithMessagef("Cannot change slug to '%s', it already exists.", newSlug)
		case !errors.Is(err, repository.ErrBlogPostNotFound):
			return nil, errors.Wrap(err, "failed to check blog slug")
		}
	}

	applyBlogInput(post, input)
	if err := validateExcerpt(post.Excerpt); err != nil {
		return nil, err
	}

	if err := srv.blogRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrBlogPostNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Blog post not found")
		}

		return nil, err
	}

	srv.log(ctx).Info("Blog post updated", slog.String("slug", post.Slug))

	return post, nil
}

func (srv *blogService) Delete(ctx context.Context, slug string) error {
	post, err := srv.Get(ctx, slug)
	if err != nil {
		return err
	}

	if err := srv.blogRepo.Delete(ctx, post.ID); err != nil {
		if errors.Is(err, repository.ErrBlogPostNotFound) {
			return domainerrors.ErrNotFound.WithMessage("Blog post not found")
		}

		return errors.Wrap(err, "failed to delete blog post")
	}

	srv.log(ctx).Info("Blog post deleted", slog.String("slug", post.Slug))

	return nil
}

// applyBlogInput overwrites post with every non-empty field of input.
func applyBlogInput(post *entity.BlogPost, input *usecase.BlogPostInput) {
	if v := strings.TrimSpace(input.Title); v != "" {
		post.Title = v
	}
	if v := entity.NormalizeSlug(input.Slug); v != "" {
		post.Slug = v
	}
	if v := strings.TrimSpace(input.Category); v != "" {
		post.Category = v
	}
	if v := strings.TrimSpace(input.Excerpt); v != "" {
		post.Excerpt = v
	}
	if input.MarkdownContent != "" {
		post.MarkdownContent = input.MarkdownContent
	}
}

func validateExcerpt(excerpt string) error {
	if utf8.RuneCountInString(excerpt) > entity.MaxExcerptLength {
		return domainerrors.ErrValidationFailed.WithMessagef("Excerpt cannot be more than %d characters", entity.MaxExcerptLength)
	}

	return nil
}
