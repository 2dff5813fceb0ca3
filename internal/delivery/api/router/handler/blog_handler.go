package handler

import (
	"net/http"

	"portfolio/internal/delivery/api/response"
	"portfolio/internal/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BlogHandler serves blog posts.
type BlogHandler struct {
	blogUC usecase.BlogUsecase
}

// NewBlogHandler is the constructor for BlogHandler.
func NewBlogHandler(blogUC usecase.BlogUsecase) *BlogHandler {
	return &BlogHandler{blogUC: blogUC}
}

// BlogPostRequest is the body of create and update.
type BlogPostRequest struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Category        string `json:"category"`
	Excerpt         string `json:"excerpt"`
	MarkdownContent string `json:"markdownContent"`
}

func (r *BlogPostRequest) toInput() *usecase.BlogPostInput {
	return &usecase.BlogPostInput{
		Title:           r.Title,
		Slug:            r.Slug,
		Category:        r.Category,
		Excerpt:         r.Excerpt,
		MarkdownContent: r.MarkdownContent,
	}
}

func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.blogUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts)
}

func (h *BlogHandler) Get(c echo.Context) error {
	post, err := h.blogUC.Get(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post)
}

func (h *BlogHandler) Create(c echo.Context) error {
	var req BlogPostRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	post, err := h.blogUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post)
}

func (h *BlogHandler) Update(c echo.Context) error {
	var req BlogPostRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	post, err := h.blogUC.Update(c.Request().Context(), c.Param("slug"), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post)
}

func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.blogUC.Delete(c.Request().Context(), c.Param("slug")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Blog post removed")
}
