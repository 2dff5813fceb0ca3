package handler

import (
	"net/http"

	"portfolio/internal/delivery/api/response"
	"portfolio/internal/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SkillHandler serves skill categories.
type SkillHandler struct {
	skillUC usecase.SkillUsecase
}

// NewSkillHandler is the constructor for SkillHandler.
func NewSkillHandler(skillUC usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{skillUC: skillUC}
}

// SkillCategoryRequest is the body of create and full replace.
type SkillCategoryRequest struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

func (r *SkillCategoryRequest) toInput() *usecase.SkillCategoryInput {
	return &usecase.SkillCategoryInput{
		Category: r.Category,
		Skills:   r.Skills,
	}
}

func (h *SkillHandler) List(c echo.Context) error {
	categories, err := h.skillUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories)
}

func (h *SkillHandler) Get(c echo.Context) error {
	category, err := h.skillUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category)
}

func (h *SkillHandler) Create(c echo.Context) error {
	var req SkillCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.skillUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category)
}

func (h *SkillHandler) Update(c echo.Context) error {
	var req SkillCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.skillUC.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category)
}

func (h *SkillHandler) Delete(c echo.Context) error {
	if err := h.skillUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Skill category removed")
}
