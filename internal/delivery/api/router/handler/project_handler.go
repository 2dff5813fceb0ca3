package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/delivery/api/response"
	"portfolio/internal/domain/entity"
	"portfolio/internal/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	ProjectUC usecase.ProjectUsecase
	Logger    *slog.Logger
}

// ProjectHandler serves the portfolio projects.
type ProjectHandler struct {
	projectUC usecase.ProjectUsecase
	logger    *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler.
func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projectUC: params.ProjectUC,
		logger:    params.Logger,
	}
}

// EngineeringDecisionRequest is one {tool, reason} pair.
type EngineeringDecisionRequest struct {
	Tool   string `json:"tool" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

// InteractiveDemoRequest keeps the demo type as a raw string so unknown
// variants reach the use case and get its descriptive message.
type InteractiveDemoRequest struct {
	Type         string `json:"type"`
	DataEndpoint string `json:"dataEndpoint"`
	GithubLink   string `json:"githubLink"`
}

// ProjectRequest is the body of create and update. Absent fields stay nil.
type ProjectRequest struct {
	Title                *string                      `json:"title"`
	Slug                 *string                      `json:"slug"`
	Category             *string                      `json:"category"`
	ShortDescription     *string                      `json:"shortDescription"`
	FullDescription      *string                      `json:"fullDescription"`
	RepoURL              *string                      `json:"repoUrl"`
	LiveURL              *string                      `json:"liveUrl"`
	ImageURL             *string                      `json:"imageUrl"`
	TechStack            []string                     `json:"techStack"`
	EngineeringDecisions []EngineeringDecisionRequest `json:"engineeringDecisions" validate:"dive"`
	IsFeatured           *bool                        `json:"isFeatured"`
	InteractiveDemo      *InteractiveDemoRequest      `json:"interactiveDemo"`
}

func (r *ProjectRequest) toInput() *usecase.ProjectInput {
	input := &usecase.ProjectInput{
		Title:            r.Title,
		Slug:             r.Slug,
		Category:         r.Category,
		ShortDescription: r.ShortDescription,
		FullDescription:  r.FullDescription,
		RepoURL:          r.RepoURL,
		LiveURL:          r.LiveURL,
		ImageURL:         r.ImageURL,
		TechStack:        r.TechStack,
		IsFeatured:       r.IsFeatured,
	}

	if r.EngineeringDecisions != nil {
		input.EngineeringDecisions = make([]entity.EngineeringDecision, 0, len(r.EngineeringDecisions))
		for _, d := range r.EngineeringDecisions {
			input.EngineeringDecisions = append(input.EngineeringDecisions, entity.EngineeringDecision{
				Tool:   d.Tool,
				Reason: d.Reason,
			})
		}
	}

	if r.InteractiveDemo != nil {
		demoType := entity.DemoType(r.InteractiveDemo.Type)
		if demoType == "" {
			demoType = entity.DemoTypeNone
		}
		input.InteractiveDemo = &entity.InteractiveDemo{
			Type:         demoType,
			DataEndpoint: r.InteractiveDemo.DataEndpoint,
			GithubLink:   r.InteractiveDemo.GithubLink,
		}
	}

	return input
}

// List returns every project, newest first, in card form.
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projectUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects)
}

// Get returns one project by slug.
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projectUC.Get(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project)
}

// QRCode returns a PNG share code for the project page.
func (h *ProjectHandler) QRCode(c echo.Context) error {
	png, err := h.projectUC.QRCode(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Create adds a project.
func (h *ProjectHandler) Create(c echo.Context) error {
	var req ProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	project, err := h.projectUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project)
}

// Update merges the present fields into the project.
func (h *ProjectHandler) Update(c echo.Context) error {
	var req ProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	project, err := h.projectUC.Update(c.Request().Context(), c.Param("slug"), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project)
}

// Delete removes the project and its views.
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projectUC.Delete(c.Request().Context(), c.Param("slug")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Project removed")
}
