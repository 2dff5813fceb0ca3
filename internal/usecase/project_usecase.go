package usecase

import (
	"context"
	"strings"
	"time"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
)

// ProjectInput carries a create request or a partial update. Nil fields are
// left untouched on update and treated as missing on create.
type ProjectInput struct {
	Title                *string
	Slug                 *string
	Category             *string
	ShortDescription     *string
	FullDescription      *string
	RepoURL              *string
	LiveURL              *string
	ImageURL             *string
	TechStack            []string
	EngineeringDecisions []entity.EngineeringDecision
	IsFeatured           *bool
	InteractiveDemo      *entity.InteractiveDemo
}

// HasRequiredFields reports whether a create request names every required field.
func (in *ProjectInput) HasRequiredFields() bool {
	return present(in.Title) && present(in.Slug) && present(in.Category) &&
		present(in.ShortDescription) && present(in.FullDescription) && in.TechStack != nil
}

// ApplyTo copies every present field onto p.
func (in *ProjectInput) ApplyTo(p *entity.Project) {
	setString(&p.Title, in.Title)
	setString(&p.Slug, in.Slug)
	setString(&p.Category, in.Category)
	setString(&p.ShortDescription, in.ShortDescription)
	setString(&p.FullDescription, in.FullDescription)
	setString(&p.RepoURL, in.RepoURL)
	setString(&p.LiveURL, in.LiveURL)
	setString(&p.ImageURL, in.ImageURL)

	if in.TechStack != nil {
		p.TechStack = in.TechStack
	}
	if in.EngineeringDecisions != nil {
		p.EngineeringDecisions = in.EngineeringDecisions
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	if in.InteractiveDemo != nil {
		p.InteractiveDemo = *in.InteractiveDemo
	}
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// ProjectListItem is the card view of a project used by the index page.
type ProjectListItem struct {
	ID               uuid.UUID              `json:"id"`
	Title            string                 `json:"title"`
	Slug             string                 `json:"slug"`
	Category         string                 `json:"category"`
	ShortDescription string                 `json:"shortDescription"`
	RepoURL          string                 `json:"repoUrl,omitempty"`
	LiveURL          string                 `json:"liveUrl,omitempty"`
	ImageURL         string                 `json:"imageUrl"`
	TechStack        []string               `json:"techStack"`
	IsFeatured       bool                   `json:"isFeatured"`
	InteractiveDemo  entity.InteractiveDemo `json:"interactiveDemo"`
	CreatedAt        time.Time              `json:"createdAt"`
}

// NewProjectListItem projects p onto its card view.
func NewProjectListItem(p *entity.Project) *ProjectListItem {
	return &ProjectListItem{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Category:         p.Category,
		ShortDescription: p.ShortDescription,
		RepoURL:          p.RepoURL,
		LiveURL:          p.LiveURL,
		ImageURL:         p.ImageURL,
		TechStack:        p.TechStack,
		IsFeatured:       p.IsFeatured,
		InteractiveDemo:  p.InteractiveDemo,
		CreatedAt:        p.CreatedAt,
	}
}

// ProjectUsecase manages portfolio projects.
type ProjectUsecase interface {
	List(ctx context.Context) ([]*ProjectListItem, error)

	// Get returns the full project and records a view. View recording never
	// fails the call.
	Get(ctx context.Context, slug string) (*entity.Project, error)

	// QRCode renders a PNG QR code linking to the public page of slug.
	QRCode(ctx context.Context, slug string) ([]byte, error)

	Create(ctx context.Context, input *ProjectInput) (*entity.Project, error)
	Update(ctx context.Context, slug string, input *ProjectInput) (*entity.Project, error)

	// Delete removes the project together with its recorded views.
	Delete(ctx context.Context, slug string) error
}
