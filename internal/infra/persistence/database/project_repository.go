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

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a GORM-backed ProjectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (repo *projectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	var rows []*model.ProjectModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, toProjectDomain(row))
	}

	return projects, nil
}

func (repo *projectRepository) FindBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	return repo.first(ctx, "slug = ?", entity.NormalizeSlug(slug))
}

func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *projectRepository) first(ctx context.Context, query string, arg any) (*entity.Project, error) {
	var row model.ProjectModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&row).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return toProjectDomain(&row), nil
}

func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	row := fromProjectDomain(project)
	if row.ID == uuid.Nil {
		row.ID = newID()
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateResource.WithMessagef("Project with title '%s' or slug '%s' already exists.", row.Title, row.Slug)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = row.ID
	project.CreatedAt = row.CreatedAt
	project.UpdatedAt = row.UpdatedAt

	return nil
}

// Update writes every column of the project, zero values included.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	row := fromProjectDomain(project)
	row.UpdatedAt = repo.db.NowFunc()

	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", row.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(row)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateResource.WithMessagef("Project with title '%s' or slug '%s' already exists.", row.Title, row.Slug)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	project.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func (repo *projectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProjectModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count projects")
	}

	return count, nil
}

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	decisions := make([]entity.EngineeringDecision, 0, len(data.EngineeringDecisions))
	for _, d := range data.EngineeringDecisions {
		decisions = append(decisions, entity.EngineeringDecision{Tool: d.Tool, Reason: d.Reason})
	}

	techStack := data.TechStack
	if techStack == nil {
		techStack = []string{}
	}

	demoType, err := entity.ParseDemoType(data.DemoType)
	if err != nil {
		demoType = entity.DemoTypeNone
	}

	return &entity.Project{
		ID:                   data.ID,
		Title:                data.Title,
		Slug:                 data.Slug,
		Category:             data.Category,
		ShortDescription:     data.ShortDescription,
		FullDescription:      data.FullDescription,
		RepoURL:              data.RepoURL,
		LiveURL:              data.LiveURL,
		ImageURL:             data.ImageURL,
		TechStack:            techStack,
		EngineeringDecisions: decisions,
		IsFeatured:           data.IsFeatured,
		InteractiveDemo: entity.InteractiveDemo{
			Type:         demoType,
			DataEndpoint: data.DemoDataEndpoint,
			GithubLink:   data.DemoGithubLink,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	decisions := make([]model.EngineeringDecisionModel, 0, len(data.EngineeringDecisions))
	for _, d := range data.EngineeringDecisions {
		decisions = append(decisions, model.EngineeringDecisionModel{Tool: d.Tool, Reason: d.Reason})
	}

	techStack := data.TechStack
	if techStack == nil {
		techStack = []string{}
	}

	demoType := data.InteractiveDemo.Type
	if demoType == "" {
		demoType = entity.DemoTypeNone
	}

	return &model.ProjectModel{
		ID:                   data.ID,
		Title:                data.Title,
		Slug:                 entity.NormalizeSlug(data.Slug),
		Category:             data.Category,
		ShortDescription:     data.ShortDescription,
		FullDescription:      data.FullDescription,
		RepoURL:              data.RepoURL,
		LiveURL:              data.LiveURL,
		ImageURL:             data.ImageURL,
		TechStack:            techStack,
		EngineeringDecisions: decisions,
		IsFeatured:           data.IsFeatured,
		DemoType:             string(demoType),
		DemoDataEndpoint:     data.InteractiveDemo.DataEndpoint,
		DemoGithubLink:       data.InteractiveDemo.GithubLink,
	}
}
