package impl

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type projectService struct {
	txManager     repository.TransactionManager
	projectRepo   repository.ProjectRepository
	analyticsRepo repository.AnalyticsRepository
	qrService     service.QRCodeService
	publisher     service.EventPublisher
	recorder      service.ActivityRecorder
	logger        *slog.Logger
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ProjectRepo   repository.ProjectRepository
	AnalyticsRepo repository.AnalyticsRepository
	QRService     service.QRCodeService
	Publisher     service.EventPublisher
	Recorder      service.ActivityRecorder
	Logger        *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		txManager:     params.TxManager,
		projectRepo:   params.ProjectRepo,
		analyticsRepo: params.AnalyticsRepo,
		qrService:     params.QRService,
		publisher:     params.Publisher,
		recorder:      params.Recorder,
		logger:        params.Logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *projectService) List(ctx context.Context) ([]*usecase.ProjectListItem, error) {
	projects, err := srv.projectRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	items := make([]*usecase.ProjectListItem, 0, len(projects))
	for _, p := range projects {
		items = append(items, usecase.NewProjectListItem(p))
	}

	return items, nil
}

func (srv *projectService) Get(ctx context.Context, slug string) (*entity.Project, error) {
	project, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	srv.recordView(ctx, project)

	return project, nil
}

// recordView stores a view row and emits project.viewed. Failures are logged only.
func (srv *projectService) recordView(ctx context.Context, project *entity.Project) {
	if err := srv.analyticsRepo.RecordView(ctx, &entity.ProjectView{ProjectID: project.ID}); err != nil {
		srv.log(ctx).Warn("Analytics tracking failed", slog.String("slug", project.Slug), slog.Any("error", err))

		return
	}

	srv.recorder.ProjectViewed(ctx, project.Slug)
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventProjectViewed, map[string]string{
		"project_id": project.ID.String(),
		"slug":       project.Slug,
	})
}

func (srv *projectService) QRCode(ctx context.Context, slug string) ([]byte, error) {
	project, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.ProjectQR(project.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render project QR code")
	}

	return png, nil
}

func (srv *projectService) Create(ctx context.Context, input *usecase.ProjectInput) (*entity.Project, error) {
	if !input.HasRequiredFields() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Missing required project fields.")
	}

	project := &entity.Project{}
	input.ApplyTo(project)
	project.ApplyDefaults()

	if err := validateProject(project); err != nil {
		return nil, err
	}

	_, err := srv.projectRepo.FindBySlug(ctx, project.Slug)
	switch {
	case err == nil:
		return nil, domainerrors.ErrDuplicateResource.WithMessagef("Project with slug '%s' already exists.", project.Slug)
	case !errors.Is(err, repository.ErrProjectNotFound):
		return nil, errors.Wrap(err, "failed to check project slug")
	}

	if err := srv.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Project created", slog.String("slug", project.Slug), slog.Any("projectID", project.ID))

	return project, nil
}

func (srv *projectService) Update(ctx context.Context, slug string, input *usecase.ProjectInput) (*entity.Project, error) {
	project, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil {
		newSlug := entity.NormalizeSlug(*input.Slug)
		if newSlug != "" && newSlug != project.Slug {
			_, err := srv.projectRepo.FindBySlug(ctx, newSlug)
			switch {
			case err == nil:
				return nil, domainerrors.ErrDuplicateResource.WithMessagef("Cannot change slug to '%s', it already exists.", newSlug)
			case !errors.Is(err, repository.ErrProjectNotFound):
				return nil, errors.Wrap(err, "failed to check project slug")
			}
		}
	}

	input.ApplyTo(project)
	project.ApplyDefaults()

	if err := validateProject(project); err != nil {
		return nil, err
	}

	if err := srv.projectRepo.Update(ctx, project); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, projectNotFound()
		}

		return nil, err
	}

	srv.log(ctx).Info("Project updated", slog.String("slug", project.Slug))

	return project, nil
}

func (srv *projectService) Delete(ctx context.Context, slug string) error {
	project, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewAnalyticsRepository().DeleteByProject(ctx, project.ID); err != nil {
			return errors.Wrap(err, "failed to delete project views")
		}

		return factory.NewProjectRepository().Delete(ctx, project.ID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return projectNotFound()
		}

		return errors.Wrap(err, "failed to delete project")
	}

	srv.log(ctx).Info("Project deleted", slog.String("slug", project.Slug))

	return nil
}

func (srv *projectService) findBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	project, err := srv.projectRepo.FindBySlug(ctx, entity.NormalizeSlug(slug))
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, projectNotFound()
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return project, nil
}

func projectNotFound() error {
	return domainerrors.ErrNotFound.WithMessage("Project not found")
}

// validateProject enforces the stored invariants after defaults and merges.
func validateProject(p *entity.Project) error {
	switch {
	case p.Title == "" || p.Slug == "" || p.Category == "" || p.ShortDescription == "" || p.FullDescription == "":
		return domainerrors.ErrValidationFailed.WithMessage("Missing required project fields.")
	case utf8.RuneCountInString(p.ShortDescription) > entity.MaxShortDescriptionLength:
		return domainerrors.ErrValidationFailed.WithMessagef("Short description cannot exceed %d characters", entity.MaxShortDescriptionLength)
	case len(p.TechStack) == 0:
		return domainerrors.ErrValidationFailed.WithMessage("Tech stack array cannot be empty")
	case !p.InteractiveDemo.Type.IsValid():
		return domainerrors.ErrValidationFailed.WithMessagef("Invalid interactive demo type '%s'", p.InteractiveDemo.Type)
	}

	return nil
}

// publishEvent emits a domain event. Publishing is best-effort: the write that
// triggered it has already succeeded.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, attributes map[string]string) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Attributes: attributes,
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event", slog.String("type", eventType), slog.Any("error", err))
	}
}
