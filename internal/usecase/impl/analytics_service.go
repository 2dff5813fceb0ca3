package impl

import (
	"context"
	"log/slog"
	"time"

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

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	projectRepo   repository.ProjectRepository
	blogRepo      repository.BlogRepository
	publisher     service.EventPublisher
	recorder      service.ActivityRecorder
	now           func() time.Time
	logger        *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
	ProjectRepo   repository.ProjectRepository
	BlogRepo      repository.BlogRepository
	Publisher     service.EventPublisher
	Recorder      service.ActivityRecorder
	Logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo: params.AnalyticsRepo,
		projectRepo:   params.ProjectRepo,
		blogRepo:      params.BlogRepo,
		publisher:     params.Publisher,
		recorder:      params.Recorder,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *analyticsService) TrackView(ctx context.Context, projectID string) error {
	invalid := domainerrors.ErrValidationFailed.WithMessage("Invalid Project ID provided for tracking.")

	id, err := uuid.Parse(projectID)
	if err != nil {
		return invalid
	}

	project, err := srv.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return invalid
		}

		return errors.Wrap(err, "failed to find tracked project")
	}

	if err := srv.analyticsRepo.RecordView(ctx, &entity.ProjectView{ProjectID: project.ID}); err != nil {
		return errors.Wrap(err, "failed to track view")
	}

	srv.recorder.ProjectViewed(ctx, project.Slug)
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventProjectViewed, map[string]string{
		"project_id": project.ID.String(),
		"slug":       project.Slug,
	})

	return nil
}

// Summary counts every recorded view row. LastLogin is the time of the
// request: the admin viewing the dashboard is by definition logged in now.
func (srv *analyticsService) Summary(ctx context.Context) (*entity.DashboardSummary, error) {
	totalViews, err := srv.analyticsRepo.CountViews(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count views")
	}

	projectCount, err := srv.projectRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count projects")
	}

	blogCount, err := srv.blogRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count blog posts")
	}

	return &entity.DashboardSummary{
		TotalViews:   totalViews,
		ProjectCount: projectCount,
		BlogCount:    blogCount,
		LastLogin:    srv.now().UTC(),
	}, nil
}

func (srv *analyticsService) ProjectStats(ctx context.Context) ([]*entity.ProjectViewStat, error) {
	stats, err := srv.analyticsRepo.ProjectViewStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate project views")
	}

	return stats, nil
}
