package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// AnalyticsUsecase tracks project views and builds the admin dashboard.
type AnalyticsUsecase interface {
	// TrackView records a view of the project with the given raw id.
	TrackView(ctx context.Context, projectID string) error

	Summary(ctx context.Context) (*entity.DashboardSummary, error)
	ProjectStats(ctx context.Context) ([]*entity.ProjectViewStat, error)
}
