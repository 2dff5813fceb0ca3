package repository

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsRepository records project views and aggregates them.
type AnalyticsRepository interface {
	RecordView(ctx context.Context, view *entity.ProjectView) error
	CountViews(ctx context.Context) (int64, error)

	// ProjectViewStats returns every project that has at least one view with
	// its view total, highest first.
	ProjectViewStats(ctx context.Context) ([]*entity.ProjectViewStat, error)

	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}
