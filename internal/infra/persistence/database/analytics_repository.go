package database

import (
	"context"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a GORM-backed AnalyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (repo *analyticsRepository) RecordView(ctx context.Context, view *entity.ProjectView) error {
	row := &model.ProjectViewModel{
		ID:        view.ID,
		ProjectID: view.ProjectID,
	}
	if row.ID == uuid.Nil {
		row.ID = newID()
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record project view")
	}

	view.ID = row.ID
	view.CreatedAt = row.CreatedAt

	return nil
}

func (repo *analyticsRepository) CountViews(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProjectViewModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count project views")
	}

	return count, nil
}

type projectViewStatRow struct {
	ProjectID uuid.UUID
	Title     string
	Slug      string
	Category  string
	ViewCount int64
}

func (repo *analyticsRepository) ProjectViewStats(ctx context.Context) ([]*entity.ProjectViewStat, error) {
	var rows []projectViewStatRow
	err := repo.db.WithContext(ctx).
		Table("project_views AS v").
		Select("p.id AS project_id, p.title AS title, p.slug AS slug, p.category AS category, COUNT(v.id) AS view_count").
		Joins("JOIN projects AS p ON p.id = v.project_id").
		Group("p.id, p.title, p.slug, p.category").
		Order("view_count DESC").
		Order("p.title ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate project views")
	}

	stats := make([]*entity.ProjectViewStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &entity.ProjectViewStat{
			ProjectID: row.ProjectID,
			Title:     row.Title,
			Slug:      row.Slug,
			Category:  row.Category,
			ViewCount: row.ViewCount,
		})
	}

	return stats, nil
}

func (repo *analyticsRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.ProjectViewModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete project views")
	}

	return nil
}
