package impl

import (
	"context"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	mockRepo "portfolio/internal/mocks/repository"
	mockSvc "portfolio/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type analyticsServiceFixtures struct {
	service       *analyticsService
	analyticsRepo *mockRepo.MockAnalyticsRepository
	projectRepo   *mockRepo.MockProjectRepository
	blogRepo      *mockRepo.MockBlogRepository
	publisher     *mockSvc.MockEventPublisher
	recorder      *mockSvc.MockActivityRecorder
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	fx := analyticsServiceFixtures{
		analyticsRepo: mockRepo.NewMockAnalyticsRepository(t),
		projectRepo:   mockRepo.NewMockProjectRepository(t),
		blogRepo:      mockRepo.NewMockBlogRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		recorder:      mockSvc.NewMockActivityRecorder(t),
	}
	fx.service = NewAnalyticsService(AnalyticsServiceParams{
		AnalyticsRepo: fx.analyticsRepo,
		ProjectRepo:   fx.projectRepo,
		BlogRepo:      fx.blogRepo,
		Publisher:     fx.publisher,
		Recorder:      fx.recorder,
		Logger:        newDiscardLogger(),
	}).(*analyticsService)

	return fx
}

func TestAnalyticsService_TrackView(t *testing.T) {
	ctx := context.Background()

	t.Run("records view", func(t *testing.T) {
		fx := createTestAnalyticsService(t)
		project := &entity.Project{ID: uuid.New(), Slug: "iot-hub"}

		fx.projectRepo.EXPECT().FindByID(ctx, project.ID).Return(project, nil)
		fx.analyticsRepo.EXPECT().RecordView(ctx, &entity.ProjectView{ProjectID: project.ID}).Return(nil)
		fx.recorder.EXPECT().ProjectViewed(ctx, "iot-hub").Return()
		fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		require.NoError(t, fx.service.TrackView(ctx, project.ID.String()))
	})

	t.Run("malformed and unknown ids share one error", func(t *testing.T) {
		fx := createTestAnalyticsService(t)
		unknown := uuid.New()

		fx.projectRepo.EXPECT().FindByID(ctx, unknown).Return(nil, repository.ErrProjectNotFound)

		for _, id := range []string{"", "abc", unknown.String()} {
			err := fx.service.TrackView(ctx, id)
			requireAppError(t, err, domainerrors.ErrValidationFailed, "Invalid Project ID provided for tracking.")
		}
	})
}

func TestAnalyticsService_Summary(t *testing.T) {
	fx := createTestAnalyticsService(t)
	now := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return now }

	fx.analyticsRepo.EXPECT().CountViews(mock.Anything).Return(int64(12), nil)
	fx.projectRepo.EXPECT().Count(mock.Anything).Return(int64(3), nil)
	fx.blogRepo.EXPECT().Count(mock.Anything).Return(int64(5), nil)

	summary, err := fx.service.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardSummary{TotalViews: 12, ProjectCount: 3, BlogCount: 5, LastLogin: now}, summary)
}

func TestAnalyticsService_ProjectStats(t *testing.T) {
	fx := createTestAnalyticsService(t)
	stats := []*entity.ProjectViewStat{{ProjectID: uuid.New(), Title: "A", ViewCount: 4}}

	fx.analyticsRepo.EXPECT().ProjectViewStats(mock.Anything).Return(stats, nil)

	got, err := fx.service.ProjectStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
