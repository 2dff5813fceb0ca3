package database

import (
	"context"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProject(slug string) *entity.Project {
	p := &entity.Project{
		Title:            "Project " + slug,
		Slug:             slug,
		Category:         "IoT",
		ShortDescription: "short",
		FullDescription:  "full",
		TechStack:        []string{"Go", "MQTT"},
		EngineeringDecisions: []entity.EngineeringDecision{
			{Tool: "MQTT", Reason: "low bandwidth"},
		},
		InteractiveDemo: entity.InteractiveDemo{Type: entity.DemoTypeIoTDashboard, DataEndpoint: "/api/demo"},
	}
	p.ApplyDefaults()

	return p
}

func TestProjectRepository_CRUD(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	project := newTestProject("sensor-mesh")
	require.NoError(t, repo.Create(ctx, project))
	require.NotEqual(t, uuid.Nil, project.ID)

	found, err := repo.FindBySlug(ctx, "Sensor-Mesh")
	require.NoError(t, err)
	assert.Equal(t, project.ID, found.ID)
	assert.Equal(t, []string{"Go", "MQTT"}, found.TechStack)
	assert.Equal(t, entity.DemoTypeIoTDashboard, found.InteractiveDemo.Type)
	assert.Equal(t, "/api/demo", found.InteractiveDemo.DataEndpoint)
	assert.Equal(t, entity.DefaultProjectImageURL, found.ImageURL)
	require.Len(t, found.EngineeringDecisions, 1)
	assert.Equal(t, "low bandwidth", found.EngineeringDecisions[0].Reason)

	found.IsFeatured = true
	found.Slug = "mesh"
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsFeatured)
	assert.Equal(t, "mesh", updated.Slug)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, project.ID))
	_, err = repo.FindByID(ctx, project.ID)
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, project.ID), repository.ErrProjectNotFound)
}

func TestProjectRepository_ListNewestFirst(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	for _, slug := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, newTestProject(slug)))
		time.Sleep(2 * time.Millisecond)
	}

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "third", projects[0].Slug)
	assert.Equal(t, "first", projects[2].Slug)
}

func TestProjectRepository_DuplicateSlug(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestProject("dup")))

	other := newTestProject("dup")
	other.Title = "Different title"
	err := repo.Create(ctx, other)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateResource)

	second := newTestProject("second")
	require.NoError(t, repo.Create(ctx, second))
	second.Slug = "dup"
	assert.ErrorIs(t, repo.Update(ctx, second), domainerrors.ErrDuplicateResource)
}

func TestProjectRepository_UpdateMissing(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	project := newTestProject("ghost")
	project.ID = uuid.New()
	assert.ErrorIs(t, repo.Update(context.Background(), project), repository.ErrProjectNotFound)
}
