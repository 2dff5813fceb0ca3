package impl

import (
	"context"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	mockRepo "portfolio/internal/mocks/repository"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSkillService(t *testing.T) (usecase.SkillUsecase, *mockRepo.MockSkillRepository) {
	skillRepo := mockRepo.NewMockSkillRepository(t)

	return NewSkillService(SkillServiceParams{SkillRepo: skillRepo, Logger: newDiscardLogger()}), skillRepo
}

func TestSkillService_InvalidID(t *testing.T) {
	svc, _ := createTestSkillService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "not-a-uuid")
	requireAppError(t, err, domainerrors.ErrValidationFailed, "Invalid Skill Category ID")

	_, err = svc.Update(ctx, "42", &usecase.SkillCategoryInput{Category: "Go", Skills: []string{"fx"}})
	requireAppError(t, err, domainerrors.ErrValidationFailed, "Invalid Skill Category ID")

	err = svc.Delete(ctx, "")
	requireAppError(t, err, domainerrors.ErrValidationFailed, "Invalid Skill Category ID")
}

func TestSkillService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("drops blank skills", func(t *testing.T) {
		svc, skillRepo := createTestSkillService(t)

		skillRepo.EXPECT().FindByCategory(ctx, "Languages").Return(nil, repository.ErrSkillCategoryNotFound)
		skillRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

		sc, err := svc.Create(ctx, &usecase.SkillCategoryInput{Category: " Languages ", Skills: []string{"Go", " ", "C"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "C"}, sc.Skills)
	})

	t.Run("requires skills", func(t *testing.T) {
		svc, _ := createTestSkillService(t)

		_, err := svc.Create(ctx, &usecase.SkillCategoryInput{Category: "Languages", Skills: []string{" "}})
		requireAppError(t, err, domainerrors.ErrValidationFailed, "Invalid data: Category and a non-empty skills array are required.")
	})

	t.Run("duplicate category", func(t *testing.T) {
		svc, skillRepo := createTestSkillService(t)

		skillRepo.EXPECT().FindByCategory(ctx, "Languages").Return(&entity.SkillCategory{ID: uuid.New()}, nil)

		_, err := svc.Create(ctx, &usecase.SkillCategoryInput{Category: "Languages", Skills: []string{"Go"}})
		requireAppError(t, err, domainerrors.ErrDuplicateResource, "Skill category 'Languages' already exists")
	})
}

func TestSkillService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("rename conflict", func(t *testing.T) {
		svc, skillRepo := createTestSkillService(t)

		skillRepo.EXPECT().FindByID(ctx, id).Return(&entity.SkillCategory{ID: id, Category: "Languages"}, nil)
		skillRepo.EXPECT().FindByCategory(ctx, "Tools").Return(&entity.SkillCategory{ID: uuid.New(), Category: "Tools"}, nil)

		_, err := svc.Update(ctx, id.String(), &usecase.SkillCategoryInput{Category: "Tools", Skills: []string{"git"}})
		requireAppError(t, err, domainerrors.ErrDuplicateResource, "Cannot rename category to 'Tools', as it already exists.")
	})

	t.Run("full replace", func(t *testing.T) {
		svc, skillRepo := createTestSkillService(t)
		sc := &entity.SkillCategory{ID: id, Category: "Languages", Skills: []string{"Go"}}

		skillRepo.EXPECT().FindByID(ctx, id).Return(sc, nil)
		skillRepo.EXPECT().Update(ctx, sc).Return(nil)

		updated, err := svc.Update(ctx, id.String(), &usecase.SkillCategoryInput{Category: "Languages", Skills: []string{"Rust"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Rust"}, updated.Skills)
	})

	t.Run("not found", func(t *testing.T) {
		svc, skillRepo := createTestSkillService(t)

		skillRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSkillCategoryNotFound)

		_, err := svc.Update(ctx, id.String(), &usecase.SkillCategoryInput{Category: "Languages", Skills: []string{"Go"}})
		requireAppError(t, err, domainerrors.ErrNotFound, "Skill category not found")
	})
}
