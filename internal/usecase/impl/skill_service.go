package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type skillService struct {
	skillRepo repository.SkillRepository
	logger    *slog.Logger
}

// SkillServiceParams holds dependencies for SkillService, injected by Fx.
type SkillServiceParams struct {
	fx.In

	SkillRepo repository.SkillRepository
	Logger    *slog.Logger
}

// NewSkillService is the constructor for skillService.
func NewSkillService(params SkillServiceParams) usecase.SkillUsecase {
	return &skillService{
		skillRepo: params.SkillRepo,
		logger:    params.Logger,
	}
}

func (srv *skillService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *skillService) List(ctx context.Context) ([]*entity.SkillCategory, error) {
	categories, err := srv.skillRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skill categories")
	}

	return categories, nil
}

func (srv *skillService) Get(ctx context.Context, id string) (*entity.SkillCategory, error) {
	categoryID, err := parseSkillCategoryID(id)
	if err != nil {
		return nil, err
	}

	return srv.findByID(ctx, categoryID)
}

func (srv *skillService) Create(ctx context.Context, input *usecase.SkillCategoryInput) (*entity.SkillCategory, error) {
	category, skills, err := normalizeSkillInput(input)
	if err != nil {
		return nil, err
	}

	_, err = srv.skillRepo.FindByCategory(ctx, category)
	switch {
	case err == nil:
		return nil, domainerrors.ErrDuplicateResource.WithMessagef("Skill category '%s' already exists", category)
	case !errors.Is(err, repository.ErrSkillCategoryNotFound):
		return nil, errors.Wrap(err, "failed to check skill category")
	}

	sc := &entity.SkillCategory{Category: category, Skills: skills}
	if err := srv.skillRepo.Create(ctx, sc); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Skill category created", slog.String("category", category))

	return sc, nil
}

func (srv *skillService) Update(ctx context.Context, id string, input *usecase.SkillCategoryInput) (*entity.SkillCategory, error) {
	categoryID, err := parseSkillCategoryID(id)
	if err != nil {
		return nil, err
	}

	category, skills, err := normalizeSkillInput(input)
	if err != nil {
		return nil, err
	}

	sc, err := srv.findByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if category != sc.Category {
		existing, err := srv.skillRepo.FindByCategory(ctx, category)
		switch {
		case err == nil && existing.ID != sc.ID:
			return nil, domainerrors.ErrDuplicateResource.WithMessagef("Cannot rename category to '%s', as it already exists.", category)
		case err != nil && !errors.Is(err, repository.ErrSkillCategoryNotFound):
			return nil, errors.Wrap(err, "failed to check skill category")
		}
	}

	sc.Category = category
	sc.Skills = skills

	if err := srv.skillRepo.Update(ctx, sc); err != nil {
		if errors.Is(err, repository.ErrSkillCategoryNotFound) {
			return nil, skillCategoryNotFound()
		}

		return nil, err
	}

	srv.log(ctx).Info("Skill category updated", slog.String("category", category))

	return sc, nil
}

func (srv *skillService) Delete(ctx context.Context, id string) error {
	categoryID, err := parseSkillCategoryID(id)
	if err != nil {
		return err
	}

	if err := srv.skillRepo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrSkillCategoryNotFound) {
			return skillCategoryNotFound()
		}

		return errors.Wrap(err, "failed to delete skill category")
	}

	return nil
}

func (srv *skillService) findByID(ctx context.Context, id uuid.UUID) (*entity.SkillCategory, error) {
	sc, err := srv.skillRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillCategoryNotFound) {
			return nil, skillCategoryNotFound()
		}

		return nil, errors.Wrap(err, "failed to find skill category")
	}

	return sc, nil
}

func parseSkillCategoryID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithMessage("Invalid Skill Category ID")
	}

	return parsed, nil
}

// normalizeSkillInput trims the category and drops blank skills.
func normalizeSkillInput(input *usecase.SkillCategoryInput) (string, []string, error) {
	category := strings.TrimSpace(input.Category)

	skills := make([]string, 0, len(input.Skills))
	for _, s := range input.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	if category == "" || len(skills) == 0 {
		return "", nil, domainerrors.ErrValidationFailed.WithMessage("Invalid data: Category and a non-empty skills array are required.")
	}

	return category, skills, nil
}

func skillCategoryNotFound() error {
	return domainerrors.ErrNotFound.WithMessage("Skill category not found")
}
