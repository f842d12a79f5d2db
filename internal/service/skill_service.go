package service

import (
	"context"

	apierrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// SkillInput is the payload for creating a skill. Shape rules are enforced
// by the echo validator.
type SkillInput struct {
	Name     string              `json:"name" validate:"required"`
	Category model.SkillCategory `json:"category" validate:"required,oneof=FRONTEND BACKEND DATABASE TOOLS DESIGN OTHER"`
	Level    int                 `json:"level" validate:"min=0,max=100"`
	Icon     string              `json:"icon"`
	Color    string              `json:"color"`
	Order    int                 `json:"order"`
}

// SkillUpdate is a partial update; nil fields are left untouched.
type SkillUpdate struct {
	Name     *string              `json:"name"`
	Category *model.SkillCategory `json:"category" validate:"omitempty,oneof=FRONTEND BACKEND DATABASE TOOLS DESIGN OTHER"`
	Level    *int                 `json:"level" validate:"omitempty,min=0,max=100"`
	Icon     *string              `json:"icon"`
	Color    *string              `json:"color"`
	Order    *int                 `json:"order"`
}

// SkillService implements the skill resource operations.
type SkillService interface {
	Create(ctx context.Context, input SkillInput) (*model.Skill, error)
	List(ctx context.Context, category model.SkillCategory) ([]model.Skill, error)
	ByCategory(ctx context.Context) (map[model.SkillCategory][]model.Skill, error)
	Update(ctx context.Context, id uint, update SkillUpdate) (*model.Skill, error)
	Delete(ctx context.Context, id uint) error
}

type skillService struct {
	skills repository.SkillRepository
}

// NewSkillService creates a new skill service.
func NewSkillService(skills repository.SkillRepository) SkillService {
	return &skillService{skills: skills}
}

func (s *skillService) Create(ctx context.Context, input SkillInput) (*model.Skill, error) {
	skill := &model.Skill{
		Name:     input.Name,
		Category: input.Category,
		Level:    input.Level,
		Icon:     input.Icon,
		Color:    input.Color,
		Order:    input.Order,
	}
	if err := s.skills.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) List(ctx context.Context, category model.SkillCategory) ([]model.Skill, error) {
	return s.skills.List(ctx, category)
}

// ByCategory groups all skills by their category, preserving display order
// inside each group.
func (s *skillService) ByCategory(ctx context.Context) (map[model.SkillCategory][]model.Skill, error) {
	skills, err := s.skills.List(ctx, "")
	if err != nil {
		return nil, err
	}
	grouped := make(map[model.SkillCategory][]model.Skill)
	for _, skill := range skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}
	return grouped, nil
}

func (s *skillService) Update(ctx context.Context, id uint, update SkillUpdate) (*model.Skill, error) {
	skill, err := s.skills.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NotFound("Skill not found")
	}
	if update.Name != nil {
		skill.Name = *update.Name
	}
	if update.Category != nil {
		skill.Category = *update.Category
	}
	if update.Level != nil {
		skill.Level = *update.Level
	}
	if update.Icon != nil {
		skill.Icon = *update.Icon
	}
	if update.Color != nil {
		skill.Color = *update.Color
	}
	if update.Order != nil {
		skill.Order = *update.Order
	}
	if err := s.skills.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) Delete(ctx context.Context, id uint) error {
	if _, err := s.skills.FindByID(ctx, id); err != nil {
		return apierrors.NotFound("Skill not found")
	}
	return s.skills.Delete(ctx, id)
}
