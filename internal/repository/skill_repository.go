package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// SkillRepository defines skill persistence operations.
type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Skill, error)
	FindByName(ctx context.Context, name string) (*model.Skill, error)
	List(ctx context.Context, category model.SkillCategory) ([]model.Skill, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository builds a GORM-backed repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) Update(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *skillRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Skill{}, id).Error
}

func (r *skillRepository) FindByID(ctx context.Context, id uint) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) FindByName(ctx context.Context, name string) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// List returns skills ordered for display, optionally restricted to one
// category.
func (r *skillRepository) List(ctx context.Context, category model.SkillCategory) ([]model.Skill, error) {
	q := r.db.WithContext(ctx).Order("category ASC, display_order ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var skills []model.Skill
	if err := q.Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}
