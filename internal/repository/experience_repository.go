package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// ExperienceRepository defines experience persistence operations.
type ExperienceRepository interface {
	Create(ctx context.Context, experience *model.Experience) error
	Update(ctx context.Context, experience *model.Experience) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Experience, error)
	List(ctx context.Context) ([]model.Experience, error)
}

type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository builds a GORM-backed repository.
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, experience *model.Experience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}

func (r *experienceRepository) Update(ctx context.Context, experience *model.Experience) error {
	return r.db.WithContext(ctx).Save(experience).Error
}

func (r *experienceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Experience{}, id).Error
}

func (r *experienceRepository) FindByID(ctx context.Context, id uint) (*model.Experience, error) {
	var experience model.Experience
	if err := r.db.WithContext(ctx).First(&experience, id).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

// List returns entries with current positions first, then most recent.
func (r *experienceRepository) List(ctx context.Context) ([]model.Experience, error) {
	var experiences []model.Experience
	err := r.db.WithContext(ctx).
		Order("is_current DESC, start_date DESC").
		Find(&experiences).Error
	return experiences, err
}
