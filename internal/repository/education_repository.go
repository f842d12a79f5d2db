package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// EducationRepository defines education persistence operations.
type EducationRepository interface {
	Create(ctx context.Context, education *model.Education) error
	Update(ctx context.Context, education *model.Education) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Education, error)
	List(ctx context.Context) ([]model.Education, error)
}

type educationRepository struct {
	db *gorm.DB
}

// NewEducationRepository builds a GORM-backed repository.
func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{db: db}
}

func (r *educationRepository) Create(ctx context.Context, education *model.Education) error {
	return r.db.WithContext(ctx).Create(education).Error
}

func (r *educationRepository) Update(ctx context.Context, education *model.Education) error {
	return r.db.WithContext(ctx).Save(education).Error
}

func (r *educationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Education{}, id).Error
}

func (r *educationRepository) FindByID(ctx context.Context, id uint) (*model.Education, error) {
	var education model.Education
	if err := r.db.WithContext(ctx).First(&education, id).Error; err != nil {
		return nil, err
	}
	return &education, nil
}

// List returns entries with current studies first, then most recent.
func (r *educationRepository) List(ctx context.Context) ([]model.Education, error) {
	var educations []model.Education
	err := r.db.WithContext(ctx).
		Order("is_current DESC, start_date DESC").
		Find(&educations).Error
	return educations, err
}
