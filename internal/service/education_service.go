package service

import (
	"context"
	"time"

	apierrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// EducationInput is the payload for creating an education entry.
type EducationInput struct {
	Institution  string     `json:"institution" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	Field        string     `json:"field" validate:"required"`
	StartDate    time.Time  `json:"startDate" validate:"required"`
	EndDate      *time.Time `json:"endDate"`
	IsCurrent    bool       `json:"isCurrent"`
	Description  string     `json:"description"`
	Achievements []string   `json:"achievements"`
	Grade        string     `json:"grade"`
	Order        int        `json:"order"`
}

// EducationUpdate is a partial update; nil fields are left untouched.
type EducationUpdate struct {
	Institution  *string    `json:"institution"`
	Degree       *string    `json:"degree"`
	Field        *string    `json:"field"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	IsCurrent    *bool      `json:"isCurrent"`
	Description  *string    `json:"description"`
	Achievements *[]string  `json:"achievements"`
	Grade        *string    `json:"grade"`
	Order        *int       `json:"order"`
}

// EducationService implements the education resource operations.
type EducationService interface {
	Create(ctx context.Context, input EducationInput) (*model.Education, error)
	List(ctx context.Context) ([]model.Education, error)
	GetByID(ctx context.Context, id uint) (*model.Education, error)
	Update(ctx context.Context, id uint, update EducationUpdate) (*model.Education, error)
	Delete(ctx context.Context, id uint) error
}

type educationService struct {
	educations repository.EducationRepository
}

// NewEducationService creates a new education service.
func NewEducationService(educations repository.EducationRepository) EducationService {
	return &educationService{educations: educations}
}

func (s *educationService) Create(ctx context.Context, input EducationInput) (*model.Education, error) {
	education := &model.Education{
		Institution:  input.Institution,
		Degree:       input.Degree,
		Field:        input.Field,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		IsCurrent:    input.IsCurrent,
		Description:  input.Description,
		Achievements: input.Achievements,
		Grade:        input.Grade,
		Order:        input.Order,
	}
	if education.Achievements == nil {
		education.Achievements = []string{}
	}
	if err := s.educations.Create(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (s *educationService) List(ctx context.Context) ([]model.Education, error) {
	return s.educations.List(ctx)
}

func (s *educationService) GetByID(ctx context.Context, id uint) (*model.Education, error) {
	education, err := s.educations.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NotFound("Education not found")
	}
	return education, nil
}

func (s *educationService) Update(ctx context.Context, id uint, update EducationUpdate) (*model.Education, error) {
	education, err := s.educations.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NotFound("Education not found")
	}
	if update.Institution != nil {
		education.Institution = *update.Institution
	}
	if update.Degree != nil {
		education.Degree = *update.Degree
	}
	if update.Field != nil {
		education.Field = *update.Field
	}
	if update.StartDate != nil {
		education.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		education.EndDate = update.EndDate
	}
	if update.IsCurrent != nil {
		education.IsCurrent = *update.IsCurrent
	}
	if update.Description != nil {
		education.Description = *update.Description
	}
	if update.Achievements != nil {
		education.Achievements = *update.Achievements
	}
	if update.Grade != nil {
		education.Grade = *update.Grade
	}
	if update.Order != nil {
		education.Order = *update.Order
	}
	if err := s.educations.Update(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (s *educationService) Delete(ctx context.Context, id uint) error {
	if _, err := s.educations.FindByID(ctx, id); err != nil {
		return apierrors.NotFound("Education not found")
	}
	return s.educations.Delete(ctx, id)
}
