package service

import (
	"context"
	"time"

	apierrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ExperienceInput is the payload for creating an experience entry.
type ExperienceInput struct {
	Company      string     `json:"company" validate:"required"`
	Position     string     `json:"position" validate:"required"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"startDate" validate:"required"`
	EndDate      *time.Time `json:"endDate"`
	IsCurrent    bool       `json:"isCurrent"`
	Description  string     `json:"description" validate:"required"`
	Achievements []string   `json:"achievements"`
	Technologies []string   `json:"technologies"`
	Order        int        `json:"order"`
}

// ExperienceUpdate is a partial update; nil fields are left untouched.
type ExperienceUpdate struct {
	Company      *string    `json:"company"`
	Position     *string    `json:"position"`
	Location     *string    `json:"location"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	IsCurrent    *bool      `json:"isCurrent"`
	Description  *string    `json:"description"`
	Achievements *[]string  `json:"achievements"`
	Technologies *[]string  `json:"technologies"`
	Order        *int       `json:"order"`
}

// ExperienceService implements the experience resource operations.
type ExperienceService interface {
	Create(ctx context.Context, input ExperienceInput) (*model.Experience, error)
	List(ctx context.Context) ([]model.Experience, error)
	GetByID(ctx context.Context, id uint) (*model.Experience, error)
	Update(ctx context.Context, id uint, update ExperienceUpdate) (*model.Experience, error)
	Delete(ctx context.Context, id uint) error
}

type experienceService struct {
	experiences repository.ExperienceRepository
}

// NewExperienceService creates a new experience service.
func NewExperienceService(experiences repository.ExperienceRepository) ExperienceService {
	return &experienceService{experiences: experiences}
}

func (s *experienceService) Create(ctx context.Context, input ExperienceInput) (*model.Experience, error) {
	experience := &model.Experience{
		Company:      input.Company,
		Position:     input.Position,
		Location:     input.Location,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		IsCurrent:    input.IsCurrent,
		Description:  input.Description,
		Achievements: input.Achievements,
		Technologies: input.Technologies,
		Order:        input.Order,
	}
	if experience.Achievements == nil {
		experience.Achievements = []string{}
	}
	if experience.Technologies == nil {
		experience.Technologies = []string{}
	}
	if err := s.experiences.Create(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (s *experienceService) List(ctx context.Context) ([]model.Experience, error) {
	return s.experiences.List(ctx)
}

func (s *experienceService) GetByID(ctx context.Context, id uint) (*model.Experience, error) {
	experience, err := s.experiences.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NotFound("Experience not found")
	}
	return experience, nil
}

func (s *experienceService) Update(ctx context.Context, id uint, update ExperienceUpdate) (*model.Experience, error) {
	experience, err := s.experiences.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NotFound("Experience not found")
	}
	if update.Company != nil {
		experience.Company = *update.Company
	}
	if update.Position != nil {
		experience.Position = *update.Position
	}
	if update.Location != nil {
		experience.Location = *update.Location
	}
	if update.StartDate != nil {
		experience.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		experience.EndDate = update.EndDate
	}
	if update.IsCurrent != nil {
		experience.IsCurrent = *update.IsCurrent
	}
	if update.Description != nil {
		experience.Description = *update.Description
	}
	if update.Achievements != nil {
		experience.Achievements = *update.Achievements
	}
	if update.Technologies != nil {
		experience.Technologies = *update.Technologies
	}
	if update.Order != nil {
		experience.Order = *update.Order
	}
	if err := s.experiences.Update(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (s *experienceService) Delete(ctx context.Context, id uint) error {
	if _, err := s.experiences.FindByID(ctx, id); err != nil {
		return apierrors.NotFound("Experience not found")
	}
	return s.experiences.Delete(ctx, id)
}
