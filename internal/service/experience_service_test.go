package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"portfolio/internal/model"
)

func TestExperienceService_Create(t *testing.T) {
	start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	mockRepo := new(MockExperienceRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Experience) bool {
		return e.Company == "Acme" && e.Achievements != nil && e.Technologies != nil
	})).Return(nil)

	svc := NewExperienceService(mockRepo)
	experience, err := svc.Create(context.Background(), ExperienceInput{
		Company:     "Acme",
		Position:    "Backend Engineer",
		StartDate:   start,
		Description: "Built internal services.",
		IsCurrent:   true,
	})

	assert.NoError(t, err)
	assert.True(t, experience.IsCurrent)
	assert.NotNil(t, experience.Technologies)
	mockRepo.AssertExpectations(t)
}

func TestExperienceService_Update(t *testing.T) {
	mockRepo := new(MockExperienceRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Experience{
		ID:       5,
		Company:  "Acme",
		Position: "Backend Engineer",
	}, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(e *model.Experience) bool {
		return e.Position == "Senior Backend Engineer"
	})).Return(nil)

	position := "Senior Backend Engineer"
	technologies := []string{"Go", "Redis"}

	svc := NewExperienceService(mockRepo)
	experience, err := svc.Update(context.Background(), 5, ExperienceUpdate{
		Position:     &position,
		Technologies: &technologies,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Acme", experience.Company)
	assert.Len(t, experience.Technologies, 2)
	mockRepo.AssertExpectations(t)
}

func TestExperienceService_NotFound(t *testing.T) {
	mockRepo := new(MockExperienceRepository)
	mockRepo.On("FindByID", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewExperienceService(mockRepo)

	_, err := svc.GetByID(context.Background(), 8)
	assertAPIError(t, err, http.StatusNotFound, "Experience not found")

	_, err = svc.Update(context.Background(), 8, ExperienceUpdate{})
	assertAPIError(t, err, http.StatusNotFound, "Experience not found")

	err = svc.Delete(context.Background(), 8)
	assertAPIError(t, err, http.StatusNotFound, "Experience not found")
}
