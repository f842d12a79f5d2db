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

func TestEducationService_Create(t *testing.T) {
	start := time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC)

	mockRepo := new(MockEducationRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Education) bool {
		return e.Institution == "State University" && e.Achievements != nil
	})).Return(nil)

	svc := NewEducationService(mockRepo)
	education, err := svc.Create(context.Background(), EducationInput{
		Institution: "State University",
		Degree:      "BSc",
		Field:       "Computer Science",
		StartDate:   start,
	})

	assert.NoError(t, err)
	assert.Empty(t, education.Achievements)
	assert.NotNil(t, education.Achievements)
	mockRepo.AssertExpectations(t)
}

func TestEducationService_Update(t *testing.T) {
	mockRepo := new(MockEducationRepository)
	mockRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.Education{
		ID:          2,
		Institution: "State University",
		IsCurrent:   true,
	}, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Education")).Return(nil)

	current := false
	end := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
	grade := "First Class"

	svc := NewEducationService(mockRepo)
	education, err := svc.Update(context.Background(), 2, EducationUpdate{
		IsCurrent: &current,
		EndDate:   &end,
		Grade:     &grade,
	})

	assert.NoError(t, err)
	assert.False(t, education.IsCurrent)
	assert.Equal(t, "First Class", education.Grade)
	assert.Equal(t, "State University", education.Institution)
	mockRepo.AssertExpectations(t)
}

func TestEducationService_NotFound(t *testing.T) {
	mockRepo := new(MockEducationRepository)
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewEducationService(mockRepo)

	_, err := svc.GetByID(context.Background(), 7)
	assertAPIError(t, err, http.StatusNotFound, "Education not found")

	_, err = svc.Update(context.Background(), 7, EducationUpdate{})
	assertAPIError(t, err, http.StatusNotFound, "Education not found")

	err = svc.Delete(context.Background(), 7)
	assertAPIError(t, err, http.StatusNotFound, "Education not found")
}
