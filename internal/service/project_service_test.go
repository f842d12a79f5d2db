package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"portfolio/internal/model"
)

func validProjectInput() ProjectInput {
	return ProjectInput{
		Title:        "Portfolio Site",
		Description:  "A personal portfolio website.",
		Category:     "Web Apps",
		Technologies: []string{"Go", "MySQL"},
	}
}

func TestProjectService_Create(t *testing.T) {
	t.Run("defaults status to completed", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("SlugExists", mock.Anything, "portfolio-site", uint(0)).Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
			return p.Status == model.ProjectStatusCompleted && p.Slug == "portfolio-site"
		})).Return(nil)

		svc := NewProjectService(mockRepo, nil)
		project, err := svc.Create(context.Background(), validProjectInput())

		assert.NoError(t, err)
		assert.Equal(t, model.ProjectStatusCompleted, project.Status)
		assert.NotNil(t, project.Images)
		assert.NotNil(t, project.Features)
		mockRepo.AssertExpectations(t)
	})

	t.Run("keeps an explicit valid status", func(t *testing.T) {
		input := validProjectInput()
		input.Status = "PLANNED"

		mockRepo := new(MockProjectRepository)
		mockRepo.On("SlugExists", mock.Anything, "portfolio-site", uint(0)).Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

		svc := NewProjectService(mockRepo, nil)
		project, err := svc.Create(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, model.ProjectStatusPlanned, project.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		input := validProjectInput()
		input.Status = "SHIPPED"

		svc := NewProjectService(new(MockProjectRepository), nil)
		_, err := svc.Create(context.Background(), input)

		assertAPIError(t, err, http.StatusBadRequest, "Status must be one of: COMPLETED, IN_PROGRESS, PLANNED")
	})
}

func TestProjectService_Create_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ProjectInput)
		wantMessage string
	}{
		{"missing title", func(in *ProjectInput) { in.Title = "" }, "Title is required"},
		{"missing description", func(in *ProjectInput) { in.Description = "" }, "Description is required"},
		{"missing category", func(in *ProjectInput) { in.Category = "" }, "Category is required"},
		{"no technologies", func(in *ProjectInput) { in.Technologies = nil }, "At least one technology is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validProjectInput()
			tt.mutate(&input)

			svc := NewProjectService(new(MockProjectRepository), nil)
			_, err := svc.Create(context.Background(), input)

			assertAPIError(t, err, http.StatusBadRequest, tt.wantMessage)
		})
	}
}

func TestProjectService_Update_StatusValidation(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Project{
		ID:     1,
		Title:  "Portfolio Site",
		Status: model.ProjectStatusCompleted,
	}, nil)

	bad := "DONE"
	svc := NewProjectService(mockRepo, nil)
	_, err := svc.Update(context.Background(), 1, ProjectUpdate{Status: &bad})

	assertAPIError(t, err, http.StatusBadRequest, "Status must be one of: COMPLETED, IN_PROGRESS, PLANNED")
}

func TestProjectService_GetBySlug_NotFound(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("FindBySlug", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewProjectService(mockRepo, nil)
	_, err := svc.GetBySlug(context.Background(), "missing")

	assertAPIError(t, err, http.StatusNotFound, "Project not found")
}

func TestProjectService_Featured_DefaultLimit(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("Featured", mock.Anything, 6).Return([]model.Project{}, nil)

	svc := NewProjectService(mockRepo, nil)
	_, err := svc.Featured(context.Background(), -1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
