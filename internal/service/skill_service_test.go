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

func TestSkillService_Create(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Skill) bool {
		return s.Name == "Go" && s.Category == model.SkillCategoryBackend && s.Level == 90
	})).Return(nil)

	svc := NewSkillService(mockRepo)
	skill, err := svc.Create(context.Background(), SkillInput{
		Name:     "Go",
		Category: model.SkillCategoryBackend,
		Level:    90,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Go", skill.Name)
	mockRepo.AssertExpectations(t)
}

func TestSkillService_ByCategory(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	mockRepo.On("List", mock.Anything, model.SkillCategory("")).Return([]model.Skill{
		{ID: 1, Name: "React", Category: model.SkillCategoryFrontend, Order: 1},
		{ID: 2, Name: "Next.js", Category: model.SkillCategoryFrontend, Order: 2},
		{ID: 3, Name: "Go", Category: model.SkillCategoryBackend, Order: 1},
	}, nil)

	svc := NewSkillService(mockRepo)
	grouped, err := svc.ByCategory(context.Background())

	assert.NoError(t, err)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped[model.SkillCategoryFrontend], 2)
	assert.Equal(t, "React", grouped[model.SkillCategoryFrontend][0].Name)
	assert.Equal(t, "Go", grouped[model.SkillCategoryBackend][0].Name)
	mockRepo.AssertExpectations(t)
}

func TestSkillService_Update(t *testing.T) {
	t.Run("applies partial changes", func(t *testing.T) {
		mockRepo := new(MockSkillRepository)
		mockRepo.On("FindByID", mock.Anything, uint(4)).Return(&model.Skill{
			ID:       4,
			Name:     "MySQL",
			Category: model.SkillCategoryDatabase,
			Level:    70,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Skill")).Return(nil)

		level := 85
		svc := NewSkillService(mockRepo)
		skill, err := svc.Update(context.Background(), 4, SkillUpdate{Level: &level})

		assert.NoError(t, err)
		assert.Equal(t, 85, skill.Level)
		assert.Equal(t, "MySQL", skill.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing skill", func(t *testing.T) {
		mockRepo := new(MockSkillRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewSkillService(mockRepo)
		_, err := svc.Update(context.Background(), 99, SkillUpdate{})

		assertAPIError(t, err, http.StatusNotFound, "Skill not found")
	})
}

func TestSkillService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewSkillService(mockRepo)
	err := svc.Delete(context.Background(), 99)

	assertAPIError(t, err, http.StatusNotFound, "Skill not found")
}
