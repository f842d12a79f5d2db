package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

func TestContactService_Create(t *testing.T) {
	t.Run("stores a valid message", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *model.ContactMessage) bool {
			return m.Name == "Visitor" && !m.IsRead
		})).Return(nil)

		svc := NewContactService(mockRepo)
		message, err := svc.Create(context.Background(), ContactInput{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Subject: "Hello",
			Message: "I would like to talk about a project.",
		})

		assert.NoError(t, err)
		assert.Equal(t, "visitor@example.com", message.Email)
		mockRepo.AssertExpectations(t)
	})

	tests := []struct {
		name        string
		input       ContactInput
		wantMessage string
	}{
		{
			"missing name",
			ContactInput{Email: "visitor@example.com", Message: "A long enough message."},
			"Name is required",
		},
		{
			"invalid email",
			ContactInput{Name: "Visitor", Email: "nope", Message: "A long enough message."},
			"Valid email is required",
		},
		{
			"missing message",
			ContactInput{Name: "Visitor", Email: "visitor@example.com"},
			"Message is required",
		},
		{
			"message too short",
			ContactInput{Name: "Visitor", Email: "visitor@example.com", Message: "too short"},
			"Message must be at least 10 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewContactService(new(MockContactRepository))
			_, err := svc.Create(context.Background(), tt.input)
			assertAPIError(t, err, http.StatusBadRequest, tt.wantMessage)
		})
	}
}

func TestContactService_MarkAsRead(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.ContactMessage{ID: 3, IsRead: false}, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *model.ContactMessage) bool {
		return m.IsRead
	})).Return(nil)

	svc := NewContactService(mockRepo)
	message, err := svc.MarkAsRead(context.Background(), 3)

	assert.NoError(t, err)
	assert.True(t, message.IsRead)
	mockRepo.AssertExpectations(t)
}

func TestContactService_NotFound(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewContactService(mockRepo)

	_, err := svc.GetByID(context.Background(), 9)
	assertAPIError(t, err, http.StatusNotFound, "Message not found")

	_, err = svc.MarkAsRead(context.Background(), 9)
	assertAPIError(t, err, http.StatusNotFound, "Message not found")

	err = svc.Delete(context.Background(), 9)
	assertAPIError(t, err, http.StatusNotFound, "Message not found")
}

func TestContactService_Stats(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("Stats", mock.Anything).Return(&model.ContactStats{Total: 10, Unread: 4, Read: 6}, nil)

	svc := NewContactService(mockRepo)
	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, stats.Total, stats.Unread+stats.Read)
	mockRepo.AssertExpectations(t)
}

func TestContactService_List_Pagination(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ContactFilter) bool {
		return f.Page == 1 && f.Limit == 10
	})).Return([]model.ContactMessage{{ID: 1}}, int64(1), nil)

	svc := NewContactService(mockRepo)
	result, err := svc.List(context.Background(), repository.ContactFilter{})

	assert.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, 1, result.Pagination.TotalPages)
	mockRepo.AssertExpectations(t)
}
