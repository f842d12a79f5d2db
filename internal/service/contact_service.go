package service

import (
	"context"
	"strings"

	apierrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactService implements the contact inbox operations.
type ContactService interface {
	Create(ctx context.Context, input ContactInput) (*model.ContactMessage, error)
	List(ctx context.Context, filter repository.ContactFilter) (*model.ListResult[model.ContactMessage], error)
	GetByID(ctx context.Context, id uint) (*model.ContactMessage, error)
	MarkAsRead(ctx context.Context, id uint) (*model.ContactMessage, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*model.ContactStats, error)
}

type contactService struct {
	messages repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(messages repository.ContactRepository) ContactService {
	return &contactService{messages: messages}
}

func validateContactInput(input ContactInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return apierrors.BadRequest("Name is required")
	case !validation.IsEmail(input.Email):
		return apierrors.BadRequest("Valid email is required")
	case strings.TrimSpace(input.Message) == "":
		return apierrors.BadRequest("Message is required")
	case len(input.Message) < 10:
		return apierrors.BadRequest("Message must be at least 10 characters long")
	}
	return nil
}

func (s *contactService) Create(ctx context.Context, input ContactInput) (*model.ContactMessage, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}
	message := &model.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *contactService) List(ctx context.Context, filter repository.ContactFilter) (*model.ListResult[model.ContactMessage], error) {
	filter.Page, filter.Limit = model.NormalizePage(filter.Page, filter.Limit)
	messages, total, err := s.messages.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &model.ListResult[model.ContactMessage]{
		Data:       messages,
		Pagination: model.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func (s *contactService) GetByID(ctx context.Context, id uint) (*model.ContactMessage, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NotFound("Message not found")
	}
	return message, nil
}

func (s *contactService) MarkAsRead(ctx context.Context, id uint) (*model.ContactMessage, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NotFound("Message not found")
	}
	message.IsRead = true
	if err := s.messages.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	if _, err := s.messages.FindByID(ctx, id); err != nil {
		return apierrors.NotFound("Message not found")
	}
	return s.messages.Delete(ctx, id)
}

func (s *contactService) Stats(ctx context.Context) (*model.ContactStats, error) {
	return s.messages.Stats(ctx)
}
