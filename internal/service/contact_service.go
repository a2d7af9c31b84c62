package service

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/linque-cms/internal/logger"
	"github.com/linque-cms/internal/models"
	"github.com/linque-cms/internal/repository"
)

const maxContactMessageLength = 5000

// ContactService accepts and lists contact form submissions.
type ContactService struct {
	repo repository.ContactMessageRepository
}

func NewContactService(repo repository.ContactMessageRepository) *ContactService {
	return &ContactService{repo: repo}
}

// ContactInput is one form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Submit validates and stores a submission.
func (s *ContactService) Submit(input ContactInput) (*models.ContactMessage, error) {
	if s.repo == nil {
		return nil, ErrStoreNotConfigured
	}

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if len(message) > maxContactMessageLength {
		return nil, fmt.Errorf("%w: message too long", ErrInvalidInput)
	}

	msg := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Company: strings.TrimSpace(input.Company),
		Phone:   strings.TrimSpace(input.Phone),
		Message: message,
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}
	logger.Infow("contact_message_received", "id", msg.ID, "email", email)
	return msg, nil
}

// List returns a page of submissions, newest first.
func (s *ContactService) List(page, pageSize int) ([]models.ContactMessage, int64, error) {
	if s.repo == nil {
		return nil, 0, ErrStoreNotConfigured
	}
	return s.repo.List(page, pageSize)
}
