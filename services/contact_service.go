package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/sender"

	"go.uber.org/zap"
)

const contactSubject = "New contact form submission"

// ContactService orchestrates a contact submission: persist, notify the
// operator, record the delivery attempt.
type ContactService interface {
	Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactSubmission, error)
	List(ctx context.Context, page, perPage int) ([]*models.ContactSubmission, int64, error)
}

type contactService struct {
	repo          repository.ContactRepository
	emailLog      repository.EmailLogRepository
	emailSender   sender.EmailSender
	operatorEmail string
	tmpl          *template.Template
	logger        *zap.Logger
}

func NewContactService(
	repo repository.ContactRepository,
	emailLog repository.EmailLogRepository,
	emailSender sender.EmailSender,
	operatorEmail string,
	logger *zap.Logger,
) (ContactService, error) {
	tmpl, err := parseTemplate("contact_notification.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse contact template: %w", err)
	}
	return &contactService{
		repo:          repo,
		emailLog:      emailLog,
		emailSender:   emailSender,
		operatorEmail: operatorEmail,
		tmpl:          tmpl,
		logger:        logger,
	}, nil
}

// Submit stores the submission, then emails the operator. A persistence
// failure stops the sequence before any send. A send failure is returned to
// the caller even though the record is already stored; the attempt is logged
// either way.
func (s *contactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactSubmission, error) {
	sub := &models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	stored, err := s.repo.Insert(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("persist contact submission: %w", err)
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, stored); err != nil {
		return stored, fmt.Errorf("render contact notification: %w", err)
	}

	result, sendErr := s.emailSender.SendEmail(ctx, s.operatorEmail, contactSubject, buf.String())
	recordEmailAttempt(ctx, s.emailLog, s.logger, s.operatorEmail, contactSubject, models.EmailKindContact, result, sendErr)
	if sendErr != nil {
		return stored, fmt.Errorf("%w: %s", ErrDelivery, sendErr)
	}

	s.logger.Info("contact submission processed",
		zap.String("id", stored.ID.Hex()),
		zap.String("email", stored.Email),
	)
	return stored, nil
}

func (s *contactService) List(ctx context.Context, page, perPage int) ([]*models.ContactSubmission, int64, error) {
	return s.repo.List(ctx, page, perPage)
}
