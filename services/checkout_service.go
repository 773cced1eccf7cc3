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

const orderSubject = "Order confirmation"

// CheckoutService orchestrates an order: persist, confirm to the customer,
// record the delivery attempt.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutOrder, error)
	List(ctx context.Context, page, perPage int) ([]*models.CheckoutOrder, int64, error)
}

type checkoutService struct {
	repo        repository.OrderRepository
	emailLog    repository.EmailLogRepository
	emailSender sender.EmailSender
	tmpl        *template.Template
	logger      *zap.Logger
}

func NewCheckoutService(
	repo repository.OrderRepository,
	emailLog repository.EmailLogRepository,
	emailSender sender.EmailSender,
	logger *zap.Logger,
) (CheckoutService, error) {
	tmpl, err := parseTemplate("order_confirmation.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse order template: %w", err)
	}
	return &checkoutService{
		repo:        repo,
		emailLog:    emailLog,
		emailSender: emailSender,
		tmpl:        tmpl,
		logger:      logger,
	}, nil
}

type orderEmailData struct {
	Name        string
	TotalAmount float64
	AddressLine string
}

// PlaceOrder persists the order exactly as submitted, then emails the
// customer. The handler performs no field checks; the repository's document
// validation is the gate. TotalAmount is never recomputed from the items.
func (s *checkoutService) PlaceOrder(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutOrder, error) {
	order := &models.CheckoutOrder{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Zip:         req.Zip,
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
	}

	stored, err := s.repo.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("persist checkout order: %w", err)
	}

	data := orderEmailData{
		Name:        stored.Name,
		TotalAmount: stored.TotalAmount,
		AddressLine: fmt.Sprintf("%s, %s, %s, %s", stored.Address, stored.City, stored.State, stored.Zip),
	}
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return stored, fmt.Errorf("render order confirmation: %w", err)
	}

	result, sendErr := s.emailSender.SendEmail(ctx, stored.Email, orderSubject, buf.String())
	recordEmailAttempt(ctx, s.emailLog, s.logger, stored.Email, orderSubject, models.EmailKindOrderConfirmation, result, sendErr)
	if sendErr != nil {
		return stored, fmt.Errorf("%w: %s", ErrDelivery, sendErr)
	}

	s.logger.Info("checkout order processed",
		zap.String("id", stored.ID.Hex()),
		zap.String("email", stored.Email),
		zap.Float64("total_amount", stored.TotalAmount),
	)
	return stored, nil
}

func (s *checkoutService) List(ctx context.Context, page, perPage int) ([]*models.CheckoutOrder, int64, error) {
	return s.repo.List(ctx, page, perPage)
}
