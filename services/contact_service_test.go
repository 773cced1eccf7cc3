package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/sender"
	"storefront-service/services"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ---- fakes shared by the service tests ----

type fakeContactRepo struct {
	inserted  []*models.ContactSubmission
	insertErr error
}

func (f *fakeContactRepo) Insert(ctx context.Context, sub *models.ContactSubmission) (*models.ContactSubmission, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	if err := sub.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", repository.ErrInvalidRecord, err)
	}
	sub.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, sub)
	return sub, nil
}

func (f *fakeContactRepo) List(ctx context.Context, page, perPage int) ([]*models.ContactSubmission, int64, error) {
	return f.inserted, int64(len(f.inserted)), nil
}

type fakeOrderRepo struct {
	inserted  []*models.CheckoutOrder
	insertErr error
}

func (f *fakeOrderRepo) Insert(ctx context.Context, order *models.CheckoutOrder) (*models.CheckoutOrder, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", repository.ErrInvalidRecord, err)
	}
	order.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, order)
	return order, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, page, perPage int) ([]*models.CheckoutOrder, int64, error) {
	return f.inserted, int64(len(f.inserted)), nil
}

type fakeEmailLog struct {
	records []*models.EmailRecord
	saveErr error
}

func (f *fakeEmailLog) Save(ctx context.Context, rec *models.EmailRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = append(f.records, rec)
	return nil
}

type sentEmail struct {
	to, subject, body string
}

type fakeSender struct {
	sent    []sentEmail
	sendErr error
}

func (f *fakeSender) SendEmail(ctx context.Context, to, subject, body string) (sender.SendResult, error) {
	if f.sendErr != nil {
		return sender.SendResult{}, f.sendErr
	}
	f.sent = append(f.sent, sentEmail{to, subject, body})
	return sender.SendResult{MessageID: "msg-1", SentAt: time.Now()}, nil
}

const operatorEmail = "ops@example.com"

func newContactService(t *testing.T, repo *fakeContactRepo, log *fakeEmailLog, snd *fakeSender) services.ContactService {
	t.Helper()
	svc, err := services.NewContactService(repo, log, snd, operatorEmail, zap.NewNop())
	assert.NoError(t, err)
	return svc
}

// ---- tests ----

func TestContactSubmit_Success(t *testing.T) {
	repo := &fakeContactRepo{}
	log := &fakeEmailLog{}
	snd := &fakeSender{}
	svc := newContactService(t, repo, log, snd)

	stored, err := svc.Submit(context.Background(), &models.ContactRequest{
		Name: "Ana", Email: "a@x.com", Message: "Hi",
	})

	assert.NoError(t, err)

	// Exactly one stored submission with a server-set creation time.
	assert.Len(t, repo.inserted, 1)
	assert.Equal(t, "Ana", stored.Name)
	assert.Equal(t, "a@x.com", stored.Email)
	assert.Equal(t, "Hi", stored.Message)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.ID.IsZero())

	// Exactly one email, addressed to the operator, echoing the submission.
	assert.Len(t, snd.sent, 1)
	assert.Equal(t, operatorEmail, snd.sent[0].to)
	assert.Contains(t, snd.sent[0].body, "Ana")
	assert.Contains(t, snd.sent[0].body, "a@x.com")
	assert.Contains(t, snd.sent[0].body, "Hi")

	// Attempt recorded as sent.
	assert.Len(t, log.records, 1)
	assert.Equal(t, models.EmailStatusSent, log.records[0].Status)
	assert.Equal(t, models.EmailKindContact, log.records[0].Kind)
}

func TestContactSubmit_PersistenceFailureSkipsEmail(t *testing.T) {
	repo := &fakeContactRepo{insertErr: errors.New("connection reset")}
	log := &fakeEmailLog{}
	snd := &fakeSender{}
	svc := newContactService(t, repo, log, snd)

	_, err := svc.Submit(context.Background(), &models.ContactRequest{
		Name: "Ana", Email: "a@x.com", Message: "Hi",
	})

	assert.Error(t, err)
	assert.Empty(t, snd.sent)
	assert.Empty(t, log.records)
}

func TestContactSubmit_DeliveryFailureAfterStore(t *testing.T) {
	repo := &fakeContactRepo{}
	log := &fakeEmailLog{}
	snd := &fakeSender{sendErr: errors.New("smtp send failed: 535 auth")}
	svc := newContactService(t, repo, log, snd)

	stored, err := svc.Submit(context.Background(), &models.ContactRequest{
		Name: "Ana", Email: "a@x.com", Message: "Hi",
	})

	// The record is durably stored, yet the call fails: the documented
	// behavior, surfaced as a typed delivery error.
	assert.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrDelivery))
	assert.NotNil(t, stored)
	assert.Len(t, repo.inserted, 1)

	// The failed attempt is still recorded.
	assert.Len(t, log.records, 1)
	assert.Equal(t, models.EmailStatusFailed, log.records[0].Status)
	assert.Contains(t, log.records[0].Error, "535")
}

func TestContactSubmit_EmailLogFailureIsSwallowed(t *testing.T) {
	repo := &fakeContactRepo{}
	log := &fakeEmailLog{saveErr: errors.New("log collection down")}
	snd := &fakeSender{}
	svc := newContactService(t, repo, log, snd)

	_, err := svc.Submit(context.Background(), &models.ContactRequest{
		Name: "Ana", Email: "a@x.com", Message: "Hi",
	})

	assert.NoError(t, err)
	assert.Len(t, snd.sent, 1)
}

func TestContactSubmit_BodyEscapesMarkup(t *testing.T) {
	repo := &fakeContactRepo{}
	log := &fakeEmailLog{}
	snd := &fakeSender{}
	svc := newContactService(t, repo, log, snd)

	_, err := svc.Submit(context.Background(), &models.ContactRequest{
		Name: "Ana", Email: "a@x.com", Message: "<script>alert(1)</script>",
	})

	assert.NoError(t, err)
	assert.Len(t, snd.sent, 1)
	assert.False(t, strings.Contains(snd.sent[0].body, "<script>"))
}
