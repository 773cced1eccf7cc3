package services

import (
	"context"

	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/sender"

	"go.uber.org/zap"
)

// recordEmailAttempt writes one EmailRecord for a send attempt. A failure to
// write the log never affects the request outcome; it is logged and dropped.
func recordEmailAttempt(
	ctx context.Context,
	emailLog repository.EmailLogRepository,
	logger *zap.Logger,
	to, subject, kind string,
	result sender.SendResult,
	sendErr error,
) {
	rec := &models.EmailRecord{
		Recipient: to,
		Subject:   subject,
		Kind:      kind,
		Status:    models.EmailStatusSent,
		MessageID: result.MessageID,
	}
	if sendErr != nil {
		rec.Status = models.EmailStatusFailed
		rec.Error = sendErr.Error()
	}

	if err := emailLog.Save(ctx, rec); err != nil {
		logger.Error("failed to save email record", zap.Error(err))
	}
}
