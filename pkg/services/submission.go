package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vincent-gallery/pkg/models"
	"vincent-gallery/pkg/utils"
)

// SubmissionService defines the interface for handling contact form submissions
type SubmissionService interface {
	ReceiveSubmission(ctx context.Context, data models.ContactSubmission) (*models.SubmissionReceipt, error)
}

type submissionServiceImpl struct {
	log   *zap.Logger
	ids   *IDGenerator
	delay time.Duration
	now   func() time.Time
}

// SubmissionOption customizes the submission service
type SubmissionOption func(*submissionServiceImpl)

// WithClock replaces the wall clock used for ids and timestamps
func WithClock(now func() time.Time) SubmissionOption {
	return func(s *submissionServiceImpl) {
		s.now = now
		s.ids = NewIDGenerator(now)
	}
}

// NewSubmissionService creates a new submission service. delay simulates
// processing time before the acknowledgment is returned.
func NewSubmissionService(log *zap.Logger, delay time.Duration, opts ...SubmissionOption) SubmissionService {
	s := &submissionServiceImpl{
		log:   log,
		ids:   NewIDGenerator(time.Now),
		delay: delay,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReceiveSubmission logs the submission and acknowledges it. Nothing is stored.
func (s *submissionServiceImpl) ReceiveSubmission(ctx context.Context, data models.ContactSubmission) (*models.SubmissionReceipt, error) {
	received := s.now()

	s.log.Info("Received contact form submission",
		zap.String("name", data.Name),
		zap.String("email", data.Email),
		zap.String("email_fingerprint", utils.Fingerprint(data.Email)),
		zap.String("message", data.Message),
		zap.String("website", data.Website),
		zap.String("client_timestamp", data.Timestamp),
		zap.String("timestamp", models.ISOTimestamp(received)),
	)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("error processing submission: %w", ctx.Err())
		}
	}

	receipt := &models.SubmissionReceipt{
		ID:        s.ids.Next(),
		Name:      data.Name,
		Email:     data.Email,
		Timestamp: models.ISOTimestamp(s.now()),
		Status:    models.StatusReceived,
	}

	s.log.Debug("Acknowledged submission", zap.Int64("id", receipt.ID))
	return receipt, nil
}
