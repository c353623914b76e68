package noop

import (
	"context"
	"log"

	"tabrev/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
// Used in development and when no email provider is configured.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendReviewReadyEmail(_ context.Context, toEmail, toName, documentName string, documentID int64, recordCount int) error {
	log.Printf("[NOOP EMAIL] Review-ready for %s (%s): document %d %q, %d records", toName, toEmail, documentID, documentName, recordCount)
	return nil
}
