package port

import "context"

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	// SendReviewReadyEmail notifies a user that a document finished
	// extraction and its records are waiting for review.
	SendReviewReadyEmail(ctx context.Context, toEmail, toName, documentName string, documentID int64, recordCount int) error
}
