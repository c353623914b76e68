package port

import (
	"context"

	"tabrev/internal/domain"
)

// RecordRepository provides access to extracted records.
type RecordRepository interface {
	// ReplaceForDocument deletes the document's existing records and inserts
	// the new set in a single transaction. On failure the old set is intact:
	// a document never ends up with a partial mix of runs.
	ReplaceForDocument(ctx context.Context, documentID int64, records []domain.ExtractedRecord) ([]domain.ExtractedRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.ExtractedRecord, error)
	ListByDocument(ctx context.Context, documentID int64) ([]domain.ExtractedRecord, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.ExtractedRecord, error)
	UpdateReview(ctx context.Context, record *domain.ExtractedRecord) error
}
