package port

import (
	"context"

	"tabrev/internal/domain"
)

// DocumentRepository provides access to ingested documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]domain.Document, int, error)
	UpdateStatus(ctx context.Context, doc *domain.Document) error
	UpdateIndexOutcome(ctx context.Context, doc *domain.Document) error
	UpdateSource(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id int64) error
}
