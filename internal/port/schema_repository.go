package port

import (
	"context"

	"tabrev/internal/domain"
)

// SchemaFieldRepository provides access to project extraction schemas.
// Schema fields are append-and-delete only; there is no update.
type SchemaFieldRepository interface {
	Create(ctx context.Context, field *domain.SchemaField) error
	ListByProject(ctx context.Context, projectID int64) ([]domain.SchemaField, error)
	Delete(ctx context.Context, projectID, fieldID int64) error
}
