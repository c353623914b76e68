package port

import (
	"context"

	"tabrev/internal/domain"
)

// FieldExtractor asks a language model to extract the requested fields from
// document text. Implementations must fail fast with
// domain.ErrExtractorNotConfigured before any network call when credentials
// are missing, and must not return partial results on failure.
type FieldExtractor interface {
	Extract(ctx context.Context, text string, fields []domain.FieldSpec) ([]domain.FieldResult, error)
}
