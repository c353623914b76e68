package port

import (
	"context"

	"tabrev/internal/domain"
)

// ChunkRepository stores document chunks with their embeddings and answers
// similarity queries restricted to a single document.
type ChunkRepository interface {
	// Upsert writes chunks keyed by (document_id, start_offset); re-ingesting
	// a document at the same offsets overwrites.
	Upsert(ctx context.Context, chunks []domain.Chunk, embeddings [][]float32) error
	// Query returns up to limit chunk texts for the document, ordered by
	// decreasing similarity to the query vector. Chunks belonging to other
	// documents are excluded by filter, not by ranking.
	Query(ctx context.Context, documentID int64, queryVector []float32, limit int) ([]string, error)
	DeleteByDocument(ctx context.Context, documentID int64) error
}

// Embedder converts text into vectors for similarity search.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	BatchEmbed(ctx context.Context, texts []string) ([][]float32, error)
}
