package index

import (
	"context"
	"fmt"

	"tabrev/internal/chunker"
	"tabrev/internal/config"
	"tabrev/internal/domain"
	"tabrev/internal/port"
)

// Service maintains the per-document similarity index: it chunks document
// text, embeds the chunks, and answers nearest-neighbor queries restricted
// to one document. The chunk repository and embedder are injected; the
// service holds no other state, so a fresh instance is full isolation.
type Service struct {
	chunks   port.ChunkRepository
	embedder port.Embedder
	cfg      config.IndexConfig
}

// NewService creates an index Service.
func NewService(chunks port.ChunkRepository, embedder port.Embedder, cfg config.IndexConfig) *Service {
	return &Service{chunks: chunks, embedder: embedder, cfg: cfg}
}

// Index splits the document text and writes the chunks with their
// embeddings. Indexing is best-effort: failures are reported in the outcome
// so ingestion can proceed in degraded mode. The one exception is a chunking
// configuration error, which is a caller bug and is returned as an error.
func (s *Service) Index(ctx context.Context, documentID int64, text string) (domain.IndexOutcome, error) {
	chunks, err := chunker.Split(documentID, text, s.cfg.ChunkSize, s.cfg.ChunkOverlap)
	if err != nil {
		return domain.IndexOutcome{}, err
	}
	if len(chunks) == 0 {
		return domain.IndexOutcome{Status: domain.IndexStatusSkipped, Reason: "document has no text"}, nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	embeddings, err := s.batchEmbed(ctx, texts)
	if err != nil {
		return domain.IndexOutcome{Status: domain.IndexStatusDegraded, Reason: fmt.Sprintf("embedding failed: %v", err)}, nil
	}

	if err := s.chunks.Upsert(ctx, chunks, embeddings); err != nil {
		return domain.IndexOutcome{Status: domain.IndexStatusDegraded, Reason: fmt.Sprintf("index write failed: %v", err)}, nil
	}

	return domain.IndexOutcome{Status: domain.IndexStatusIndexed, Chunks: len(chunks)}, nil
}

// Retrieve returns up to n passages of the given document ordered by
// similarity to queryText. Passages of other documents never appear in the
// result regardless of similarity.
func (s *Service) Retrieve(ctx context.Context, documentID int64, queryText string, n int) ([]string, error) {
	if n <= 0 {
		n = s.cfg.TopK
	}

	vector, err := s.embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	passages, err := s.chunks.Query(ctx, documentID, vector, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}
	return passages, nil
}

// Remove deletes all chunks indexed for the document.
func (s *Service) Remove(ctx context.Context, documentID int64) error {
	if err := s.chunks.DeleteByDocument(ctx, documentID); err != nil {
		return fmt.Errorf("deleting chunks for document %d: %w", documentID, err)
	}
	return nil
}

// batchEmbed embeds texts in batches respecting the embedder's batch cap.
func (s *Service) batchEmbed(ctx context.Context, texts []string) ([][]float32, error) {
	const maxBatch = 100

	embeddings := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += maxBatch {
		end := start + maxBatch
		if end > len(texts) {
			end = len(texts)
		}
		batch, err := s.embedder.BatchEmbed(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		embeddings = append(embeddings, batch...)
	}

	if len(embeddings) != len(texts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks", len(embeddings), len(texts))
	}
	return embeddings, nil
}
