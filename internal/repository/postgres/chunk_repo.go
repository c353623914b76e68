package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	pgvector "github.com/pgvector/pgvector-go"

	"tabrev/internal/domain"
	"tabrev/internal/port"
)

type chunkRepo struct {
	db *sqlx.DB
}

// NewChunkRepo creates a new pgvector-backed ChunkRepository.
func NewChunkRepo(db *sqlx.DB) port.ChunkRepository {
	return &chunkRepo{db: db}
}

func (r *chunkRepo) Upsert(ctx context.Context, chunks []domain.Chunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("chunkRepo.Upsert: %d chunks but %d embeddings", len(chunks), len(embeddings))
	}
	if len(chunks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("chunkRepo.Upsert begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, c := range chunks {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO document_chunks (id, document_id, text, start_offset, embedding)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (document_id, start_offset)
			 DO UPDATE SET text = EXCLUDED.text, embedding = EXCLUDED.embedding`,
			c.ID, c.DocumentID, c.Text, c.StartOffset, pgvector.NewVector(embeddings[i]))
		if err != nil {
			return fmt.Errorf("chunkRepo.Upsert insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("chunkRepo.Upsert commit: %w", err)
	}
	return nil
}

// Query ranks the document's chunks by cosine distance to the query vector.
// The document filter is applied in the WHERE clause, so chunks of other
// documents can never rank into the result.
func (r *chunkRepo) Query(ctx context.Context, documentID int64, queryVector []float32, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT text FROM document_chunks
		 WHERE document_id = $1
		 ORDER BY embedding <=> $2
		 LIMIT $3`,
		documentID, pgvector.NewVector(queryVector), limit)
	if err != nil {
		return nil, fmt.Errorf("chunkRepo.Query: %w", err)
	}
	defer rows.Close()

	texts := make([]string, 0, limit)
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("chunkRepo.Query scan: %w", err)
		}
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chunkRepo.Query rows: %w", err)
	}
	return texts, nil
}

func (r *chunkRepo) DeleteByDocument(ctx context.Context, documentID int64) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM document_chunks WHERE document_id = $1", documentID)
	if err != nil {
		return fmt.Errorf("chunkRepo.DeleteByDocument: %w", err)
	}
	return nil
}
