package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"tabrev/internal/domain"
	"tabrev/internal/port"
)

type recordRepo struct {
	db *sqlx.DB
}

// NewRecordRepo creates a new PostgreSQL-backed RecordRepository.
func NewRecordRepo(db *sqlx.DB) port.RecordRepository {
	return &recordRepo{db: db}
}

// ReplaceForDocument swaps the document's record set inside one transaction.
// Re-extraction intentionally discards prior review history; making the swap
// transactional guarantees the document is never left with a partial mix of
// the old and new runs.
func (r *recordRepo) ReplaceForDocument(ctx context.Context, documentID int64, records []domain.ExtractedRecord) ([]domain.ExtractedRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("recordRepo.ReplaceForDocument begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM extracted_records WHERE document_id = $1", documentID); err != nil {
		return nil, fmt.Errorf("recordRepo.ReplaceForDocument delete: %w", err)
	}

	now := time.Now().UTC()
	saved := make([]domain.ExtractedRecord, 0, len(records))
	for _, rec := range records {
		rec.DocumentID = documentID
		rec.CreatedAt = now
		rec.UpdatedAt = now
		err := tx.QueryRowContext(ctx,
			`INSERT INTO extracted_records (
				document_id, field_name, value, ai_value, ai_confidence,
				citation, normalization, status, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id`,
			rec.DocumentID, rec.FieldName, rec.Value, rec.AIValue, rec.AIConfidence,
			rec.Citation, rec.Normalization, rec.Status, rec.CreatedAt, rec.UpdatedAt,
		).Scan(&rec.ID)
		if err != nil {
			return nil, fmt.Errorf("recordRepo.ReplaceForDocument insert: %w", err)
		}
		saved = append(saved, rec)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("recordRepo.ReplaceForDocument commit: %w", err)
	}
	return saved, nil
}

func (r *recordRepo) GetByID(ctx context.Context, id int64) (*domain.ExtractedRecord, error) {
	var rec domain.ExtractedRecord
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM extracted_records WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("recordRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *recordRepo) ListByDocument(ctx context.Context, documentID int64) ([]domain.ExtractedRecord, error) {
	var records []domain.ExtractedRecord
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM extracted_records WHERE document_id = $1 ORDER BY field_name", documentID)
	if err != nil {
		return nil, fmt.Errorf("recordRepo.ListByDocument: %w", err)
	}
	return records, nil
}

func (r *recordRepo) ListByProject(ctx context.Context, projectID int64) ([]domain.ExtractedRecord, error) {
	var records []domain.ExtractedRecord
	err := r.db.SelectContext(ctx, &records,
		`SELECT er.* FROM extracted_records er
		 JOIN documents d ON d.id = er.document_id
		 WHERE d.project_id = $1
		 ORDER BY er.document_id, er.field_name`, projectID)
	if err != nil {
		return nil, fmt.Errorf("recordRepo.ListByProject: %w", err)
	}
	return records, nil
}

func (r *recordRepo) UpdateReview(ctx context.Context, record *domain.ExtractedRecord) error {
	record.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE extracted_records SET value = $1, status = $2, updated_at = $3
		 WHERE id = $4`,
		record.Value, record.Status, record.UpdatedAt, record.ID)
	if err != nil {
		return fmt.Errorf("recordRepo.UpdateReview: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
