package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"tabrev/internal/domain"
	"tabrev/internal/port"
)

type schemaFieldRepo struct {
	db *sqlx.DB
}

// NewSchemaFieldRepo creates a new PostgreSQL-backed SchemaFieldRepository.
func NewSchemaFieldRepo(db *sqlx.DB) port.SchemaFieldRepository {
	return &schemaFieldRepo{db: db}
}

func (r *schemaFieldRepo) Create(ctx context.Context, field *domain.SchemaField) error {
	field.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO schema_fields (project_id, name, description, data_type, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		field.ProjectID, field.Name, field.Description, field.DataType, field.CreatedAt,
	).Scan(&field.ID)
	if err != nil {
		return fmt.Errorf("schemaFieldRepo.Create: %w", err)
	}
	return nil
}

func (r *schemaFieldRepo) ListByProject(ctx context.Context, projectID int64) ([]domain.SchemaField, error) {
	var fields []domain.SchemaField
	err := r.db.SelectContext(ctx, &fields,
		"SELECT * FROM schema_fields WHERE project_id = $1 ORDER BY id", projectID)
	if err != nil {
		return nil, fmt.Errorf("schemaFieldRepo.ListByProject: %w", err)
	}
	return fields, nil
}

func (r *schemaFieldRepo) Delete(ctx context.Context, projectID, fieldID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM schema_fields WHERE id = $1 AND project_id = $2", fieldID, projectID)
	if err != nil {
		return fmt.Errorf("schemaFieldRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSchemaFieldNotFound
	}
	return nil
}
