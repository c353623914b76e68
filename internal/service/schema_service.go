package service

import (
	"context"
	"fmt"
	"strings"

	"tabrev/internal/domain"
	"tabrev/internal/port"
)

// CreateSchemaFieldInput is the DTO for adding a field to a project schema.
type CreateSchemaFieldInput struct {
	ProjectID   int64
	Name        string
	Description string
	DataType    domain.DataType
}

// SchemaService manages project extraction schemas and resolves the
// effective field set for extraction.
type SchemaService interface {
	Create(ctx context.Context, input *CreateSchemaFieldInput) (*domain.SchemaField, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.SchemaField, error)
	Delete(ctx context.Context, projectID, fieldID int64) error
	// Resolve returns the project's custom fields, or the fixed default set
	// when the project has none. The two are never mixed.
	Resolve(ctx context.Context, projectID int64) ([]domain.FieldSpec, error)
}

type schemaService struct {
	schemaRepo  port.SchemaFieldRepository
	projectRepo port.ProjectRepository
}

// NewSchemaService creates a new SchemaService implementation.
func NewSchemaService(schemaRepo port.SchemaFieldRepository, projectRepo port.ProjectRepository) SchemaService {
	return &schemaService{schemaRepo: schemaRepo, projectRepo: projectRepo}
}

func (s *schemaService) Create(ctx context.Context, input *CreateSchemaFieldInput) (*domain.SchemaField, error) {
	if _, err := s.projectRepo.GetByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	dataType := input.DataType
	if dataType == "" {
		dataType = domain.DataTypeString
	}
	if !domain.AllowedDataTypes[dataType] {
		return nil, fmt.Errorf("data type %q: %w", dataType, domain.ErrInvalidDataType)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrInvalidFieldName
	}

	field := &domain.SchemaField{
		ProjectID:   input.ProjectID,
		Name:        name,
		Description: input.Description,
		DataType:    dataType,
	}
	if err := s.schemaRepo.Create(ctx, field); err != nil {
		return nil, fmt.Errorf("creating schema field: %w", err)
	}
	return field, nil
}

func (s *schemaService) ListByProject(ctx context.Context, projectID int64) ([]domain.SchemaField, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.schemaRepo.ListByProject(ctx, projectID)
}

func (s *schemaService) Delete(ctx context.Context, projectID, fieldID int64) error {
	return s.schemaRepo.Delete(ctx, projectID, fieldID)
}

func (s *schemaService) Resolve(ctx context.Context, projectID int64) ([]domain.FieldSpec, error) {
	fields, err := s.schemaRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("resolving schema: %w", err)
	}

	if len(fields) == 0 {
		specs := make([]domain.FieldSpec, len(domain.DefaultFields))
		copy(specs, domain.DefaultFields)
		return specs, nil
	}

	specs := make([]domain.FieldSpec, 0, len(fields))
	for _, f := range fields {
		specs = append(specs, domain.FieldSpec{Name: f.Name, Description: f.Description})
	}
	return specs, nil
}
