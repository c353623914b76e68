package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tabrev/internal/domain"
	"tabrev/internal/service"
	"tabrev/mocks"
)

func TestSchemaService_Create_DefaultsToString(t *testing.T) {
	schemaRepo := new(mocks.MockSchemaFieldRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := service.NewSchemaService(schemaRepo, projectRepo)

	projectRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Project{ID: 1}, nil)
	schemaRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *domain.SchemaField) bool {
		return f.DataType == domain.DataTypeString && f.Name == "Invoice Number"
	})).Return(nil)

	field, err := svc.Create(context.Background(), &service.CreateSchemaFieldInput{
		ProjectID:   1,
		Name:        "Invoice Number",
		Description: "The invoice identifier",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.DataTypeString, field.DataType)
	schemaRepo.AssertExpectations(t)
}

func TestSchemaService_Create_RejectsUnknownDataType(t *testing.T) {
	schemaRepo := new(mocks.MockSchemaFieldRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := service.NewSchemaService(schemaRepo, projectRepo)

	projectRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Project{ID: 1}, nil)

	_, err := svc.Create(context.Background(), &service.CreateSchemaFieldInput{
		ProjectID: 1,
		Name:      "Amount",
		DataType:  "decimal",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidDataType)
	schemaRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSchemaService_Create_RejectsEmptyName(t *testing.T) {
	schemaRepo := new(mocks.MockSchemaFieldRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := service.NewSchemaService(schemaRepo, projectRepo)

	projectRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Project{ID: 1}, nil)

	_, err := svc.Create(context.Background(), &service.CreateSchemaFieldInput{
		ProjectID: 1,
		Name:      "   ",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidFieldName)
}

func TestSchemaService_Create_UnknownProject(t *testing.T) {
	schemaRepo := new(mocks.MockSchemaFieldRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := service.NewSchemaService(schemaRepo, projectRepo)

	projectRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, domain.ErrProjectNotFound)

	_, err := svc.Create(context.Background(), &service.CreateSchemaFieldInput{
		ProjectID: 42,
		Name:      "Amount",
	})

	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestSchemaService_Resolve_CustomFields(t *testing.T) {
	schemaRepo := new(mocks.MockSchemaFieldRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := service.NewSchemaService(schemaRepo, projectRepo)

	schemaRepo.On("ListByProject", mock.Anything, int64(1)).Return([]domain.SchemaField{
		{ID: 10, ProjectID: 1, Name: "Invoice Number", Description: "The invoice identifier", DataType: domain.DataTypeString},
		{ID: 11, ProjectID: 1, Name: "Total", Description: "The invoice total", DataType: domain.DataTypeNumber},
	}, nil)

	fields, err := svc.Resolve(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, []domain.FieldSpec{
		{Name: "Invoice Number", Description: "The invoice identifier"},
		{Name: "Total", Description: "The invoice total"},
	}, fields)
}

func TestSchemaService_Resolve_FallsBackToDefaults(t *testing.T) {
	schemaRepo := new(mocks.MockSchemaFieldRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := service.NewSchemaService(schemaRepo, projectRepo)

	schemaRepo.On("ListByProject", mock.Anything, int64(1)).Return([]domain.SchemaField{}, nil)

	fields, err := svc.Resolve(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultFields, fields)

	// The fallback is a copy; mutating it must not poison the defaults.
	fields[0].Name = "mutated"
	assert.Equal(t, "Contract Title", domain.DefaultFields[0].Name)
}
