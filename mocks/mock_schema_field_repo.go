package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tabrev/internal/domain"
)

// MockSchemaFieldRepo is a mock implementation of port.SchemaFieldRepository.
type MockSchemaFieldRepo struct {
	mock.Mock
}

func (m *MockSchemaFieldRepo) Create(ctx context.Context, field *domain.SchemaField) error {
	args := m.Called(ctx, field)
	return args.Error(0)
}

func (m *MockSchemaFieldRepo) ListByProject(ctx context.Context, projectID int64) ([]domain.SchemaField, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SchemaField), args.Error(1)
}

func (m *MockSchemaFieldRepo) Delete(ctx context.Context, projectID, fieldID int64) error {
	args := m.Called(ctx, projectID, fieldID)
	return args.Error(0)
}
