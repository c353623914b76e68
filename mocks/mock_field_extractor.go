package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tabrev/internal/domain"
)

// MockFieldExtractor is a mock implementation of port.FieldExtractor.
type MockFieldExtractor struct {
	mock.Mock
}

func (m *MockFieldExtractor) Extract(ctx context.Context, text string, fields []domain.FieldSpec) ([]domain.FieldResult, error) {
	args := m.Called(ctx, text, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FieldResult), args.Error(1)
}
