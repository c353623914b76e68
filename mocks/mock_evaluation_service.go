package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tabrev/internal/domain"
)

// MockEvaluationService is a mock implementation of service.EvaluationService.
type MockEvaluationService struct {
	mock.Mock
}

func (m *MockEvaluationService) EvaluateDocument(ctx context.Context, documentID int64) (*domain.EvaluationReport, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvaluationReport), args.Error(1)
}

func (m *MockEvaluationService) EvaluateProject(ctx context.Context, projectID int64) (*domain.EvaluationReport, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvaluationReport), args.Error(1)
}
