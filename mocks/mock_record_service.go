package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tabrev/internal/domain"
	"tabrev/internal/service"
)

// MockRecordService is a mock implementation of service.RecordService.
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) GetByID(ctx context.Context, id int64) (*domain.ExtractedRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedRecord), args.Error(1)
}

func (m *MockRecordService) ListByDocument(ctx context.Context, documentID int64) ([]domain.ExtractedRecord, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtractedRecord), args.Error(1)
}

func (m *MockRecordService) ListByProject(ctx context.Context, projectID int64) ([]domain.ExtractedRecord, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtractedRecord), args.Error(1)
}

func (m *MockRecordService) Review(ctx context.Context, id int64, input *service.ReviewRecordInput) (*domain.ExtractedRecord, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedRecord), args.Error(1)
}
