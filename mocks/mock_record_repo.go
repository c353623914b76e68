package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tabrev/internal/domain"
)

// MockRecordRepo is a mock implementation of port.RecordRepository.
type MockRecordRepo struct {
	mock.Mock
}

func (m *MockRecordRepo) ReplaceForDocument(ctx context.Context, documentID int64, records []domain.ExtractedRecord) ([]domain.ExtractedRecord, error) {
	args := m.Called(ctx, documentID, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtractedRecord), args.Error(1)
}

func (m *MockRecordRepo) GetByID(ctx context.Context, id int64) (*domain.ExtractedRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedRecord), args.Error(1)
}

func (m *MockRecordRepo) ListByDocument(ctx context.Context, documentID int64) ([]domain.ExtractedRecord, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtractedRecord), args.Error(1)
}

func (m *MockRecordRepo) ListByProject(ctx context.Context, projectID int64) ([]domain.ExtractedRecord, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtractedRecord), args.Error(1)
}

func (m *MockRecordRepo) UpdateReview(ctx context.Context, record *domain.ExtractedRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
