package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tabrev/internal/domain"
)

// MockChunkRepo is a mock implementation of port.ChunkRepository.
type MockChunkRepo struct {
	mock.Mock
}

func (m *MockChunkRepo) Upsert(ctx context.Context, chunks []domain.Chunk, embeddings [][]float32) error {
	args := m.Called(ctx, chunks, embeddings)
	return args.Error(0)
}

func (m *MockChunkRepo) Query(ctx context.Context, documentID int64, queryVector []float32, limit int) ([]string, error) {
	args := m.Called(ctx, documentID, queryVector, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockChunkRepo) DeleteByDocument(ctx context.Context, documentID int64) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}
