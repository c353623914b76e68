package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendReviewReadyEmail(ctx context.Context, toEmail, toName, documentName string, documentID int64, recordCount int) error {
	args := m.Called(ctx, toEmail, toName, documentName, documentID, recordCount)
	return args.Error(0)
}
