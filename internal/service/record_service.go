package service

import (
	"context"
	"fmt"

	"tabrev/internal/domain"
	"tabrev/internal/port"
)

// ReviewRecordInput is the DTO for a human review decision on a record.
// Value is optional: approved never uses it, manual_updated requires it,
// rejected applies it only when present.
type ReviewRecordInput struct {
	Status domain.RecordStatus
	Value  *string
}

// RecordService defines the record review contract.
type RecordService interface {
	GetByID(ctx context.Context, id int64) (*domain.ExtractedRecord, error)
	ListByDocument(ctx context.Context, documentID int64) ([]domain.ExtractedRecord, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.ExtractedRecord, error)
	Review(ctx context.Context, id int64, input *ReviewRecordInput) (*domain.ExtractedRecord, error)
}

type recordService struct {
	recordRepo port.RecordRepository
}

// NewRecordService creates a new RecordService implementation.
func NewRecordService(recordRepo port.RecordRepository) RecordService {
	return &recordService{recordRepo: recordRepo}
}

func (s *recordService) GetByID(ctx context.Context, id int64) (*domain.ExtractedRecord, error) {
	return s.recordRepo.GetByID(ctx, id)
}

func (s *recordService) ListByDocument(ctx context.Context, documentID int64) ([]domain.ExtractedRecord, error) {
	return s.recordRepo.ListByDocument(ctx, documentID)
}

func (s *recordService) ListByProject(ctx context.Context, projectID int64) ([]domain.ExtractedRecord, error) {
	return s.recordRepo.ListByProject(ctx, projectID)
}

// Review applies a review decision. The AI audit fields (ai_value,
// ai_confidence, citation, normalization) are never touched; only Value and
// Status change. Re-reviewing is last-write-wins.
func (s *recordService) Review(ctx context.Context, id int64, input *ReviewRecordInput) (*domain.ExtractedRecord, error) {
	if !domain.ReviewStatuses[input.Status] {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRecordStatus, input.Status)
	}

	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch input.Status {
	case domain.RecordStatusApproved:
		// Approval confirms the current value as-is.
	case domain.RecordStatusManualUpdated:
		if input.Value == nil {
			return nil, fmt.Errorf("%w: manual_updated requires a value", domain.ErrInvalidRecordStatus)
		}
		record.Value = input.Value
	case domain.RecordStatusRejected:
		if input.Value != nil {
			record.Value = input.Value
		}
	}
	record.Status = input.Status

	if err := s.recordRepo.UpdateReview(ctx, record); err != nil {
		return nil, fmt.Errorf("updating record %d: %w", id, err)
	}
	return record, nil
}
