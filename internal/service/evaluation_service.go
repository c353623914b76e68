package service

import (
	"context"

	"tabrev/internal/domain"
	"tabrev/internal/port"
)

// EvaluationService computes review-based accuracy reports.
type EvaluationService interface {
	EvaluateDocument(ctx context.Context, documentID int64) (*domain.EvaluationReport, error)
	EvaluateProject(ctx context.Context, projectID int64) (*domain.EvaluationReport, error)
}

type evaluationService struct {
	recordRepo port.RecordRepository
	docRepo    port.DocumentRepository
	projRepo   port.ProjectRepository
}

// NewEvaluationService creates a new EvaluationService implementation.
func NewEvaluationService(recordRepo port.RecordRepository, docRepo port.DocumentRepository, projRepo port.ProjectRepository) EvaluationService {
	return &evaluationService{recordRepo: recordRepo, docRepo: docRepo, projRepo: projRepo}
}

func (s *evaluationService) EvaluateDocument(ctx context.Context, documentID int64) (*domain.EvaluationReport, error) {
	if _, err := s.docRepo.GetByID(ctx, documentID); err != nil {
		return nil, err
	}
	records, err := s.recordRepo.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return Evaluate(records), nil
}

func (s *evaluationService) EvaluateProject(ctx context.Context, projectID int64) (*domain.EvaluationReport, error) {
	if _, err := s.projRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	records, err := s.recordRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return Evaluate(records), nil
}

// Evaluate aggregates records into an accuracy report. A record counts as
// reviewed when its status is anything but pending, and as correct when its
// final value equals the AI value (two nils are equal). Accuracy is the
// percentage of reviewed records that are correct, 0 when nothing has been
// reviewed yet.
func Evaluate(records []domain.ExtractedRecord) *domain.EvaluationReport {
	report := &domain.EvaluationReport{TotalFields: len(records)}
	for _, r := range records {
		if r.Status == domain.RecordStatusPending {
			continue
		}
		report.ReviewedFields++
		if valuesEqual(r.Value, r.AIValue) {
			report.CorrectFields++
		}
	}
	if report.ReviewedFields > 0 {
		report.Accuracy = 100 * float64(report.CorrectFields) / float64(report.ReviewedFields)
	}
	return report
}

func valuesEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
