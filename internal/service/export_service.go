package service

import (
	"context"
	"io"

	"tabrev/internal/csvexport"
	"tabrev/internal/port"
	"tabrev/internal/xlsxexport"
)

// ExportService streams record and evaluation exports for download.
type ExportService interface {
	// ExportDocumentCSV writes the document's records as CSV to w.
	ExportDocumentCSV(ctx context.Context, documentID int64, w io.Writer) error
	// ExportProjectCSV writes all of the project's records as CSV to w.
	ExportProjectCSV(ctx context.Context, projectID int64, w io.Writer) error
	// ExportProjectEvaluationXLSX writes the project's evaluation workbook to w.
	ExportProjectEvaluationXLSX(ctx context.Context, projectID int64, w io.Writer) error
}

type exportService struct {
	recordRepo port.RecordRepository
	docRepo    port.DocumentRepository
	projRepo   port.ProjectRepository
	evaluation EvaluationService
}

// NewExportService creates a new ExportService implementation.
func NewExportService(recordRepo port.RecordRepository, docRepo port.DocumentRepository, projRepo port.ProjectRepository, evaluation EvaluationService) ExportService {
	return &exportService{recordRepo: recordRepo, docRepo: docRepo, projRepo: projRepo, evaluation: evaluation}
}

func (s *exportService) ExportDocumentCSV(ctx context.Context, documentID int64, w io.Writer) error {
	if _, err := s.docRepo.GetByID(ctx, documentID); err != nil {
		return err
	}
	records, err := s.recordRepo.ListByDocument(ctx, documentID)
	if err != nil {
		return err
	}
	return csvexport.Write(w, records)
}

func (s *exportService) ExportProjectCSV(ctx context.Context, projectID int64, w io.Writer) error {
	if _, err := s.projRepo.GetByID(ctx, projectID); err != nil {
		return err
	}
	records, err := s.recordRepo.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	return csvexport.Write(w, records)
}

func (s *exportService) ExportProjectEvaluationXLSX(ctx context.Context, projectID int64, w io.Writer) error {
	report, err := s.evaluation.EvaluateProject(ctx, projectID)
	if err != nil {
		return err
	}
	records, err := s.recordRepo.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	return xlsxexport.WriteReport(w, report, records)
}
