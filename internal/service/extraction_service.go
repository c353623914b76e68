package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tabrev/internal/config"
	"tabrev/internal/domain"
	"tabrev/internal/extractor"
	"tabrev/internal/index"
	"tabrev/internal/port"
)

// ExtractionService runs the field-extraction pipeline for a document and
// materializes the results as pending records.
type ExtractionService interface {
	ExtractDocument(ctx context.Context, documentID int64) ([]domain.ExtractedRecord, error)
}

type extractionService struct {
	docRepo    port.DocumentRepository
	recordRepo port.RecordRepository
	userRepo   port.UserRepository
	schema     SchemaService
	index      *index.Service
	fieldExt   port.FieldExtractor
	email      port.EmailSender
	cfg        *config.ExtractorConfig
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(
	docRepo port.DocumentRepository,
	recordRepo port.RecordRepository,
	userRepo port.UserRepository,
	schema SchemaService,
	indexSvc *index.Service,
	fieldExt port.FieldExtractor,
	email port.EmailSender,
	cfg *config.ExtractorConfig,
) ExtractionService {
	return &extractionService{
		docRepo:    docRepo,
		recordRepo: recordRepo,
		userRepo:   userRepo,
		schema:     schema,
		index:      indexSvc,
		fieldExt:   fieldExt,
		email:      email,
		cfg:        cfg,
	}
}

// ExtractDocument resolves the project's schema, runs the extractor over the
// document, and replaces the document's records with a fresh pending set. On
// any extractor failure nothing is written: the previous run's records stay
// intact.
func (s *extractionService) ExtractDocument(ctx context.Context, documentID int64) ([]domain.ExtractedRecord, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	fields, err := s.schema.Resolve(ctx, doc.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("resolving schema: %w", err)
	}

	docContext := s.buildContext(ctx, doc, fields)

	results, err := s.fieldExt.Extract(ctx, docContext, fields)
	if err != nil {
		return nil, err
	}

	records := buildPendingRecords(documentID, fields, results)

	saved, err := s.recordRepo.ReplaceForDocument(ctx, documentID, records)
	if err != nil {
		return nil, fmt.Errorf("storing records: %w", err)
	}

	doc.Status = domain.DocumentStatusExtracted
	if err := s.docRepo.UpdateStatus(ctx, doc); err != nil {
		log.Printf("document %d: updating status failed: %v", documentID, err)
	}

	s.notifyReviewer(ctx, doc, len(saved))

	return saved, nil
}

// buildContext returns the text handed to the model. Documents within the
// character budget go in whole (minus anything past the budget). Longer
// documents that were indexed are represented by the passages most similar
// to each schema field instead, so relevant text past the budget still
// reaches the model. If retrieval fails the prefix is the fallback.
func (s *extractionService) buildContext(ctx context.Context, doc *domain.Document, fields []domain.FieldSpec) string {
	maxChars := s.cfg.MaxDocumentChars
	if len(doc.Content) <= maxChars || doc.IndexStatus != domain.IndexStatusIndexed {
		return extractor.TruncateDocument(doc.Content, maxChars)
	}

	seen := make(map[string]bool)
	var passages []string
	for _, f := range fields {
		query := f.Name + ": " + f.Description
		hits, err := s.index.Retrieve(ctx, doc.ID, query, 0)
		if err != nil {
			log.Printf("document %d: retrieval for %q failed, using prefix: %v", doc.ID, f.Name, err)
			return extractor.TruncateDocument(doc.Content, maxChars)
		}
		for _, h := range hits {
			if !seen[h] {
				seen[h] = true
				passages = append(passages, h)
			}
		}
	}
	if len(passages) == 0 {
		return extractor.TruncateDocument(doc.Content, maxChars)
	}
	return extractor.TruncateDocument(strings.Join(passages, "\n\n"), maxChars)
}

// buildPendingRecords turns extractor output into pending records, one per
// resolved schema field. Fields the model did not answer for still get a
// record with a nil value so reviewers see the full schema.
func buildPendingRecords(documentID int64, fields []domain.FieldSpec, results []domain.FieldResult) []domain.ExtractedRecord {
	byName := make(map[string]domain.FieldResult, len(results))
	for _, r := range results {
		byName[r.FieldName] = r
	}

	records := make([]domain.ExtractedRecord, 0, len(fields))
	for _, f := range fields {
		rec := domain.ExtractedRecord{
			DocumentID: documentID,
			FieldName:  f.Name,
			Status:     domain.RecordStatusPending,
		}
		if r, ok := byName[f.Name]; ok {
			rec.Value = r.Value
			rec.AIValue = r.Value
			rec.AIConfidence = r.Confidence
			rec.Citation = r.Citation
			rec.Normalization = r.Normalization
		}
		records = append(records, rec)
	}
	return records
}

// notifyReviewer emails the document's creator that records are ready.
// Notification failures are logged, never surfaced: the extraction run
// already succeeded.
func (s *extractionService) notifyReviewer(ctx context.Context, doc *domain.Document, recordCount int) {
	if s.email == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, doc.CreatedBy)
	if err != nil {
		log.Printf("document %d: looking up creator for notification failed: %v", doc.ID, err)
		return
	}
	if err := s.email.SendReviewReadyEmail(ctx, user.Email, user.FullName, doc.Filename, doc.ID, recordCount); err != nil {
		log.Printf("document %d: review-ready email failed: %v", doc.ID, err)
	}
}
