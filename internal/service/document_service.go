package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"tabrev/internal/config"
	"tabrev/internal/domain"
	"tabrev/internal/index"
	"tabrev/internal/port"
)

// IngestDocumentInput is the DTO for ingesting a document. Content is the
// already-normalized plain text; format-specific extraction (PDF, HTML)
// happens upstream.
type IngestDocumentInput struct {
	ProjectID int64
	Filename  string
	Content   string
	CreatedBy uuid.UUID
}

// UploadSourceInput is the DTO for attaching the original source file.
type UploadSourceInput struct {
	DocumentID  int64
	Filename    string
	ContentType string
	Data        []byte
}

// DocumentService defines the document ingestion and retrieval contract.
type DocumentService interface {
	Ingest(ctx context.Context, input *IngestDocumentInput) (*domain.Document, error)
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]domain.Document, int, error)
	// Query runs a similarity search over the document's indexed passages.
	Query(ctx context.Context, documentID int64, queryText string, n int) ([]string, error)
	UploadSource(ctx context.Context, input *UploadSourceInput) (*domain.Document, error)
	SourceURL(ctx context.Context, documentID int64) (string, error)
	Delete(ctx context.Context, id int64) error
}

type documentService struct {
	docRepo     port.DocumentRepository
	projectRepo port.ProjectRepository
	index       *index.Service
	storage     port.ObjectStorage
	s3cfg       *config.S3Config
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	projectRepo port.ProjectRepository,
	indexSvc *index.Service,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
) DocumentService {
	return &documentService{
		docRepo:     docRepo,
		projectRepo: projectRepo,
		index:       indexSvc,
		storage:     storage,
		s3cfg:       s3cfg,
	}
}

// Ingest persists the document and then indexes its text for retrieval.
// Indexing is best-effort: a failure leaves the document ingested with
// index_status=degraded and the reason recorded, since retrieval
// augmentation is optional for the rest of the pipeline.
func (s *documentService) Ingest(ctx context.Context, input *IngestDocumentInput) (*domain.Document, error) {
	if _, err := s.projectRepo.GetByID(ctx, input.ProjectID); err != nil {
		return nil, fmt.Errorf("looking up project: %w", err)
	}

	doc := &domain.Document{
		ProjectID:   input.ProjectID,
		Filename:    input.Filename,
		Content:     input.Content,
		Status:      domain.DocumentStatusIngested,
		IndexStatus: domain.IndexStatusSkipped,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	outcome, err := s.index.Index(ctx, doc.ID, doc.Content)
	if err != nil {
		// Chunking misconfiguration is a deployment bug, not a degraded
		// index; it still must not fail the ingest.
		outcome = domain.IndexOutcome{Status: domain.IndexStatusDegraded, Reason: err.Error()}
	}
	doc.IndexStatus = outcome.Status
	doc.IndexError = outcome.Reason
	if outcome.Status == domain.IndexStatusDegraded {
		log.Printf("document %d indexed in degraded mode: %s", doc.ID, outcome.Reason)
	}
	if err := s.docRepo.UpdateIndexOutcome(ctx, doc); err != nil {
		log.Printf("document %d: recording index outcome failed: %v", doc.ID, err)
	}

	return doc, nil
}

func (s *documentService) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	return s.docRepo.GetByID(ctx, id)
}

func (s *documentService) ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]domain.Document, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.docRepo.ListByProject(ctx, projectID, offset, limit)
}

func (s *documentService) Query(ctx context.Context, documentID int64, queryText string, n int) ([]string, error) {
	if _, err := s.docRepo.GetByID(ctx, documentID); err != nil {
		return nil, err
	}
	return s.index.Retrieve(ctx, documentID, queryText, n)
}

func (s *documentService) UploadSource(ctx context.Context, input *UploadSourceInput) (*domain.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}

	maxBytes := s.s3cfg.MaxFileSizeMB * 1024 * 1024
	if maxBytes > 0 && int64(len(input.Data)) > maxBytes {
		return nil, domain.ErrUploadFailed
	}

	key := fmt.Sprintf("projects/%d/documents/%d/%s", doc.ProjectID, doc.ID, input.Filename)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(input.Data),
		ContentType: input.ContentType,
		Size:        int64(len(input.Data)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	doc.SourceBucket = s.s3cfg.Bucket
	doc.SourceKey = key
	if err := s.docRepo.UpdateSource(ctx, doc); err != nil {
		return nil, fmt.Errorf("recording source location: %w", err)
	}
	return doc, nil
}

func (s *documentService) SourceURL(ctx context.Context, documentID int64) (string, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	if doc.SourceBucket == "" || doc.SourceKey == "" {
		return "", domain.ErrNoSourceFile
	}
	return s.storage.GetPresignedURL(ctx, doc.SourceBucket, doc.SourceKey, s.s3cfg.PresignExpiry)
}

// Delete removes the document along with its chunks; records go with it via
// the foreign key. The source file is removed best-effort.
func (s *documentService) Delete(ctx context.Context, id int64) error {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.index.Remove(ctx, id); err != nil {
		log.Printf("document %d: removing chunks failed: %v", id, err)
	}
	if doc.SourceBucket != "" && doc.SourceKey != "" {
		if err := s.storage.Delete(ctx, doc.SourceBucket, doc.SourceKey); err != nil {
			log.Printf("document %d: deleting source object failed: %v", id, err)
		}
	}

	return s.docRepo.Delete(ctx, id)
}
