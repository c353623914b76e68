package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tabrev/internal/config"
	"tabrev/internal/domain"
	"tabrev/internal/index"
	"tabrev/internal/service"
	"tabrev/mocks"
)

func extractionFixture() (*mocks.MockDocumentRepo, *mocks.MockRecordRepo, *mocks.MockUserRepo, *mocks.MockSchemaFieldRepo, *mocks.MockChunkRepo, *mocks.MockEmbedder, *mocks.MockFieldExtractor, *mocks.MockEmailSender, service.ExtractionService) {
	docRepo := new(mocks.MockDocumentRepo)
	recordRepo := new(mocks.MockRecordRepo)
	userRepo := new(mocks.MockUserRepo)
	schemaRepo := new(mocks.MockSchemaFieldRepo)
	projectRepo := new(mocks.MockProjectRepo)
	chunkRepo := new(mocks.MockChunkRepo)
	embedder := new(mocks.MockEmbedder)
	fieldExt := new(mocks.MockFieldExtractor)
	email := new(mocks.MockEmailSender)

	schemaSvc := service.NewSchemaService(schemaRepo, projectRepo)
	indexSvc := index.NewService(chunkRepo, embedder, config.IndexConfig{ChunkSize: 1000, ChunkOverlap: 200, TopK: 5})
	cfg := &config.ExtractorConfig{Model: "gpt-4o-mini", MaxDocumentChars: 20000}

	svc := service.NewExtractionService(docRepo, recordRepo, userRepo, schemaSvc, indexSvc, fieldExt, email, cfg)
	return docRepo, recordRepo, userRepo, schemaRepo, chunkRepo, embedder, fieldExt, email, svc
}

func TestExtractionService_ExtractDocument_Success(t *testing.T) {
	docRepo, recordRepo, userRepo, schemaRepo, _, _, fieldExt, email, svc := extractionFixture()

	creator := uuid.New()
	doc := &domain.Document{
		ID:          3,
		ProjectID:   1,
		Filename:    "msa.txt",
		Content:     "This Master Services Agreement is effective January 1, 2024.",
		Status:      domain.DocumentStatusIngested,
		IndexStatus: domain.IndexStatusIndexed,
		CreatedBy:   creator,
	}
	docRepo.On("GetByID", mock.Anything, int64(3)).Return(doc, nil)
	schemaRepo.On("ListByProject", mock.Anything, int64(1)).Return([]domain.SchemaField{}, nil)

	results := []domain.FieldResult{
		{FieldName: "Contract Title", Value: strPtr("Master Services Agreement"), Confidence: floatPtr(0.95)},
		{FieldName: "Effective Date", Value: strPtr("January 1, 2024"), Confidence: floatPtr(0.9), Normalization: strPtr("2024-01-01")},
	}
	fieldExt.On("Extract", mock.Anything, doc.Content, domain.DefaultFields).Return(results, nil)

	recordRepo.On("ReplaceForDocument", mock.Anything, int64(3), mock.MatchedBy(func(recs []domain.ExtractedRecord) bool {
		if len(recs) != len(domain.DefaultFields) {
			return false
		}
		for _, r := range recs {
			if r.Status != domain.RecordStatusPending {
				return false
			}
		}
		// Value mirrors AIValue on a fresh run.
		return *recs[0].Value == "Master Services Agreement" && *recs[0].AIValue == "Master Services Agreement" &&
			recs[2].Value == nil && recs[2].AIValue == nil
	})).Return([]domain.ExtractedRecord{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}, nil)

	docRepo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(d *domain.Document) bool {
		return d.Status == domain.DocumentStatusExtracted
	})).Return(nil)

	userRepo.On("GetByID", mock.Anything, creator).Return(&domain.User{ID: creator, Email: "reviewer@test.com", FullName: "Reviewer"}, nil)
	email.On("SendReviewReadyEmail", mock.Anything, "reviewer@test.com", "Reviewer", "msa.txt", int64(3), 5).Return(nil)

	records, err := svc.ExtractDocument(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, records, 5)
	recordRepo.AssertExpectations(t)
	email.AssertExpectations(t)
}

func TestExtractionService_ExtractDocument_ExtractorErrorWritesNothing(t *testing.T) {
	docRepo, recordRepo, _, schemaRepo, _, _, fieldExt, _, svc := extractionFixture()

	doc := &domain.Document{ID: 3, ProjectID: 1, Content: "short doc", CreatedBy: uuid.New()}
	docRepo.On("GetByID", mock.Anything, int64(3)).Return(doc, nil)
	schemaRepo.On("ListByProject", mock.Anything, int64(1)).Return([]domain.SchemaField{}, nil)
	fieldExt.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrExtractionFailed)

	_, err := svc.ExtractDocument(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	recordRepo.AssertNotCalled(t, "ReplaceForDocument", mock.Anything, mock.Anything, mock.Anything)
	docRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestExtractionService_ExtractDocument_NotConfigured(t *testing.T) {
	docRepo, recordRepo, _, schemaRepo, _, _, fieldExt, _, svc := extractionFixture()

	doc := &domain.Document{ID: 3, ProjectID: 1, Content: "short doc", CreatedBy: uuid.New()}
	docRepo.On("GetByID", mock.Anything, int64(3)).Return(doc, nil)
	schemaRepo.On("ListByProject", mock.Anything, int64(1)).Return([]domain.SchemaField{}, nil)
	fieldExt.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrExtractorNotConfigured)

	_, err := svc.ExtractDocument(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrExtractorNotConfigured)
	recordRepo.AssertNotCalled(t, "ReplaceForDocument", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtractionService_ExtractDocument_EmailFailureIsNotFatal(t *testing.T) {
	docRepo, recordRepo, userRepo, schemaRepo, _, _, fieldExt, email, svc := extractionFixture()

	creator := uuid.New()
	doc := &domain.Document{ID: 3, ProjectID: 1, Filename: "a.txt", Content: "text", CreatedBy: creator}
	docRepo.On("GetByID", mock.Anything, int64(3)).Return(doc, nil)
	schemaRepo.On("ListByProject", mock.Anything, int64(1)).Return([]domain.SchemaField{}, nil)
	fieldExt.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return([]domain.FieldResult{}, nil)
	recordRepo.On("ReplaceForDocument", mock.Anything, int64(3), mock.Anything).Return([]domain.ExtractedRecord{{ID: 1}}, nil)
	docRepo.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("GetByID", mock.Anything, creator).Return(&domain.User{ID: creator, Email: "r@test.com"}, nil)
	email.On("SendReviewReadyEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	records, err := svc.ExtractDocument(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func floatPtr(f float64) *float64 { return &f }
