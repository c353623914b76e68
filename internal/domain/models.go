package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated reviewer or administrator.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Project groups documents and the extraction schema applied to them.
type Project struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Document is an ingested document: normalized plain text plus an optional
// pointer to the original source file in object storage.
type Document struct {
	ID           int64          `db:"id" json:"id"`
	ProjectID    int64          `db:"project_id" json:"project_id"`
	Filename     string         `db:"filename" json:"filename"`
	Content      string         `db:"content" json:"content"`
	Status       DocumentStatus `db:"status" json:"status"`
	IndexStatus  IndexStatus    `db:"index_status" json:"index_status"`
	IndexError   string         `db:"index_error" json:"index_error"`
	SourceBucket string         `db:"source_bucket" json:"source_bucket,omitempty"`
	SourceKey    string         `db:"source_key" json:"source_key,omitempty"`
	CreatedBy    uuid.UUID      `db:"created_by" json:"created_by"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// SchemaField is a project-defined field to extract from every document.
// Fields are created and deleted, never updated.
type SchemaField struct {
	ID          int64     `db:"id" json:"id"`
	ProjectID   int64     `db:"project_id" json:"project_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	DataType    DataType  `db:"data_type" json:"data_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// FieldSpec is the resolved (name, description) pair handed to the extractor.
// It is what SchemaField reduces to once data typing has been validated.
type FieldSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Chunk is a contiguous passage of a document's text. Identity is
// "{document_id}_{start_offset}" and is stable across re-ingestion.
type Chunk struct {
	ID          string `db:"id" json:"id"`
	DocumentID  int64  `db:"document_id" json:"document_id"`
	Text        string `db:"text" json:"text"`
	StartOffset int    `db:"start_offset" json:"start_offset"`
}

// FieldResult is a single candidate extraction produced by the model.
// A nil Value means the model reported the field as absent.
type FieldResult struct {
	FieldName     string   `json:"field_name"`
	Value         *string  `json:"value"`
	Confidence    *float64 `json:"confidence"`
	Citation      *string  `json:"citation"`
	Normalization *string  `json:"normalization"`
}

// ExtractedRecord is a persisted field extraction under human review.
// AIValue and AIConfidence are the write-once audit trail of what the model
// produced; Value is the editable current value and starts equal to AIValue.
type ExtractedRecord struct {
	ID            int64        `db:"id" json:"id"`
	DocumentID    int64        `db:"document_id" json:"document_id"`
	FieldName     string       `db:"field_name" json:"field_name"`
	Value         *string      `db:"value" json:"value"`
	AIValue       *string      `db:"ai_value" json:"ai_value"`
	AIConfidence  *float64     `db:"ai_confidence" json:"ai_confidence"`
	Citation      *string      `db:"citation" json:"citation"`
	Normalization *string      `db:"normalization" json:"normalization"`
	Status        RecordStatus `db:"status" json:"status"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at" json:"updated_at"`
}

// EvaluationReport aggregates review outcomes into an accuracy proxy:
// the share of reviewed fields whose final value matches the AI value.
type EvaluationReport struct {
	TotalFields    int     `json:"total_fields"`
	ReviewedFields int     `json:"reviewed_fields"`
	CorrectFields  int     `json:"correct_fields"`
	Accuracy       float64 `json:"accuracy"`
}

// IndexOutcome reports how indexing went for a document. Indexing is
// best-effort on the ingest path, so failures surface here rather than as
// errors.
type IndexOutcome struct {
	Status IndexStatus `json:"status"`
	Chunks int         `json:"chunks"`
	Reason string      `json:"reason,omitempty"`
}

// DefaultFields is the extraction schema used when a project has no custom
// fields, so extraction is always runnable without upfront configuration.
var DefaultFields = []FieldSpec{
	{Name: "Contract Title", Description: "The title of the agreement"},
	{Name: "Effective Date", Description: "The date the agreement becomes effective"},
	{Name: "Parties", Description: "The names of the parties entering the agreement"},
	{Name: "Governing Law", Description: "The law governing the agreement"},
	{Name: "Termination Clause", Description: "Conditions under which the agreement can be terminated"},
}
