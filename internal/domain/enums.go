package domain

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// DocumentStatus represents the lifecycle of an ingested document.
type DocumentStatus string

const (
	DocumentStatusUploaded  DocumentStatus = "uploaded"
	DocumentStatusIngested  DocumentStatus = "ingested"
	DocumentStatusExtracted DocumentStatus = "extracted"
	DocumentStatusError     DocumentStatus = "error"
)

// IndexStatus reports whether a document's chunks made it into the
// similarity index.
type IndexStatus string

const (
	IndexStatusSkipped  IndexStatus = "skipped"
	IndexStatusIndexed  IndexStatus = "indexed"
	IndexStatusDegraded IndexStatus = "degraded"
)

// RecordStatus is the review state of an extracted record. Records start
// pending; every other state is reached only by an explicit human action.
type RecordStatus string

const (
	RecordStatusPending       RecordStatus = "pending"
	RecordStatusApproved      RecordStatus = "approved"
	RecordStatusRejected      RecordStatus = "rejected"
	RecordStatusManualUpdated RecordStatus = "manual_updated"
)

// ReviewStatuses are the statuses a reviewer may set. Pending is not a
// reviewable target.
var ReviewStatuses = map[RecordStatus]bool{
	RecordStatusApproved:      true,
	RecordStatusRejected:      true,
	RecordStatusManualUpdated: true,
}

// DataType is the closed set of schema field value types.
type DataType string

const (
	DataTypeString DataType = "string"
	DataTypeNumber DataType = "number"
	DataTypeDate   DataType = "date"
)

// AllowedDataTypes validates DataType values at schema creation time.
var AllowedDataTypes = map[DataType]bool{
	DataTypeString: true,
	DataTypeNumber: true,
	DataTypeDate:   true,
}
