package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserInactive           = errors.New("user is inactive")
	ErrProjectNotFound        = errors.New("project not found")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrRecordNotFound         = errors.New("record not found")
	ErrSchemaFieldNotFound    = errors.New("schema field not found")
	ErrInvalidDataType        = errors.New("invalid schema field data type")
	ErrInvalidFieldName       = errors.New("schema field name must not be empty")
	ErrInvalidRecordStatus    = errors.New("invalid record status")
	ErrInvalidChunkConfig     = errors.New("chunk overlap must be non-negative and smaller than chunk size")
	ErrExtractorNotConfigured = errors.New("extractor API key is not configured")
	ErrExtractionFailed       = errors.New("extraction failed")
	ErrIndexUnavailable       = errors.New("similarity index is unavailable")
	ErrNoSourceFile           = errors.New("document has no source file")
	ErrUploadFailed           = errors.New("file upload to storage failed")
)
