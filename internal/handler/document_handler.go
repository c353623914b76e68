package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tabrev/internal/service"
)

// DocumentHandler handles document ingestion and retrieval endpoints.
type DocumentHandler struct {
	documentService   service.DocumentService
	extractionService service.ExtractionService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService, extractionService service.ExtractionService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, extractionService: extractionService}
}

// Ingest handles POST /api/v1/projects/:id/documents
func (h *DocumentHandler) Ingest(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Filename string `json:"filename" binding:"required"`
		Content  string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "filename is required")
		return
	}

	doc, err := h.documentService.Ingest(c.Request.Context(), &service.IngestDocumentInput{
		ProjectID: projectID,
		Filename:  req.Filename,
		Content:   req.Content,
		CreatedBy: userID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// List handles GET /api/v1/projects/:id/documents
func (h *DocumentHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	docs, total, err := h.documentService.ListByProject(c.Request.Context(), projectID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/documents/:id
func (h *DocumentHandler) GetByID(c *gin.Context) {
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// Delete handles DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), docID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "document deleted"})
}

// Query handles POST /api/v1/documents/:id/query
func (h *DocumentHandler) Query(c *gin.Context) {
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Query string `json:"query" binding:"required"`
		N     int    `json:"n"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "query is required")
		return
	}

	passages, err := h.documentService.Query(c.Request.Context(), docID, req.Query, req.N)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"passages": passages})
}

// Extract handles POST /api/v1/documents/:id/extract
func (h *DocumentHandler) Extract(c *gin.Context) {
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	records, err := h.extractionService.ExtractDocument(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// UploadSource handles POST /api/v1/documents/:id/source
func (h *DocumentHandler) UploadSource(c *gin.Context) {
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "cannot read uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "cannot read uploaded file")
		return
	}

	doc, err := h.documentService.UploadSource(c.Request.Context(), &service.UploadSourceInput{
		DocumentID:  docID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// SourceURL handles GET /api/v1/documents/:id/source
func (h *DocumentHandler) SourceURL(c *gin.Context) {
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	url, err := h.documentService.SourceURL(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}

// exportFilename builds a Content-Disposition value for entity downloads.
func exportFilename(prefix string, id int64, ext string) string {
	return "attachment; filename=" + prefix + "_" + strconv.FormatInt(id, 10) + "." + ext
}
