package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabrev/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles record and evaluation export endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportDocumentCSV handles GET /api/v1/documents/:id/export/csv
func (h *ExportHandler) ExportDocumentCSV(c *gin.Context) {
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", exportFilename("document_records", docID, "csv"))
	if err := h.exportService.ExportDocumentCSV(c.Request.Context(), docID, c.Writer); err != nil {
		// Headers may already be out; best we can do is abort the stream.
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// ExportProjectCSV handles GET /api/v1/projects/:id/export/csv
func (h *ExportHandler) ExportProjectCSV(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", exportFilename("project_records", projectID, "csv"))
	if err := h.exportService.ExportProjectCSV(c.Request.Context(), projectID, c.Writer); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// ExportProjectEvaluationXLSX handles GET /api/v1/projects/:id/export/xlsx
func (h *ExportHandler) ExportProjectEvaluationXLSX(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", exportFilename("project_evaluation", projectID, "xlsx"))
	if err := h.exportService.ExportProjectEvaluationXLSX(c.Request.Context(), projectID, c.Writer); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
