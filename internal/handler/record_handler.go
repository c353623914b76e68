package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabrev/internal/domain"
	"tabrev/internal/service"
)

// RecordHandler handles extracted record review endpoints.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// ListByDocument handles GET /api/v1/documents/:id/records
func (h *RecordHandler) ListByDocument(c *gin.Context) {
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	records, err := h.recordService.ListByDocument(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// ListByProject handles GET /api/v1/projects/:id/records
func (h *RecordHandler) ListByProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	records, err := h.recordService.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// GetByID handles GET /api/v1/records/:id
func (h *RecordHandler) GetByID(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.recordService.GetByID(c.Request.Context(), recordID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}

// Review handles PUT /api/v1/records/:id
func (h *RecordHandler) Review(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string  `json:"status" binding:"required"`
		Value  *string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}

	record, err := h.recordService.Review(c.Request.Context(), recordID, &service.ReviewRecordInput{
		Status: domain.RecordStatus(req.Status),
		Value:  req.Value,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}
