package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabrev/internal/domain"
	"tabrev/internal/service"
)

// SchemaHandler handles project schema endpoints.
type SchemaHandler struct {
	schemaService service.SchemaService
}

// NewSchemaHandler creates a new SchemaHandler.
func NewSchemaHandler(schemaService service.SchemaService) *SchemaHandler {
	return &SchemaHandler{schemaService: schemaService}
}

// Create handles POST /api/v1/projects/:id/schema
func (h *SchemaHandler) Create(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		DataType    string `json:"data_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}

	field, err := h.schemaService.Create(c.Request.Context(), &service.CreateSchemaFieldInput{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		DataType:    domain.DataType(req.DataType),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, field)
}

// List handles GET /api/v1/projects/:id/schema
func (h *SchemaHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fields, err := h.schemaService.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, fields)
}

// Delete handles DELETE /api/v1/projects/:id/schema/:fieldId
func (h *SchemaHandler) Delete(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	fieldID, ok := parseIDParam(c, "fieldId")
	if !ok {
		return
	}

	if err := h.schemaService.Delete(c.Request.Context(), projectID, fieldID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "schema field deleted"})
}
