package handler

import (
	"github.com/gin-gonic/gin"

	"tabrev/internal/service"
)

// EvaluationHandler handles evaluation report endpoints.
type EvaluationHandler struct {
	evaluationService service.EvaluationService
}

// NewEvaluationHandler creates a new EvaluationHandler.
func NewEvaluationHandler(evaluationService service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

// EvaluateDocument handles GET /api/v1/documents/:id/evaluation
func (h *EvaluationHandler) EvaluateDocument(c *gin.Context) {
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.evaluationService.EvaluateDocument(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// EvaluateProject handles GET /api/v1/projects/:id/evaluation
func (h *EvaluationHandler) EvaluateProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.evaluationService.EvaluateProject(c.Request.Context(), projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}
