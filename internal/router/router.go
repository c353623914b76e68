package router

import (
	"github.com/gin-gonic/gin"

	"tabrev/internal/domain"
	"tabrev/internal/handler"
	"tabrev/internal/middleware"
	"tabrev/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	projectH *handler.ProjectHandler,
	schemaH *handler.SchemaHandler,
	documentH *handler.DocumentHandler,
	recordH *handler.RecordHandler,
	evaluationH *handler.EvaluationHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Project routes
	projects := protected.Group("/projects")
	projects.POST("", projectH.Create)
	projects.GET("", projectH.List)
	projects.GET("/:id", projectH.GetByID)
	projects.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), projectH.Delete)

	// Schema routes (project-scoped)
	projects.POST("/:id/schema", schemaH.Create)
	projects.GET("/:id/schema", schemaH.List)
	projects.DELETE("/:id/schema/:fieldId", schemaH.Delete)

	// Document routes
	projects.POST("/:id/documents", documentH.Ingest)
	projects.GET("/:id/documents", documentH.List)

	documents := protected.Group("/documents")
	documents.GET("/:id", documentH.GetByID)
	documents.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), documentH.Delete)
	documents.POST("/:id/query", documentH.Query)
	documents.POST("/:id/extract", documentH.Extract)
	documents.POST("/:id/source", documentH.UploadSource)
	documents.GET("/:id/source", documentH.SourceURL)

	// Record review routes
	documents.GET("/:id/records", recordH.ListByDocument)
	projects.GET("/:id/records", recordH.ListByProject)

	records := protected.Group("/records")
	records.GET("/:id", recordH.GetByID)
	records.PUT("/:id", recordH.Review)

	// Evaluation routes
	documents.GET("/:id/evaluation", evaluationH.EvaluateDocument)
	projects.GET("/:id/evaluation", evaluationH.EvaluateProject)

	// Export routes
	documents.GET("/:id/export/csv", exportH.ExportDocumentCSV)
	projects.GET("/:id/export/csv", exportH.ExportProjectCSV)
	projects.GET("/:id/export/xlsx", exportH.ExportProjectEvaluationXLSX)

	return r
}
