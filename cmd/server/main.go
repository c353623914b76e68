package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"tabrev/internal/config"
	"tabrev/internal/email/noop"
	"tabrev/internal/email/ses"
	openaiembed "tabrev/internal/extractor/openai"
	"tabrev/internal/handler"
	"tabrev/internal/index"
	indexopenai "tabrev/internal/index/openai"
	"tabrev/internal/port"
	"tabrev/internal/repository/postgres"
	"tabrev/internal/router"
	"tabrev/internal/service"
	s3storage "tabrev/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	projectRepo := postgres.NewProjectRepo(db)
	documentRepo := postgres.NewDocumentRepo(db)
	schemaRepo := postgres.NewSchemaFieldRepo(db)
	recordRepo := postgres.NewRecordRepo(db)
	chunkRepo := postgres.NewChunkRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewClient(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize extraction backends
	embedder := indexopenai.NewEmbedder(cfg.Extractor.APIKey, cfg.Index)
	indexSvc := index.NewService(chunkRepo, embedder, cfg.Index)
	fieldExtractor := openaiembed.NewExtractor(cfg.Extractor)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	projectSvc := service.NewProjectService(projectRepo)
	schemaSvc := service.NewSchemaService(schemaRepo, projectRepo)
	documentSvc := service.NewDocumentService(documentRepo, projectRepo, indexSvc, s3Client, &cfg.S3)
	extractionSvc := service.NewExtractionService(documentRepo, recordRepo, userRepo, schemaSvc, indexSvc, fieldExtractor, emailSender, &cfg.Extractor)
	recordSvc := service.NewRecordService(recordRepo)
	evaluationSvc := service.NewEvaluationService(recordRepo, documentRepo, projectRepo)
	exportSvc := service.NewExportService(recordRepo, documentRepo, projectRepo, evaluationSvc)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	projectH := handler.NewProjectHandler(projectSvc)
	schemaH := handler.NewSchemaHandler(schemaSvc)
	documentH := handler.NewDocumentHandler(documentSvc, extractionSvc)
	recordH := handler.NewRecordHandler(recordSvc)
	evaluationH := handler.NewEvaluationHandler(evaluationSvc)
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, projectH, schemaH, documentH, recordH, evaluationH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
