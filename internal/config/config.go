package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	Log       LogConfig
	CORS      CORSConfig
	S3        S3Config
	Email     EmailConfig
	Extractor ExtractorConfig
	Index     IndexConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// S3Config holds object storage settings for original source files.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// ExtractorConfig holds LLM field-extraction settings.
type ExtractorConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	// MaxDocumentChars bounds the document prefix placed into the prompt.
	MaxDocumentChars int `mapstructure:"max_document_chars"`
}

// IndexConfig holds similarity index and chunking settings.
type IndexConfig struct {
	EmbeddingModel     string `mapstructure:"embedding_model"`
	EmbeddingDimension int    `mapstructure:"embedding_dimension"`
	ChunkSize          int    `mapstructure:"chunk_size"`
	ChunkOverlap       int    `mapstructure:"chunk_overlap"`
	TopK               int    `mapstructure:"top_k"`
}

// Load reads configuration from environment variables with the TABREV_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TABREV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "tabrev")
	v.SetDefault("db.password", "tabrev_secret")
	v.SetDefault("db.name", "tabrev_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "tabrev")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "tabrev-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@tabrev.io")
	v.SetDefault("email.from_name", "Tabular Review")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Extractor defaults
	v.SetDefault("extractor.api_key", "")
	v.SetDefault("extractor.model", "gpt-4o-mini")
	v.SetDefault("extractor.timeout_secs", 120)
	v.SetDefault("extractor.max_document_chars", 20000)

	// Index defaults
	v.SetDefault("index.embedding_model", "text-embedding-3-small")
	v.SetDefault("index.embedding_dimension", 1536)
	v.SetDefault("index.chunk_size", 1000)
	v.SetDefault("index.chunk_overlap", 200)
	v.SetDefault("index.top_k", 5)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "TABREV_SERVER_PORT",
		"server.read_timeout":        "TABREV_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "TABREV_SERVER_WRITE_TIMEOUT",
		"server.environment":         "TABREV_SERVER_ENVIRONMENT",
		"db.host":                    "TABREV_DB_HOST",
		"db.port":                    "TABREV_DB_PORT",
		"db.user":                    "TABREV_DB_USER",
		"db.password":                "TABREV_DB_PASSWORD",
		"db.name":                    "TABREV_DB_NAME",
		"db.sslmode":                 "TABREV_DB_SSLMODE",
		"db.max_open":                "TABREV_DB_MAX_OPEN",
		"db.max_idle":                "TABREV_DB_MAX_IDLE",
		"jwt.secret":                 "TABREV_JWT_SECRET",
		"jwt.access_expiry":          "TABREV_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":         "TABREV_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                 "TABREV_JWT_ISSUER",
		"log.level":                  "TABREV_LOG_LEVEL",
		"log.format":                 "TABREV_LOG_FORMAT",
		"cors.allowed_origins":       "TABREV_CORS_ALLOWED_ORIGINS",
		"s3.region":                  "TABREV_S3_REGION",
		"s3.bucket":                  "TABREV_S3_BUCKET",
		"s3.endpoint":                "TABREV_S3_ENDPOINT",
		"s3.access_key":              "TABREV_S3_ACCESS_KEY",
		"s3.secret_key":              "TABREV_S3_SECRET_KEY",
		"s3.max_file_size_mb":        "TABREV_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":          "TABREV_S3_PRESIGN_EXPIRY",
		"email.provider":             "TABREV_EMAIL_PROVIDER",
		"email.region":               "TABREV_EMAIL_REGION",
		"email.from_address":         "TABREV_EMAIL_FROM_ADDRESS",
		"email.from_name":            "TABREV_EMAIL_FROM_NAME",
		"email.frontend_url":         "TABREV_EMAIL_FRONTEND_URL",
		"extractor.api_key":          "TABREV_EXTRACTOR_API_KEY",
		"extractor.model":            "TABREV_EXTRACTOR_MODEL",
		"extractor.timeout_secs":     "TABREV_EXTRACTOR_TIMEOUT_SECS",
		"extractor.max_document_chars": "TABREV_EXTRACTOR_MAX_DOCUMENT_CHARS",
		"index.embedding_model":      "TABREV_INDEX_EMBEDDING_MODEL",
		"index.embedding_dimension":  "TABREV_INDEX_EMBEDDING_DIMENSION",
		"index.chunk_size":           "TABREV_INDEX_CHUNK_SIZE",
		"index.chunk_overlap":        "TABREV_INDEX_CHUNK_OVERLAP",
		"index.top_k":                "TABREV_INDEX_TOP_K",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TABREV_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TABREV_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}
	cfg.Extractor = ExtractorConfig{
		APIKey:           v.GetString("extractor.api_key"),
		Model:            v.GetString("extractor.model"),
		TimeoutSecs:      v.GetInt("extractor.timeout_secs"),
		MaxDocumentChars: v.GetInt("extractor.max_document_chars"),
	}
	cfg.Index = IndexConfig{
		EmbeddingModel:     v.GetString("index.embedding_model"),
		EmbeddingDimension: v.GetInt("index.embedding_dimension"),
		ChunkSize:          v.GetInt("index.chunk_size"),
		ChunkOverlap:       v.GetInt("index.chunk_overlap"),
		TopK:               v.GetInt("index.top_k"),
	}

	return cfg, nil
}
