package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Pipeline PipelineConfig
	Reader   ReaderConfig
	OCR      OCRConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// PipelineConfig holds classification/extraction configuration
type PipelineConfig struct {
	SampleCap      int    // pages sampled per document for classification
	OutputDir      string // root for extraction artifacts
	Deterministic  bool   // first-k sampling instead of random
	ProcessTimeout time.Duration
}

// ReaderConfig holds container-reader configuration
type ReaderConfig struct {
	Djvused          string // binary name or absolute path; if empty -> "djvused"
	Djvutxt          string // binary name or absolute path; if empty -> "djvutxt"
	Ddjvu            string // binary name or absolute path; if empty -> "ddjvu"
	Ps2pdf           string // binary name or absolute path; if empty -> "ps2pdf"
	ArtifactCacheDir string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Enabled       bool
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	DPI           int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Pipeline: PipelineConfig{
			SampleCap:      getEnvAsInt("SAMPLE_CAP", 3),
			OutputDir:      getEnv("OUTPUT_DIR", "./out"),
			Deterministic:  getEnvAsBool("DETERMINISTIC_SAMPLING", false),
			ProcessTimeout: getEnvAsDuration("PROCESS_TIMEOUT", 3*time.Minute),
		},
		Reader: ReaderConfig{
			Djvused:          getEnv("DJVUSED_BIN", "djvused"),
			Djvutxt:          getEnv("DJVUTXT_BIN", "djvutxt"),
			Ddjvu:            getEnv("DDJVU_BIN", "ddjvu"),
			Ps2pdf:           getEnv("PS2PDF_BIN", "ps2pdf"),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
		},
		OCR: OCRConfig{
			Enabled:       getEnvAsBool("OCR_ENABLED", false),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.SampleCap < 1 {
		return NewAppError("CONFIG_ERROR", "SAMPLE_CAP must be >= 1", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
