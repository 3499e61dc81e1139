package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the reportdoc service configuration.
type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Render RenderConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
	// BaseURL overrides the request-derived base for stored file URLs.
	BaseURL string
}

// AuthConfig holds the shared-secret API key. An empty key makes every
// authenticated endpoint reject.
type AuthConfig struct {
	APIKey string
}

// RenderConfig holds template, storage, and PDF engine settings.
type RenderConfig struct {
	TemplatesDir string
	FilesDir     string
	// Engine is auto, chromium, or text. Auto probes for a browser binary
	// once at startup.
	Engine       string
	ChromiumPath string
	PDFTimeout   time.Duration
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host: "",
			Port: "8080",
		},
		Render: RenderConfig{
			TemplatesDir: "./templates",
			FilesDir:     "./files",
			Engine:       "auto",
			PDFTimeout:   30 * time.Second,
		},
	}
}

// Load builds the configuration from defaults, an optional .env file, and
// environment overrides.
func Load() Config {
	// Missing .env is fine; real env always wins.
	_ = godotenv.Load()

	cfg := Defaults()
	cfg.Server.Host = getEnv("HOST", cfg.Server.Host)
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.BaseURL = getEnv("REPORTDOC_BASE_URL", cfg.Server.BaseURL)
	cfg.Auth.APIKey = getEnv("REPORTDOC_API_KEY", "")
	cfg.Render.TemplatesDir = getEnv("REPORTDOC_TEMPLATES_DIR", cfg.Render.TemplatesDir)
	cfg.Render.FilesDir = getEnv("REPORTDOC_FILES_DIR", cfg.Render.FilesDir)
	cfg.Render.Engine = getEnv("REPORTDOC_PDF_ENGINE", cfg.Render.Engine)
	cfg.Render.ChromiumPath = getEnv("REPORTDOC_CHROMIUM_PATH", cfg.Render.ChromiumPath)
	if raw := os.Getenv("REPORTDOC_PDF_TIMEOUT"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			cfg.Render.PDFTimeout = time.Duration(seconds) * time.Second
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
