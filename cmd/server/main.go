package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	reportpdf "github.com/goliatone/go-reportdoc/adapters/pdf"
	storefs "github.com/goliatone/go-reportdoc/adapters/store/fs"
	reporttemplate "github.com/goliatone/go-reportdoc/adapters/template"
	"github.com/goliatone/go-reportdoc/config"
	"github.com/goliatone/go-reportdoc/report"
	"github.com/goliatone/go-reportdoc/server"
)

func main() {
	cfg := config.Load()

	// A missing template is a configuration error, not a per-request failure.
	templates, err := reporttemplate.NewSet(cfg.Render.TemplatesDir)
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	if err := os.MkdirAll(cfg.Render.FilesDir, 0o755); err != nil {
		log.Fatalf("failed to create storage directory: %v", err)
	}

	engine := reportpdf.Detect(reportpdf.Options{
		Engine:      normalizeEngine(cfg.Render.Engine),
		BrowserPath: cfg.Render.ChromiumPath,
		Timeout:     cfg.Render.PDFTimeout,
		AssetsDir:   cfg.Render.TemplatesDir,
	})
	if closer, ok := engine.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	logger := &serviceLogger{prefix: "reportdoc"}
	store := storefs.NewStore(cfg.Render.FilesDir)

	svc := report.NewService(report.ServiceConfig{
		Renderer: report.NewDocumentRenderer(templates),
		Engine:   engine,
		Store:    store,
		Logger:   logger,
	})

	app := server.New(server.Config{
		Service: svc,
		Store:   store,
		APIKey:  cfg.Auth.APIKey,
		BaseURL: cfg.Server.BaseURL,
		Logger:  logger,
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Infof("starting server on http://%s (engine=%s)", addr, svc.EngineName())
		if cfg.Auth.APIKey == "" {
			logger.Errorf("REPORTDOC_API_KEY is unset; render endpoints will reject every request")
		}
		if err := app.Listen(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Errorf("shutdown error: %v", err)
	}
}

func normalizeEngine(engine string) string {
	switch engine {
	case "chromium", "text":
		return engine
	default:
		return ""
	}
}

// serviceLogger is a basic logger implementation over the standard library.
type serviceLogger struct {
	prefix string
}

func (l *serviceLogger) Debugf(format string, args ...any) {
	log.Printf("[DEBUG] "+l.prefix+": "+format, args...)
}

func (l *serviceLogger) Infof(format string, args ...any) {
	log.Printf("[INFO] "+l.prefix+": "+format, args...)
}

func (l *serviceLogger) Errorf(format string, args ...any) {
	log.Printf("[ERROR] "+l.prefix+": "+format, args...)
}
