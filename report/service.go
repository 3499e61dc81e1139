package report

import (
	"bytes"
	"context"
	"time"
)

// Document is a produced PDF returned directly to the caller.
type Document struct {
	PDF         []byte
	GeneratedAt string
	Filename    string
}

// StoredDocument is a produced PDF persisted to the artifact store.
type StoredDocument struct {
	Document
	StoredName string
}

// ServiceConfig supplies dependencies for Service.
type ServiceConfig struct {
	Renderer *DocumentRenderer
	Engine   PDFEngine
	Store    ArtifactStore
	Logger   Logger
	Now      func() time.Time
}

// Service runs the validate-render-convert pipeline for report documents.
type Service struct {
	renderer *DocumentRenderer
	engine   PDFEngine
	store    ArtifactStore
	logger   Logger
	now      func() time.Time
}

// NewService creates a Service with the provided configuration.
func NewService(cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Service{
		renderer: cfg.Renderer,
		engine:   cfg.Engine,
		store:    cfg.Store,
		logger:   logger,
		now:      nowFn,
	}
}

// EngineName reports the active PDF engine.
func (s *Service) EngineName() string {
	if s == nil || s.engine == nil {
		return ""
	}
	return s.engine.Name()
}

// Render produces a PDF for the given metadata without persisting it.
func (s *Service) Render(ctx context.Context, meta ReportMetadata) (Document, error) {
	if s == nil || s.renderer == nil {
		return Document{}, NewError(KindInternal, "service renderer not configured", nil)
	}
	if s.engine == nil {
		return Document{}, NewError(KindInternal, "service pdf engine not configured", nil)
	}

	generatedAt := s.now().Format(TimestampLayout)
	doc, err := s.renderer.RenderDocument(meta, generatedAt)
	if err != nil {
		return Document{}, err
	}

	pdf, err := s.engine.Render(ctx, PDFRequest{
		HTML:        doc.HTML,
		Markdown:    doc.Markdown,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		s.logger.Errorf("pdf render failed (%s): %v", s.engine.Name(), err)
		return Document{}, NewError(KindRendering, "pdf generation failed", err)
	}

	s.logger.Debugf("rendered %q via %s (%d bytes)", meta.Title, s.engine.Name(), len(pdf))
	return Document{
		PDF:         pdf,
		GeneratedAt: generatedAt,
		Filename:    AttachmentFilename(meta.Title),
	}, nil
}

// RenderAndStore produces a PDF and persists it under a sanitized,
// timestamp-suffixed name for later retrieval.
func (s *Service) RenderAndStore(ctx context.Context, meta ReportMetadata) (StoredDocument, error) {
	doc, err := s.Render(ctx, meta)
	if err != nil {
		return StoredDocument{}, err
	}
	if s.store == nil {
		return StoredDocument{}, NewError(KindInternal, "service store not configured", nil)
	}

	name := SafeFilename(meta.Title, s.now())
	meta2, err := s.store.Put(ctx, name, bytes.NewReader(doc.PDF), ArtifactMeta{
		ContentType: MIMEPDF,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return StoredDocument{}, NewError(KindInternal, "artifact store put failed", err)
	}

	s.logger.Infof("stored %s (%d bytes)", name, meta2.Size)
	return StoredDocument{Document: doc, StoredName: name}, nil
}
