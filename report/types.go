package report

import (
	"context"
	"io"
	"time"
)

// Frequency is the report cadence.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// TimestampLayout formats the generation timestamp embedded in documents.
const TimestampLayout = "2006-01-02 15:04"

// MIMEPDF is the content type for produced artifacts.
const MIMEPDF = "application/pdf"

// Owner identifies who is responsible for a report.
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SheetLink references a Google Sheets source backing the report.
type SheetLink struct {
	Subtitle string `json:"subtitle"`
	URL      string `json:"url"`
}

// ChangeEntry is a single changelog line.
type ChangeEntry struct {
	Date   string `json:"date"`
	Change string `json:"change"`
}

// Payload is the untyped request document before validation.
type Payload struct {
	Title        string        `json:"title"`
	MediaTeam    string        `json:"media_team"`
	Owner        Owner         `json:"owner"`
	Frequency    string        `json:"frequency"`
	Platforms    []string      `json:"platforms"`
	Tools        []string      `json:"tools"`
	Automated    bool          `json:"automated"`
	GoogleSheets []SheetLink   `json:"google_sheets"`
	BigQueryLink string        `json:"bigquery_link"`
	ReportLink   string        `json:"report_link"`
	Adjustments  []string      `json:"adjustments"`
	Description  string        `json:"description"`
	Notes        string        `json:"notes"`
	Version      string        `json:"version"`
	Changelog    []ChangeEntry `json:"changelog"`
}

// ReportMetadata is a validated report description.
type ReportMetadata struct {
	Title        string
	MediaTeam    string
	Owner        Owner
	Frequency    Frequency
	Platforms    []string
	Tools        []string
	Automated    bool
	GoogleSheets []SheetLink
	BigQueryLink string
	ReportLink   string
	Adjustments  []string
	Description  string
	Notes        string
	Version      string
	Changelog    []ChangeEntry
}

// RenderedDocument is the transient template output for one request.
type RenderedDocument struct {
	Markdown string
	HTML     string
}

// PDFRequest carries rendered content to a PDF engine.
type PDFRequest struct {
	HTML        string
	Markdown    string
	GeneratedAt string
}

// PDFEngine converts rendered content to PDF bytes.
type PDFEngine interface {
	Name() string
	Render(ctx context.Context, req PDFRequest) ([]byte, error)
}

// TemplateExecutor renders a named template with the given context.
type TemplateExecutor interface {
	Execute(name string, data map[string]any) (string, error)
}

// MarkdownConverter converts Markdown source to an HTML fragment.
type MarkdownConverter interface {
	ToHTML(source string) (string, error)
}

// ArtifactMeta captures stored artifact metadata.
type ArtifactMeta struct {
	ContentType string
	Size        int64
	CreatedAt   time.Time
}

// ArtifactStore persists produced PDFs for later retrieval by name.
type ArtifactStore interface {
	Put(ctx context.Context, name string, r io.Reader, meta ArtifactMeta) (ArtifactMeta, error)
	Open(ctx context.Context, name string) (io.ReadCloser, ArtifactMeta, error)
	Delete(ctx context.Context, name string) error
}
