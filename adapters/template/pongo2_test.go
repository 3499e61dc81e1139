package reporttemplate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-reportdoc/report"
)

func writeTemplates(t *testing.T, markdown, layout string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, report.TemplateMarkdown), []byte(markdown), 0o644); err != nil {
		t.Fatalf("write markdown template: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, report.TemplateLayout), []byte(layout), 0o644); err != nil {
		t.Fatalf("write layout template: %v", err)
	}
	return dir
}

func TestNewSet_MissingTemplateFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, report.TemplateMarkdown), []byte("# {{ title }}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	if _, err := NewSet(dir); err == nil {
		t.Fatal("expected failure for missing layout template")
	}
}

func TestSetExecute(t *testing.T) {
	dir := writeTemplates(t,
		"{% autoescape off %}# {{ title }} ({{ generated_at }}){% endautoescape %}",
		"<html><body>{{ content|safe }}</body></html>",
	)

	set, err := NewSet(dir)
	if err != nil {
		t.Fatalf("new set: %v", err)
	}

	out, err := set.Execute(report.TemplateMarkdown, map[string]any{
		"title":        "Weekly & Daily",
		"generated_at": "2026-03-01 12:00",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "# Weekly & Daily (2026-03-01 12:00)" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSetExecute_UnknownName(t *testing.T) {
	set, err := NewSet(writeTemplates(t, "x", "y"))
	if err != nil {
		t.Fatalf("new set: %v", err)
	}
	if _, err := set.Execute("nope.j2", nil); err == nil {
		t.Fatal("expected unknown template error")
	}
}

func TestRepoTemplates_RenderDeterministically(t *testing.T) {
	set, err := NewSet("../../templates")
	if err != nil {
		t.Fatalf("load repo templates: %v", err)
	}
	renderer := report.NewDocumentRenderer(set)

	meta := report.ReportMetadata{
		Title:        "Weekly Media Report",
		MediaTeam:    "Paid Social",
		Owner:        report.Owner{Name: "Dana Reyes", Email: "dana@example.com"},
		Frequency:    report.FrequencyWeekly,
		Platforms:    []string{"facebook", "tiktok"},
		Tools:        []string{"Looker"},
		GoogleSheets: []report.SheetLink{{Subtitle: "Raw data", URL: "https://docs.google.com/spreadsheets/d/abc"}},
		ReportLink:   "https://example.com/report",
		Description:  "Weekly performance overview.",
		Notes:        "For access issues, contact dana@example.com",
		Version:      "1.2",
		Changelog:    []report.ChangeEntry{{Date: "2026-01-05", Change: "Added TikTok"}},
	}

	first, err := renderer.RenderDocument(meta, "2026-03-01 12:00")
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := renderer.RenderDocument(meta, "2026-03-01 12:00")
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first.Markdown != second.Markdown || first.HTML != second.HTML {
		t.Fatal("repo templates are not deterministic for identical input")
	}

	for _, want := range []string{"Weekly Media Report", "dana@example.com", "2026-03-01 12:00", "<table>"} {
		if !strings.Contains(first.HTML, want) {
			t.Fatalf("rendered html missing %q", want)
		}
	}
}
