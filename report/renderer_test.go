package report

import (
	"fmt"
	"strings"
	"testing"
)

// stubExecutor renders a fixed pseudo-template so renderer behavior can be
// tested without a template directory.
type stubExecutor struct {
	fail string
}

func (s stubExecutor) Execute(name string, data map[string]any) (string, error) {
	if name == s.fail {
		return "", fmt.Errorf("template %q not found", name)
	}
	switch name {
	case TemplateMarkdown:
		return fmt.Sprintf("# %v\n\n| Date | Change |\n| ---- | ------ |\n| 2026-01-01 | Initial |\n\nGenerated: %v\n", data["title"], data["generated_at"]), nil
	case TemplateLayout:
		return fmt.Sprintf("<html><body>%v</body></html>", data["content"]), nil
	default:
		return "", fmt.Errorf("unknown template %q", name)
	}
}

func testMetadata() ReportMetadata {
	return ReportMetadata{
		Title:      "Weekly Report",
		MediaTeam:  "Paid Social",
		Owner:      Owner{Name: "Dana Reyes", Email: "dana@example.com"},
		Frequency:  FrequencyWeekly,
		ReportLink: "https://example.com/report",
		Notes:      "For access issues, contact dana@example.com",
		Version:    "1.0",
	}
}

func TestRenderDocument_MarkdownAndHTML(t *testing.T) {
	r := NewDocumentRenderer(stubExecutor{})

	doc, err := r.RenderDocument(testMetadata(), "2026-03-01 12:00")
	if err != nil {
		t.Fatalf("render document: %v", err)
	}
	if !strings.Contains(doc.Markdown, "# Weekly Report") {
		t.Fatalf("markdown missing title: %q", doc.Markdown)
	}
	if !strings.Contains(doc.Markdown, "2026-03-01 12:00") {
		t.Fatalf("markdown missing timestamp: %q", doc.Markdown)
	}
	if !strings.Contains(doc.HTML, "<h1>Weekly Report</h1>") {
		t.Fatalf("html fragment missing rendered heading: %q", doc.HTML)
	}
}

func TestRenderDocument_TablesEnabled(t *testing.T) {
	r := NewDocumentRenderer(stubExecutor{})

	doc, err := r.RenderDocument(testMetadata(), "2026-03-01 12:00")
	if err != nil {
		t.Fatalf("render document: %v", err)
	}
	if !strings.Contains(doc.HTML, "<table>") {
		t.Fatalf("pipe table was not converted to <table>: %q", doc.HTML)
	}
}

func TestRenderDocument_Deterministic(t *testing.T) {
	r := NewDocumentRenderer(stubExecutor{})
	meta := testMetadata()

	first, err := r.RenderDocument(meta, "2026-03-01 12:00")
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := r.RenderDocument(meta, "2026-03-01 12:00")
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first.Markdown != second.Markdown {
		t.Fatal("markdown output differs between identical renders")
	}
	if first.HTML != second.HTML {
		t.Fatal("html output differs between identical renders")
	}
}

func TestRenderDocument_TemplateFailure(t *testing.T) {
	r := NewDocumentRenderer(stubExecutor{fail: TemplateLayout})

	_, err := r.RenderDocument(testMetadata(), "2026-03-01 12:00")
	if err == nil {
		t.Fatal("expected layout failure")
	}
	if kind := KindFromError(err); kind != KindRendering {
		t.Fatalf("expected rendering kind, got %q", kind)
	}
}

func TestGoldmarkConverter_Heading(t *testing.T) {
	html, err := NewGoldmarkConverter().ToHTML("## Platforms\n\n- facebook\n")
	if err != nil {
		t.Fatalf("to html: %v", err)
	}
	if !strings.Contains(html, "<h2>Platforms</h2>") {
		t.Fatalf("unexpected fragment: %q", html)
	}
	if !strings.Contains(html, "<li>facebook</li>") {
		t.Fatalf("unexpected fragment: %q", html)
	}
}
