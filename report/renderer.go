package report

// Fixed logical template names. Missing templates are a configuration error
// surfaced when the executor is built, not per request.
const (
	TemplateMarkdown = "doc.md.j2"
	TemplateLayout   = "layout.html.j2"
)

// DocumentRenderer fills the Markdown template, converts it to an HTML
// fragment, and wraps the fragment in the page layout. Rendering is a pure
// function of the metadata and the generation timestamp; nothing is cached.
type DocumentRenderer struct {
	Templates TemplateExecutor
	Markdown  MarkdownConverter
}

// NewDocumentRenderer creates a renderer over the given template executor.
func NewDocumentRenderer(templates TemplateExecutor) *DocumentRenderer {
	return &DocumentRenderer{
		Templates: templates,
		Markdown:  NewGoldmarkConverter(),
	}
}

// RenderDocument produces the final Markdown and HTML for one report.
func (r *DocumentRenderer) RenderDocument(meta ReportMetadata, generatedAt string) (RenderedDocument, error) {
	if r == nil || r.Templates == nil {
		return RenderedDocument{}, NewError(KindInternal, "document renderer requires templates", nil)
	}
	converter := r.Markdown
	if converter == nil {
		converter = NewGoldmarkConverter()
	}

	data := templateContext(meta, generatedAt)

	markdown, err := r.Templates.Execute(TemplateMarkdown, data)
	if err != nil {
		return RenderedDocument{}, NewError(KindRendering, "markdown template failed", err)
	}

	fragment, err := converter.ToHTML(markdown)
	if err != nil {
		return RenderedDocument{}, err
	}

	data["content"] = fragment
	page, err := r.Templates.Execute(TemplateLayout, data)
	if err != nil {
		return RenderedDocument{}, NewError(KindRendering, "layout template failed", err)
	}

	return RenderedDocument{Markdown: markdown, HTML: page}, nil
}

func templateContext(meta ReportMetadata, generatedAt string) map[string]any {
	sheets := make([]map[string]any, 0, len(meta.GoogleSheets))
	for _, sheet := range meta.GoogleSheets {
		sheets = append(sheets, map[string]any{
			"subtitle": sheet.Subtitle,
			"url":      sheet.URL,
		})
	}
	changelog := make([]map[string]any, 0, len(meta.Changelog))
	for _, entry := range meta.Changelog {
		changelog = append(changelog, map[string]any{
			"date":   entry.Date,
			"change": entry.Change,
		})
	}

	return map[string]any{
		"title":         meta.Title,
		"media_team":    meta.MediaTeam,
		"owner":         map[string]any{"name": meta.Owner.Name, "email": meta.Owner.Email},
		"frequency":     string(meta.Frequency),
		"platforms":     meta.Platforms,
		"tools":         meta.Tools,
		"automated":     meta.Automated,
		"google_sheets": sheets,
		"bigquery_link": meta.BigQueryLink,
		"report_link":   meta.ReportLink,
		"adjustments":   meta.Adjustments,
		"description":   meta.Description,
		"notes":         meta.Notes,
		"version":       meta.Version,
		"changelog":     changelog,
		"generated_at":  generatedAt,
	}
}
