package reporttemplate

import (
	"fmt"

	"github.com/flosch/pongo2/v6"
	"github.com/goliatone/go-reportdoc/report"
)

// Set executes the document templates by fixed logical name.
type Set struct {
	dir       string
	templates map[string]*pongo2.Template
}

// NewSet loads the Markdown and layout templates from dir. A missing or
// unparsable template fails here, at startup, not per request.
func NewSet(dir string) (*Set, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(dir)
	if err != nil {
		return nil, fmt.Errorf("template loader for %q: %w", dir, err)
	}
	set := pongo2.NewSet("reportdoc", loader)

	templates := make(map[string]*pongo2.Template, 2)
	for _, name := range []string{report.TemplateMarkdown, report.TemplateLayout} {
		tpl, err := set.FromFile(name)
		if err != nil {
			return nil, fmt.Errorf("load template %q: %w", name, err)
		}
		templates[name] = tpl
	}

	return &Set{dir: dir, templates: templates}, nil
}

// Dir returns the directory templates were loaded from. PDF engines use it to
// resolve relative font and asset references.
func (s *Set) Dir() string {
	if s == nil {
		return ""
	}
	return s.dir
}

// Execute renders a template by logical name.
func (s *Set) Execute(name string, data map[string]any) (string, error) {
	if s == nil {
		return "", fmt.Errorf("template set is nil")
	}
	tpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template %q", name)
	}
	return tpl.Execute(pongo2.Context(data))
}

var _ report.TemplateExecutor = (*Set)(nil)
