package report

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// GoldmarkConverter converts Markdown to HTML fragments with table support.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a converter with pipe-table syntax enabled.
func NewGoldmarkConverter() *GoldmarkConverter {
	return &GoldmarkConverter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// ToHTML converts Markdown source to an HTML fragment.
func (c *GoldmarkConverter) ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(source), &buf); err != nil {
		return "", NewError(KindRendering, "markdown conversion failed", err)
	}
	return buf.String(), nil
}
