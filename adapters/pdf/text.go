package reportpdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-reportdoc/report"
	"github.com/jung-kurt/gofpdf"
)

// Page geometry in points. Body lines start one margin below the top edge and
// flow until the cursor crosses the bottom margin; the footer sits below it.
const (
	textMargin     = 40.0
	textFontSize   = 11.0
	textLineHeight = 13.2
	footerFontSize = 9.0
	footerBaseline = 20.0
)

// TextEngine is the degraded fallback used when no Chromium binary is
// available. It paginates the raw Markdown source line by line at a fixed
// font size; no word wrapping, no Markdown semantics.
type TextEngine struct{}

// Name identifies the engine in liveness responses.
func (TextEngine) Name() string { return "text" }

// Render paginates the Markdown source into a plain-text PDF with a
// "Generated: … • Page n" footer on every page.
func (e TextEngine) Render(ctx context.Context, req report.PDFRequest) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, report.NewError(report.KindRendering, "text pdf render canceled", err)
		}
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := pdf.GetPageSize()

	pageNum := 1
	startPage := func() {
		pdf.AddPage()
		pdf.SetFont("Times", "", textFontSize)
		pdf.SetTextColor(0, 0, 0)
	}
	startPage()
	y := textMargin

	for _, line := range strings.Split(req.Markdown, "\n") {
		if y > pageH-textMargin {
			drawFooter(pdf, tr, req.GeneratedAt, pageNum, pageW, pageH)
			pageNum++
			startPage()
			y = textMargin
		}
		pdf.Text(textMargin, y, tr(line))
		y += textLineHeight
	}
	drawFooter(pdf, tr, req.GeneratedAt, pageNum, pageW, pageH)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, report.NewError(report.KindRendering, "text pdf render failed", err)
	}
	return buf.Bytes(), nil
}

func drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, generatedAt string, pageNum int, pageW, pageH float64) {
	pdf.SetFont("Times", "", footerFontSize)
	pdf.SetTextColor(102, 102, 102)
	footer := tr(fmt.Sprintf("Generated: %s  •  Page %d", generatedAt, pageNum))
	x := pageW - textMargin - pdf.GetStringWidth(footer)
	pdf.Text(x, pageH-footerBaseline, footer)
}
