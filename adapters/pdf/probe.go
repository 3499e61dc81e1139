package reportpdf

import (
	"os/exec"
	"time"

	"github.com/goliatone/go-reportdoc/report"
)

// chromedp resolves these binaries in the same order.
var chromiumCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
}

// Options configures engine detection.
type Options struct {
	// Engine forces "chromium" or "text"; empty means probe.
	Engine      string
	BrowserPath string
	Timeout     time.Duration
	AssetsDir   string
}

// Detect selects a PDF engine once at startup. The Chromium engine is used
// when a browser binary can be located; otherwise the text fallback. The
// choice is never revisited per request.
func Detect(opts Options) report.PDFEngine {
	switch opts.Engine {
	case "text":
		return TextEngine{}
	case "chromium":
		return newChromium(opts)
	}

	if path := findBrowser(opts.BrowserPath); path != "" {
		opts.BrowserPath = path
		return newChromium(opts)
	}
	return TextEngine{}
}

func newChromium(opts Options) *ChromiumEngine {
	return &ChromiumEngine{
		BrowserPath: opts.BrowserPath,
		Headless:    true,
		Timeout:     opts.Timeout,
		AssetsDir:   opts.AssetsDir,
	}
}

func findBrowser(configured string) string {
	if configured != "" {
		if path, err := exec.LookPath(configured); err == nil {
			return path
		}
		return ""
	}
	for _, candidate := range chromiumCandidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return ""
}
