package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SafeFilename derives a storage filename from a report title. Every run of
// characters outside [A-Za-z0-9_-] collapses to a single underscore; an empty
// result falls back to "report". The nanosecond timestamp suffix keeps
// concurrent saves of the same title from colliding.
func SafeFilename(title string, now time.Time) string {
	base := unsafeFilenameChars.ReplaceAllString(title, "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "report"
	}
	return fmt.Sprintf("%s_%d.pdf", base, now.UnixNano())
}

// AttachmentFilename derives the download filename presented to clients.
func AttachmentFilename(title string) string {
	return strings.ReplaceAll(title, " ", "_") + ".pdf"
}
