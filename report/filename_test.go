package report

import (
	"regexp"
	"testing"
	"time"
)

var storedNamePattern = regexp.MustCompile(`^Weekly_Report_\d+\.pdf$`)

func TestSafeFilename_SanitizesTitle(t *testing.T) {
	name := SafeFilename("Weekly Report!!", time.Now())
	if !storedNamePattern.MatchString(name) {
		t.Fatalf("filename %q does not match Weekly_Report_<digits>.pdf", name)
	}
}

func TestSafeFilename_CollapsesRuns(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	name := SafeFilename("Q1 -- Media / Spend", now)
	want := "Q1_--_Media_Spend_"
	if len(name) < len(want) || name[:len(want)] != want {
		t.Fatalf("filename %q does not start with %q", name, want)
	}
}

func TestSafeFilename_EmptyFallsBackToReport(t *testing.T) {
	for _, title := range []string{"", "!!!", "___"} {
		name := SafeFilename(title, time.Now())
		if got := name[:7]; got != "report_" {
			t.Fatalf("filename for %q = %q, want report_ prefix", title, name)
		}
	}
}

func TestSafeFilename_CollisionResistance(t *testing.T) {
	now := time.Now()
	a := SafeFilename("Daily", now)
	b := SafeFilename("Daily", now.Add(time.Nanosecond))
	if a == b {
		t.Fatalf("filenames taken a nanosecond apart should differ: %q", a)
	}
}

func TestAttachmentFilename(t *testing.T) {
	if got := AttachmentFilename("Weekly Media Report"); got != "Weekly_Media_Report.pdf" {
		t.Fatalf("attachment filename = %q", got)
	}
}
