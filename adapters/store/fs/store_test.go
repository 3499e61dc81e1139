package storefs

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-reportdoc/report"
)

func TestStore_PutOpenRoundTrip(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)
	store.Now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	payload := []byte("%PDF-1.4 stub")
	meta, err := store.Put(context.Background(), "Weekly_Report_1.pdf", bytes.NewReader(payload), report.ArtifactMeta{})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if meta.Size != int64(len(payload)) {
		t.Fatalf("expected size %d, got %d", len(payload), meta.Size)
	}
	if meta.ContentType != report.MIMEPDF {
		t.Fatalf("expected default content type %q, got %q", report.MIMEPDF, meta.ContentType)
	}
	if meta.CreatedAt.IsZero() {
		t.Fatalf("expected created at to be set")
	}

	rc, openMeta, err := store.Open(context.Background(), "Weekly_Report_1.pdf")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("stored bytes differ: %q", got)
	}
	if openMeta.Size != int64(len(payload)) {
		t.Fatalf("expected open size %d, got %d", len(payload), openMeta.Size)
	}
}

func TestStore_PutLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	if _, err := store.Put(context.Background(), "report.pdf", strings.NewReader("data"), report.ArtifactMeta{}); err != nil {
		t.Fatalf("put: %v", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".reportdoc-") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single stored file, got %d entries", len(entries))
	}
}

func TestStore_OpenMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	_, _, err := store.Open(context.Background(), "missing.pdf")
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if kind := report.KindFromError(err); kind != report.KindNotFound {
		t.Fatalf("expected not found kind, got %q", kind)
	}
}

func TestStore_RejectsEscapingNames(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	for _, name := range []string{"", ".", "..", "nested/escape.pdf", "/etc/passwd"} {
		if _, err := store.Put(context.Background(), name, strings.NewReader("x"), report.ArtifactMeta{}); err == nil {
			t.Fatalf("expected put %q to be rejected", name)
		}
		if _, _, err := store.Open(context.Background(), name); err == nil {
			t.Fatalf("expected open %q to be rejected", name)
		}
	}

	// Relative traversal collapses to a name inside the root.
	if _, err := store.Put(context.Background(), "../escape.pdf", strings.NewReader("x"), report.ArtifactMeta{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "escape.pdf")); err != nil {
		t.Fatalf("expected traversal name to land inside the root: %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(root), "escape.pdf")); err == nil {
		t.Fatalf("file escaped the storage root")
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, err := store.Put(context.Background(), "gone.pdf", strings.NewReader("x"), report.ArtifactMeta{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Delete(context.Background(), "gone.pdf"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, err := store.Open(context.Background(), "gone.pdf"); report.KindFromError(err) != report.KindNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
