package storefs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-reportdoc/report"
)

// Store persists PDFs in a flat directory, addressed by exact filename.
// Files are never deleted automatically.
type Store struct {
	Root string
	Now  func() time.Time
}

// NewStore creates a filesystem-backed artifact store rooted at dir.
func NewStore(root string) *Store {
	return &Store{Root: root, Now: time.Now}
}

// Put writes an artifact to disk. The write goes through a private temp file
// that is removed on every exit path; the final rename is atomic.
func (s *Store) Put(ctx context.Context, name string, r io.Reader, meta report.ArtifactMeta) (report.ArtifactMeta, error) {
	_ = ctx
	if s == nil || s.Root == "" {
		return report.ArtifactMeta{}, report.NewError(report.KindInternal, "store root is required", nil)
	}

	pathOnDisk, err := s.resolvePath(name)
	if err != nil {
		return report.ArtifactMeta{}, err
	}
	if err := os.MkdirAll(filepath.Dir(pathOnDisk), 0o755); err != nil {
		return report.ArtifactMeta{}, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(pathOnDisk), ".reportdoc-*")
	if err != nil {
		return report.ArtifactMeta{}, err
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	size, err := io.Copy(tmp, r)
	if err != nil {
		return report.ArtifactMeta{}, err
	}
	if err := tmp.Sync(); err != nil {
		return report.ArtifactMeta{}, err
	}
	if err := tmp.Close(); err != nil {
		return report.ArtifactMeta{}, err
	}

	if err := os.Rename(tmp.Name(), pathOnDisk); err != nil {
		return report.ArtifactMeta{}, err
	}

	meta.Size = size
	if meta.ContentType == "" {
		meta.ContentType = report.MIMEPDF
	}
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = s.now()
	}
	return meta, nil
}

// Open reads an artifact from disk.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, report.ArtifactMeta, error) {
	_ = ctx
	if s == nil || s.Root == "" {
		return nil, report.ArtifactMeta{}, report.NewError(report.KindInternal, "store root is required", nil)
	}

	pathOnDisk, err := s.resolvePath(name)
	if err != nil {
		return nil, report.ArtifactMeta{}, err
	}

	file, err := os.Open(pathOnDisk)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, report.ArtifactMeta{}, report.NewError(report.KindNotFound, fmt.Sprintf("file %q not found", name), err)
		}
		return nil, report.ArtifactMeta{}, err
	}

	meta := report.ArtifactMeta{ContentType: report.MIMEPDF}
	if info, err := file.Stat(); err == nil {
		meta.Size = info.Size()
		meta.CreatedAt = info.ModTime()
	}
	return file, meta, nil
}

// Delete removes an artifact from disk.
func (s *Store) Delete(ctx context.Context, name string) error {
	_ = ctx
	if s == nil || s.Root == "" {
		return report.NewError(report.KindInternal, "store root is required", nil)
	}
	pathOnDisk, err := s.resolvePath(name)
	if err != nil {
		return err
	}
	_ = os.Remove(pathOnDisk)
	return nil
}

func (s *Store) resolvePath(name string) (string, error) {
	clean := path.Clean("/" + name)
	rel := strings.TrimPrefix(clean, "/")
	if rel == "" || rel == "." || strings.Contains(rel, "/") {
		return "", report.NewError(report.KindValidation, "invalid file name", nil)
	}

	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", err
	}
	target := filepath.Join(root, rel)
	if !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", report.NewError(report.KindValidation, "file name escapes storage root", nil)
	}
	return target, nil
}

func (s *Store) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

var _ report.ArtifactStore = (*Store)(nil)
