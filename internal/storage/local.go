package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStore persists uploaded files under generated names and returns the
// public URL path they will be served from.
type FileStore interface {
	// Save writes the reader's content under name and returns the public URL.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// LocalStore is a FileStore writing to a directory on local disk. The
// directory is created on demand. Quote uploads use it so submitted model
// files end up under the web root's /uploads/quotes path.
type LocalStore struct {
	dir       string
	urlPrefix string
}

// NewLocal creates a LocalStore rooted at dir, serving files under urlPrefix.
func NewLocal(dir, urlPrefix string) *LocalStore {
	return &LocalStore{dir: dir, urlPrefix: urlPrefix}
}

var _ FileStore = (*LocalStore)(nil)

// Save writes the content to dir/name, creating the directory if missing.
func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}
