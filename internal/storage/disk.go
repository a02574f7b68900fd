// Package storage persists uploaded assets. Callers decide the filename
// policy; the backend only performs durable writes under its directory.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Saver writes an asset under a deterministic filename and returns the
// stored path. Saving an existing filename overwrites it.
type Saver interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// DiskStorage stores assets as files in a local directory.
type DiskStorage struct {
	dir string
}

// NewDiskStorage creates a disk backend rooted at dir.
func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{dir: dir}
}

// Save writes the stream to <dir>/<filename>, truncating any previous file.
func (s *DiskStorage) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(s.dir, filepath.Base(filename))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path, nil
}
