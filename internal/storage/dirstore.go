// Package storage persists pipeline artifacts.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirStore writes artifact buffers into a single directory.
type DirStore struct {
	dir string
}

// NewDirStore creates the directory if it does not exist.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &DirStore{dir: dir}, nil
}

// SaveImage writes one encoded image under its suggested name and
// returns the path it was stored at.
func (s *DirStore) SaveImage(name string, encoded []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", name, err)
	}
	return path, nil
}
