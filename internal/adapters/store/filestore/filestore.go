// Package filestore persists each blob as one JSON file under a data directory.
// It is the default engine: the durable local-storage analog of the original
// deployment. Writes go through a temp file plus rename so a crash mid-write never
// leaves a half-written blob behind.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chronoslabs/chronos/internal/domain"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: read %s: %w", key, err)
	}
	return b, nil
}

func (s *Store) Set(_ context.Context, key string, blob []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("filestore: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("filestore: rename %s: %w", key, err)
	}
	return nil
}
