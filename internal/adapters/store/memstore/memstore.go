// Package memstore is an in-memory BlobStore, used as the injected fake in tests
// and for throwaway runs without a data directory.
package memstore

import (
	"context"
	"sync"

	"github.com/chronoslabs/chronos/internal/domain"
)

type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func New() *Store {
	return &Store{blobs: map[string][]byte{}}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (s *Store) Set(_ context.Context, key string, blob []byte) error {
	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.mu.Lock()
	s.blobs[key] = cp
	s.mu.Unlock()
	return nil
}
