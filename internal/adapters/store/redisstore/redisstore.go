// Package redisstore keeps the three blobs in redis. Blobs carry no TTL: the store
// simulates durable local storage, not a cache.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chronoslabs/chronos/internal/domain"
)

type Store struct {
	rdb *redis.Client
}

// New connects to redis at addr and pings it before returning.
func New(addr string) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redisstore: ping %s: %w", addr, err)
	}
	return &Store{rdb: rdb}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redisstore: get %s: %w", key, err)
	}
	return b, nil
}

func (s *Store) Set(ctx context.Context, key string, blob []byte) error {
	if err := s.rdb.Set(ctx, key, blob, 0).Err(); err != nil {
		return fmt.Errorf("redisstore: set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error { return s.rdb.Close() }
