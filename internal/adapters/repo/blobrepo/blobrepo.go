// Package blobrepo implements the catalog and order repositories over a
// domain.BlobStore. Every operation is a full read-decode-mutate-encode-write of
// one blob; there is no partial update and no cross-key atomicity. Concurrent
// writers race last-write-wins, which the single-user design accepts.
package blobrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/chronoslabs/chronos/internal/domain"
)

// Delays simulate backend latency the way the original store did. A zero value
// disables them; tests run with Delays{}.
type Delays struct {
	Products    time.Duration
	Categories  time.Duration
	OrderSave   time.Duration
	OrderList   time.Duration
	OrderStatus time.Duration
}

// DefaultDelays matches the source's simulated network latency.
func DefaultDelays() Delays {
	return Delays{
		Products:    300 * time.Millisecond,
		Categories:  200 * time.Millisecond,
		OrderSave:   time.Second,
		OrderList:   500 * time.Millisecond,
		OrderStatus: 500 * time.Millisecond,
	}
}

// sleep waits for d but gives up early when ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// readList decodes the JSON array under key into out. Absent keys leave out
// untouched and report false; corrupt blobs propagate their decode error.
func readList(ctx context.Context, store domain.BlobStore, key string, out any) (bool, error) {
	b, err := store.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func writeList(ctx context.Context, store domain.BlobStore, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, b)
}
