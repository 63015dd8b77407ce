// Package dedup filters duplicate and stale inbound alerts before the
// dispatch engine does any work for them.
package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

type cache interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// Deduplicator remembers recently seen event ids for a window and rejects
// events whose timestamp is older than MaxAge. Re-injected retry events
// carry a request id and a refreshed timestamp; they bypass the duplicate
// window entirely so a retry inside the window is not mistaken for a
// duplicate of its original.
type Deduplicator struct {
	cache  cache
	window time.Duration
	maxAge time.Duration
	now    func() time.Time
}

// New builds a Deduplicator with the given duplicate window and stale cutoff.
func New(c cache, window, maxAge time.Duration) *Deduplicator {
	return &Deduplicator{cache: c, window: window, maxAge: maxAge, now: time.Now}
}

// ShouldProcess reports whether the event is fresh and seen for the first
// time within the window.
func (d *Deduplicator) ShouldProcess(ctx context.Context, evt model.InboundEvent) (bool, error) {
	if d.maxAge > 0 && !evt.Timestamp.IsZero() && d.now().Sub(evt.Timestamp) > d.maxAge {
		return false, nil
	}

	// A re-injected event continues an existing request under the same
	// event id; the duplicate check must not swallow it.
	if evt.RequestID != "" {
		return true, nil
	}

	key := fmt.Sprintf("dedup:%s:%s:%s", evt.Kind, evt.VehicleID, evt.ID)
	set, err := d.cache.SetNX(ctx, key, 1, d.window).Result()
	if err != nil {
		// A cache outage must not stall the stream; let the event through
		// and rely on downstream idempotency.
		return true, fmt.Errorf("dedup cache: %w", err)
	}

	return set, nil
}
