package dedup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

type fakeCache struct {
	set  bool
	err  error
	keys []string
}

func (f *fakeCache) SetNX(_ context.Context, key string, _ interface{}, _ time.Duration) *redis.BoolCmd {
	f.keys = append(f.keys, key)
	return redis.NewBoolResult(f.set, f.err)
}

func TestShouldProcess_FirstSeen(t *testing.T) {
	c := &fakeCache{set: true}
	d := New(c, time.Minute, time.Hour)

	ok, err := d.ShouldProcess(context.Background(), model.InboundEvent{
		ID: "evt-1", Kind: model.EventAlert, VehicleID: "veh-1", Timestamp: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, c.keys, 1)
	assert.Equal(t, "dedup:ALERT:veh-1:evt-1", c.keys[0])
}

func TestShouldProcess_Duplicate(t *testing.T) {
	d := New(&fakeCache{set: false}, time.Minute, time.Hour)

	ok, err := d.ShouldProcess(context.Background(), model.InboundEvent{
		ID: "evt-1", Timestamp: time.Now(),
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestShouldProcess_ReinjectedRetryBypassesWindow(t *testing.T) {
	c := &fakeCache{set: true}
	d := New(c, 10*time.Minute, 24*time.Hour)

	original := model.InboundEvent{
		ID: "evt-1", Kind: model.EventAlert, VehicleID: "veh-1", Timestamp: time.Now(),
	}
	ok, err := d.ShouldProcess(context.Background(), original)
	require.NoError(t, err)
	require.True(t, ok)

	// The retry coordinator re-injects the same event id two minutes
	// later, well inside the window, with the request id attached and the
	// timestamp refreshed.
	c.set = false
	reinjected := original
	reinjected.RequestID = "0b9e2066-93cf-4a5a-9f1e-0c5a4f9e2d11"
	reinjected.Timestamp = time.Now().Add(2 * time.Minute)

	ok, err = d.ShouldProcess(context.Background(), reinjected)
	require.NoError(t, err)
	assert.True(t, ok, "re-injected retries must not be dropped as duplicates")
	assert.Len(t, c.keys, 1, "re-injections skip the duplicate window")
}

func TestShouldProcess_StaleDiscarded(t *testing.T) {
	c := &fakeCache{set: true}
	d := New(c, time.Minute, time.Hour)

	ok, err := d.ShouldProcess(context.Background(), model.InboundEvent{
		ID: "evt-1", Timestamp: time.Now().Add(-2 * time.Hour),
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, c.keys, "stale events are dropped before touching the cache")
}

func TestShouldProcess_CacheErrorLetsEventThrough(t *testing.T) {
	d := New(&fakeCache{err: errors.New("redis down")}, time.Minute, time.Hour)

	ok, err := d.ShouldProcess(context.Background(), model.InboundEvent{
		ID: "evt-1", Timestamp: time.Now(),
	})
	assert.Error(t, err)
	assert.True(t, ok)
}
