package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

type fakeInbound struct {
	events []model.InboundEvent
}

func (f *fakeInbound) Run(ctx context.Context, handle func(model.InboundEvent)) error {
	for _, evt := range f.events {
		handle(evt)
	}
	<-ctx.Done()
	return nil
}

type fakeCallbacks struct {
	events []model.InboundEvent
}

func (f *fakeCallbacks) Consume(out chan<- model.InboundEvent, _ retry.Strategy) error {
	for _, evt := range f.events {
		out <- evt
	}
	return nil
}

type fakeRetries struct {
	msgs []model.RetryMessage
}

func (f *fakeRetries) Consume(out chan<- model.RetryMessage, _ retry.Strategy) error {
	for _, m := range f.msgs {
		out <- m
	}
	return nil
}

type recordingHandler struct {
	mu      sync.Mutex
	byKey   map[string][]string
	handled chan struct{}
}

func newRecordingHandler(expected int) *recordingHandler {
	return &recordingHandler{
		byKey:   make(map[string][]string),
		handled: make(chan struct{}, expected),
	}
}

func (h *recordingHandler) Handle(_ context.Context, evt model.InboundEvent) error {
	h.mu.Lock()
	key := evt.VehicleID + "|" + evt.UserID
	h.byKey[key] = append(h.byKey[key], evt.ID)
	h.mu.Unlock()
	h.handled <- struct{}{}
	return nil
}

type recordingRetryer struct {
	mu      sync.Mutex
	ids     []uuid.UUID
	handled chan struct{}
}

func (r *recordingRetryer) OnRetryMessage(_ context.Context, msg model.RetryMessage) error {
	r.mu.Lock()
	r.ids = append(r.ids, msg.Record.RequestID)
	r.mu.Unlock()
	r.handled <- struct{}{}
	return nil
}

func waitFor(t *testing.T, ch chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %d of %d handled", i+1, n)
		}
	}
}

func TestPool_PreservesPerRecipientOrder(t *testing.T) {
	events := make([]model.InboundEvent, 0, 20)
	for i := 0; i < 10; i++ {
		events = append(events,
			model.InboundEvent{ID: "a-" + string(rune('0'+i)), Kind: model.EventAlert, VehicleID: "veh-a"},
			model.InboundEvent{ID: "b-" + string(rune('0'+i)), Kind: model.EventAlert, VehicleID: "veh-b"},
		)
	}

	handler := newRecordingHandler(len(events))
	retryer := &recordingRetryer{handled: make(chan struct{}, 1)}
	pool := NewPool(&fakeInbound{events: events}, &fakeCallbacks{}, &fakeRetries{}, handler, retryer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pool.Run(ctx, retry.Strategy{Attempts: 1}, 4)

	waitFor(t, handler.handled, len(events))

	handler.mu.Lock()
	defer handler.mu.Unlock()
	require.Len(t, handler.byKey["veh-a|"], 10)
	require.Len(t, handler.byKey["veh-b|"], 10)
	for i, id := range handler.byKey["veh-a|"] {
		assert.Equal(t, "a-"+string(rune('0'+i)), id)
	}
	for i, id := range handler.byKey["veh-b|"] {
		assert.Equal(t, "b-"+string(rune('0'+i)), id)
	}
}

func TestPool_MergesCallbackAndRetrySources(t *testing.T) {
	callback := model.InboundEvent{ID: "cb-1", Kind: model.EventScheduledReady, VehicleID: "veh-c"}
	retryMsg := model.RetryMessage{
		Record: model.RetryRecord{RequestID: uuid.New(), Kind: "SMS_GATEWAY", Attempt: 1, MaxAttempts: 3},
	}

	handler := newRecordingHandler(1)
	retryer := &recordingRetryer{handled: make(chan struct{}, 1)}
	pool := NewPool(
		&fakeInbound{},
		&fakeCallbacks{events: []model.InboundEvent{callback}},
		&fakeRetries{msgs: []model.RetryMessage{retryMsg}},
		handler, retryer,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pool.Run(ctx, retry.Strategy{Attempts: 1}, 2)

	waitFor(t, handler.handled, 1)
	waitFor(t, retryer.handled, 1)

	handler.mu.Lock()
	assert.Equal(t, []string{"cb-1"}, handler.byKey["veh-c|"])
	handler.mu.Unlock()

	retryer.mu.Lock()
	require.Len(t, retryer.ids, 1)
	assert.Equal(t, retryMsg.Record.RequestID, retryer.ids[0])
	retryer.mu.Unlock()
}
