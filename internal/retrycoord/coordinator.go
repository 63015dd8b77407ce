// Package retrycoord tracks retry attempts per request and failure kind,
// schedules retries through the external timer service, and re-injects
// the original events when their timers fire.
package retrycoord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	wbfretry "github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/model"
)

//go:generate mockgen -source=coordinator.go -destination=../mocks/retrycoord/mock.go -package=mocks

type cache interface {
	SetWithRetry(ctx context.Context, strategy wbfretry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy wbfretry.Strategy, key string) (string, error)
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type auditRepository interface {
	Save(ctx context.Context, rec model.RetryRecord) error
}

type retryPublisher interface {
	Publish(msg model.RetryMessage, strategy wbfretry.Strategy) error
}

type timerService interface {
	CreateTimer(requestKey string, timerCtx model.TimerContext, payload json.RawMessage, delay time.Duration, callback string) error
}

type historyTracker interface {
	Append(ctx context.Context, requestID uuid.UUID, status model.DeliveryStatus, correlationID string) error
	RecordRetry(ctx context.Context, requestID uuid.UUID, rec model.RetryRecord) error
}

type forwarder interface {
	Forward(ctx context.Context, evt model.InboundEvent, destination string) error
}

// Coordinator drives retry bookkeeping. The live counters live in the
// cache; the audit copies land in the retry store and the history log.
// Cache and history are independently persisted and can diverge across a
// crash: the round trip is at-least-once, never exactly-once.
type Coordinator struct {
	cache     cache
	audit     auditRepository
	publisher retryPublisher
	timers    timerService
	history   historyTracker
	forward   forwarder
	callback  string
	strategy  wbfretry.Strategy
	now       func() time.Time
}

// NewCoordinator wires the retry coordinator. callback names the
// destination retry-timer firings come back on.
func NewCoordinator(
	c cache,
	audit auditRepository,
	publisher retryPublisher,
	timers timerService,
	history historyTracker,
	forward forwarder,
	callback string,
	strategy wbfretry.Strategy,
) *Coordinator {
	return &Coordinator{
		cache:     c,
		audit:     audit,
		publisher: publisher,
		timers:    timers,
		history:   history,
		forward:   forward,
		callback:  callback,
		strategy:  strategy,
		now:       time.Now,
	}
}

func cacheKey(requestID uuid.UUID, kind string) string {
	return fmt.Sprintf("retry:%s:%s", requestID, kind)
}

func requestKey(requestID uuid.UUID, kind string) string {
	return requestID.String() + "|" + kind
}

// OnFailure handles a tagged retryable failure: the first occurrence of a
// (request, kind) pair creates the attempt-1 record, later ones bump the
// attempt counter; every occurrence appends RETRY_REQUESTED and puts the
// original event on the retry stream.
func (c *Coordinator) OnFailure(ctx context.Context, requestID uuid.UUID, evt model.InboundEvent, rerr *errs.RetryableError) error {
	key := cacheKey(requestID, rerr.Kind)

	rec, found, err := c.getRecord(ctx, key)
	if err != nil {
		return fmt.Errorf("load retry record: %w", err)
	}
	if !found {
		rec = model.RetryRecord{
			RequestID:   requestID,
			Kind:        rerr.Kind,
			Attempt:     1,
			MaxAttempts: rerr.MaxAttempts,
			Interval:    rerr.Interval,
		}
	} else {
		rec.Attempt++
	}
	rec.UpdatedAt = c.now()
	if err := c.setRecord(ctx, key, rec); err != nil {
		return fmt.Errorf("cache retry record: %w", err)
	}

	if err := c.history.Append(ctx, requestID, model.StatusRetryRequested, ""); err != nil {
		zlog.Logger.Error().Err(err).Str("request_id", requestID.String()).Msg("failed to append RETRY_REQUESTED")
	}

	msg := model.RetryMessage{Event: evt, Record: rec, Destination: evt.Destination}
	if err := c.publisher.Publish(msg, c.strategy); err != nil {
		return fmt.Errorf("publish retry message: %w", err)
	}
	return nil
}

// OnRetryMessage consumes the retry stream: attempts within the limit get
// audited and handed to the external timer; exhausted ones drop their
// cache entry and close the request as FAILED.
func (c *Coordinator) OnRetryMessage(ctx context.Context, msg model.RetryMessage) error {
	requestID := msg.Record.RequestID
	key := cacheKey(requestID, msg.Record.Kind)

	rec, found, err := c.getRecord(ctx, key)
	if err != nil {
		return fmt.Errorf("load retry record: %w", err)
	}
	if !found {
		// Cache lost the entry (crash or eviction): restart from the
		// message's own copy.
		rec = msg.Record
		if rec.Attempt == 0 {
			rec.Attempt = 1
		}
	}

	if rec.Attempt > rec.MaxAttempts {
		c.cache.Del(ctx, key)
		if err := c.history.Append(ctx, requestID, model.StatusFailed, ""); err != nil {
			return fmt.Errorf("append FAILED: %w", err)
		}
		return nil
	}

	rec.UpdatedAt = c.now()
	if err := c.setRecord(ctx, key, rec); err != nil {
		return fmt.Errorf("cache retry record: %w", err)
	}
	if err := c.audit.Save(ctx, rec); err != nil {
		zlog.Logger.Error().Err(err).Str("request_id", requestID.String()).Msg("failed to persist retry audit copy")
	}
	if err := c.history.RecordRetry(ctx, requestID, rec); err != nil {
		zlog.Logger.Error().Err(err).Str("request_id", requestID.String()).Msg("failed to append retry record to history")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode retry payload: %w", err)
	}
	if err := c.timers.CreateTimer(requestKey(requestID, rec.Kind), model.TimerContextRetry, payload, rec.Interval, c.callback); err != nil {
		return fmt.Errorf("create retry timer: %w", err)
	}
	return nil
}

// OnTimerFired re-injects the original event into its original
// destination, with a fresh timestamp so deduplication does not discard
// it as stale.
func (c *Coordinator) OnTimerFired(ctx context.Context, fired model.TimerFired) error {
	var msg model.RetryMessage
	if err := json.Unmarshal(fired.Payload, &msg); err != nil {
		return fmt.Errorf("decode retry payload: %w", err)
	}

	evt := msg.Event
	evt.Timestamp = c.now()
	evt.RequestID = msg.Record.RequestID.String()

	if err := c.forward.Forward(ctx, evt, msg.Destination); err != nil {
		return fmt.Errorf("re-inject event: %w", err)
	}
	return nil
}

// OnAck records the scheduler's acknowledgment of a retry timer.
func (c *Coordinator) OnAck(ctx context.Context, ack model.ScheduleAck) error {
	if ack.Operation != model.ScheduleOpCreate {
		return nil
	}
	if !ack.Valid {
		zlog.Logger.Error().
			Str("request_key", ack.RequestKey).
			Str("error_code", ack.ErrorCode).
			Msg("scheduler rejected retry timer creation")
		return nil
	}

	idPart := ack.RequestKey
	if i := strings.IndexByte(idPart, '|'); i >= 0 {
		idPart = idPart[:i]
	}
	requestID, err := uuid.Parse(idPart)
	if err != nil {
		return fmt.Errorf("parse request id from ack: %w", err)
	}

	return c.history.Append(ctx, requestID, model.StatusRetryScheduled, ack.CorrelationID)
}

// ClearRequest drops every cached retry entry for a request after a
// terminal success.
func (c *Coordinator) ClearRequest(ctx context.Context, requestID uuid.UUID, kinds []string) {
	for _, kind := range kinds {
		c.cache.Del(ctx, cacheKey(requestID, kind))
	}
}

func (c *Coordinator) getRecord(ctx context.Context, key string) (model.RetryRecord, bool, error) {
	raw, err := c.cache.GetWithRetry(ctx, c.strategy, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.RetryRecord{}, false, nil
		}
		return model.RetryRecord{}, false, err
	}

	var rec model.RetryRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return model.RetryRecord{}, false, fmt.Errorf("decode cached retry record: %w", err)
	}
	return rec, true, nil
}

func (c *Coordinator) setRecord(ctx context.Context, key string, rec model.RetryRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode retry record: %w", err)
	}
	return c.cache.SetWithRetry(ctx, c.strategy, key, string(raw))
}
