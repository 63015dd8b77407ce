// Package schedule coordinates external timers and snoozed-alert buffers:
// the NO_BUFFER -> BUFFERED_NO_TIMER -> BUFFERED_WITH_TIMER state machine
// behind quiet-time suppression.
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/model"
	"github.com/openfleet/alert-dispatcher/internal/repository/bufferstore"
)

//go:generate mockgen -source=coordinator.go -destination=../mocks/schedule/mock.go -package=mocks

type bufferRepository interface {
	Create(ctx context.Context, buf *model.NotificationBuffer) error
	GetByKey(ctx context.Context, key model.BufferKey) (*model.NotificationBuffer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.NotificationBuffer, error)
	GetByCorrelationID(ctx context.Context, correlationID string) (*model.NotificationBuffer, error)
	ListByRecipient(ctx context.Context, userID, vehicleID string) ([]model.NotificationBuffer, error)
	AppendAlert(ctx context.Context, id uuid.UUID, alert model.BufferedAlert) error
	SetCorrelationID(ctx context.Context, id uuid.UUID, correlationID string) error
	ReplaceAlerts(ctx context.Context, id uuid.UUID, alerts []model.BufferedAlert) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type timerService interface {
	CreateTimer(requestKey string, timerCtx model.TimerContext, payload json.RawMessage, delay time.Duration, callback string) error
	ReplaceTimer(requestKey string, timerCtx model.TimerContext, payload json.RawMessage, delay time.Duration, callback, staleCorrelationID string) error
	DeleteTimer(correlationID string) error
}

type historyTracker interface {
	Append(ctx context.Context, requestID uuid.UUID, status model.DeliveryStatus, correlationID string) error
}

// quietTimeSource re-evaluates whether a recipient tuple is still inside
// quiet time and, if so, for how much longer. The timezone is the
// recipient's, carried by the buffered snapshots.
type quietTimeSource interface {
	RemainingQuietTime(ctx context.Context, key model.BufferKey, timezone string, now time.Time) (time.Duration, bool, error)
}

// bufferedDispatcher replays one frozen alert through delivery, bypassing
// re-suppression.
type bufferedDispatcher interface {
	DispatchBuffered(ctx context.Context, alert model.BufferedAlert) error
}

// Coordinator owns the per-tuple buffers and their single outstanding
// external timer.
type Coordinator struct {
	buffers    bufferRepository
	timers     timerService
	history    historyTracker
	quiet      quietTimeSource
	dispatcher bufferedDispatcher
	callback   string
	now        func() time.Time
}

// NewCoordinator wires the schedule coordinator. callback names the
// destination the external scheduler sends snooze callbacks to.
func NewCoordinator(
	buffers bufferRepository,
	timers timerService,
	history historyTracker,
	quiet quietTimeSource,
	callback string,
) *Coordinator {
	return &Coordinator{
		buffers:  buffers,
		timers:   timers,
		history:  history,
		quiet:    quiet,
		callback: callback,
		now:      time.Now,
	}
}

// SetDispatcher attaches the flush target. Set once at startup; the engine
// and the coordinator reference each other.
func (c *Coordinator) SetDispatcher(d bufferedDispatcher) {
	c.dispatcher = d
}

// Snooze buffers an alert whose channel is inside quiet time. The first
// snooze for a tuple creates the buffer and requests a timer; later
// snoozes append to the existing buffer without a second timer, whether or
// not the first timer's creation has been acknowledged yet.
func (c *Coordinator) Snooze(ctx context.Context, req *model.AlertRequest, ch model.Channel, cfg model.NotificationConfig, delay time.Duration) error {
	key := model.BufferKey{
		UserID:    cfg.UserID,
		VehicleID: cfg.VehicleID,
		Channel:   ch.Type,
		Group:     cfg.Group,
		ContactID: cfg.ContactID,
	}
	snapshot := req.Snapshot(ch, c.now())

	buf, err := c.buffers.GetByKey(ctx, key)
	if err == nil {
		if err := c.buffers.AppendAlert(ctx, buf.ID, snapshot); err != nil {
			return fmt.Errorf("append to buffer: %w", err)
		}
		if err := c.history.Append(ctx, req.RequestID, model.StatusScheduleRequest, ""); err != nil {
			return err
		}
		if buf.CorrelationID != "" {
			// Timer already acknowledged; this alert is scheduled under it.
			return c.history.Append(ctx, req.RequestID, model.StatusScheduled, buf.CorrelationID)
		}
		return nil
	}
	if !errors.Is(err, bufferstore.ErrBufferNotFound) {
		// Only a confirmed missing buffer may take the create path; a
		// transient store error here would fork a second buffer and timer
		// for a tuple that already has both.
		return fmt.Errorf("load buffer: %w", err)
	}

	buf = &model.NotificationBuffer{
		ID:        uuid.New(),
		Key:       key,
		Alerts:    []model.BufferedAlert{snapshot},
		CreatedAt: c.now(),
		UpdatedAt: c.now(),
	}
	if err := c.buffers.Create(ctx, buf); err != nil {
		return fmt.Errorf("create buffer: %w", err)
	}

	payload, err := json.Marshal(buf.ID)
	if err != nil {
		return fmt.Errorf("encode timer payload: %w", err)
	}
	if err := c.timers.CreateTimer(buf.ID.String(), model.TimerContextSnooze, payload, delay, c.callback); err != nil {
		return fmt.Errorf("create timer: %w", err)
	}

	return c.history.Append(ctx, req.RequestID, model.StatusScheduleRequest, "")
}

// HandleAck processes a scheduler ack for a snooze timer: a valid create
// ack attaches the correlation id and marks every buffered request
// SCHEDULED under it.
func (c *Coordinator) HandleAck(ctx context.Context, ack model.ScheduleAck) error {
	if ack.Operation != model.ScheduleOpCreate {
		return nil
	}
	if !ack.Valid {
		zlog.Logger.Error().
			Str("request_key", ack.RequestKey).
			Str("error_code", ack.ErrorCode).
			Msg("scheduler rejected snooze timer creation")
		return nil
	}

	bufID, err := uuid.Parse(ack.RequestKey)
	if err != nil {
		return fmt.Errorf("parse buffer id from ack: %w", err)
	}

	if err := c.buffers.SetCorrelationID(ctx, bufID, ack.CorrelationID); err != nil {
		return fmt.Errorf("attach correlation id: %w", err)
	}

	buf, err := c.buffers.GetByID(ctx, bufID)
	if err != nil {
		return fmt.Errorf("load buffer: %w", err)
	}
	for _, alert := range buf.Alerts {
		if err := c.history.Append(ctx, alert.RequestID, model.StatusScheduled, ack.CorrelationID); err != nil {
			zlog.Logger.Error().Err(err).
				Str("request_id", alert.RequestID.String()).
				Msg("failed to mark buffered alert scheduled")
		}
	}
	return nil
}

// HandleTimerFired re-evaluates the buffer the fired timer belongs to.
func (c *Coordinator) HandleTimerFired(ctx context.Context, fired model.TimerFired) error {
	var bufID uuid.UUID
	if err := json.Unmarshal(fired.Payload, &bufID); err != nil {
		return fmt.Errorf("decode timer payload: %w", err)
	}

	buf, err := c.buffers.GetByID(ctx, bufID)
	if errors.Is(err, bufferstore.ErrBufferNotFound) {
		// Already flushed; the delete raced the firing.
		zlog.Logger.Warn().Str("buffer_id", bufID.String()).Msg("timer fired for missing buffer")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load buffer: %w", err)
	}

	return c.reevaluate(ctx, buf)
}

// HandleReconfigured re-evaluates every buffer of a recipient after their
// suppression settings changed.
func (c *Coordinator) HandleReconfigured(ctx context.Context, userID, vehicleID string) error {
	buffers, err := c.buffers.ListByRecipient(ctx, userID, vehicleID)
	if err != nil {
		return fmt.Errorf("list buffers: %w", err)
	}

	for i := range buffers {
		if err := c.reevaluate(ctx, &buffers[i]); err != nil {
			zlog.Logger.Error().Err(err).
				Str("buffer_id", buffers[i].ID.String()).
				Msg("failed to re-evaluate buffer")
		}
	}
	return nil
}

// reevaluate either extends quiet time with a replacement timer or flushes
// the buffer.
func (c *Coordinator) reevaluate(ctx context.Context, buf *model.NotificationBuffer) error {
	tz := ""
	if len(buf.Alerts) > 0 {
		tz = buf.Alerts[0].Profile.Timezone
	}
	remaining, active, err := c.quiet.RemainingQuietTime(ctx, buf.Key, tz, c.now())
	if err != nil {
		return fmt.Errorf("re-evaluate quiet time: %w", err)
	}

	if active {
		payload, err := json.Marshal(buf.ID)
		if err != nil {
			return fmt.Errorf("encode timer payload: %w", err)
		}
		if err := c.timers.ReplaceTimer(buf.ID.String(), model.TimerContextSnooze, payload, remaining, c.callback, buf.CorrelationID); err != nil {
			return fmt.Errorf("replace timer: %w", err)
		}
		return nil
	}

	return c.flush(ctx, buf)
}

// flush replays every buffered alert through dispatch, then deletes the
// buffer and cancels its timer, exactly once.
func (c *Coordinator) flush(ctx context.Context, buf *model.NotificationBuffer) error {
	for _, alert := range buf.Alerts {
		if err := c.dispatcher.DispatchBuffered(ctx, alert); err != nil {
			zlog.Logger.Error().Err(err).
				Str("request_id", alert.RequestID.String()).
				Str("channel", string(alert.Channel)).
				Msg("failed to resend buffered alert")
		}
	}

	if err := c.buffers.Delete(ctx, buf.ID); err != nil {
		return fmt.Errorf("delete buffer: %w", err)
	}
	if buf.CorrelationID != "" {
		if err := c.timers.DeleteTimer(buf.CorrelationID); err != nil {
			return fmt.Errorf("delete timer: %w", err)
		}
	}
	return nil
}

// CancelRequest removes one request's snapshot from its buffer, deleting
// buffer and timer when it was the last entry.
func (c *Coordinator) CancelRequest(ctx context.Context, requestID uuid.UUID, correlationID string) error {
	buf, err := c.buffers.GetByCorrelationID(ctx, correlationID)
	if err != nil {
		return fmt.Errorf("find buffer by correlation id: %w", err)
	}

	kept := buf.Alerts[:0]
	for _, alert := range buf.Alerts {
		if alert.RequestID != requestID {
			kept = append(kept, alert)
		}
	}

	if len(kept) == 0 {
		if err := c.buffers.Delete(ctx, buf.ID); err != nil {
			return fmt.Errorf("delete buffer: %w", err)
		}
		if err := c.timers.DeleteTimer(buf.CorrelationID); err != nil {
			return fmt.Errorf("delete timer: %w", err)
		}
		return nil
	}

	return c.buffers.ReplaceAlerts(ctx, buf.ID, kept)
}
