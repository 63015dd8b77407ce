// Package history maintains the append-only per-request delivery-lifecycle
// log backing every terminal outcome in the system.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

// ErrTerminal is returned when a status append would extend a delivery
// attempt that already reached DONE/FAILED/CANCELED/STOPPED_BY_CONFIG.
var ErrTerminal = errors.New("delivery attempt already terminal")

type repository interface {
	Get(ctx context.Context, requestID uuid.UUID) (*model.AlertsHistoryInfo, error)
	Create(ctx context.Context, info *model.AlertsHistoryInfo) error
	AppendStatus(ctx context.Context, requestID uuid.UUID, entry model.StatusEntry) error
	AppendResponse(ctx context.Context, requestID uuid.UUID, resp model.ChannelResponse) error
	AppendSkipped(ctx context.Context, requestID uuid.UUID, skip model.SkippedChannel) error
	AppendRetryRecord(ctx context.Context, requestID uuid.UUID, rec model.RetryRecord) error
	SetDefaultMessage(ctx context.Context, requestID uuid.UUID, message string) error
}

// Tracker drives the alert-history state machine on top of the store.
type Tracker struct {
	repo repository
	now  func() time.Time
}

// NewTracker builds a Tracker over the given history repository.
func NewTracker(repo repository) *Tracker {
	return &Tracker{repo: repo, now: time.Now}
}

// Start creates the history record for a request and appends READY. A
// request without an id gets one generated here.
func (t *Tracker) Start(ctx context.Context, req *model.AlertRequest) error {
	if req.RequestID == uuid.Nil {
		req.RequestID = uuid.New()
	}

	now := t.now()
	info := &model.AlertsHistoryInfo{
		RequestID:      req.RequestID,
		EventID:        req.EventID,
		NotificationID: req.NotificationID,
		UserID:         req.Profile.UserID,
		VehicleID:      req.Profile.VehicleID,
		Statuses:       []model.StatusEntry{{Status: model.StatusReady, Timestamp: now}},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := t.repo.Create(ctx, info); err != nil {
		return fmt.Errorf("create history: %w", err)
	}
	return nil
}

// Append adds a status entry, rejecting appends onto a terminal attempt.
func (t *Tracker) Append(ctx context.Context, requestID uuid.UUID, status model.DeliveryStatus, correlationID string) error {
	info, err := t.repo.Get(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get history: %w", err)
	}
	if info.CurrentStatus().Terminal() {
		return fmt.Errorf("append %s to %s: %w", status, requestID, ErrTerminal)
	}
	return t.append(ctx, requestID, status, correlationID)
}

// AppendRedelivery adds a status entry for a new delivery context (buffer
// flush or retry re-injection), which is allowed to follow a terminal one.
func (t *Tracker) AppendRedelivery(ctx context.Context, requestID uuid.UUID, status model.DeliveryStatus, correlationID string) error {
	return t.append(ctx, requestID, status, correlationID)
}

func (t *Tracker) append(ctx context.Context, requestID uuid.UUID, status model.DeliveryStatus, correlationID string) error {
	entry := model.StatusEntry{Status: status, Timestamp: t.now(), CorrelationID: correlationID}
	if err := t.repo.AppendStatus(ctx, requestID, entry); err != nil {
		return fmt.Errorf("append status %s: %w", status, err)
	}
	return nil
}

// RecordResponse appends a channel response; the first response seeds the
// record's default alert message.
func (t *Tracker) RecordResponse(ctx context.Context, requestID uuid.UUID, resp model.ChannelResponse) error {
	info, err := t.repo.Get(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get history: %w", err)
	}

	if resp.At.IsZero() {
		resp.At = t.now()
	}
	if err := t.repo.AppendResponse(ctx, requestID, resp); err != nil {
		return fmt.Errorf("append response: %w", err)
	}

	if len(info.Responses) == 0 && resp.Message != "" {
		if err := t.repo.SetDefaultMessage(ctx, requestID, resp.Message); err != nil {
			return fmt.Errorf("seed default message: %w", err)
		}
	}
	return nil
}

// RecordSkip appends a skipped-channel reason.
func (t *Tracker) RecordSkip(ctx context.Context, requestID uuid.UUID, ct model.ChannelType, reason string) error {
	skip := model.SkippedChannel{Channel: ct, Reason: reason, At: t.now()}
	if err := t.repo.AppendSkipped(ctx, requestID, skip); err != nil {
		return fmt.Errorf("append skipped channel: %w", err)
	}
	return nil
}

// RecordRetry appends a retry-record audit entry.
func (t *Tracker) RecordRetry(ctx context.Context, requestID uuid.UUID, rec model.RetryRecord) error {
	if err := t.repo.AppendRetryRecord(ctx, requestID, rec); err != nil {
		return fmt.Errorf("append retry record: %w", err)
	}
	return nil
}

// CurrentStatus returns the latest appended status for the request.
func (t *Tracker) CurrentStatus(ctx context.Context, requestID uuid.UUID) (model.DeliveryStatus, error) {
	info, err := t.repo.Get(ctx, requestID)
	if err != nil {
		return "", fmt.Errorf("get history: %w", err)
	}
	return info.CurrentStatus(), nil
}

// Get returns the full history record.
func (t *Tracker) Get(ctx context.Context, requestID uuid.UUID) (*model.AlertsHistoryInfo, error) {
	return t.repo.Get(ctx, requestID)
}
