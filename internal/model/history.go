package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is one step of the per-request delivery lifecycle.
type DeliveryStatus string

const (
	StatusReady           DeliveryStatus = "READY"
	StatusScheduleRequest DeliveryStatus = "SCHEDULE_REQUESTED"
	StatusScheduled       DeliveryStatus = "SCHEDULED"
	StatusRetryRequested  DeliveryStatus = "RETRY_REQUESTED"
	StatusRetryScheduled  DeliveryStatus = "RETRY_SCHEDULED"
	StatusDone            DeliveryStatus = "DONE"
	StatusFailed          DeliveryStatus = "FAILED"
	StatusCanceled        DeliveryStatus = "CANCELED"
	StatusStoppedByConfig DeliveryStatus = "STOPPED_BY_CONFIG"
)

// Terminal reports whether the status closes the current delivery attempt.
// A later retry or buffer resume opens a new delivery context on the same
// history record rather than creating a new record.
func (s DeliveryStatus) Terminal() bool {
	switch s {
	case StatusDone, StatusFailed, StatusCanceled, StatusStoppedByConfig:
		return true
	}
	return false
}

// StatusEntry is one appended lifecycle step.
type StatusEntry struct {
	Status        DeliveryStatus `json:"status"`
	Timestamp     time.Time      `json:"timestamp"`
	CorrelationID string         `json:"correlation_id,omitempty"`
}

// ChannelResponse is the outcome of one notifier publish.
type ChannelResponse struct {
	Channel   ChannelType `json:"channel"`
	Provider  string      `json:"provider"`
	Status    string      `json:"status"`
	Message   string      `json:"message,omitempty"`
	ErrorCode string      `json:"error_code,omitempty"`
	At        time.Time   `json:"at"`
}

// SkippedChannel records why a channel was bypassed during dispatch.
type SkippedChannel struct {
	Channel ChannelType `json:"channel"`
	Reason  string      `json:"reason"`
	At      time.Time   `json:"at"`
}

// AlertsHistoryInfo is the append-only delivery-lifecycle log for one
// AlertRequest.
type AlertsHistoryInfo struct {
	RequestID      uuid.UUID         `json:"request_id"`
	EventID        string            `json:"event_id,omitempty"`
	NotificationID string            `json:"notification_id,omitempty"`
	UserID         string            `json:"user_id,omitempty"`
	VehicleID      string            `json:"vehicle_id,omitempty"`
	Statuses       []StatusEntry     `json:"statuses"`
	Responses      []ChannelResponse `json:"responses,omitempty"`
	Skipped        []SkippedChannel  `json:"skipped,omitempty"`
	RetryRecords   []RetryRecord     `json:"retry_records,omitempty"`
	DefaultMessage string            `json:"default_message,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CurrentStatus returns the most recently appended status, or "" when the
// log is empty.
func (h *AlertsHistoryInfo) CurrentStatus() DeliveryStatus {
	if len(h.Statuses) == 0 {
		return ""
	}
	return h.Statuses[len(h.Statuses)-1].Status
}
