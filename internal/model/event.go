package model

import (
	"encoding/json"
	"time"
)

// EventKind partitions inbound payloads into their handlers. Unknown kinds
// fall through to the plain-alert pipeline.
type EventKind string

const (
	EventAlert                EventKind = "ALERT"
	EventConfigSettingsChange EventKind = "CONFIG_SETTINGS_CHANGE"
	EventProfileChange        EventKind = "PROFILE_CHANGE"
	EventSecondaryContact     EventKind = "SECONDARY_CONTACT"
	EventAssociation          EventKind = "ASSOCIATION"
	EventDisassociation       EventKind = "DISASSOCIATION"
	EventScheduledReady       EventKind = "SCHEDULED_NOTIFICATION_READY"
	EventScheduleAck          EventKind = "SCHEDULE_OP_ACK"
	EventDeliveryAck          EventKind = "DELIVERY_ACK"
	EventCampaign             EventKind = "CAMPAIGN"
	EventCampaignStatus       EventKind = "CAMPAIGN_STATUS"
	EventPinGenerated         EventKind = "PIN_GENERATED"
	EventBatch                EventKind = "NON_REGISTERED_BATCH"
)

// InboundEvent is one typed event from the inbound stream. Composite
// payloads carry their parts in Nested; routing metadata (Destination) is
// checked once at the ingestion boundary.
type InboundEvent struct {
	ID             string           `json:"id"`
	Kind           EventKind        `json:"kind"`
	RequestID      string           `json:"request_id,omitempty"` // set on retry re-injection so history continues on the same record
	VehicleID      string           `json:"vehicle_id,omitempty"`
	UserID         string           `json:"user_id,omitempty"`
	NotificationID string           `json:"notification_id,omitempty"`
	Group          string           `json:"group,omitempty"`
	Destination    string           `json:"destination,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
	Payload        json.RawMessage  `json:"payload,omitempty"`
	Nested         []InboundEvent   `json:"nested,omitempty"`
	Recipients     []BatchRecipient `json:"recipients,omitempty"`
}

// BatchRecipient is one non-registered recipient of a batch event.
type BatchRecipient struct {
	ContactID string `json:"contact_id"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Locale    string `json:"locale,omitempty"`
}

// ScheduleOp is the operation an external-scheduler ack refers to.
type ScheduleOp string

const (
	ScheduleOpCreate ScheduleOp = "CREATE"
	ScheduleOpDelete ScheduleOp = "DELETE"
)

// TimerContext tags what a timer round trip belongs to.
type TimerContext string

const (
	TimerContextSnooze TimerContext = "snooze"
	TimerContextRetry  TimerContext = "retry"
)

// ScheduleAck is the external scheduler's reply to a timer create/delete.
type ScheduleAck struct {
	Operation     ScheduleOp   `json:"operation"`
	CorrelationID string       `json:"correlation_id"`
	RequestKey    string       `json:"request_key"`
	Context       TimerContext `json:"context"`
	Valid         bool         `json:"valid"`
	ErrorCode     string       `json:"error_code,omitempty"`
}

// TimerFired is the external scheduler's notice that a timer elapsed; it
// carries back the payload given at creation.
type TimerFired struct {
	CorrelationID string          `json:"correlation_id"`
	RequestKey    string          `json:"request_key"`
	Context       TimerContext    `json:"context"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// RetryMessage travels on the retry stream: the original event plus the
// retry bookkeeping, so the event can be re-injected unchanged.
type RetryMessage struct {
	Event       InboundEvent `json:"event"`
	Record      RetryRecord  `json:"record"`
	Destination string       `json:"destination"`
}

// Feedback is the best-effort lifecycle notice emitted on terminal
// outcomes when the feedback destination is enabled.
type Feedback struct {
	RequestID      string         `json:"request_id"`
	EventID        string         `json:"event_id,omitempty"`
	NotificationID string         `json:"notification_id,omitempty"`
	UserID         string         `json:"user_id,omitempty"`
	VehicleID      string         `json:"vehicle_id,omitempty"`
	Status         DeliveryStatus `json:"status"`
	Timestamp      time.Time      `json:"timestamp"`
}
