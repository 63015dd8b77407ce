package model

import (
	"time"

	"github.com/google/uuid"
)

// ChannelType identifies a delivery mechanism for an alert.
type ChannelType string

const (
	ChannelEmail   ChannelType = "EMAIL"
	ChannelSMS     ChannelType = "SMS"
	ChannelPush    ChannelType = "MOBILE_APP_PUSH"
	ChannelAPIPush ChannelType = "API_PUSH"
	ChannelIVM     ChannelType = "IVM"
	ChannelPortal  ChannelType = "PORTAL"
)

// ChannelTypes lists every channel type the dispatcher must be able to serve.
var ChannelTypes = []ChannelType{
	ChannelEmail, ChannelSMS, ChannelPush, ChannelAPIPush, ChannelIVM, ChannelPortal,
}

// GroupGeneral is the sentinel group used by default notification config rows.
const GroupGeneral = "GENERAL"

// SuppressionKind discriminates the two quiet-time window shapes.
type SuppressionKind string

const (
	SuppressionVacation  SuppressionKind = "VACATION"
	SuppressionRecurring SuppressionKind = "RECURRING"
)

// SuppressionConfig is one quiet-time window attached to a channel.
//
// VACATION windows are absolute: [StartDate StartTime, EndDate EndTime].
// RECURRING windows repeat on Days between StartTime and EndTime; when
// EndTime < StartTime the window wraps past midnight into the next day.
// Dates use "2006-01-02", times use "15:04".
type SuppressionConfig struct {
	Kind      SuppressionKind `json:"kind"`
	StartDate string          `json:"start_date,omitempty"`
	StartTime string          `json:"start_time"`
	EndDate   string          `json:"end_date,omitempty"`
	EndTime   string          `json:"end_time"`
	Days      []time.Weekday  `json:"days,omitempty"`
}

// Channel is one delivery mechanism entry inside a NotificationConfig.
type Channel struct {
	Type         ChannelType         `json:"type"`
	Enabled      bool                `json:"enabled"`
	Destination  string              `json:"destination"` // email address, phone number, device token, URL...
	Suppressions []SuppressionConfig `json:"suppressions,omitempty"`
}

// NotificationConfig holds one recipient/group row of channel preferences.
// Rows with Group == GroupGeneral and ContactID == UserID act as the
// fallback when no specific row exists.
type NotificationConfig struct {
	UserID    string    `json:"user_id"`
	VehicleID string    `json:"vehicle_id"`
	ContactID string    `json:"contact_id"`
	Group     string    `json:"group"`
	Brand     string    `json:"brand,omitempty"`
	Enabled   bool      `json:"enabled"`
	Locale    string    `json:"locale,omitempty"`
	Channels  []Channel `json:"channels"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsDefault reports whether this row is a sentinel fallback row.
func (c NotificationConfig) IsDefault() bool {
	return c.Group == GroupGeneral && c.ContactID == c.UserID
}

// MuteRecord is an administrative override silencing channels/groups for a
// vehicle during a window, independent of recipient quiet time. An empty
// channel or group set matches everything; a zero bound is unbounded.
type MuteRecord struct {
	ID        uuid.UUID     `json:"id"`
	VehicleID string        `json:"vehicle_id"`
	Channels  []ChannelType `json:"channels,omitempty"`
	Groups    []string      `json:"groups,omitempty"`
	Start     time.Time     `json:"start,omitempty"`
	End       time.Time     `json:"end,omitempty"`
}

// AppliesTo reports whether this mute silences the given channel/group at
// the given instant.
func (m MuteRecord) AppliesTo(ct ChannelType, group string, now time.Time) bool {
	if len(m.Channels) > 0 && !containsChannel(m.Channels, ct) {
		return false
	}
	if len(m.Groups) > 0 && !containsString(m.Groups, group) {
		return false
	}
	if !m.Start.IsZero() && now.Before(m.Start) {
		return false
	}
	if !m.End.IsZero() && now.After(m.End) {
		return false
	}
	return true
}

func containsChannel(set []ChannelType, ct ChannelType) bool {
	for _, c := range set {
		if c == ct {
			return true
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// RecipientProfile is the resolved snapshot of who an alert is addressed to.
type RecipientProfile struct {
	UserID    string `json:"user_id"`
	VehicleID string `json:"vehicle_id"`
	ContactID string `json:"contact_id,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
	Region    string `json:"region,omitempty"`
	Locale    string `json:"locale,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Consent   bool   `json:"consent"`
}

// AlertRequest is one in-flight notification intent, created per inbound
// event (or per recipient for batch events) and finalized when its history
// reaches a terminal status.
type AlertRequest struct {
	RequestID      uuid.UUID            `json:"request_id"`
	EventID        string               `json:"event_id"`
	NotificationID string               `json:"notification_id"`
	Group          string               `json:"group"`
	Profile        RecipientProfile     `json:"profile"`
	Configs        []NotificationConfig `json:"configs,omitempty"`
	Message        string               `json:"message,omitempty"`
	Subject        string               `json:"subject,omitempty"`
	Payload        []byte               `json:"payload,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// BufferedAlert is an immutable snapshot of an AlertRequest taken when the
// alert is snoozed into a NotificationBuffer.
type BufferedAlert struct {
	RequestID      uuid.UUID        `json:"request_id"`
	EventID        string           `json:"event_id"`
	NotificationID string           `json:"notification_id"`
	Group          string           `json:"group"`
	Channel        ChannelType      `json:"channel"`
	Destination    string           `json:"destination"`
	Profile        RecipientProfile `json:"profile"`
	Message        string           `json:"message,omitempty"`
	Subject        string           `json:"subject,omitempty"`
	Payload        []byte           `json:"payload,omitempty"`
	BufferedAt     time.Time        `json:"buffered_at"`
}

// Snapshot freezes the request into a BufferedAlert for the given channel.
func (a *AlertRequest) Snapshot(ch Channel, now time.Time) BufferedAlert {
	payload := make([]byte, len(a.Payload))
	copy(payload, a.Payload)

	return BufferedAlert{
		RequestID:      a.RequestID,
		EventID:        a.EventID,
		NotificationID: a.NotificationID,
		Group:          a.Group,
		Channel:        ch.Type,
		Destination:    ch.Destination,
		Profile:        a.Profile,
		Message:        a.Message,
		Subject:        a.Subject,
		Payload:        payload,
		BufferedAt:     now,
	}
}

// BufferKey identifies the recipient tuple a NotificationBuffer belongs to.
type BufferKey struct {
	UserID    string      `json:"user_id"`
	VehicleID string      `json:"vehicle_id"`
	Channel   ChannelType `json:"channel"`
	Group     string      `json:"group"`
	ContactID string      `json:"contact_id"`
}

// NotificationBuffer holds alerts snoozed for one recipient tuple while its
// quiet time persists. CorrelationID references the single outstanding
// external timer; it is empty until the timer creation is acknowledged.
type NotificationBuffer struct {
	ID            uuid.UUID       `json:"id"`
	Key           BufferKey       `json:"key"`
	Alerts        []BufferedAlert `json:"alerts"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PortalMessage is one portal-inbox entry created by the PORTAL channel.
type PortalMessage struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	UserID    string    `json:"user_id"`
	VehicleID string    `json:"vehicle_id"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// RetryRecord tracks retry attempts for one (request, failure kind) pair.
type RetryRecord struct {
	RequestID   uuid.UUID     `json:"request_id"`
	Kind        string        `json:"kind"`
	Attempt     int           `json:"attempt"`
	MaxAttempts int           `json:"max_attempts"`
	Interval    time.Duration `json:"interval"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
