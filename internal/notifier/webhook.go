package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/model"
)

type webhookClient interface {
	Post(ctx context.Context, url string, payload []byte) (int, error)
}

// Webhook delivers API_PUSH alerts to recipient-configured endpoints. The
// channel destination carries the endpoint URL.
type Webhook struct {
	client webhookClient
	policy RetryPolicy
}

func NewWebhook(client webhookClient, policy RetryPolicy) *Webhook {
	return &Webhook{client: client, policy: policy}
}

func (w *Webhook) Name() string { return "webhook" }

type webhookPayload struct {
	RequestID      string          `json:"request_id"`
	NotificationID string          `json:"notification_id,omitempty"`
	VehicleID      string          `json:"vehicle_id,omitempty"`
	Subject        string          `json:"subject,omitempty"`
	Message        string          `json:"message"`
	Payload        json.RawMessage `json:"payload,omitempty"`
}

func (w *Webhook) Publish(ctx context.Context, alert *model.AlertRequest, ch model.Channel) (model.ChannelResponse, error) {
	if ch.Destination == "" {
		return model.ChannelResponse{}, fmt.Errorf("no endpoint URL for request %s", alert.RequestID)
	}

	body, err := json.Marshal(webhookPayload{
		RequestID:      alert.RequestID.String(),
		NotificationID: alert.NotificationID,
		VehicleID:      alert.Profile.VehicleID,
		Subject:        alert.Subject,
		Message:        alert.Message,
		Payload:        alert.Payload,
	})
	if err != nil {
		return model.ChannelResponse{}, fmt.Errorf("encode payload: %w", err)
	}

	status, err := w.client.Post(ctx, ch.Destination, body)
	if err != nil {
		return model.ChannelResponse{}, errs.Retryable("API_PUSH_ENDPOINT", w.policy.MaxAttempts, w.policy.Interval, err)
	}
	switch {
	case status >= http.StatusInternalServerError:
		return model.ChannelResponse{}, errs.Retryable("API_PUSH_ENDPOINT", w.policy.MaxAttempts, w.policy.Interval,
			fmt.Errorf("endpoint returned status %d", status))
	case status >= http.StatusBadRequest:
		// The endpoint rejected the payload; retrying the same body is
		// pointless.
		return model.ChannelResponse{}, fmt.Errorf("endpoint rejected payload with status %d", status)
	}

	return model.ChannelResponse{
		Channel:  model.ChannelAPIPush,
		Provider: w.Name(),
		Status:   statusSent,
		Message:  alert.Message,
	}, nil
}

func (w *Webhook) ProcessAck(_ context.Context, evt model.InboundEvent) error {
	zlog.Logger.Info().Str("event_id", evt.ID).Msg("webhook delivery acknowledged")
	return nil
}

func (w *Webhook) SetupChannel(context.Context, model.NotificationConfig) error { return nil }
