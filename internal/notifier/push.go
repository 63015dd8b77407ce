package notifier

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/model"
)

type pushClient interface {
	Send(ctx context.Context, token, title, msg string) error
}

// Push delivers mobile app notifications through the push gateway. The
// channel destination carries the device token.
type Push struct {
	client pushClient
	policy RetryPolicy
}

func NewPush(client pushClient, policy RetryPolicy) *Push {
	return &Push{client: client, policy: policy}
}

func (p *Push) Name() string { return "fcm" }

func (p *Push) Publish(ctx context.Context, alert *model.AlertRequest, ch model.Channel) (model.ChannelResponse, error) {
	if ch.Destination == "" {
		return model.ChannelResponse{}, fmt.Errorf("no device token for request %s", alert.RequestID)
	}

	if err := p.client.Send(ctx, ch.Destination, alert.Subject, alert.Message); err != nil {
		return model.ChannelResponse{}, errs.Retryable("PUSH_GATEWAY", p.policy.MaxAttempts, p.policy.Interval, err)
	}

	return model.ChannelResponse{
		Channel:  model.ChannelPush,
		Provider: p.Name(),
		Status:   statusSent,
		Message:  alert.Message,
	}, nil
}

// ProcessAck records the mobile app's delivery receipt.
func (p *Push) ProcessAck(_ context.Context, evt model.InboundEvent) error {
	zlog.Logger.Info().Str("event_id", evt.ID).Msg("push delivery acknowledged")
	return nil
}

// SetupChannel registers the recipient's device token with the gateway on
// profile creation.
func (p *Push) SetupChannel(ctx context.Context, cfg model.NotificationConfig) error {
	for _, ch := range cfg.Channels {
		if ch.Type != model.ChannelPush || ch.Destination == "" {
			continue
		}
		if err := p.client.Send(ctx, ch.Destination, "", ""); err != nil {
			return fmt.Errorf("verify device token: %w", err)
		}
	}
	return nil
}
