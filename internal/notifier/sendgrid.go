package notifier

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/model"
)

type sendgridClient interface {
	Send(ctx context.Context, to, subject, msg string) error
}

// Sendgrid is the EMAIL override provider, selectable per notification
// id/region through the provider-override table.
type Sendgrid struct {
	client sendgridClient
	policy RetryPolicy
}

func NewSendgrid(client sendgridClient, policy RetryPolicy) *Sendgrid {
	return &Sendgrid{client: client, policy: policy}
}

func (s *Sendgrid) Name() string { return "sendgrid" }

func (s *Sendgrid) Publish(ctx context.Context, alert *model.AlertRequest, ch model.Channel) (model.ChannelResponse, error) {
	to := ch.Destination
	if to == "" {
		to = alert.Profile.Email
	}
	if to == "" {
		return model.ChannelResponse{}, fmt.Errorf("no email destination for request %s", alert.RequestID)
	}

	if err := s.client.Send(ctx, to, alert.Subject, alert.Message); err != nil {
		return model.ChannelResponse{}, errs.Retryable("EMAIL_SENDGRID", s.policy.MaxAttempts, s.policy.Interval, err)
	}

	return model.ChannelResponse{
		Channel:  model.ChannelEmail,
		Provider: s.Name(),
		Status:   statusSent,
		Message:  alert.Message,
	}, nil
}

func (s *Sendgrid) ProcessAck(_ context.Context, evt model.InboundEvent) error {
	zlog.Logger.Info().Str("event_id", evt.ID).Msg("sendgrid delivery acknowledged")
	return nil
}

func (s *Sendgrid) SetupChannel(context.Context, model.NotificationConfig) error { return nil }
