package notifier

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/model"
)

type emailClient interface {
	Send(to, subject, msg string) error
}

// Email is the default EMAIL provider, delivering over SMTP.
type Email struct {
	client emailClient
	policy RetryPolicy
}

func NewEmail(client emailClient, policy RetryPolicy) *Email {
	return &Email{client: client, policy: policy}
}

func (e *Email) Name() string { return "smtp" }

func (e *Email) Publish(_ context.Context, alert *model.AlertRequest, ch model.Channel) (model.ChannelResponse, error) {
	to := ch.Destination
	if to == "" {
		to = alert.Profile.Email
	}
	if to == "" {
		return model.ChannelResponse{}, fmt.Errorf("no email destination for request %s", alert.RequestID)
	}

	if err := e.client.Send(to, alert.Subject, alert.Message); err != nil {
		return model.ChannelResponse{}, errs.Retryable("EMAIL_SMTP", e.policy.MaxAttempts, e.policy.Interval, err)
	}

	return model.ChannelResponse{
		Channel:  model.ChannelEmail,
		Provider: e.Name(),
		Status:   statusSent,
		Message:  alert.Message,
	}, nil
}

func (e *Email) ProcessAck(_ context.Context, evt model.InboundEvent) error {
	zlog.Logger.Info().Str("event_id", evt.ID).Msg("email delivery acknowledged")
	return nil
}

func (e *Email) SetupChannel(context.Context, model.NotificationConfig) error { return nil }
