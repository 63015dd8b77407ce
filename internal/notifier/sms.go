package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/model"
	"github.com/openfleet/alert-dispatcher/pkg/sms"
)

type smsClient interface {
	Send(to, msg string) (string, error)
}

// SMS delivers text alerts through the Twilio gateway.
type SMS struct {
	client smsClient
	policy RetryPolicy
}

func NewSMS(client smsClient, policy RetryPolicy) *SMS {
	return &SMS{client: client, policy: policy}
}

func (s *SMS) Name() string { return "twilio" }

func (s *SMS) Publish(_ context.Context, alert *model.AlertRequest, ch model.Channel) (model.ChannelResponse, error) {
	to := ch.Destination
	if to == "" {
		to = alert.Profile.Phone
	}
	if to == "" {
		return model.ChannelResponse{}, fmt.Errorf("no phone destination for request %s", alert.RequestID)
	}

	sid, err := s.client.Send(to, alert.Message)
	if err != nil {
		// A malformed number never becomes deliverable; only gateway
		// failures are worth retrying.
		if errors.Is(err, sms.ErrInvalidNumber) {
			return model.ChannelResponse{}, err
		}
		return model.ChannelResponse{}, errs.Retryable("SMS_GATEWAY", s.policy.MaxAttempts, s.policy.Interval, err)
	}

	return model.ChannelResponse{
		Channel:  model.ChannelSMS,
		Provider: s.Name(),
		Status:   statusSent,
		Message:  sid,
	}, nil
}

func (s *SMS) ProcessAck(_ context.Context, evt model.InboundEvent) error {
	zlog.Logger.Info().Str("event_id", evt.ID).Msg("sms delivery acknowledged")
	return nil
}

func (s *SMS) SetupChannel(context.Context, model.NotificationConfig) error { return nil }
