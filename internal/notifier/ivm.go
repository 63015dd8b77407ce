package notifier

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/model"
)

type ivmClient interface {
	Send(ctx context.Context, vehicleID, subject, msg string) error
}

// IVM delivers alerts to the vehicle's head unit through the in-vehicle
// message gateway.
type IVM struct {
	client ivmClient
	policy RetryPolicy
}

func NewIVM(client ivmClient, policy RetryPolicy) *IVM {
	return &IVM{client: client, policy: policy}
}

func (i *IVM) Name() string { return "vehiclegw" }

func (i *IVM) Publish(ctx context.Context, alert *model.AlertRequest, ch model.Channel) (model.ChannelResponse, error) {
	vehicleID := ch.Destination
	if vehicleID == "" {
		vehicleID = alert.Profile.VehicleID
	}
	if vehicleID == "" {
		return model.ChannelResponse{}, fmt.Errorf("no vehicle id for request %s", alert.RequestID)
	}

	if err := i.client.Send(ctx, vehicleID, alert.Subject, alert.Message); err != nil {
		return model.ChannelResponse{}, errs.Retryable("IVM_GATEWAY", i.policy.MaxAttempts, i.policy.Interval, err)
	}

	return model.ChannelResponse{
		Channel:  model.ChannelIVM,
		Provider: i.Name(),
		Status:   statusSent,
		Message:  alert.Message,
	}, nil
}

func (i *IVM) ProcessAck(_ context.Context, evt model.InboundEvent) error {
	zlog.Logger.Info().Str("event_id", evt.ID).Msg("in-vehicle message acknowledged")
	return nil
}

func (i *IVM) SetupChannel(context.Context, model.NotificationConfig) error { return nil }
