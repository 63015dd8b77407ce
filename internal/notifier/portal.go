package notifier

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/model"
)

type inboxStore interface {
	SaveMessage(ctx context.Context, msg model.PortalMessage) error
}

// Portal delivers alerts into the recipient's portal inbox. There is no
// external transport; the inbox row is the delivery.
type Portal struct {
	store  inboxStore
	policy RetryPolicy
	now    func() time.Time
}

func NewPortal(store inboxStore, policy RetryPolicy) *Portal {
	return &Portal{store: store, policy: policy, now: time.Now}
}

func (p *Portal) Name() string { return "inbox" }

func (p *Portal) Publish(ctx context.Context, alert *model.AlertRequest, _ model.Channel) (model.ChannelResponse, error) {
	msg := model.PortalMessage{
		RequestID: alert.RequestID,
		UserID:    alert.Profile.UserID,
		VehicleID: alert.Profile.VehicleID,
		Subject:   alert.Subject,
		Message:   alert.Message,
		CreatedAt: p.now(),
	}

	if err := p.store.SaveMessage(ctx, msg); err != nil {
		return model.ChannelResponse{}, errs.Retryable("PORTAL_STORE", p.policy.MaxAttempts, p.policy.Interval, err)
	}

	return model.ChannelResponse{
		Channel:  model.ChannelPortal,
		Provider: p.Name(),
		Status:   statusSent,
		Message:  alert.Message,
	}, nil
}

func (p *Portal) ProcessAck(_ context.Context, evt model.InboundEvent) error {
	zlog.Logger.Info().Str("event_id", evt.ID).Msg("portal message read")
	return nil
}

func (p *Portal) SetupChannel(context.Context, model.NotificationConfig) error { return nil }
