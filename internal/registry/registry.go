// Package registry resolves a channel type, optionally refined by a
// notification id and region, to a concrete provider notifier.
package registry

import (
	"context"

	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/model"
)

// Notifier is one provider implementation of a channel's delivery logic.
type Notifier interface {
	Name() string
	Publish(ctx context.Context, alert *model.AlertRequest, channel model.Channel) (model.ChannelResponse, error)
	ProcessAck(ctx context.Context, evt model.InboundEvent) error
	SetupChannel(ctx context.Context, cfg model.NotificationConfig) error
}

// overrideSource looks up a provider-override assignment for a
// (channel, notification id, region) triple.
type overrideSource interface {
	ProviderOverride(ctx context.Context, ct model.ChannelType, notificationID, region string) (string, bool, error)
}

// Registry holds the per-channel provider tables. It is populated once at
// startup and read-only afterwards.
type Registry struct {
	notifiers map[model.ChannelType]map[string]Notifier
	defaults  map[model.ChannelType]string
	overrides overrideSource
}

// New returns an empty registry backed by the given override source.
func New(overrides overrideSource) *Registry {
	return &Registry{
		notifiers: make(map[model.ChannelType]map[string]Notifier),
		defaults:  make(map[model.ChannelType]string),
		overrides: overrides,
	}
}

// Register adds a notifier under its provider name. The first notifier
// registered for a channel type becomes its default.
func (r *Registry) Register(ct model.ChannelType, n Notifier) {
	if r.notifiers[ct] == nil {
		r.notifiers[ct] = make(map[string]Notifier)
		r.defaults[ct] = n.Name()
	}
	r.notifiers[ct][n.Name()] = n
}

// SetDefault overrides the default provider for a channel type.
func (r *Registry) SetDefault(ct model.ChannelType, provider string) error {
	if _, ok := r.notifiers[ct][provider]; !ok {
		return errs.Configf("no %s notifier named %q registered", ct, provider)
	}
	r.defaults[ct] = provider
	return nil
}

// Validate checks that every declared channel type has at least one
// registered notifier and a resolvable default. Call it once after startup
// registration; a failure here is fatal.
func (r *Registry) Validate() error {
	for _, ct := range model.ChannelTypes {
		providers := r.notifiers[ct]
		if len(providers) == 0 {
			return errs.Configf("no notifier registered for channel %s", ct)
		}
		if _, ok := providers[r.defaults[ct]]; !ok {
			return errs.Configf("default provider %q for channel %s not registered", r.defaults[ct], ct)
		}
	}
	return nil
}

// Resolve returns the default provider's notifier for the channel type.
func (r *Registry) Resolve(ct model.ChannelType) (Notifier, error) {
	n, ok := r.notifiers[ct][r.defaults[ct]]
	if !ok {
		return nil, errs.Configf("unsupported channel type %s", ct)
	}
	return n, nil
}

// ResolveFor returns the notifier assigned to (channel, notification id,
// region) when such an override exists and is registered, falling back to
// the default provider otherwise. An empty notification id or region skips
// the override lookup.
func (r *Registry) ResolveFor(ctx context.Context, ct model.ChannelType, notificationID, region string) (Notifier, error) {
	if notificationID == "" || region == "" {
		return r.Resolve(ct)
	}

	provider, ok, err := r.overrides.ProviderOverride(ctx, ct, notificationID, region)
	if err != nil {
		zlog.Logger.Warn().Err(err).
			Str("channel", string(ct)).
			Str("notification_id", notificationID).
			Msg("provider override lookup failed, using default")
		return r.Resolve(ct)
	}
	if ok {
		if n, registered := r.notifiers[ct][provider]; registered {
			return n, nil
		}
		zlog.Logger.Warn().
			Str("channel", string(ct)).
			Str("provider", provider).
			Msg("override names an unregistered provider, using default")
	}

	return r.Resolve(ct)
}

// ListAll returns every registered notifier for a channel type, used for
// one-time channel provisioning on profile creation.
func (r *Registry) ListAll(ct model.ChannelType) []Notifier {
	out := make([]Notifier, 0, len(r.notifiers[ct]))
	for _, n := range r.notifiers[ct] {
		out = append(out, n)
	}
	return out
}
