package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

type stubNotifier struct{ name string }

func (s *stubNotifier) Name() string { return s.name }
func (s *stubNotifier) Publish(context.Context, *model.AlertRequest, model.Channel) (model.ChannelResponse, error) {
	return model.ChannelResponse{Provider: s.name}, nil
}
func (s *stubNotifier) ProcessAck(context.Context, model.InboundEvent) error       { return nil }
func (s *stubNotifier) SetupChannel(context.Context, model.NotificationConfig) error { return nil }

type stubOverrides struct {
	provider string
	found    bool
	err      error
}

func (s *stubOverrides) ProviderOverride(context.Context, model.ChannelType, string, string) (string, bool, error) {
	return s.provider, s.found, s.err
}

func populated(o *stubOverrides) *Registry {
	r := New(o)
	for _, ct := range model.ChannelTypes {
		r.Register(ct, &stubNotifier{name: "default-" + string(ct)})
	}
	return r
}

func TestResolve_Default(t *testing.T) {
	r := populated(&stubOverrides{})

	n, err := r.Resolve(model.ChannelEmail)
	require.NoError(t, err)
	assert.Equal(t, "default-EMAIL", n.Name())
}

func TestResolve_UnsupportedChannel(t *testing.T) {
	r := New(&stubOverrides{})

	_, err := r.Resolve(model.ChannelSMS)
	assert.Error(t, err)
}

func TestResolveFor_OverrideHit(t *testing.T) {
	r := populated(&stubOverrides{provider: "sendgrid", found: true})
	r.Register(model.ChannelEmail, &stubNotifier{name: "sendgrid"})

	n, err := r.ResolveFor(context.Background(), model.ChannelEmail, "notif-1", "eu")
	require.NoError(t, err)
	assert.Equal(t, "sendgrid", n.Name())
}

func TestResolveFor_MissingIDSkipsOverride(t *testing.T) {
	r := populated(&stubOverrides{provider: "sendgrid", found: true})
	r.Register(model.ChannelEmail, &stubNotifier{name: "sendgrid"})

	n, err := r.ResolveFor(context.Background(), model.ChannelEmail, "", "eu")
	require.NoError(t, err)
	assert.Equal(t, "default-EMAIL", n.Name())
}

func TestResolveFor_UnregisteredOverrideFallsBack(t *testing.T) {
	r := populated(&stubOverrides{provider: "ghost", found: true})

	n, err := r.ResolveFor(context.Background(), model.ChannelEmail, "notif-1", "eu")
	require.NoError(t, err)
	assert.Equal(t, "default-EMAIL", n.Name())
}

func TestResolveFor_LookupErrorFallsBack(t *testing.T) {
	r := populated(&stubOverrides{err: errors.New("cache down")})

	n, err := r.ResolveFor(context.Background(), model.ChannelEmail, "notif-1", "eu")
	require.NoError(t, err)
	assert.Equal(t, "default-EMAIL", n.Name())
}

func TestValidate(t *testing.T) {
	assert.Error(t, New(&stubOverrides{}).Validate())
	assert.NoError(t, populated(&stubOverrides{}).Validate())
}

func TestSetDefault(t *testing.T) {
	r := populated(&stubOverrides{})
	r.Register(model.ChannelEmail, &stubNotifier{name: "sendgrid"})

	require.NoError(t, r.SetDefault(model.ChannelEmail, "sendgrid"))
	n, err := r.Resolve(model.ChannelEmail)
	require.NoError(t, err)
	assert.Equal(t, "sendgrid", n.Name())

	assert.Error(t, r.SetDefault(model.ChannelSMS, "ghost"))
}

func TestListAll(t *testing.T) {
	r := populated(&stubOverrides{})
	r.Register(model.ChannelEmail, &stubNotifier{name: "sendgrid"})

	assert.Len(t, r.ListAll(model.ChannelEmail), 2)
	assert.Len(t, r.ListAll(model.ChannelSMS), 1)
}
