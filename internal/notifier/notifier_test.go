package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/model"
	"github.com/openfleet/alert-dispatcher/pkg/sms"
)

var testPolicy = RetryPolicy{MaxAttempts: 3, Interval: 5 * time.Minute}

func testAlert() *model.AlertRequest {
	return &model.AlertRequest{
		RequestID: uuid.New(),
		Group:     model.GroupGeneral,
		Subject:   "Low battery",
		Message:   "Vehicle battery below 20%",
		Profile: model.RecipientProfile{
			UserID:    "user-1",
			VehicleID: "veh-1",
			Email:     "driver@example.com",
			Phone:     "+14155552671",
		},
	}
}

type fakeEmail struct {
	to, subject, msg string
	err              error
}

func (f *fakeEmail) Send(to, subject, msg string) error {
	f.to, f.subject, f.msg = to, subject, msg
	return f.err
}

func TestEmail_FallsBackToProfileAddress(t *testing.T) {
	client := &fakeEmail{}
	n := NewEmail(client, testPolicy)

	resp, err := n.Publish(context.Background(), testAlert(), model.Channel{Type: model.ChannelEmail, Enabled: true})
	require.NoError(t, err)

	assert.Equal(t, "driver@example.com", client.to)
	assert.Equal(t, "Low battery", client.subject)
	assert.Equal(t, model.ChannelEmail, resp.Channel)
	assert.Equal(t, "smtp", resp.Provider)
	assert.Equal(t, "SENT", resp.Status)
}

func TestEmail_PrefersChannelDestination(t *testing.T) {
	client := &fakeEmail{}
	n := NewEmail(client, testPolicy)

	_, err := n.Publish(context.Background(), testAlert(), model.Channel{
		Type:        model.ChannelEmail,
		Enabled:     true,
		Destination: "fleet-ops@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "fleet-ops@example.com", client.to)
}

func TestEmail_SMTPFailureIsRetryable(t *testing.T) {
	client := &fakeEmail{err: errors.New("connection refused")}
	n := NewEmail(client, testPolicy)

	_, err := n.Publish(context.Background(), testAlert(), model.Channel{Type: model.ChannelEmail, Enabled: true})
	require.Error(t, err)

	re, ok := errs.AsRetryable(err)
	require.True(t, ok)
	assert.Equal(t, "EMAIL_SMTP", re.Kind)
	assert.Equal(t, 3, re.MaxAttempts)
	assert.Equal(t, 5*time.Minute, re.Interval)
}

func TestEmail_NoDestinationFails(t *testing.T) {
	n := NewEmail(&fakeEmail{}, testPolicy)
	alert := testAlert()
	alert.Profile.Email = ""

	_, err := n.Publish(context.Background(), alert, model.Channel{Type: model.ChannelEmail, Enabled: true})
	require.Error(t, err)
	_, ok := errs.AsRetryable(err)
	assert.False(t, ok)
}

type fakeSMS struct {
	to, msg string
	sid     string
	err     error
}

func (f *fakeSMS) Send(to, msg string) (string, error) {
	f.to, f.msg = to, msg
	return f.sid, f.err
}

func TestSMS_ReturnsGatewaySID(t *testing.T) {
	client := &fakeSMS{sid: "SM123"}
	n := NewSMS(client, testPolicy)

	resp, err := n.Publish(context.Background(), testAlert(), model.Channel{Type: model.ChannelSMS, Enabled: true})
	require.NoError(t, err)

	assert.Equal(t, "+14155552671", client.to)
	assert.Equal(t, "twilio", resp.Provider)
	assert.Equal(t, "SM123", resp.Message)
}

func TestSMS_InvalidNumberIsNotRetryable(t *testing.T) {
	client := &fakeSMS{err: sms.ErrInvalidNumber}
	n := NewSMS(client, testPolicy)

	_, err := n.Publish(context.Background(), testAlert(), model.Channel{Type: model.ChannelSMS, Enabled: true})
	require.Error(t, err)

	_, ok := errs.AsRetryable(err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, sms.ErrInvalidNumber)
}

func TestSMS_GatewayFailureIsRetryable(t *testing.T) {
	client := &fakeSMS{err: errors.New("gateway timeout")}
	n := NewSMS(client, testPolicy)

	_, err := n.Publish(context.Background(), testAlert(), model.Channel{Type: model.ChannelSMS, Enabled: true})
	require.Error(t, err)

	re, ok := errs.AsRetryable(err)
	require.True(t, ok)
	assert.Equal(t, "SMS_GATEWAY", re.Kind)
}

type fakeWebhook struct {
	url    string
	body   []byte
	status int
	err    error
}

func (f *fakeWebhook) Post(_ context.Context, url string, payload []byte) (int, error) {
	f.url, f.body = url, payload
	return f.status, f.err
}

func TestWebhook_ServerErrorIsRetryable(t *testing.T) {
	n := NewWebhook(&fakeWebhook{status: 503}, testPolicy)

	_, err := n.Publish(context.Background(), testAlert(), model.Channel{
		Type:        model.ChannelAPIPush,
		Enabled:     true,
		Destination: "https://cb.example.com/alerts",
	})
	require.Error(t, err)

	re, ok := errs.AsRetryable(err)
	require.True(t, ok)
	assert.Equal(t, "API_PUSH_ENDPOINT", re.Kind)
}

func TestWebhook_ClientErrorIsNot(t *testing.T) {
	n := NewWebhook(&fakeWebhook{status: 422}, testPolicy)

	_, err := n.Publish(context.Background(), testAlert(), model.Channel{
		Type:        model.ChannelAPIPush,
		Enabled:     true,
		Destination: "https://cb.example.com/alerts",
	})
	require.Error(t, err)
	_, ok := errs.AsRetryable(err)
	assert.False(t, ok)
}

func TestWebhook_PostsToChannelDestination(t *testing.T) {
	client := &fakeWebhook{status: 200}
	n := NewWebhook(client, testPolicy)

	alert := testAlert()
	resp, err := n.Publish(context.Background(), alert, model.Channel{
		Type:        model.ChannelAPIPush,
		Enabled:     true,
		Destination: "https://cb.example.com/alerts",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cb.example.com/alerts", client.url)
	assert.Contains(t, string(client.body), alert.RequestID.String())
	assert.Equal(t, "webhook", resp.Provider)
}

type fakeInbox struct {
	saved []model.PortalMessage
	err   error
}

func (f *fakeInbox) SaveMessage(_ context.Context, msg model.PortalMessage) error {
	f.saved = append(f.saved, msg)
	return f.err
}

func TestPortal_WritesInboxRow(t *testing.T) {
	store := &fakeInbox{}
	n := NewPortal(store, testPolicy)

	alert := testAlert()
	resp, err := n.Publish(context.Background(), alert, model.Channel{Type: model.ChannelPortal, Enabled: true})
	require.NoError(t, err)

	require.Len(t, store.saved, 1)
	assert.Equal(t, alert.RequestID, store.saved[0].RequestID)
	assert.Equal(t, "user-1", store.saved[0].UserID)
	assert.Equal(t, "inbox", resp.Provider)
}

func TestPortal_StoreFailureIsRetryable(t *testing.T) {
	n := NewPortal(&fakeInbox{err: errors.New("connection reset")}, testPolicy)

	_, err := n.Publish(context.Background(), testAlert(), model.Channel{Type: model.ChannelPortal, Enabled: true})
	require.Error(t, err)

	re, ok := errs.AsRetryable(err)
	require.True(t, ok)
	assert.Equal(t, "PORTAL_STORE", re.Kind)
}
