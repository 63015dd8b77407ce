package template

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/alert-dispatcher/internal/model"
	"github.com/openfleet/alert-dispatcher/internal/repository/templatestore"
)

type stubStore struct {
	templates map[string]templatestore.Template // keyed by id|locale
	err       error
}

func (s *stubStore) Get(_ context.Context, id, locale string) (templatestore.Template, error) {
	if s.err != nil {
		return templatestore.Template{}, s.err
	}
	t, ok := s.templates[id+"|"+locale]
	if !ok {
		return templatestore.Template{}, templatestore.ErrTemplateNotFound
	}
	return t, nil
}

func request(locale string) *model.AlertRequest {
	return &model.AlertRequest{
		RequestID:      uuid.New(),
		NotificationID: "LOW_BATTERY",
		Profile: model.RecipientProfile{
			UserID:    "user-1",
			VehicleID: "veh-1",
			Locale:    locale,
		},
	}
}

func TestResolve_UsesRecipientLocale(t *testing.T) {
	store := &stubStore{templates: map[string]templatestore.Template{
		"LOW_BATTERY|de": {Subject: "Batterie schwach", Body: "Fahrzeug {vehicle_id}: Batterie schwach"},
		"LOW_BATTERY|en": {Subject: "Low battery", Body: "Vehicle {vehicle_id}: battery low"},
	}}
	r := NewResolver(store)

	req := request("de")
	require.NoError(t, r.Resolve(context.Background(), req))

	assert.Equal(t, "Batterie schwach", req.Subject)
	assert.Equal(t, "Fahrzeug veh-1: Batterie schwach", req.Message)
}

func TestResolve_FallsBackToDefaultLocale(t *testing.T) {
	store := &stubStore{templates: map[string]templatestore.Template{
		"LOW_BATTERY|en": {Subject: "Low battery", Body: "Vehicle {vehicle_id}: battery low"},
	}}
	r := NewResolver(store)

	req := request("fr")
	require.NoError(t, r.Resolve(context.Background(), req))

	assert.Equal(t, "Vehicle veh-1: battery low", req.Message)
}

func TestResolve_MissingTemplateKeepsNotificationID(t *testing.T) {
	r := NewResolver(&stubStore{templates: map[string]templatestore.Template{}})

	req := request("en")
	require.NoError(t, r.Resolve(context.Background(), req))

	assert.Equal(t, "LOW_BATTERY", req.Message)
}

func TestResolve_InlineMessageWins(t *testing.T) {
	r := NewResolver(&stubStore{err: errors.New("must not be called")})

	req := request("en")
	req.Message = "already resolved"
	require.NoError(t, r.Resolve(context.Background(), req))

	assert.Equal(t, "already resolved", req.Message)
}

func TestResolve_StoreFailurePropagates(t *testing.T) {
	r := NewResolver(&stubStore{err: errors.New("connection reset")})

	err := r.Resolve(context.Background(), request("en"))
	require.Error(t, err)
}
