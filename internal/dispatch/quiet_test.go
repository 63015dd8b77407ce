package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/alert-dispatcher/internal/model"
	"github.com/openfleet/alert-dispatcher/internal/repository/configstore"

	mocks "github.com/openfleet/alert-dispatcher/internal/mocks/dispatch"
)

func quietFixture(t *testing.T) (*mocks.MockconfigSource, *mocks.Mocksuppressor, *QuietSource) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	configs := mocks.NewMockconfigSource(ctrl)
	eval := mocks.NewMocksuppressor(ctrl)
	return configs, eval, NewQuietSource(configs, eval)
}

func quietKey() model.BufferKey {
	return model.BufferKey{
		UserID:    "user-1",
		VehicleID: "veh-1",
		Channel:   model.ChannelSMS,
		Group:     model.GroupGeneral,
		ContactID: "user-1",
	}
}

func TestRemainingQuietTime_EvaluatesInRecipientTimezone(t *testing.T) {
	configs, eval, q := quietFixture(t)
	ctx := context.Background()
	now := time.Now()
	key := quietKey()

	supp := model.SuppressionConfig{}
	cfg := model.NotificationConfig{
		UserID: "user-1", VehicleID: "veh-1", ContactID: "user-1",
		Group: model.GroupGeneral, Enabled: true,
		Channels: []model.Channel{{
			Type: model.ChannelSMS, Enabled: true,
			Suppressions: []model.SuppressionConfig{supp},
		}},
	}

	configs.EXPECT().FindConfigs(ctx, "user-1", "veh-1", "user-1", model.GroupGeneral).
		Return([]model.NotificationConfig{cfg}, nil)
	eval.EXPECT().Match(gomock.Any(), "America/Chicago", now).Return(&supp)
	eval.EXPECT().QuietDuration(supp, "America/Chicago", now).Return(30*time.Minute, nil)

	remaining, active, err := q.RemainingQuietTime(ctx, key, "America/Chicago", now)
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, 30*time.Minute, remaining)
}

func TestRemainingQuietTime_DeletedConfigEndsQuietTime(t *testing.T) {
	configs, _, q := quietFixture(t)
	ctx := context.Background()

	configs.EXPECT().FindConfigs(ctx, "user-1", "veh-1", "user-1", model.GroupGeneral).
		Return(nil, configstore.ErrConfigNotFound)

	_, active, err := q.RemainingQuietTime(ctx, quietKey(), "America/Chicago", time.Now())
	require.NoError(t, err)
	assert.False(t, active)
}
