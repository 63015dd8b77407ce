package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/openfleet/alert-dispatcher/internal/mocks/schedule"
	"github.com/openfleet/alert-dispatcher/internal/model"
	"github.com/openfleet/alert-dispatcher/internal/repository/bufferstore"
)

type fixture struct {
	buffers    *mocks.MockbufferRepository
	timers     *mocks.MocktimerService
	history    *mocks.MockhistoryTracker
	quiet      *mocks.MockquietTimeSource
	dispatcher *mocks.MockbufferedDispatcher
	coord      *Coordinator
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		buffers:    mocks.NewMockbufferRepository(ctrl),
		timers:     mocks.NewMocktimerService(ctrl),
		history:    mocks.NewMockhistoryTracker(ctrl),
		quiet:      mocks.NewMockquietTimeSource(ctrl),
		dispatcher: mocks.NewMockbufferedDispatcher(ctrl),
	}
	f.coord = NewCoordinator(f.buffers, f.timers, f.history, f.quiet, "scheduler-callbacks")
	f.coord.SetDispatcher(f.dispatcher)
	return f
}

func sampleRequest() (*model.AlertRequest, model.Channel, model.NotificationConfig) {
	req := &model.AlertRequest{
		RequestID:      uuid.New(),
		NotificationID: "notif-1",
		Profile:        model.RecipientProfile{UserID: "user-1", VehicleID: "veh-1"},
	}
	ch := model.Channel{Type: model.ChannelSMS, Enabled: true, Destination: "+15551234567"}
	cfg := model.NotificationConfig{
		UserID: "user-1", VehicleID: "veh-1", ContactID: "user-1", Group: model.GroupGeneral,
	}
	return req, ch, cfg
}

func TestSnooze_FirstCreatesBufferAndTimer(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	req, ch, cfg := sampleRequest()

	f.buffers.EXPECT().GetByKey(ctx, gomock.Any()).Return(nil, bufferstore.ErrBufferNotFound)
	f.buffers.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, buf *model.NotificationBuffer) error {
			assert.Len(t, buf.Alerts, 1)
			assert.Equal(t, req.RequestID, buf.Alerts[0].RequestID)
			assert.Empty(t, buf.CorrelationID)
			return nil
		},
	)
	f.timers.EXPECT().CreateTimer(gomock.Any(), model.TimerContextSnooze, gomock.Any(), 7*time.Hour, "scheduler-callbacks").Return(nil)
	f.history.EXPECT().Append(ctx, req.RequestID, model.StatusScheduleRequest, "").Return(nil)

	require.NoError(t, f.coord.Snooze(ctx, req, ch, cfg, 7*time.Hour))
}

func TestSnooze_SecondAppendsWithoutNewTimer(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	req, ch, cfg := sampleRequest()

	existing := &model.NotificationBuffer{ID: uuid.New(), CorrelationID: "corr-1"}
	f.buffers.EXPECT().GetByKey(ctx, gomock.Any()).Return(existing, nil)
	f.buffers.EXPECT().AppendAlert(ctx, existing.ID, gomock.Any()).Return(nil)
	f.history.EXPECT().Append(ctx, req.RequestID, model.StatusScheduleRequest, "").Return(nil)
	f.history.EXPECT().Append(ctx, req.RequestID, model.StatusScheduled, "corr-1").Return(nil)

	require.NoError(t, f.coord.Snooze(ctx, req, ch, cfg, time.Hour))
}

func TestSnooze_AppendBeforeAckSkipsScheduledStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	req, ch, cfg := sampleRequest()

	// Buffer exists but its timer creation has not been acknowledged yet.
	existing := &model.NotificationBuffer{ID: uuid.New()}
	f.buffers.EXPECT().GetByKey(ctx, gomock.Any()).Return(existing, nil)
	f.buffers.EXPECT().AppendAlert(ctx, existing.ID, gomock.Any()).Return(nil)
	f.history.EXPECT().Append(ctx, req.RequestID, model.StatusScheduleRequest, "").Return(nil)

	require.NoError(t, f.coord.Snooze(ctx, req, ch, cfg, time.Hour))
}

func TestSnooze_TransientStoreErrorDoesNotForkBuffer(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	req, ch, cfg := sampleRequest()

	// A connection blip is not "no buffer": creating here would leave the
	// tuple with two buffers and two timers.
	f.buffers.EXPECT().GetByKey(ctx, gomock.Any()).Return(nil, errors.New("pq: connection reset"))

	err := f.coord.Snooze(ctx, req, ch, cfg, time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load buffer")
}

func TestHandleAck_AttachesCorrelationAndMarksScheduled(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	bufID := uuid.New()
	first, second := uuid.New(), uuid.New()
	buf := &model.NotificationBuffer{
		ID:     bufID,
		Alerts: []model.BufferedAlert{{RequestID: first}, {RequestID: second}},
	}

	f.buffers.EXPECT().SetCorrelationID(ctx, bufID, "corr-7").Return(nil)
	f.buffers.EXPECT().GetByID(ctx, bufID).Return(buf, nil)
	f.history.EXPECT().Append(ctx, first, model.StatusScheduled, "corr-7").Return(nil)
	f.history.EXPECT().Append(ctx, second, model.StatusScheduled, "corr-7").Return(nil)

	require.NoError(t, f.coord.HandleAck(ctx, model.ScheduleAck{
		Operation: model.ScheduleOpCreate, RequestKey: bufID.String(),
		CorrelationID: "corr-7", Valid: true, Context: model.TimerContextSnooze,
	}))
}

func TestHandleAck_InvalidAckIsLoggedNotFatal(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.coord.HandleAck(context.Background(), model.ScheduleAck{
		Operation: model.ScheduleOpCreate, RequestKey: uuid.NewString(),
		Valid: false, ErrorCode: "LIMIT_EXCEEDED",
	}))
}

func TestHandleTimerFired_StillQuietReplacesTimer(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	bufID := uuid.New()
	buf := &model.NotificationBuffer{ID: bufID, CorrelationID: "corr-1"}
	payload, _ := json.Marshal(bufID)

	f.buffers.EXPECT().GetByID(ctx, bufID).Return(buf, nil)
	f.quiet.EXPECT().RemainingQuietTime(ctx, buf.Key, "", gomock.Any()).Return(30*time.Minute, true, nil)
	f.timers.EXPECT().ReplaceTimer(bufID.String(), model.TimerContextSnooze, gomock.Any(), 30*time.Minute, "scheduler-callbacks", "corr-1").Return(nil)

	require.NoError(t, f.coord.HandleTimerFired(ctx, model.TimerFired{
		CorrelationID: "corr-1", Payload: payload, Context: model.TimerContextSnooze,
	}))
}

func TestHandleTimerFired_QuietOverFlushesExactlyOnce(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	bufID := uuid.New()
	alerts := []model.BufferedAlert{
		{RequestID: uuid.New(), Channel: model.ChannelSMS},
		{RequestID: uuid.New(), Channel: model.ChannelSMS},
		{RequestID: uuid.New(), Channel: model.ChannelSMS},
	}
	buf := &model.NotificationBuffer{ID: bufID, Alerts: alerts, CorrelationID: "corr-1"}
	payload, _ := json.Marshal(bufID)

	f.buffers.EXPECT().GetByID(ctx, bufID).Return(buf, nil)
	f.quiet.EXPECT().RemainingQuietTime(ctx, buf.Key, gomock.Any(), gomock.Any()).Return(time.Duration(0), false, nil)
	for _, a := range alerts {
		f.dispatcher.EXPECT().DispatchBuffered(ctx, a).Return(nil)
	}
	f.buffers.EXPECT().Delete(ctx, bufID).Return(nil).Times(1)
	f.timers.EXPECT().DeleteTimer("corr-1").Return(nil).Times(1)

	require.NoError(t, f.coord.HandleTimerFired(ctx, model.TimerFired{Payload: payload}))
}

func TestHandleTimerFired_MissingBufferIsNoop(t *testing.T) {
	f := setup(t)
	bufID := uuid.New()
	payload, _ := json.Marshal(bufID)

	f.buffers.EXPECT().GetByID(gomock.Any(), bufID).Return(nil, bufferstore.ErrBufferNotFound)

	require.NoError(t, f.coord.HandleTimerFired(context.Background(), model.TimerFired{Payload: payload}))
}

func TestHandleTimerFired_TransientStoreErrorPropagates(t *testing.T) {
	f := setup(t)
	bufID := uuid.New()
	payload, _ := json.Marshal(bufID)

	// Treating this as "already flushed" would strand the buffered alerts
	// with no timer left to fire for them.
	f.buffers.EXPECT().GetByID(gomock.Any(), bufID).Return(nil, errors.New("pq: connection reset"))

	err := f.coord.HandleTimerFired(context.Background(), model.TimerFired{Payload: payload})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load buffer")
}

func TestHandleTimerFired_UsesRecipientTimezone(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	bufID := uuid.New()
	buf := &model.NotificationBuffer{
		ID:            bufID,
		CorrelationID: "corr-5",
		Alerts: []model.BufferedAlert{{
			RequestID: uuid.New(),
			Channel:   model.ChannelSMS,
			Profile:   model.RecipientProfile{UserID: "user-1", Timezone: "America/Chicago"},
		}},
	}
	payload, _ := json.Marshal(bufID)

	f.buffers.EXPECT().GetByID(ctx, bufID).Return(buf, nil)
	f.quiet.EXPECT().RemainingQuietTime(ctx, buf.Key, "America/Chicago", gomock.Any()).Return(45*time.Minute, true, nil)
	f.timers.EXPECT().ReplaceTimer(bufID.String(), model.TimerContextSnooze, gomock.Any(), 45*time.Minute, "scheduler-callbacks", "corr-5").Return(nil)

	require.NoError(t, f.coord.HandleTimerFired(ctx, model.TimerFired{Payload: payload}))
}

func TestHandleReconfigured_FlushesInactiveBuffers(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	buf := model.NotificationBuffer{
		ID:            uuid.New(),
		Key:           model.BufferKey{UserID: "user-1", VehicleID: "veh-1", Channel: model.ChannelEmail},
		Alerts:        []model.BufferedAlert{{RequestID: uuid.New()}},
		CorrelationID: "corr-2",
	}

	f.buffers.EXPECT().ListByRecipient(ctx, "user-1", "veh-1").Return([]model.NotificationBuffer{buf}, nil)
	f.quiet.EXPECT().RemainingQuietTime(ctx, buf.Key, gomock.Any(), gomock.Any()).Return(time.Duration(0), false, nil)
	f.dispatcher.EXPECT().DispatchBuffered(ctx, buf.Alerts[0]).Return(nil)
	f.buffers.EXPECT().Delete(ctx, buf.ID).Return(nil)
	f.timers.EXPECT().DeleteTimer("corr-2").Return(nil)

	require.NoError(t, f.coord.HandleReconfigured(ctx, "user-1", "veh-1"))
}

func TestCancelRequest_LastEntryDeletesBufferAndTimer(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	reqID := uuid.New()
	buf := &model.NotificationBuffer{
		ID:            uuid.New(),
		Alerts:        []model.BufferedAlert{{RequestID: reqID}},
		CorrelationID: "corr-3",
	}

	f.buffers.EXPECT().GetByCorrelationID(ctx, "corr-3").Return(buf, nil)
	f.buffers.EXPECT().Delete(ctx, buf.ID).Return(nil)
	f.timers.EXPECT().DeleteTimer("corr-3").Return(nil)

	require.NoError(t, f.coord.CancelRequest(ctx, reqID, "corr-3"))
}

func TestCancelRequest_KeepsRemainingEntries(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	reqID, otherID := uuid.New(), uuid.New()
	buf := &model.NotificationBuffer{
		ID:            uuid.New(),
		Alerts:        []model.BufferedAlert{{RequestID: reqID}, {RequestID: otherID}},
		CorrelationID: "corr-4",
	}

	f.buffers.EXPECT().GetByCorrelationID(ctx, "corr-4").Return(buf, nil)
	f.buffers.EXPECT().ReplaceAlerts(ctx, buf.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, kept []model.BufferedAlert) error {
			require.Len(t, kept, 1)
			assert.Equal(t, otherID, kept[0].RequestID)
			return nil
		},
	)

	require.NoError(t, f.coord.CancelRequest(ctx, reqID, "corr-4"))
}
