package historystore

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

var historyCols = []string{
	"request_id", "event_id", "notification_id", "user_id", "vehicle_id",
	"statuses", "responses", "skipped", "retry_records", "default_message", "created_at", "updated_at",
}

func TestCreate_InsertsRecord(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO alerts_history`)).
		WithArgs(id, "evt-1", "LOW_BATTERY", "user-1", "veh-1", sqlmock.AnyArg(), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &model.AlertsHistoryInfo{
		RequestID:      id,
		EventID:        "evt-1",
		NotificationID: "LOW_BATTERY",
		UserID:         "user-1",
		VehicleID:      "veh-1",
		Statuses:       []model.StatusEntry{{Status: model.StatusReady, Timestamp: now}},
		CreatedAt:      now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_DecodesJSONColumns(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()
	now := time.Now()

	statuses, _ := json.Marshal([]model.StatusEntry{
		{Status: model.StatusReady, Timestamp: now},
		{Status: model.StatusDone, Timestamp: now},
	})
	responses, _ := json.Marshal([]model.ChannelResponse{
		{Channel: model.ChannelEmail, Provider: "smtp", Status: "SENT"},
	})

	mock.ExpectQuery(regexp.QuoteMeta(`FROM alerts_history`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(historyCols).
			AddRow(id, "evt-1", "LOW_BATTERY", "user-1", "veh-1",
				statuses, responses, []byte("[]"), []byte("[]"), "", now, now))

	info, err := repo.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, info.RequestID)
	require.Len(t, info.Statuses, 2)
	assert.Equal(t, model.StatusDone, info.CurrentStatus())
	require.Len(t, info.Responses, 1)
	assert.Equal(t, "smtp", info.Responses[0].Provider)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM alerts_history`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(historyCols))

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrHistoryNotFound)
}

func TestAppendStatus_AppendsToJSONB(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`SET statuses = statuses || $2::jsonb`)).
		WithArgs(id, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendStatus(context.Background(), id, model.StatusEntry{
		Status:    model.StatusScheduled,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendStatus_MissingRecord(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`SET statuses = statuses || $2::jsonb`)).
		WithArgs(id, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AppendStatus(context.Background(), id, model.StatusEntry{Status: model.StatusDone})
	assert.ErrorIs(t, err, ErrHistoryNotFound)
}

func TestAppendResponse_AppendsToJSONB(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`SET responses = responses || $2::jsonb`)).
		WithArgs(id, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendResponse(context.Background(), id, model.ChannelResponse{
		Channel:  model.ChannelSMS,
		Provider: "twilio",
		Status:   "SENT",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDefaultMessage_UpdatesRow(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`SET default_message = $2`)).
		WithArgs(id, "battery low", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetDefaultMessage(context.Background(), id, "battery low")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
