package bufferstore

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

func sampleBuffer() *model.NotificationBuffer {
	now := time.Now()
	return &model.NotificationBuffer{
		ID: uuid.New(),
		Key: model.BufferKey{
			UserID: "user-1", VehicleID: "veh-1",
			Channel: model.ChannelSMS, Group: "GENERAL", ContactID: "user-1",
		},
		Alerts: []model.BufferedAlert{{
			RequestID: uuid.New(),
			Channel:   model.ChannelSMS,
			Message:   "low tire pressure",
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreate(t *testing.T) {
	repo, mock := setupMockDB(t)
	buf := sampleBuffer()

	alerts, err := json.Marshal(buf.Alerts)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO notification_buffers (
		    id, user_id, vehicle_id, channel, "group", contact_id, alerts, correlation_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9);
    `)).
		WithArgs(buf.ID, "user-1", "veh-1", model.ChannelSMS, "GENERAL", "user-1", alerts, "", buf.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.Create(context.Background(), buf))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByKey(t *testing.T) {
	repo, mock := setupMockDB(t)
	buf := sampleBuffer()

	alerts, err := json.Marshal(buf.Alerts)
	require.NoError(t, err)

	cols := []string{"id", "user_id", "vehicle_id", "channel", "group", "contact_id", "alerts", "correlation_id", "created_at", "updated_at"}

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, user_id, vehicle_id, channel, "group", contact_id, alerts, correlation_id, created_at, updated_at
		FROM notification_buffers
		WHERE user_id = $1 AND vehicle_id = $2 AND channel = $3 AND "group" = $4 AND contact_id = $5;
    `)).
		WithArgs("user-1", "veh-1", model.ChannelSMS, "GENERAL", "user-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(buf.ID, "user-1", "veh-1", "SMS", "GENERAL", "user-1", alerts, "corr-1", buf.CreatedAt, buf.UpdatedAt))

	got, err := repo.GetByKey(context.Background(), buf.Key)
	require.NoError(t, err)
	assert.Equal(t, buf.ID, got.ID)
	assert.Equal(t, "corr-1", got.CorrelationID)
	require.Len(t, got.Alerts, 1)
	assert.Equal(t, "low tire pressure", got.Alerts[0].Message)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WillReturnRows(sqlmock.NewRows(cols))

	_, err = repo.GetByKey(context.Background(), buf.Key)
	assert.ErrorIs(t, err, ErrBufferNotFound)
}

func TestAppendAlert(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notification_buffers
		SET alerts = alerts || $2::jsonb, updated_at = $3
		WHERE id = $1;
    `)).
		WithArgs(id, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.AppendAlert(context.Background(), id, model.BufferedAlert{Message: "second"}))
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notification_buffers`)).
		WithArgs(id, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AppendAlert(context.Background(), id, model.BufferedAlert{})
	assert.ErrorIs(t, err, ErrBufferNotFound)
}

func TestSetCorrelationID(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notification_buffers
		SET correlation_id = $2, updated_at = $3
		WHERE id = $1;
    `)).
		WithArgs(id, "corr-9", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetCorrelationID(context.Background(), id, "corr-9"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM notification_buffers
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notification_buffers`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrBufferNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
