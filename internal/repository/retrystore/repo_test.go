package retrystore

import (
	"context"
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

func TestSave_UpsertsAuditRecord(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO retry_audit`)).
		WithArgs(id, "SMS_GATEWAY", 2, 3, int64(120000), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), model.RetryRecord{
		RequestID:   id,
		Kind:        "SMS_GATEWAY",
		Attempt:     2,
		MaxAttempts: 3,
		Interval:    2 * time.Minute,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByRequest_DecodesInterval(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"request_id", "kind", "attempt", "max_attempts", "interval_ms", "updated_at"}).
		AddRow(id, "SMS_GATEWAY", 1, 3, int64(120000), now).
		AddRow(id, "EMAIL_SMTP", 2, 3, int64(300000), now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM retry_audit`)).
		WithArgs(id).
		WillReturnRows(rows)

	records, err := repo.ListByRequest(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2*time.Minute, records[0].Interval)
	assert.Equal(t, 5*time.Minute, records[1].Interval)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByRequest_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM retry_audit`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "kind", "attempt", "max_attempts", "interval_ms", "updated_at"}))

	_, err := repo.ListByRequest(context.Background(), id)
	assert.ErrorIs(t, err, ErrNoRetryRecords)
}
