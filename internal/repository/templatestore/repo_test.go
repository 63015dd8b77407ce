package templatestore

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
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

func TestGet_ReturnsTemplate(t *testing.T) {
	repo, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"notification_id", "locale", "subject", "body"}).
		AddRow("LOW_BATTERY", "en", "Battery low", "Vehicle {vehicle_id} battery is low")

	mock.ExpectQuery(regexp.QuoteMeta(`FROM message_templates`)).
		WithArgs("LOW_BATTERY", "en").
		WillReturnRows(rows)

	tpl, err := repo.Get(context.Background(), "LOW_BATTERY", "en")
	require.NoError(t, err)

	assert.Equal(t, "Battery low", tpl.Subject)
	assert.Equal(t, "Vehicle {vehicle_id} battery is low", tpl.Body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM message_templates`)).
		WithArgs("LOW_BATTERY", "fr").
		WillReturnRows(sqlmock.NewRows([]string{"notification_id", "locale", "subject", "body"}))

	_, err := repo.Get(context.Background(), "LOW_BATTERY", "fr")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
