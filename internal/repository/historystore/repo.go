// Package historystore persists AlertsHistoryInfo records, the
// append-only delivery-lifecycle log.
package historystore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

var ErrHistoryNotFound = errors.New("alert history not found")

// Repository provides methods to interact with the alerts_history table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new history repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new history record.
func (r *Repository) Create(ctx context.Context, info *model.AlertsHistoryInfo) error {
	statuses, err := json.Marshal(info.Statuses)
	if err != nil {
		return fmt.Errorf("failed to encode statuses: %w", err)
	}

	query := `
		INSERT INTO alerts_history (
		    request_id, event_id, notification_id, user_id, vehicle_id,
		    statuses, responses, skipped, retry_records, default_message, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, '[]', '[]', '[]', '', $7, $7);
    `

	_, err = r.db.ExecContext(ctx, query,
		info.RequestID, info.EventID, info.NotificationID, info.UserID, info.VehicleID,
		statuses, info.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create history: %w", err)
	}

	return nil
}

// Get returns the full history record for a request.
func (r *Repository) Get(ctx context.Context, requestID uuid.UUID) (*model.AlertsHistoryInfo, error) {
	query := `
		SELECT request_id, event_id, notification_id, user_id, vehicle_id,
		       statuses, responses, skipped, retry_records, default_message, created_at, updated_at
		FROM alerts_history
		WHERE request_id = $1;
    `

	var (
		info         model.AlertsHistoryInfo
		statuses     []byte
		responses    []byte
		skipped      []byte
		retryRecords []byte
	)

	err := r.db.Master.QueryRowContext(ctx, query, requestID).Scan(
		&info.RequestID, &info.EventID, &info.NotificationID, &info.UserID, &info.VehicleID,
		&statuses, &responses, &skipped, &retryRecords, &info.DefaultMessage, &info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	for _, pair := range []struct {
		raw []byte
		dst interface{}
	}{
		{statuses, &info.Statuses},
		{responses, &info.Responses},
		{skipped, &info.Skipped},
		{retryRecords, &info.RetryRecords},
	} {
		if err := json.Unmarshal(pair.raw, pair.dst); err != nil {
			return nil, fmt.Errorf("failed to decode history: %w", err)
		}
	}

	return &info, nil
}

// AppendStatus appends one lifecycle entry to the status log.
func (r *Repository) AppendStatus(ctx context.Context, requestID uuid.UUID, entry model.StatusEntry) error {
	return r.appendJSON(ctx, requestID, "statuses", entry)
}

// AppendResponse appends one channel response.
func (r *Repository) AppendResponse(ctx context.Context, requestID uuid.UUID, resp model.ChannelResponse) error {
	return r.appendJSON(ctx, requestID, "responses", resp)
}

// AppendSkipped appends one skipped-channel reason.
func (r *Repository) AppendSkipped(ctx context.Context, requestID uuid.UUID, skip model.SkippedChannel) error {
	return r.appendJSON(ctx, requestID, "skipped", skip)
}

// AppendRetryRecord appends one retry-record audit entry.
func (r *Repository) AppendRetryRecord(ctx context.Context, requestID uuid.UUID, rec model.RetryRecord) error {
	return r.appendJSON(ctx, requestID, "retry_records", rec)
}

// SetDefaultMessage seeds the record's default alert message.
func (r *Repository) SetDefaultMessage(ctx context.Context, requestID uuid.UUID, message string) error {
	query := `
		UPDATE alerts_history
		SET default_message = $2, updated_at = $3
		WHERE request_id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, requestID, message, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set default message: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrHistoryNotFound
	}

	return nil
}

func (r *Repository) appendJSON(ctx context.Context, requestID uuid.UUID, column string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s entry: %w", column, err)
	}

	// column comes from a fixed caller-side set, never user input.
	query := fmt.Sprintf(`
		UPDATE alerts_history
		SET %s = %s || $2::jsonb, updated_at = $3
		WHERE request_id = $1;
    `, column, column)

	res, err := r.db.ExecContext(ctx, query, requestID, encoded, time.Now())
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", column, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrHistoryNotFound
	}

	return nil
}
