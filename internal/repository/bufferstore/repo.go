// Package bufferstore persists NotificationBuffers, the snoozed-alert
// holding areas keyed by recipient tuple.
package bufferstore

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

var ErrBufferNotFound = errors.New("notification buffer not found")

// Repository provides methods to interact with the notification_buffers table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new buffer repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new buffer for a recipient tuple.
func (r *Repository) Create(ctx context.Context, buf *model.NotificationBuffer) error {
	alerts, err := json.Marshal(buf.Alerts)
	if err != nil {
		return fmt.Errorf("failed to encode alerts: %w", err)
	}

	query := `
		INSERT INTO notification_buffers (
		    id, user_id, vehicle_id, channel, "group", contact_id, alerts, correlation_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9);
    `

	_, err = r.db.ExecContext(ctx, query,
		buf.ID, buf.Key.UserID, buf.Key.VehicleID, buf.Key.Channel, buf.Key.Group, buf.Key.ContactID,
		alerts, buf.CorrelationID, buf.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create buffer: %w", err)
	}

	return nil
}

// GetByKey returns the buffer for a recipient tuple.
func (r *Repository) GetByKey(ctx context.Context, key model.BufferKey) (*model.NotificationBuffer, error) {
	query := `
		SELECT id, user_id, vehicle_id, channel, "group", contact_id, alerts, correlation_id, created_at, updated_at
		FROM notification_buffers
		WHERE user_id = $1 AND vehicle_id = $2 AND channel = $3 AND "group" = $4 AND contact_id = $5;
    `

	return r.queryOne(ctx, query, key.UserID, key.VehicleID, key.Channel, key.Group, key.ContactID)
}

// GetByCorrelationID returns the buffer whose outstanding timer carries
// the given correlation id.
func (r *Repository) GetByCorrelationID(ctx context.Context, correlationID string) (*model.NotificationBuffer, error) {
	query := `
		SELECT id, user_id, vehicle_id, channel, "group", contact_id, alerts, correlation_id, created_at, updated_at
		FROM notification_buffers
		WHERE correlation_id = $1;
    `

	return r.queryOne(ctx, query, correlationID)
}

// GetByID returns a buffer by its primary key.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*model.NotificationBuffer, error) {
	query := `
		SELECT id, user_id, vehicle_id, channel, "group", contact_id, alerts, correlation_id, created_at, updated_at
		FROM notification_buffers
		WHERE id = $1;
    `

	return r.queryOne(ctx, query, id)
}

// ListByRecipient returns every buffer for a user+vehicle pair, used when
// a suppression reconfiguration forces re-evaluation.
func (r *Repository) ListByRecipient(ctx context.Context, userID, vehicleID string) ([]model.NotificationBuffer, error) {
	query := `
		SELECT id, user_id, vehicle_id, channel, "group", contact_id, alerts, correlation_id, created_at, updated_at
		FROM notification_buffers
		WHERE user_id = $1 AND vehicle_id = $2;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list buffers: %w", err)
	}
	defer rows.Close()

	var buffers []model.NotificationBuffer
	for rows.Next() {
		buf, err := scanBuffer(rows)
		if err != nil {
			return nil, err
		}
		buffers = append(buffers, *buf)
	}

	return buffers, rows.Err()
}

// AppendAlert adds one snoozed alert snapshot to an existing buffer.
func (r *Repository) AppendAlert(ctx context.Context, id uuid.UUID, alert model.BufferedAlert) error {
	encoded, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to encode alert: %w", err)
	}

	query := `
		UPDATE notification_buffers
		SET alerts = alerts || $2::jsonb, updated_at = $3
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id, encoded, time.Now())
	if err != nil {
		return fmt.Errorf("failed to append alert: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrBufferNotFound
	}

	return nil
}

// SetCorrelationID attaches the acknowledged timer's correlation id.
func (r *Repository) SetCorrelationID(ctx context.Context, id uuid.UUID, correlationID string) error {
	query := `
		UPDATE notification_buffers
		SET correlation_id = $2, updated_at = $3
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id, correlationID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set correlation id: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrBufferNotFound
	}

	return nil
}

// ReplaceAlerts overwrites the buffered alert list, used when a single
// alert is cancelled out of a larger buffer.
func (r *Repository) ReplaceAlerts(ctx context.Context, id uuid.UUID, alerts []model.BufferedAlert) error {
	encoded, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("failed to encode alerts: %w", err)
	}

	query := `
		UPDATE notification_buffers
		SET alerts = $2, updated_at = $3
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id, encoded, time.Now())
	if err != nil {
		return fmt.Errorf("failed to replace alerts: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrBufferNotFound
	}

	return nil
}

// Delete removes a flushed buffer.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM notification_buffers
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete buffer: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrBufferNotFound
	}

	return nil
}

func (r *Repository) queryOne(ctx context.Context, query string, args ...interface{}) (*model.NotificationBuffer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get buffer: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrBufferNotFound
	}

	return scanBuffer(rows)
}

func scanBuffer(rows *sql.Rows) (*model.NotificationBuffer, error) {
	var (
		buf    model.NotificationBuffer
		alerts []byte
	)
	if err := rows.Scan(
		&buf.ID, &buf.Key.UserID, &buf.Key.VehicleID, &buf.Key.Channel, &buf.Key.Group, &buf.Key.ContactID,
		&alerts, &buf.CorrelationID, &buf.CreatedAt, &buf.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(alerts, &buf.Alerts); err != nil {
		return nil, fmt.Errorf("failed to decode alerts: %w", err)
	}
	return &buf, nil
}
