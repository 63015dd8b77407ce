// Package retrystore keeps the audit copies of retry records keyed by
// request id. The live counters live in the cache; this table is the
// durable trail.
package retrystore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

var ErrNoRetryRecords = errors.New("no retry records found")

// Repository provides methods to interact with the retry_audit table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new retry audit repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Save upserts the audit copy for one (request, failure kind) pair.
func (r *Repository) Save(ctx context.Context, rec model.RetryRecord) error {
	query := `
		INSERT INTO retry_audit (request_id, kind, attempt, max_attempts, interval_ms, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (request_id, kind)
		DO UPDATE SET attempt = $3, updated_at = $6;
    `

	_, err := r.db.ExecContext(ctx, query,
		rec.RequestID, rec.Kind, rec.Attempt, rec.MaxAttempts, rec.Interval.Milliseconds(), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save retry record: %w", err)
	}

	return nil
}

// ListByRequest returns the audit records for a request.
func (r *Repository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]model.RetryRecord, error) {
	query := `
		SELECT request_id, kind, attempt, max_attempts, interval_ms, updated_at
		FROM retry_audit
		WHERE request_id = $1
		ORDER BY updated_at;
    `

	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list retry records: %w", err)
	}
	defer rows.Close()

	var records []model.RetryRecord
	for rows.Next() {
		var (
			rec        model.RetryRecord
			intervalMs int64
		)
		if err := rows.Scan(&rec.RequestID, &rec.Kind, &rec.Attempt, &rec.MaxAttempts, &intervalMs, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		rec.Interval = time.Duration(intervalMs) * time.Millisecond
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoRetryRecords
	}

	return records, rows.Err()
}
